package services

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// DocumentWatcher observes the uploads directory and re-processes documents as
// they land or change, so the active session follows what the upload server
// writes to disk.
type DocumentWatcher struct {
	ragService RAGService
}

func NewDocumentWatcher(ragService RAGService) *DocumentWatcher {
	return &DocumentWatcher{ragService: ragService}
}

// Watch blocks until the context is cancelled, processing every supported
// file created or written under dirPath. The most recently written document
// becomes the active session.
func (w *DocumentWatcher) Watch(ctx context.Context, dirPath string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("WATCHER ERROR: Failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !IsSupportedFile(event.Name) {
					continue
				}

				// Many editors and upload servers write via a temp file plus
				// rename, which surfaces as Create; handle Create and Write
				// the same.
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					log.Printf("WATCHER: Document written: %s. Processing...", event.Name)
					if err := w.ragService.ProcessDocument(ctx, event.Name); err != nil {
						log.Printf("WATCHER ERROR: Failed to process %s: %v", event.Name, err)
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("WATCHER ERROR: %v", err)
			case <-ctx.Done():
				log.Println("WATCHER: Context cancelled, shutting down watcher.")
				return
			}
		}
	}()

	log.Printf("WATCHER: Watching directory: %s", dirPath)
	if err := watcher.Add(dirPath); err != nil {
		log.Printf("WATCHER ERROR: Failed to add path to watcher: %v", err)
	}

	<-ctx.Done()
}
