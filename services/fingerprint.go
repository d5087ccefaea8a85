package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// hashBlockSize is the read granularity for fingerprinting. Files are streamed
// through the digest so large documents never sit fully in memory.
const hashBlockSize = 4096

// HashFile computes the content fingerprint of a file: the hex SHA-256 digest
// of its full byte content. The fingerprint depends only on the bytes, never on
// the filename or path, and is the sole identity key for the derived index.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	buf := make([]byte, hashBlockSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
