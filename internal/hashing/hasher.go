// Package hashing derives commit identifiers from tracked file content.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// File is one tracked file read into memory. Name is the path as
// persisted in the index; Content is the file's bytes at read time.
type File struct {
	Name    string
	Content []byte
}

// Identifier hashes the ordered file set into a commit identifier.
// Every file's name and content are fed through one SHA-256 in slice
// order, so identical sets in identical order collide (the dedup key)
// and reordering distinct files yields a different identifier.
func Identifier(files []File) string {
	h := sha256.New()
	for _, f := range files {
		h.Write([]byte(f.Name))
		h.Write(f.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
