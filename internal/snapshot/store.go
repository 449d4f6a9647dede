// Package snapshot is the content-addressed commit store: one directory
// per commit identifier, holding verbatim copies of the tracked files.
// A commit directory is created at most once and never mutated.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"vx/internal/hashing"
)

type Store struct {
	root string // the commits/ directory
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating commit store directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Dir resolves the directory for id. The identifier is used literally as
// a directory name; no shape validation is applied.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.root, id)
}

// Exists reports whether a commit directory for id is already present.
func (s *Store) Exists(id string) bool {
	if id == "" {
		return false
	}
	fi, err := os.Stat(s.Dir(id))
	return err == nil && fi.IsDir()
}

// Write persists the snapshot for id. When the directory already exists
// the call is a no-op; the identifier is content-derived, so an existing
// directory already holds these exact bytes.
func (s *Store) Write(id string, files []hashing.File) error {
	if s.Exists(id) {
		return nil
	}

	dir := s.Dir(id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating commit directory: %w", err)
	}

	for _, f := range files {
		target := filepath.Join(dir, filepath.Base(f.Name))
		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s into commit %s: %w", f.Name, id, err)
		}
	}
	return nil
}
