// Package index persists the set of tracked file names.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vx/internal/hashing"
	"vx/internal/vcserr"
)

// Store reads and rewrites the tracked-file list. Paths are kept in the
// order of first addition, one per line.
type Store struct {
	root string // working directory tracked paths resolve against
	path string // index file location
}

func NewStore(root, path string) *Store {
	return &Store{root: root, path: path}
}

// Paths returns the persisted list as-is, without checking that the
// files still exist. An absent index file is an empty list.
func (s *Store) Paths() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// Read loads the tracked files with their current content. Entries whose
// target no longer exists as a regular file are silently dropped; that
// is expected drift, not corruption. They stay in storage until the next
// rewrite.
func (s *Store) Read() ([]hashing.File, error) {
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}

	var files []hashing.File
	for _, p := range paths {
		abs := filepath.Join(s.root, p)
		fi, err := os.Stat(abs)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		content, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("reading tracked file %s: %w", p, err)
		}
		files = append(files, hashing.File{Name: p, Content: content})
	}
	return files, nil
}

// Track adds path to the list. A path that does not resolve to an
// existing regular file reports NotFound and mutates nothing. An
// already-listed path is not duplicated. Either way the whole list is
// rewritten, which is the point where stale entries get purged.
func (s *Store) Track(path string) error {
	fi, err := os.Stat(filepath.Join(s.root, path))
	if err != nil || !fi.Mode().IsRegular() {
		return vcserr.NotFound(fmt.Sprintf("Can't find '%s'.", path))
	}

	paths, err := s.Paths()
	if err != nil {
		return err
	}

	kept := paths[:0]
	listed := false
	for _, p := range paths {
		if efi, err := os.Stat(filepath.Join(s.root, p)); err != nil || !efi.Mode().IsRegular() {
			continue
		}
		kept = append(kept, p)
		if p == path {
			listed = true
		}
	}
	if !listed {
		kept = append(kept, path)
	}

	return s.rewrite(kept)
}

func (s *Store) rewrite(paths []string) error {
	content := strings.Join(paths, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
