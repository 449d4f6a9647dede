// Package config persists the author name used to stamp commits.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Store reads and writes the single-line author config file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Author returns the configured name, "" when unset or the file is
// absent.
func (s *Store) Author() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	name, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(name), nil
}

func (s *Store) SetAuthor(name string) error {
	if err := os.WriteFile(s.path, []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
