// Package restore copies a stored snapshot back into the working
// directory.
package restore

import (
	"fmt"
	"os"
	"path/filepath"

	"vx/internal/snapshot"
	"vx/internal/vcserr"
)

type Engine struct {
	snapshots *snapshot.Store
	root      string // working directory receiving the restored files
}

func NewEngine(snapshots *snapshot.Store, root string) *Engine {
	return &Engine{snapshots: snapshots, root: root}
}

// Checkout copies every file of the identified commit into the working
// directory under its own name, overwriting unconditionally. An unknown
// identifier reports NotFound and leaves the working directory as it is.
func (e *Engine) Checkout(id string) error {
	dir := e.snapshots.Dir(id)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return vcserr.NotFound(fmt.Sprintf("Commit '%s' does not exist.", id))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading commit directory %s: %w", id, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading stored file %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(e.root, entry.Name()), content, 0644); err != nil {
			return fmt.Errorf("restoring %s: %w", entry.Name(), err)
		}
	}
	return nil
}
