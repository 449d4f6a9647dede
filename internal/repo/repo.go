// Package repo wires the stores into one repository context constructed
// per invocation.
//
// Every operation is a sequence of blocking file reads and writes. The
// plain-text store layout carries no locking or atomic-rename
// discipline; concurrent processes mutating the same store can
// interleave non-atomically. Single local user only.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"vx/internal/config"
	"vx/internal/index"
	"vx/internal/journal"
	"vx/internal/restore"
	"vx/internal/snapshot"

	"go.uber.org/zap"
)

// Store layout under the working directory. The names are part of the
// on-disk contract; interoperating tools match them exactly.
const (
	StoreDir   = "vcs"
	configFile = "config.txt"
	indexFile  = "index.txt"
	logFile    = "log.txt"
	commitsDir = "commits"
)

// Repository holds the resolved store paths and component handles for
// one invocation. There is no shared package state; operations are
// methods on this struct.
type Repository struct {
	Root      string
	Index     *index.Store
	Journal   *journal.Store
	Snapshots *snapshot.Store
	Config    *config.Store
	Restore   *restore.Engine
	Logger    *zap.Logger
}

// Initialize creates the store directories under root if missing.
func Initialize(root string) error {
	dirs := []string{
		filepath.Join(root, StoreDir),
		filepath.Join(root, StoreDir, commitsDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// Open resolves root to an absolute path, initializes the store layout
// and constructs the repository context.
func Open(root string, logger *zap.Logger) (*Repository, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path for root %s: %w", root, err)
	}

	if err := Initialize(absRoot); err != nil {
		return nil, fmt.Errorf("initializing store layout: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	storeDir := filepath.Join(absRoot, StoreDir)
	snapshots, err := snapshot.NewStore(filepath.Join(storeDir, commitsDir))
	if err != nil {
		return nil, fmt.Errorf("opening commit store: %w", err)
	}

	return &Repository{
		Root:      absRoot,
		Index:     index.NewStore(absRoot, filepath.Join(storeDir, indexFile)),
		Journal:   journal.NewStore(filepath.Join(storeDir, logFile)),
		Snapshots: snapshots,
		Config:    config.NewStore(filepath.Join(storeDir, configFile)),
		Restore:   restore.NewEngine(snapshots, absRoot),
		Logger:    logger,
	}, nil
}
