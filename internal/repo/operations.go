package repo

import (
	"vx/internal/hashing"
	"vx/internal/journal"
	"vx/internal/vcserr"

	"go.uber.org/zap"
)

// Commit snapshots the tracked set under its content-derived identifier
// and records it in the journal. The duplicate check compares only the
// journal's latest entry: an identifier matching an older entry proceeds
// past it, the idempotent snapshot write skips the copy, and a fresh log
// entry is still appended.
func (r *Repository) Commit(message string) (string, error) {
	if message == "" {
		return "", vcserr.MessageMissing("Commit message was not passed.")
	}

	files, err := r.Index.Read()
	if err != nil {
		return "", err
	}

	id := hashing.Identifier(files)

	latest, err := r.Journal.LatestIdentifier()
	if err != nil {
		return "", err
	}
	if len(files) == 0 || latest == id {
		return "", vcserr.NothingToCommit("Nothing to commit.")
	}

	if err := r.Snapshots.Write(id, files); err != nil {
		return "", err
	}

	author, err := r.Config.Author()
	if err != nil {
		return "", err
	}
	if err := r.Journal.Prepend(journal.Entry{Identifier: id, Author: author, Message: message}); err != nil {
		return "", err
	}

	r.Logger.Info("created commit",
		zap.String("identifier", id),
		zap.Int("files", len(files)))
	return id, nil
}

// Checkout restores the identified snapshot into the working directory.
func (r *Repository) Checkout(id string) error {
	if id == "" {
		return vcserr.MessageMissing("Commit identifier was not passed.")
	}
	if err := r.Restore.Checkout(id); err != nil {
		return err
	}
	r.Logger.Info("restored commit", zap.String("identifier", id))
	return nil
}

// Track registers path in the index.
func (r *Repository) Track(path string) error {
	return r.Index.Track(path)
}

// TrackedList returns the persisted tracked paths for display.
func (r *Repository) TrackedList() ([]string, error) {
	return r.Index.Paths()
}

// Log returns the full ledger text, "" when no commits exist.
func (r *Repository) Log() (string, error) {
	return r.Journal.All()
}

func (r *Repository) Author() (string, error) {
	return r.Config.Author()
}

func (r *Repository) SetAuthor(name string) error {
	return r.Config.SetAuthor(name)
}
