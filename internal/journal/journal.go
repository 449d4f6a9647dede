// Package journal maintains the human-readable commit ledger. The
// ledger is append-to-front plain text: one 4-line block per commit
// (identifier line, author line, message line, blank separator), newest
// first. Entries are never reordered or deleted.
package journal

import (
	"fmt"
	"os"
	"strings"
)

const identifierPrefix = "commit "

// Entry is the metadata recorded for one commit.
type Entry struct {
	Identifier string
	Author     string
	Message    string
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// All returns the full ledger text, "" when nothing has been committed.
func (s *Store) All() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading log: %w", err)
	}
	return string(data), nil
}

// Prepend writes e in front of the existing ledger so the newest commit
// reads first. Trailing whitespace is trimmed before the final newline.
func (s *Store) Prepend(e Entry) error {
	prev, err := s.All()
	if err != nil {
		return err
	}

	block := fmt.Sprintf("%s%s\nAuthor: %s\n%s\n", identifierPrefix, e.Identifier, e.Author, e.Message)
	ledger := strings.TrimRight(block+"\n"+prev, " \t\n") + "\n"

	if err := os.WriteFile(s.path, []byte(ledger), 0644); err != nil {
		return fmt.Errorf("writing log: %w", err)
	}
	return nil
}

// LatestIdentifier returns the identifier of the most recent entry, ""
// when the ledger is empty. This is the only structured read-back the
// ledger supports; it backs the duplicate-commit check.
func (s *Store) LatestIdentifier() (string, error) {
	text, err := s.All()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, identifierPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, identifierPrefix)), nil
		}
	}
	return "", nil
}
