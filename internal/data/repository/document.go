package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	BookingsDocument = "bookings"
	UsersDocument    = "users"
)

// ErrStoreUnavailable marks every failure to read or write durable state.
var ErrStoreUnavailable = errors.New("store unavailable")

// DocumentStore persists named JSON documents as whole units. Write either
// replaces the previous body completely or leaves it untouched.
type DocumentStore interface {
	// Read returns found=false when the document has never been written.
	Read(ctx context.Context, name string) (body []byte, found bool, err error)
	Write(ctx context.Context, name string, body []byte) error
}

type fileDocumentStore struct {
	dir string
	log *zap.Logger
}

// NewFileDocumentStore stores each document as <dir>/<name>.json.
func NewFileDocumentStore(dir string, log *zap.Logger) (DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &fileDocumentStore{
		dir: dir,
		log: log.With(zap.String("repository", "file_document")),
	}, nil
}

func (s *fileDocumentStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *fileDocumentStore) Read(ctx context.Context, name string) ([]byte, bool, error) {
	body, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("Failed to read document", zap.Error(err), zap.String("document", name))
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}
	return body, true, nil
}

// Write goes through a temp file in the same directory and a rename, so a
// reader sees either the old document or the new one.
func (s *fileDocumentStore) Write(ctx context.Context, name string, body []byte) error {
	finalPath := s.path(name)

	tmpFile, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(body); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("rename %s into place: %w", name, err)
	}
	success = true

	// Make the rename itself durable.
	if dir, err := os.Open(s.dir); err == nil {
		dir.Sync()
		dir.Close()
	}

	return nil
}
