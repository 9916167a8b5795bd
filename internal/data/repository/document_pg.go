package repository

import (
	"context"
	"errors"
	"fmt"

	"seat-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const documentsSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type pgDocumentStore struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPgDocumentStore keeps documents as rows of the documents table.
func NewPgDocumentStore(db database.PgxIface, log *zap.Logger) DocumentStore {
	return &pgDocumentStore{
		db:  db,
		log: log.With(zap.String("repository", "pg_document")),
	}
}

// EnsureSchema creates the documents table if it does not exist.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, documentsSchema); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *pgDocumentStore) Read(ctx context.Context, name string) ([]byte, bool, error) {
	query := `SELECT body FROM documents WHERE name = $1`

	var body []byte
	err := s.db.QueryRow(ctx, query, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("Failed to read document", zap.Error(err), zap.String("document", name))
		return nil, false, fmt.Errorf("read %s: %w", name, err)
	}

	return body, true, nil
}

// Write is a single upsert statement, which Postgres applies atomically.
func (s *pgDocumentStore) Write(ctx context.Context, name string, body []byte) error {
	query := `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.Exec(ctx, query, name, string(body)); err != nil {
		s.log.Error("Failed to write document", zap.Error(err), zap.String("document", name))
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
