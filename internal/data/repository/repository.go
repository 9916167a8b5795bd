package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Ledger  LedgerRepository
	User    UserRepository
	Session SessionRepository
}

// NewRepository builds the ledger and user repositories on top of docs.
// Sessions live in their own store because they are never persisted with
// the ledger.
func NewRepository(docs DocumentStore, sessions SessionRepository, log *zap.Logger) *Repository {
	return &Repository{
		Ledger:  NewLedgerRepository(docs, log),
		User:    NewUserRepository(docs, log),
		Session: sessions,
	}
}
