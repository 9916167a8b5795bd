package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
)

// fakeLedgerRepository keeps the ledger in memory and copies on every load
// and save, like a real store would.
type fakeLedgerRepository struct {
	mu         sync.Mutex
	ledger     entity.Ledger
	failLoad   bool
	failSave   bool
	saves      int
	canceledIO bool
	// sharedLoad hands out the stored map itself, like a caching store would.
	sharedLoad bool
}

func newFakeLedgerRepository() *fakeLedgerRepository {
	return &fakeLedgerRepository{ledger: entity.NewLedger()}
}

func (r *fakeLedgerRepository) Load(ctx context.Context) (entity.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		r.canceledIO = true
	}
	if r.failLoad {
		return nil, fmt.Errorf("%w: load failed", repository.ErrStoreUnavailable)
	}
	if r.sharedLoad {
		return r.ledger, nil
	}
	return r.ledger.Clone(), nil
}

func (r *fakeLedgerRepository) Save(ctx context.Context, ledger entity.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		r.canceledIO = true
	}
	if r.failSave {
		return fmt.Errorf("%w: save failed", repository.ErrStoreUnavailable)
	}
	r.ledger = ledger.Clone()
	r.saves++
	return nil
}

func (r *fakeLedgerRepository) snapshot() entity.Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Clone()
}

type fakeUserRepository struct {
	users   map[string]entity.User
	failing bool
}

func (r *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if r.failing {
		return nil, fmt.Errorf("%w: users unreadable", repository.ErrStoreUnavailable)
	}
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if r.failing {
		return nil, fmt.Errorf("%w: users unreadable", repository.ErrStoreUnavailable)
	}
	var out []entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepository) Seed(ctx context.Context, users []entity.User) (bool, error) {
	if r.failing {
		return false, errors.New("seed failed")
	}
	if len(r.users) > 0 {
		return false, nil
	}
	r.users = make(map[string]entity.User)
	for _, u := range users {
		r.users[u.Username] = u
	}
	return true, nil
}
