package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryDocumentStore is a DocumentStore for tests; failing makes every call
// return an error.
type memoryDocumentStore struct {
	mu      sync.Mutex
	docs    map[string][]byte
	failing bool
}

func newMemoryDocumentStore() *memoryDocumentStore {
	return &memoryDocumentStore{docs: make(map[string][]byte)}
}

func (s *memoryDocumentStore) Read(ctx context.Context, name string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, false, errors.New("disk on fire")
	}
	body, ok := s.docs[name]
	return body, ok, nil
}

func (s *memoryDocumentStore) Write(ctx context.Context, name string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errors.New("disk on fire")
	}
	s.docs[name] = append([]byte(nil), body...)
	return nil
}

func newFileStore(t *testing.T) (DocumentStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewFileDocumentStore(dir, zap.NewNop())
	require.NoError(t, err)
	return store, dir
}

func TestFileDocumentStore(t *testing.T) {
	ctx := context.Background()
	store, dir := newFileStore(t)

	t.Run("missing_document", func(t *testing.T) {
		body, found, err := store.Read(ctx, "nothing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, body)
	})

	t.Run("write_then_read", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "doc", []byte(`{"a":1}`)))
		require.NoError(t, store.Write(ctx, "doc", []byte(`{"a":2}`)))

		body, found, err := store.Read(ctx, "doc")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"a":2}`, string(body))
	})

	t.Run("no_temp_files_left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, ".json", filepath.Ext(e.Name()), "unexpected file %s", e.Name())
		}
	})
}

func TestLedgerRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)
	repo := NewLedgerRepository(store, zap.NewNop())

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	bookedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	ledger := entity.NewLedger()
	ledger.Put(entity.Booking{SeatID: entity.NewSeatID(1, 1), Username: "student1", Name: "John Doe", BookedAt: bookedAt})
	ledger.Put(entity.Booking{SeatID: entity.NewSeatID(2, 3), Username: "admin", Name: "Administrator", BookedAt: bookedAt})

	require.NoError(t, repo.Save(ctx, ledger))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)
}

func TestLedgerRepository_DocumentFormat(t *testing.T) {
	ctx := context.Background()
	store := newMemoryDocumentStore()
	repo := NewLedgerRepository(store, zap.NewNop())

	ledger := entity.NewLedger()
	ledger.Put(entity.Booking{
		SeatID:   entity.NewSeatID(1, 2),
		Username: "student2",
		Name:     "Jane Smith",
		BookedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, repo.Save(ctx, ledger))

	assert.JSONEq(t,
		`{"bench1_seat2":{"username":"student2","name":"Jane Smith","bookedAt":"2026-01-02T03:04:05Z"}}`,
		string(store.docs[BookingsDocument]))
}

func TestLedgerRepository_StoreUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("read_failure", func(t *testing.T) {
		store := newMemoryDocumentStore()
		store.failing = true
		_, err := NewLedgerRepository(store, zap.NewNop()).Load(ctx)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("write_failure", func(t *testing.T) {
		store := newMemoryDocumentStore()
		store.failing = true
		err := NewLedgerRepository(store, zap.NewNop()).Save(ctx, entity.NewLedger())
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("corrupt_document", func(t *testing.T) {
		store := newMemoryDocumentStore()
		store.docs[BookingsDocument] = []byte(`{"bench1_seat1":`)
		_, err := NewLedgerRepository(store, zap.NewNop()).Load(ctx)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("malformed_seat_key", func(t *testing.T) {
		store := newMemoryDocumentStore()
		store.docs[BookingsDocument] = []byte(`{"row1":{"username":"x"}}`)
		_, err := NewLedgerRepository(store, zap.NewNop()).Load(ctx)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)
	repo := NewUserRepository(store, zap.NewNop())

	missing, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, missing)

	seeded, err := repo.Seed(ctx, []entity.User{
		{Username: "student1", Name: "John Doe", PasswordHash: "h1"},
		{Username: "admin", Name: "Administrator", PasswordHash: "h0", IsAdmin: true},
	})
	require.NoError(t, err)
	assert.True(t, seeded)

	// second seed must not overwrite provisioned users
	seeded, err = repo.Seed(ctx, []entity.User{{Username: "intruder", PasswordHash: "x"}})
	require.NoError(t, err)
	assert.False(t, seeded)

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "h0", admin.PasswordHash)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "admin", all[0].Username)
	assert.Equal(t, "student1", all[1].Username)

	intruder, err := repo.FindByUsername(ctx, "intruder")
	require.NoError(t, err)
	assert.Nil(t, intruder)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewMemorySessionRepository(clock.Now, zap.NewNop())

	session := &entity.Session{
		Token:     "tok-1",
		Username:  "student1",
		Name:      "John Doe",
		CreatedAt: clock.Now(),
		ExpiresAt: clock.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindValidSession(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "student1", found.Username)

	unknown, err := repo.FindValidSession(ctx, "tok-2")
	require.NoError(t, err)
	assert.Nil(t, unknown)

	t.Run("lazy_expiry", func(t *testing.T) {
		clock.Advance(time.Hour)
		expired, err := repo.FindValidSession(ctx, "tok-1")
		require.NoError(t, err)
		assert.Nil(t, expired)
	})

	t.Run("revoke_is_idempotent", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &entity.Session{Token: "tok-3", ExpiresAt: clock.Now().Add(time.Hour)}))
		require.NoError(t, repo.Revoke(ctx, "tok-3"))
		require.NoError(t, repo.Revoke(ctx, "tok-3"))

		gone, err := repo.FindValidSession(ctx, "tok-3")
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("sweep", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &entity.Session{Token: "short", ExpiresAt: clock.Now().Add(time.Minute)}))
		require.NoError(t, repo.Create(ctx, &entity.Session{Token: "long", ExpiresAt: clock.Now().Add(time.Hour)}))
		clock.Advance(2 * time.Minute)

		removed, err := repo.CleanExpiredSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		long, err := repo.FindValidSession(ctx, "long")
		require.NoError(t, err)
		assert.NotNil(t, long)
	})
}
