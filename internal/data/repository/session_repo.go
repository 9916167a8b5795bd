package repository

import (
	"context"
	"sync"
	"time"

	"seat-booking/internal/data/entity"

	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValidSession returns nil, nil for unknown or expired tokens.
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	// Revoke is a no-op for unknown tokens.
	Revoke(ctx context.Context, token string) error
	CleanExpiredSessions(ctx context.Context) (int, error)
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
	log      *zap.Logger
}

// NewMemorySessionRepository keeps sessions in process memory. now may be
// nil, in which case time.Now is used.
func NewMemorySessionRepository(now func() time.Time, log *zap.Logger) SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &memorySessionRepository{
		sessions: make(map[string]entity.Session),
		now:      now,
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = *session
	return nil
}

func (r *memorySessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	if session.ExpiredAt(r.now()) {
		r.mu.Lock()
		// only drop it if it was not replaced in the meantime
		if current, ok := r.sessions[token]; ok && current.ExpiresAt.Equal(session.ExpiresAt) {
			delete(r.sessions, token)
		}
		r.mu.Unlock()
		return nil, nil
	}

	return &session, nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

func (r *memorySessionRepository) CleanExpiredSessions(ctx context.Context) (int, error) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, session := range r.sessions {
		if session.ExpiredAt(now) {
			delete(r.sessions, token)
			removed++
		}
	}

	if removed > 0 {
		r.log.Debug("Cleaned expired sessions", zap.Int("removed", removed))
	}
	return removed, nil
}
