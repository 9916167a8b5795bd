package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type redisSessionRepository struct {
	client redis.UniversalClient
	now    func() time.Time
	log    *zap.Logger
}

// NewRedisSessionRepository stores each session under session:<token> with
// a TTL equal to its remaining lifetime.
func NewRedisSessionRepository(client redis.UniversalClient, now func() time.Time, log *zap.Logger) SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &redisSessionRepository{
		client: client,
		now:    now,
		log:    log.With(zap.String("repository", "redis_session")),
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *redisSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	body, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.Token), body, ttl).Err(); err != nil {
		r.log.Error("Failed to create session", zap.Error(err), zap.String("username", session.Username))
		return fmt.Errorf("%w: create session: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *redisSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	body, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("%w: find session: %w", ErrStoreUnavailable, err)
	}

	var session entity.Session
	if err := json.Unmarshal(body, &session); err != nil {
		r.log.Warn("Dropping undecodable session", zap.Error(err))
		r.client.Del(ctx, sessionKey(token))
		return nil, nil
	}

	// Redis expiry has second granularity; the stored deadline is authoritative.
	if session.ExpiredAt(r.now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *redisSessionRepository) Revoke(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("%w: revoke session: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// CleanExpiredSessions has nothing to do; Redis expires the keys itself.
func (r *redisSessionRepository) CleanExpiredSessions(ctx context.Context) (int, error) {
	return 0, nil
}
