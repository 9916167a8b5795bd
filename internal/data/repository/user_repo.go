package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"seat-booking/internal/data/entity"

	"go.uber.org/zap"
)

// UserRepository reads the provisioned user set. Users are never modified
// by the service; Seed only fills an empty store.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	Seed(ctx context.Context, users []entity.User) (bool, error)
}

type userRepository struct {
	docs DocumentStore
	log  *zap.Logger
}

func NewUserRepository(docs DocumentStore, log *zap.Logger) UserRepository {
	return &userRepository{
		docs: docs,
		log:  log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) load(ctx context.Context) (map[string]entity.User, error) {
	body, found, err := r.docs.Read(ctx, UsersDocument)
	if err != nil {
		return nil, fmt.Errorf("%w: load users: %w", ErrStoreUnavailable, err)
	}
	if !found {
		return map[string]entity.User{}, nil
	}

	var users map[string]entity.User
	if err := json.Unmarshal(body, &users); err != nil {
		r.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("%w: decode users: %w", ErrStoreUnavailable, err)
	}

	for username, user := range users {
		user.Username = username
		users[username] = user
	}
	return users, nil
}

// FindByUsername returns nil, nil when the user does not exist.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// FindAll returns every user sorted by username.
func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]entity.User, 0, len(users))
	for _, user := range users {
		list = append(list, user)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Username < list[j].Username
	})

	return list, nil
}

// Seed writes users only if the users document does not exist yet. It
// reports whether it wrote anything.
func (r *userRepository) Seed(ctx context.Context, users []entity.User) (bool, error) {
	_, found, err := r.docs.Read(ctx, UsersDocument)
	if err != nil {
		return false, fmt.Errorf("%w: check users: %w", ErrStoreUnavailable, err)
	}
	if found {
		return false, nil
	}

	doc := make(map[string]entity.User, len(users))
	for _, user := range users {
		if user.Username == "" {
			return false, fmt.Errorf("seed user without username")
		}
		doc[user.Username] = user
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode users: %w", err)
	}

	if err := r.docs.Write(ctx, UsersDocument, body); err != nil {
		return false, fmt.Errorf("%w: seed users: %w", ErrStoreUnavailable, err)
	}

	r.log.Info("Seeded users", zap.Int("count", len(doc)))
	return true, nil
}
