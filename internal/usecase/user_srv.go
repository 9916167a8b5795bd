package usecase

import (
	"context"
	"fmt"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// defaultUsers is provisioned when no users document exists yet.
var defaultUsers = []struct {
	username string
	password string
	name     string
	isAdmin  bool
}{
	{username: "admin", password: "admin123", name: "Administrator", isAdmin: true},
	{username: "student1", password: "student1", name: "John Doe"},
	{username: "student2", password: "student2", name: "Jane Smith"},
}

type UserService interface {
	// ListUsers returns every provisioned user. Secrets are never exposed by
	// the response layer.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// SeedDefaults provisions the default users if none exist.
	SeedDefaults(ctx context.Context) error
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		bcryptCost: config.Security.BcryptCost,
		log:        log.With(zap.String("service", "user")),
	}
}

func (us *userService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (us *userService) SeedDefaults(ctx context.Context) error {
	users := make([]entity.User, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := utils.HashPassword(u.password, us.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		users = append(users, entity.User{
			Username:     u.username,
			Name:         u.name,
			PasswordHash: hash,
			IsAdmin:      u.isAdmin,
		})
	}

	seeded, err := us.userRepo.Seed(ctx, users)
	if err != nil {
		us.log.Error("Failed to seed users", zap.Error(err))
		return fmt.Errorf("seed users: %w", err)
	}
	if seeded {
		us.log.Warn("Provisioned default users, change their passwords",
			zap.Int("count", len(users)))
	}
	return nil
}
