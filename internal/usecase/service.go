package usecase

import (
	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	layout := entity.SeatLayout{
		Benches:       config.Seats.Benches,
		SeatsPerBench: config.Seats.SeatsPerBench,
	}

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, config, log),
		Booking: NewBookingService(repo.Ledger, layout, log),
	}
}
