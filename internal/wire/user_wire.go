package wire

import (
	"seat-booking/internal/adaptor"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.With(middleware.Require(usecase.AdminOnly, log)).Get("/api/users", userHandler.ListUsers)
}
