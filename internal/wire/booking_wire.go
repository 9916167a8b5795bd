package wire

import (
	"seat-booking/internal/adaptor"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/bookings", bookingHandler.ListBookings)
	r.Get("/api/layout", bookingHandler.Layout)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Require(usecase.AuthenticatedOnly, log))

		r.Post("/api/book", bookingHandler.Book)
		r.Post("/api/cancel", bookingHandler.Cancel)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(middleware.Require(usecase.AdminOnly, log)).Post("/api/reset-bookings", bookingHandler.ResetAll)
}
