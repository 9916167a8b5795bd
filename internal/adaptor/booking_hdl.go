package adaptor

import (
	"net/http"

	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings (public)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.service.ListBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", response.LedgerToResponse(ledger))
}

// Layout handles GET /api/layout (public)
func (h *BookingHandler) Layout(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.LayoutToResponse(h.service.Layout()))
}

// Book handles POST /api/book (authenticated)
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SeatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.Book(r.Context(), *identity, req.SeatID())
	if err != nil {
		handleServiceError(w, h.log, err, "book seat")
		return
	}

	utils.ResponseSuccess(w, "Seat booked successfully", response.BookingToResponse(*booking))
}

// Cancel handles POST /api/cancel (authenticated)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SeatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Cancel(r.Context(), *identity, req.SeatID()); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", nil)
}

// ResetAll handles POST /api/reset-bookings (admin only)
func (h *BookingHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.ResetAll(r.Context(), *identity); err != nil {
		handleServiceError(w, h.log, err, "reset bookings")
		return
	}

	utils.ResponseSuccess(w, "All bookings have been reset", nil)
}
