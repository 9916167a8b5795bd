package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// decodeAndValidate reads a JSON body into req and runs the validate tags.
// It writes the 400 response itself and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// handleServiceError maps usecase errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "Admin access required")

	case errors.Is(err, usecase.ErrNotOwner):
		utils.ResponseForbidden(w, "You can only cancel your own bookings")

	case errors.Is(err, usecase.ErrSeatAlreadyBooked):
		utils.ResponseBadRequest(w, "Seat already booked", nil)

	case errors.Is(err, usecase.ErrUserAlreadyHasBooking):
		utils.ResponseBadRequest(w, "You already have a seat booked. Cancel it first to book another.", nil)

	case errors.Is(err, usecase.ErrSeatNotBooked):
		utils.ResponseBadRequest(w, "Seat is not booked", nil)

	case errors.Is(err, usecase.ErrInvalidSeat):
		utils.ResponseBadRequest(w, "Seat does not exist", nil)

	case errors.Is(err, usecase.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Storage is unavailable, try again")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
