package request

import "seat-booking/internal/data/entity"

// SeatRequest is the body of /api/book and /api/cancel.
type SeatRequest struct {
	Bench int `json:"bench" validate:"required,min=1"`
	Seat  int `json:"seat" validate:"required,min=1"`
}

func (r SeatRequest) SeatID() entity.SeatID {
	return entity.NewSeatID(r.Bench, r.Seat)
}
