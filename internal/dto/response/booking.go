package response

import (
	"time"

	"seat-booking/internal/data/entity"
)

type BookingResponse struct {
	Seat     string    `json:"seat"`
	Bench    int       `json:"bench"`
	SeatNo   int       `json:"seatNumber"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	BookedAt time.Time `json:"bookedAt"`
}

type LayoutResponse struct {
	Benches       int      `json:"benches"`
	SeatsPerBench int      `json:"seatsPerBench"`
	TotalSeats    int      `json:"totalSeats"`
	Seats         []string `json:"seats"`
}

func BookingToResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		Seat:     b.SeatID.String(),
		Bench:    b.SeatID.Bench,
		SeatNo:   b.SeatID.Seat,
		Username: b.Username,
		Name:     b.Name,
		BookedAt: b.BookedAt,
	}
}

// LedgerToResponse keeps the seat-key map shape clients of bookings.json
// already understand.
func LedgerToResponse(ledger entity.Ledger) map[string]BookingResponse {
	out := make(map[string]BookingResponse, len(ledger))
	for key, b := range ledger {
		out[key] = BookingToResponse(b)
	}
	return out
}

// LayoutToResponse lists every seat key in bench-major order.
func LayoutToResponse(layout entity.SeatLayout) LayoutResponse {
	seats := layout.Seats()
	keys := make([]string, 0, len(seats))
	for _, seat := range seats {
		keys = append(keys, seat.String())
	}

	return LayoutResponse{
		Benches:       layout.Benches,
		SeatsPerBench: layout.SeatsPerBench,
		TotalSeats:    len(seats),
		Seats:         keys,
	}
}
