package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedSeatKey = errors.New("malformed seat key")

// SeatID identifies one physical seat. Bench and seat numbers start at 1.
type SeatID struct {
	Bench int `json:"bench"`
	Seat  int `json:"seat"`
}

func NewSeatID(bench, seat int) SeatID {
	return SeatID{Bench: bench, Seat: seat}
}

// String returns the ledger key, e.g. bench1_seat2.
func (s SeatID) String() string {
	return fmt.Sprintf("bench%d_seat%d", s.Bench, s.Seat)
}

func (s SeatID) Valid() bool {
	return s.Bench > 0 && s.Seat > 0
}

// ParseSeatID parses the canonical bench{N}_seat{M} key.
func ParseSeatID(key string) (SeatID, error) {
	rest, ok := strings.CutPrefix(key, "bench")
	if !ok {
		return SeatID{}, fmt.Errorf("%w: %q", ErrMalformedSeatKey, key)
	}
	benchPart, seatPart, ok := strings.Cut(rest, "_seat")
	if !ok {
		return SeatID{}, fmt.Errorf("%w: %q", ErrMalformedSeatKey, key)
	}

	bench, err := strconv.Atoi(benchPart)
	if err != nil {
		return SeatID{}, fmt.Errorf("%w: %q", ErrMalformedSeatKey, key)
	}
	seat, err := strconv.Atoi(seatPart)
	if err != nil {
		return SeatID{}, fmt.Errorf("%w: %q", ErrMalformedSeatKey, key)
	}

	id := SeatID{Bench: bench, Seat: seat}
	// rejects "+1", "01" and non-positive numbers
	if !id.Valid() || id.String() != key {
		return SeatID{}, fmt.Errorf("%w: %q", ErrMalformedSeatKey, key)
	}
	return id, nil
}

// SeatLayout is the pre-enumerated grid of benches x seats per bench.
type SeatLayout struct {
	Benches       int `json:"benches"`
	SeatsPerBench int `json:"seatsPerBench"`
}

func (l SeatLayout) Contains(id SeatID) bool {
	return id.Valid() && id.Bench <= l.Benches && id.Seat <= l.SeatsPerBench
}

// Seats lists every seat of the grid in bench-major order.
func (l SeatLayout) Seats() []SeatID {
	seats := make([]SeatID, 0, l.Benches*l.SeatsPerBench)
	for b := 1; b <= l.Benches; b++ {
		for s := 1; s <= l.SeatsPerBench; s++ {
			seats = append(seats, SeatID{Bench: b, Seat: s})
		}
	}
	return seats
}
