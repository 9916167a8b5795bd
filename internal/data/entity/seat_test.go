package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatIDString(t *testing.T) {
	assert.Equal(t, "bench1_seat1", NewSeatID(1, 1).String())
	assert.Equal(t, "bench12_seat3", NewSeatID(12, 3).String())
}

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		key     string
		want    SeatID
		wantErr bool
	}{
		{key: "bench1_seat1", want: SeatID{Bench: 1, Seat: 1}},
		{key: "bench10_seat42", want: SeatID{Bench: 10, Seat: 42}},
		{key: "bench0_seat1", wantErr: true},
		{key: "bench1_seat-1", wantErr: true},
		{key: "bench01_seat1", wantErr: true},
		{key: "bench1_seat1x", wantErr: true},
		{key: "seat1_bench1", wantErr: true},
		{key: "bench1", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseSeatID(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedSeatKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeatLayout(t *testing.T) {
	layout := SeatLayout{Benches: 2, SeatsPerBench: 3}

	assert.True(t, layout.Contains(NewSeatID(1, 1)))
	assert.True(t, layout.Contains(NewSeatID(2, 3)))
	assert.False(t, layout.Contains(NewSeatID(3, 1)))
	assert.False(t, layout.Contains(NewSeatID(1, 4)))
	assert.False(t, layout.Contains(NewSeatID(0, 1)))

	seats := layout.Seats()
	require.Len(t, seats, 6)
	assert.Equal(t, NewSeatID(1, 1), seats[0])
	assert.Equal(t, NewSeatID(2, 3), seats[5])
}

func TestLedgerOwnedByAndClone(t *testing.T) {
	ledger := NewLedger()
	ledger.Put(Booking{SeatID: NewSeatID(2, 1), Username: "admin"})
	ledger.Put(Booking{SeatID: NewSeatID(1, 1), Username: "admin"})
	ledger.Put(Booking{SeatID: NewSeatID(1, 2), Username: "student1"})

	owned := ledger.OwnedBy("admin")
	require.Len(t, owned, 2)
	assert.Equal(t, NewSeatID(1, 1), owned[0].SeatID)
	assert.Empty(t, ledger.OwnedBy("student2"))

	clone := ledger.Clone()
	clone.Remove(NewSeatID(1, 2))
	_, stillThere := ledger.Get(NewSeatID(1, 2))
	assert.True(t, stillThere, "clone must not share storage with the original")
}
