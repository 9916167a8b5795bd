package entity

import (
	"sort"
	"time"
)

// Booking is one occupied seat. It is never edited in place; cancel and
// rebook replaces it.
type Booking struct {
	SeatID   SeatID    `json:"-"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	BookedAt time.Time `json:"bookedAt"`
}

// Ledger maps seat keys to bookings. A missing key means the seat is free.
type Ledger map[string]Booking

func NewLedger() Ledger {
	return make(Ledger)
}

func (l Ledger) Get(id SeatID) (Booking, bool) {
	b, ok := l[id.String()]
	return b, ok
}

func (l Ledger) Put(b Booking) {
	l[b.SeatID.String()] = b
}

func (l Ledger) Remove(id SeatID) {
	delete(l, id.String())
}

// OwnedBy returns the bookings held by username, sorted by seat key.
func (l Ledger) OwnedBy(username string) []Booking {
	var owned []Booking
	for _, key := range l.Keys() {
		if l[key].Username == username {
			owned = append(owned, l[key])
		}
	}
	return owned
}

// Keys returns the ledger keys in sorted order.
func (l Ledger) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy. Booking values hold no references, so a
// shallow map copy is enough.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
