package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"

	"go.uber.org/zap"
)

// BookingService is the reservation engine. Book, Cancel and ResetAll run
// their load-check-save cycle one at a time; ListBookings may run alongside
// other reads.
type BookingService interface {
	ListBookings(ctx context.Context) (entity.Ledger, error)
	Book(ctx context.Context, caller entity.Identity, seat entity.SeatID) (*entity.Booking, error)
	Cancel(ctx context.Context, caller entity.Identity, seat entity.SeatID) error
	ResetAll(ctx context.Context, caller entity.Identity) error
	Layout() entity.SeatLayout
}

type bookingService struct {
	// mu guards every access to the ledger store. Writers hold it for the
	// whole load-check-save cycle.
	mu     sync.RWMutex
	ledger repository.LedgerRepository
	layout entity.SeatLayout
	now    func() time.Time
	log    *zap.Logger
}

func NewBookingService(ledger repository.LedgerRepository, layout entity.SeatLayout, log *zap.Logger) BookingService {
	return newBookingService(ledger, layout, time.Now, log)
}

func newBookingService(ledger repository.LedgerRepository, layout entity.SeatLayout, now func() time.Time, log *zap.Logger) *bookingService {
	return &bookingService{
		ledger: ledger,
		layout: layout,
		now:    now,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Layout() entity.SeatLayout {
	return s.layout
}

func (s *bookingService) ListBookings(ctx context.Context) (entity.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return ledger.Clone(), nil
}

func (s *bookingService) Book(ctx context.Context, caller entity.Identity, seat entity.SeatID) (*entity.Booking, error) {
	if err := Authorize(AuthenticatedOnly, &caller); err != nil {
		return nil, err
	}
	if !s.layout.Contains(seat) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeat, seat)
	}

	var booking entity.Booking
	err := s.mutate(ctx, func(ledger entity.Ledger) error {
		if _, taken := ledger.Get(seat); taken {
			return ErrSeatAlreadyBooked
		}

		if !caller.IsAdmin && len(ledger.OwnedBy(caller.Username)) > 0 {
			return ErrUserAlreadyHasBooking
		}

		booking = entity.Booking{
			SeatID:   seat,
			Username: caller.Username,
			Name:     caller.Name,
			BookedAt: s.now().UTC(),
		}
		ledger.Put(booking)
		return nil
	})
	if err != nil {
		s.logRejection("Book", caller, seat, err)
		return nil, err
	}

	s.log.Info("Seat booked",
		zap.String("seat", seat.String()),
		zap.String("username", caller.Username),
		zap.Bool("admin", caller.IsAdmin))

	return &booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, caller entity.Identity, seat entity.SeatID) error {
	if err := Authorize(AuthenticatedOnly, &caller); err != nil {
		return err
	}
	// Seats dropped from a shrunk layout can still be released.
	if !seat.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSeat, seat)
	}

	var owner string
	err := s.mutate(ctx, func(ledger entity.Ledger) error {
		booking, ok := ledger.Get(seat)
		if !ok {
			return ErrSeatNotBooked
		}

		if booking.Username != caller.Username && !caller.IsAdmin {
			return ErrNotOwner
		}

		owner = booking.Username
		ledger.Remove(seat)
		return nil
	})
	if err != nil {
		s.logRejection("Cancel", caller, seat, err)
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("seat", seat.String()),
		zap.String("owner", owner),
		zap.String("cancelled_by", caller.Username))

	return nil
}

func (s *bookingService) ResetAll(ctx context.Context, caller entity.Identity) error {
	if err := Authorize(AdminOnly, &caller); err != nil {
		s.log.Warn("Reset rejected", zap.String("username", caller.Username), zap.Error(err))
		return err
	}

	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The previous ledger is read only for logging; an unreadable one is
	// still replaced.
	cleared := -1
	if previous, err := s.ledger.Load(ctx); err == nil {
		cleared = len(previous)
	} else {
		s.log.Warn("Resetting unreadable ledger", zap.Error(err))
	}

	if err := s.ledger.Save(ctx, entity.NewLedger()); err != nil {
		s.log.Error("Failed to reset bookings", zap.Error(err))
		return fmt.Errorf("save bookings: %w", err)
	}

	s.log.Info("All bookings reset",
		zap.String("username", caller.Username),
		zap.Int("cleared", cleared))

	return nil
}

// mutate runs fn against a freshly loaded ledger inside the exclusive
// section and saves the result. If fn fails nothing is saved. The caller's
// cancellation is detached so an entered section always finishes.
func (s *bookingService) mutate(ctx context.Context, fn func(entity.Ledger) error) error {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.ledger.Load(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	if err := fn(ledger); err != nil {
		return err
	}

	if err := s.ledger.Save(ctx, ledger); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}

	return nil
}

func (s *bookingService) logRejection(op string, caller entity.Identity, seat entity.SeatID, err error) {
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("seat", seat.String()),
		zap.String("username", caller.Username),
		zap.Error(err),
	}

	if isStoreFault(err) {
		s.log.Error(op+" failed", fields...)
		return
	}
	s.log.Warn(op+" rejected", fields...)
}
