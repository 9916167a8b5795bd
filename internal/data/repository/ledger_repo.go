package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"seat-booking/internal/data/entity"

	"go.uber.org/zap"
)

// LedgerRepository loads and saves the whole seat ledger.
type LedgerRepository interface {
	// Load returns an empty ledger if nothing was ever saved.
	Load(ctx context.Context) (entity.Ledger, error)
	Save(ctx context.Context, ledger entity.Ledger) error
}

type ledgerRepository struct {
	docs DocumentStore
	log  *zap.Logger
}

func NewLedgerRepository(docs DocumentStore, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		docs: docs,
		log:  log.With(zap.String("repository", "ledger")),
	}
}

func (r *ledgerRepository) Load(ctx context.Context) (entity.Ledger, error) {
	body, found, err := r.docs.Read(ctx, BookingsDocument)
	if err != nil {
		return nil, fmt.Errorf("%w: load ledger: %w", ErrStoreUnavailable, err)
	}
	if !found {
		return entity.NewLedger(), nil
	}

	var raw map[string]entity.Booking
	if err := json.Unmarshal(body, &raw); err != nil {
		r.log.Error("Failed to decode ledger", zap.Error(err))
		return nil, fmt.Errorf("%w: decode ledger: %w", ErrStoreUnavailable, err)
	}

	ledger := make(entity.Ledger, len(raw))
	for key, booking := range raw {
		seatID, err := entity.ParseSeatID(key)
		if err != nil {
			r.log.Error("Ledger contains malformed seat key", zap.String("seat", key))
			return nil, fmt.Errorf("%w: decode ledger: %w", ErrStoreUnavailable, err)
		}
		booking.SeatID = seatID
		ledger[key] = booking
	}

	return ledger, nil
}

func (r *ledgerRepository) Save(ctx context.Context, ledger entity.Ledger) error {
	if ledger == nil {
		ledger = entity.NewLedger()
	}

	body, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode ledger: %w", ErrStoreUnavailable, err)
	}

	if err := r.docs.Write(ctx, BookingsDocument, body); err != nil {
		return fmt.Errorf("%w: save ledger: %w", ErrStoreUnavailable, err)
	}

	r.log.Debug("Ledger saved", zap.Int("bookings", len(ledger)))
	return nil
}
