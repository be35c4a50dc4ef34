package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/storage"
)

type Store interface {
	DeletePastryReservationsBefore(ctx context.Context, date string) (int64, error)
	DeleteTableReservationsBefore(ctx context.Context, date string) (int64, error)
}

// Sweeper deletes reservations dated before the current day.
type Sweeper struct {
	log   *slog.Logger
	store Store
	loc   *time.Location
	now   func() time.Time
}

func New(log *slog.Logger, store Store, loc *time.Location) *Sweeper {
	if loc == nil {
		loc = time.Local
	}

	return &Sweeper{
		log:   log,
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// Today is the current date at local midnight in storage.DateLayout.
func (s *Sweeper) Today() string {
	y, m, d := s.now().In(s.loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, s.loc).Format(storage.DateLayout)
}

// Sweep removes past pastry and table reservations. A failure on one kind does
// not stop the other from being swept.
func (s *Sweeper) Sweep(ctx context.Context) error {
	const op = "cleanup.Sweep"

	today := s.Today()
	log := s.log.With(slog.String("op", op), slog.String("before", today))

	var errs []error

	pastry, err := s.store.DeletePastryReservationsBefore(ctx, today)
	if err != nil {
		errs = append(errs, err)
	}

	tables, err := s.store.DeleteTableReservationsBefore(ctx, today)
	if err != nil {
		errs = append(errs, err)
	}

	if err = errors.Join(errs...); err != nil {
		log.Error("failed to delete old reservations", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("old reservations deleted",
		slog.Int64("pastry", pastry),
		slog.Int64("tables", tables),
	)

	return nil
}

// Run sweeps every interval until ctx is done. It does not sweep on entry.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = s.Sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}
