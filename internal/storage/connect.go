package storage

import (
	"context"
	"log/slog"
	"time"

	"bakeryBooker/internal/lib/logger/sl"

	"github.com/cenkalti/backoff/v5"
)

type Opener[T any] func(ctx context.Context) (T, error)

// Connect calls open until it succeeds or attempts run out, backing off
// exponentially between tries.
func Connect[T any](ctx context.Context, log *slog.Logger, attempts int, open Opener[T]) (T, error) {
	return connect(ctx, log, attempts, open, backoff.NewExponentialBackOff())
}

func connect[T any](ctx context.Context, log *slog.Logger, attempts int, open Opener[T], b backoff.BackOff) (T, error) {
	const op = "storage.Connect"

	log = log.With(slog.String("op", op))

	try := 0
	return backoff.Retry(ctx, func() (T, error) {
		try++
		return open(ctx)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("storage connection failed, retrying",
				slog.Int("attempt", try),
				slog.String("retry_in", next.String()),
				sl.Err(err),
			)
		}),
	)
}
