// Package poll implements the fixed-interval polling loop used to
// wait on asynchronous workflow executions.
package poll

import (
	"context"
	"errors"
	"time"

	clog "github.com/pitchcraft/pitchsmoke/pkg/log"
)

// ErrExhausted is returned when the attempt budget runs out before a
// result appears.
var ErrExhausted = errors.New("poll: attempt budget exhausted")

// Config holds polling configuration
type Config struct {
	Interval    time.Duration // Delay before each attempt
	MaxAttempts int           // Attempt budget
}

// DefaultConfig matches the workflow API cadence: 30 attempts at 5
// second intervals, so at most 150 seconds of waiting.
func DefaultConfig() Config {
	return Config{
		Interval:    5 * time.Second,
		MaxAttempts: 30,
	}
}

// Do calls fn up to cfg.MaxAttempts times, sleeping cfg.Interval
// before each attempt. fn reports ready=true once a result is
// available. An attempt error is logged and consumes budget; the loop
// keeps going. Exactly one attempt is ever in flight.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, bool, error)) (T, error) {
	var zero T

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		// Sleep first: results are never ready immediately after
		// submission, and the cadence stays fixed across errors.
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.Interval):
		}

		result, ready, err := fn()
		if err != nil {
			clog.Warn("poll attempt failed",
				"attempt", attempt,
				"max_attempts", cfg.MaxAttempts,
				"error", err,
			)
			continue
		}
		if ready {
			return result, nil
		}

		clog.Debug("result not ready",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
		)
	}

	return zero, ErrExhausted
}
