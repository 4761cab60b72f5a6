// Package retry re-runs operations that fail with transient errors, spacing
// attempts by exponential backoff with jitter.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"syscall"
	"time"
)

// Config controls the retry schedule.
type Config struct {
	// MaxAttempts is the total number of tries, the first included.
	MaxAttempts int

	// InitialDelay is the pause after the first failure.
	InitialDelay time.Duration

	// MaxDelay caps the pause between attempts.
	MaxDelay time.Duration

	// Multiplier grows the pause after each failed attempt.
	Multiplier float64

	// JitterFraction randomizes each pause by up to this fraction of it,
	// in [0, 1]. Zero disables jitter.
	JitterFraction float64
}

// DefaultConfig returns a schedule suitable for general operations.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// DBConfig returns a schedule tuned for database calls, where transient
// connection errors clear quickly and long pauses only hold up startup.
func DBConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   100 * time.Millisecond,
		MaxDelay:       time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// WithBackoff runs fn until it succeeds, fails with a non-retryable error, the
// schedule is exhausted, or ctx is canceled during a pause. The returned error
// always wraps the underlying failure.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	pause := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}

		if !IsRetryable(err) {
			slog.Warn("non-retryable error, aborting",
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			return err
		}

		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, err)
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", pause),
			slog.Any("error", err))

		select {
		case <-time.After(pause):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		pause = nextPause(pause, cfg)
	}
}

// nextPause grows the pause by the multiplier, caps it, and spreads it with
// jitter so that restarting replicas do not hammer a recovering dependency in
// lockstep.
func nextPause(current time.Duration, cfg Config) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxDelay {
		next = cfg.MaxDelay
	}

	frac := cfg.JitterFraction
	if frac <= 0 {
		return next
	}
	if frac > 1 {
		frac = 1
	}
	// #nosec G404 -- backoff jitter does not need cryptographic randomness.
	return next + time.Duration(rand.Float64()*frac*float64(next))
}

// IsRetryable reports whether err is worth another attempt. Network timeouts
// and connection-level failures are; context cancellation and everything the
// caller cannot outwait are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ETIMEDOUT,
		syscall.ENETUNREACH,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
