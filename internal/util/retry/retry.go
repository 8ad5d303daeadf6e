// Package retry provides bounded fixed-interval polling for remote resources.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned by Poll when the attempt budget runs out before
// the probe succeeds. Callers can detect it with errors.Is.
var ErrExhausted = errors.New("retry budget exhausted")

// Config holds polling configuration.
type Config struct {
	MaxAttempts int
	Interval    time.Duration
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// Poll executes probe until it succeeds, up to MaxAttempts times with a fixed
// Interval between attempts. Context cancellation is respected throughout.
//
// Errors wrapped with Fatal() abort polling immediately; any other error is
// treated as "not ready yet" and retried. When the budget is exhausted the
// returned error wraps ErrExhausted together with the last probe error.
func Poll(ctx context.Context, probe func() error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts: 20,
		Interval:    5 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := probe()
		if err == nil {
			return nil
		}

		lastErr = err

		if IsFatal(err) {
			return fmt.Errorf("fatal error (not retrying): %w", err)
		}

		if attempt < cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(cfg.Interval):
			}
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, cfg.MaxAttempts, lastErr)
}

// WithMaxAttempts sets the maximum number of probe attempts.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithInterval sets the delay between attempts.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable). Polls that encounter fatal
// errors stop immediately instead of waiting out the budget.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
