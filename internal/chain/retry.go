package chain

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const defaultRetryDelay = 100 * time.Millisecond

// WithRetry runs fn until it succeeds, doubling the delay after each failure.
// It gives up after maxRetries retries or when ctx is done. Every failed
// attempt that will be retried is logged at warn level under op.
func WithRetry(ctx context.Context, logger *zap.Logger, op string, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = defaultRetryDelay
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = baseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxInterval = baseDelay << 10

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		return struct{}{}, fn(ctx)
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(maxRetries)+1),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("retrying rpc call",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", next),
				zap.Error(err))
		}),
	)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
