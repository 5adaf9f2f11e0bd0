package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRetryEventuallySucceeds(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), nil, "eth_call", 3, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryGivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := WithRetry(context.Background(), nil, "eth_call", 2, time.Millisecond, func(context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := WithRetry(ctx, nil, "eth_call", 10, time.Hour, func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithRetryLogsEachRetry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calls := 0
	err := WithRetry(context.Background(), zap.New(core), "eth_chainId", 5, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("retrying rpc call").All()
	require.Len(t, entries, 2)
	for i, entry := range entries {
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "eth_chainId", fields["op"])
		assert.Equal(t, int64(i+1), fields["attempt"])
		assert.Equal(t, "connection reset", fields["error"])
	}
	assert.Equal(t, time.Millisecond, entries[0].ContextMap()["backoff"])
	assert.Equal(t, 2*time.Millisecond, entries[1].ContextMap()["backoff"])
}
