package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenmart/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Run("SucceedsAfterRetries", func(t *testing.T) {
		attempts := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), cfg, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		boom := errors.New("boom")
		cfg := retry.RetryConfig{
			MaxAttempts: 2,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), cfg, func() error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("NonRetryableStopsImmediately", func(t *testing.T) {
		fatal := errors.New("fatal")
		attempts := 0
		cfg := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
		}
		err := retry.Do(t.Context(), cfg, func() error {
			attempts++
			return fatal
		})
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, attempts)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retry.Do(ctx, retry.RetryConfig{}, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
