package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recordingSleeper(delays *[]time.Duration) Sleeper {
	return func(ctx context.Context, d time.Duration) {
		*delays = append(*delays, d)
	}
}

func TestPolicy_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt succeeds without sleeping", func(t *testing.T) {
		var delays []time.Duration
		p := Policy{MaxRetries: 3, BaseDelay: 500 * time.Millisecond, Sleep: recordingSleeper(&delays)}

		calls := 0
		done, err := p.Do(ctx, func(ctx context.Context) (bool, error) {
			calls++
			return true, nil
		})

		assert.True(t, done)
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Empty(t, delays)
	})

	t.Run("exhaustion uses full non-decreasing schedule", func(t *testing.T) {
		var delays []time.Duration
		p := Policy{MaxRetries: 3, BaseDelay: 500 * time.Millisecond, Sleep: recordingSleeper(&delays)}

		calls := 0
		done, err := p.Do(ctx, func(ctx context.Context) (bool, error) {
			calls++
			return false, nil
		})

		assert.False(t, done)
		assert.NoError(t, err)
		assert.Equal(t, 4, calls) // initial attempt + 3 retries
		assert.Equal(t, []time.Duration{
			500 * time.Millisecond,
			1000 * time.Millisecond,
			1500 * time.Millisecond,
		}, delays)
		for i := 1; i < len(delays); i++ {
			assert.GreaterOrEqual(t, delays[i], delays[i-1])
		}
	})

	t.Run("succeeds mid-schedule", func(t *testing.T) {
		var delays []time.Duration
		p := Policy{MaxRetries: 3, BaseDelay: 500 * time.Millisecond, Sleep: recordingSleeper(&delays)}

		calls := 0
		done, _ := p.Do(ctx, func(ctx context.Context) (bool, error) {
			calls++
			return calls == 3, nil
		})

		assert.True(t, done)
		assert.Equal(t, 3, calls)
		assert.Len(t, delays, 2)
	})

	t.Run("returns last error on exhaustion", func(t *testing.T) {
		var delays []time.Duration
		p := Policy{MaxRetries: 2, BaseDelay: time.Millisecond, Sleep: recordingSleeper(&delays)}

		wantErr := errors.New("still stale")
		done, err := p.Do(ctx, func(ctx context.Context) (bool, error) {
			return false, wantErr
		})

		assert.False(t, done)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var delays []time.Duration
		p := Policy{MaxRetries: 5, BaseDelay: time.Millisecond, Sleep: recordingSleeper(&delays)}

		calls := 0
		done, _ := p.Do(cancelled, func(ctx context.Context) (bool, error) {
			calls++
			return false, nil
		})

		assert.False(t, done)
		assert.Equal(t, 1, calls)
		assert.Empty(t, delays)
	})
}
