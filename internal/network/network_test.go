package network

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	// do not wait for real backoff delays in tests.
	waitFn = func(int) time.Duration { return 0 }
	netWaitFn = func(int) time.Duration { return 0 }
}

// testRateLimitErr advertises a Retry-After delay.
type testRateLimitErr struct{ after time.Duration }

func (e *testRateLimitErr) Error() string             { return "too many requests" }
func (e *testRateLimitErr) RetryAfter() time.Duration { return e.after }

// testStatusErr carries an HTTP status code.
type testStatusErr struct{ code int }

func (e *testStatusErr) Error() string       { return "server error" }
func (e *testStatusErr) HTTPStatusCode() int { return e.code }

func TestWithRetry(t *testing.T) {
	t.Parallel()
	lim := rate.NewLimiter(rate.Inf, 1)

	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 3, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
	t.Run("rate limited error is retried", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 3, func() error {
			calls++
			if calls < 3 {
				return &testRateLimitErr{after: time.Millisecond}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})
	t.Run("recoverable status code is retried", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 3, func() error {
			calls++
			if calls == 1 {
				return &testStatusErr{code: 503}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
	t.Run("unrecoverable status code fails immediately", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 3, func() error {
			calls++
			return &testStatusErr{code: 404}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
	t.Run("network read error is retried", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 3, func() error {
			calls++
			if calls == 1 {
				return &net.OpError{Op: "read"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
	t.Run("attempts exhausted", func(t *testing.T) {
		calls := 0
		err := WithRetry(t.Context(), lim, 2, func() error {
			calls++
			return &testStatusErr{code: 500}
		})
		require.ErrorIs(t, err, ErrRetryFailed)
		assert.Equal(t, 2, calls)
	})
	t.Run("generic error is not retried", func(t *testing.T) {
		boom := errors.New("boom")
		err := WithRetry(t.Context(), lim, 3, func() error {
			return boom
		})
		require.ErrorIs(t, err, boom)
	})
	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		err := WithRetry(ctx, rate.NewLimiter(rate.Every(time.Hour), 1), 3, func() error {
			return nil
		})
		require.Error(t, err)
	})
}

func Test_isRecoverable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code int
		want bool
	}{
		{500, true},
		{502, true},
		{599, true},
		{501, false},
		{408, true},
		{429, false}, // rate limit is handled via Retry-After, not backoff
		{403, false},
		{200, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, isRecoverable(tt.code), "code %d", tt.code)
	}
}

func Test_cubicWait(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 8*time.Second, cubicWait(0))
	assert.Equal(t, 27*time.Second, cubicWait(1))
	assert.Equal(t, maxAllowedWaitTime, cubicWait(100))
}

func TestLimits_Validate(t *testing.T) {
	t.Parallel()
	l := DefLimits
	require.NoError(t, l.Validate())

	l.PerMinute = 0
	require.Error(t, l.Validate())
}
