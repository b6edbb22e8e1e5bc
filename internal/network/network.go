// Package network provides the rate limiting and bounded retry machinery
// used by the Genesys Cloud API client.
package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// defNumAttempts is the default number of retry attempts.
const defNumAttempts = 3

var (
	// maxAllowedWaitTime is the maximum time to wait for a transient error.
	// The wait time for a transient error depends on the current retry
	// attempt number and is calculated as: (attempt+2)^3 seconds, capped at
	// maxAllowedWaitTime.
	maxAllowedWaitTime = 5 * time.Minute
	// waitFn returns the amount of time to wait before retrying depending on
	// the current attempt.  This variable exists to reduce the test time.
	waitFn    = cubicWait
	netWaitFn = expWait
)

// ErrRetryFailed is returned if the number of retry attempts exceeded the
// retry attempts limit and the function wasn't able to complete without
// errors.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// RetryAfterer is implemented by errors that carry a server-specified delay
// before the request may be repeated (HTTP 429 Retry-After).
type RetryAfterer interface {
	RetryAfter() time.Duration
}

// StatusCoder is implemented by errors that carry the HTTP status code of a
// failed request.
type StatusCoder interface {
	HTTPStatusCode() int
}

// WithRetry runs the callback function fn.  If fn returns an error that
// advertises a Retry-After delay, it waits that long and calls it again, up
// to maxAttempts times.  Server errors with a recoverable status code and
// transient network read/write errors are retried with a growing delay.  Any
// other error is returned to the caller immediately.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, fn func() error) error {
	var ok bool
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}

		slog.DebugContext(ctx, "WithRetry: callback error", "error", cbErr, "attempt", attempt+1)
		var (
			ra RetryAfterer
			sc StatusCoder
			ne *net.OpError
		)
		switch {
		case errors.As(cbErr, &ra):
			delay := ra.RetryAfter()
			slog.DebugContext(ctx, "got rate limited, sleeping", "delay", delay)
			time.Sleep(delay)
			continue
		case errors.As(cbErr, &sc):
			if isRecoverable(sc.HTTPStatusCode()) {
				// possibly transient error
				delay := waitFn(attempt)
				slog.DebugContext(ctx, "got server error, sleeping", "status", sc.HTTPStatusCode(), "delay", delay)
				time.Sleep(delay)
				continue
			}
		case errors.As(cbErr, &ne):
			if ne.Op == "read" || ne.Op == "write" {
				// possibly transient error
				delay := netWaitFn(attempt)
				slog.DebugContext(ctx, "got network error, sleeping", "op", ne.Op, "delay", delay)
				time.Sleep(delay)
				continue
			}
		}

		return fmt.Errorf("callback error: %w", cbErr)
	}
	if !ok {
		return ErrRetryFailed
	}
	return nil
}

// isRecoverable returns true if the status code is a recoverable error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != 501) || statusCode == http.StatusRequestTimeout
}

// cubicWait is the wait time function.  Time is calculated as (x+2)^3
// seconds, where x is the current attempt number.  The maximum wait time is
// capped at 5 minutes.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2 // this is to ensure that we sleep at least 8 seconds.
	delay := time.Duration(x*x*x) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

func expWait(attempt int) time.Duration {
	delay := time.Duration(2<<uint(attempt)) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

// SetMaxAllowedWaitTime sets the maximum time to wait for a transient error.
func SetMaxAllowedWaitTime(d time.Duration) {
	maxAllowedWaitTime = d
}
