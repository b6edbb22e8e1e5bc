// Copyright (c) 2025-2026 Callscope Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package analytics drives asynchronous conversation details queries: the
// submit/poll/fetch job lifecycle, and the aggregation of fetched detail
// records into per-tool summaries.
package analytics

// In this file: the deferred job poller state machine.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/metrics"
)

// Job states reported by the platform.  Only StateFulfilled is a success;
// the failed states are authoritative terminal signals and are never
// retried.  Anything else that is not on the pending allow-list is
// classified as StateUnknown.
const (
	StateFulfilled = "FULFILLED"
	StateFailed    = "FAILED"
	StateCancelled = "CANCELLED"
	StateExpired   = "EXPIRED"
	StateUnknown   = "UNKNOWN"

	statePending = "PENDING"
	stateQueued  = "QUEUED"
)

// Poll loop defaults.  The fixed delay bounds the worst case latency of a
// tool call to MaxAttempts * Delay; heavier analyses get a larger attempt
// budget at their call site.
const (
	DefMaxAttempts   = 10
	HeavyMaxAttempts = 20
	DefDelay         = 3000 * time.Millisecond
)

var (
	// ErrNoJobID is returned when the job submission response carries no
	// job identifier.  Submission failures are terminal, never retried.
	ErrNoJobID = errors.New("job ID not returned from the platform")
	// ErrPollTimeout is returned when the attempt budget is exhausted
	// before the job reaches a terminal state.  It is distinct from
	// TerminalError so that callers can tell "gave up" from "the service
	// said no".
	ErrPollTimeout = errors.New("timed out waiting for analytics job to complete")
)

// TerminalError is returned when the platform reports a terminal failure
// state for a job.
type TerminalError struct {
	// State is one of StateFailed, StateCancelled, StateExpired or
	// StateUnknown.
	State string
}

func (e *TerminalError) Error() string {
	switch e.State {
	case StateFailed:
		return "analytics job failed"
	case StateCancelled:
		return "analytics job was cancelled"
	case StateExpired:
		return "analytics job results have expired"
	default:
		return "analytics job returned an unknown or undefined state"
	}
}

// JobAPI is the subset of the analytics API that the poller drives.
type JobAPI interface {
	CreateDetailsJob(ctx context.Context, q *genesys.DetailsQuery) (*genesys.DetailsJob, error)
	GetDetailsJob(ctx context.Context, jobID string) (*genesys.DetailsJobStatus, error)
	GetDetailsJobResults(ctx context.Context, jobID string) (*genesys.DetailsJobResults, error)
}

// Poller runs the submit -> poll -> fetch lifecycle of one details job.
// Each Run call owns its job exclusively; the job handle is discarded after
// the results are fetched or a terminal failure is observed.
type Poller struct {
	api         JobAPI
	maxAttempts int
	delay       time.Duration
	logger      *slog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// PollerOption is the signature of the Poller option-setting function.
type PollerOption func(*Poller)

// WithMaxAttempts sets the poll attempt budget.
func WithMaxAttempts(n int) PollerOption {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithDelay sets the fixed delay between poll attempts.
func WithDelay(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// WithLogger sets the poller logger.
func WithLogger(lg *slog.Logger) PollerOption {
	return func(p *Poller) {
		if lg != nil {
			p.logger = lg
		}
	}
}

// withSleep replaces the inter-poll wait.  Test hook.
func withSleep(fn func(ctx context.Context, d time.Duration) error) PollerOption {
	return func(p *Poller) {
		p.sleep = fn
	}
}

// NewPoller creates a poller over the given job API with the default
// attempt budget and delay.
func NewPoller(api JobAPI, opt ...PollerOption) *Poller {
	p := &Poller{
		api:         api,
		maxAttempts: DefMaxAttempts,
		delay:       DefDelay,
		logger:      slog.Default(),
		sleep:       sleepContext,
	}
	for _, fn := range opt {
		fn(p)
	}
	return p
}

// Run submits the query and drives the job to completion, returning the
// fetched conversation detail records.  Failure modes:
//
//   - submission did not return a job ID: ErrNoJobID;
//   - the platform reported FAILED, CANCELLED, EXPIRED or an unrecognised
//     state: *TerminalError, returned immediately without consuming the
//     remaining attempts;
//   - the attempt budget ran out while the job was still pending:
//     ErrPollTimeout;
//   - a transport failure on submit, poll or fetch: the wrapped error.
//
// Results are fetched exactly once, and only after a FULFILLED poll.
func (p *Poller) Run(ctx context.Context, q *genesys.DetailsQuery) ([]genesys.Conversation, error) {
	job, err := p.api.CreateDetailsJob(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("submit analytics job: %w", err)
	}
	if job.JobID == "" {
		return nil, ErrNoJobID
	}

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		st, err := p.api.GetDetailsJob(ctx, job.JobID)
		if err != nil {
			return nil, fmt.Errorf("poll analytics job %s: %w", job.JobID, err)
		}
		metrics.JobPolls.Inc()

		state := classifyState(st.State)
		p.logger.DebugContext(ctx, "analytics job poll", "job", job.JobID, "state", st.State, "attempt", attempt+1)

		switch state {
		case StateFulfilled:
			metrics.JobOutcomes.WithLabelValues("fulfilled").Inc()
			res, err := p.api.GetDetailsJobResults(ctx, job.JobID)
			if err != nil {
				return nil, fmt.Errorf("fetch analytics job results %s: %w", job.JobID, err)
			}
			return res.Conversations, nil
		case statePending:
			if err := p.sleep(ctx, p.delay); err != nil {
				return nil, err
			}
		default:
			metrics.JobOutcomes.WithLabelValues(strings.ToLower(state)).Inc()
			return nil, &TerminalError{State: state}
		}
	}

	metrics.JobOutcomes.WithLabelValues("timeout").Inc()
	return nil, ErrPollTimeout
}

// classifyState maps a reported job state onto the poller's state machine:
// pending-equivalent states are allow-listed, terminal failures keep their
// identity, and everything unrecognised collapses to StateUnknown so that a
// permanent service-side failure is never masked as a timeout.
func classifyState(state string) string {
	switch state {
	case StateFulfilled, StateFailed, StateCancelled, StateExpired:
		return state
	case statePending, stateQueued:
		return statePending
	default:
		return StateUnknown
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
