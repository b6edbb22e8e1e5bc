package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope/callscope/internal/genesys"
)

// fakeJobAPI scripts the job lifecycle: submission returns jobID (or
// submitErr), successive polls return states in order (the last one repeats),
// and the fetch returns rows.
type fakeJobAPI struct {
	jobID     string
	submitErr error

	states  []string
	pollErr error
	polls   int

	rows     []genesys.Conversation
	fetchErr error
	fetches  int
}

func (f *fakeJobAPI) CreateDetailsJob(ctx context.Context, q *genesys.DetailsQuery) (*genesys.DetailsJob, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &genesys.DetailsJob{JobID: f.jobID}, nil
}

func (f *fakeJobAPI) GetDetailsJob(ctx context.Context, jobID string) (*genesys.DetailsJobStatus, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	i := f.polls
	if i >= len(f.states) {
		i = len(f.states) - 1
	}
	f.polls++
	return &genesys.DetailsJobStatus{State: f.states[i]}, nil
}

func (f *fakeJobAPI) GetDetailsJobResults(ctx context.Context, jobID string) (*genesys.DetailsJobResults, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &genesys.DetailsJobResults{Conversations: f.rows}, nil
}

func newTestPoller(api JobAPI, opt ...PollerOption) *Poller {
	opts := append([]PollerOption{
		WithDelay(0),
		withSleep(func(context.Context, time.Duration) error { return nil }),
	}, opt...)
	return NewPoller(api, opts...)
}

func TestPoller_Run(t *testing.T) {
	t.Parallel()
	query := &genesys.DetailsQuery{Interval: "2024-01-01T00:00:00Z/2024-01-02T00:00:00Z"}

	t.Run("fetch happens once, after the fulfilled poll", func(t *testing.T) {
		api := &fakeJobAPI{
			jobID:  "j1",
			states: []string{"QUEUED", "PENDING", "PENDING", "FULFILLED"},
			rows:   []genesys.Conversation{{ConversationID: "c1"}},
		}
		rows, err := newTestPoller(api).Run(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, 4, api.polls)
		assert.Equal(t, 1, api.fetches)
		require.Len(t, rows, 1)
		assert.Equal(t, "c1", rows[0].ConversationID)
	})
	t.Run("missing job id is a submission failure", func(t *testing.T) {
		api := &fakeJobAPI{jobID: "", states: []string{"FULFILLED"}}
		_, err := newTestPoller(api).Run(t.Context(), query)
		require.ErrorIs(t, err, ErrNoJobID)
		assert.Zero(t, api.polls)
	})
	t.Run("submission transport error is wrapped", func(t *testing.T) {
		boom := errors.New("connection refused")
		api := &fakeJobAPI{submitErr: boom}
		_, err := newTestPoller(api).Run(t.Context(), query)
		require.ErrorIs(t, err, boom)
	})
	t.Run("attempt budget exhaustion is a timeout", func(t *testing.T) {
		api := &fakeJobAPI{jobID: "j1", states: []string{"PENDING"}}
		_, err := newTestPoller(api, WithMaxAttempts(5)).Run(t.Context(), query)
		require.ErrorIs(t, err, ErrPollTimeout)
		assert.Equal(t, 5, api.polls)
		assert.Zero(t, api.fetches, "fetch must not be called without a FULFILLED poll")
	})
	t.Run("fetch transport error is wrapped", func(t *testing.T) {
		boom := errors.New("bad gateway")
		api := &fakeJobAPI{jobID: "j1", states: []string{"FULFILLED"}, fetchErr: boom}
		_, err := newTestPoller(api).Run(t.Context(), query)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, api.fetches)
	})

	terminal := []struct {
		reported string
		want     string
		text     string
	}{
		{"FAILED", StateFailed, "failed"},
		{"CANCELLED", StateCancelled, "cancelled"},
		{"EXPIRED", StateExpired, "expired"},
		{"UNKNOWN", StateUnknown, "unknown"},
		{"SOMETHING_NEW", StateUnknown, "unknown"},
		{"", StateUnknown, "unknown"},
	}
	for _, tt := range terminal {
		t.Run("terminal state "+tt.reported+" fails fast", func(t *testing.T) {
			api := &fakeJobAPI{jobID: "j1", states: []string{"PENDING", tt.reported}}
			_, err := newTestPoller(api).Run(t.Context(), query)
			var te *TerminalError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.want, te.State)
			assert.Contains(t, te.Error(), tt.text)
			// the remaining attempt budget must not be consumed.
			assert.Equal(t, 2, api.polls)
			assert.Zero(t, api.fetches)
		})
	}
}

func TestPoller_sleepIsCancellable(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := sleepContext(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}
