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

package transcript

// In this file: the transcript fetcher.  It discovers the communication IDs
// of a conversation through the recordings listing, resolves a pre-signed
// payload URL per communication, and fetches the payloads concurrently.
// Reconstruction is all or nothing: any failure discards the whole result.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/metrics"
)

const (
	// DefNotReadyRetries is how many times the recordings listing is retried
	// while the platform restores archived recordings.
	DefNotReadyRetries = 5
	// DefNotReadyWait is the fixed delay between those retries.
	DefNotReadyWait = 10 * time.Second
)

var (
	// ErrRecordingsUnavailable is returned when the recordings listing was
	// still restoring after all retries.
	ErrRecordingsUnavailable = errors.New("conversation recordings were not available after retries")
	// ErrNoTranscriptURL is returned when a communication has no transcript
	// URL, which means no transcript exists for it.
	ErrNoTranscriptURL = errors.New("no transcript URL for communication")
	// ErrNoSessions is returned when the recordings listing contains no
	// sessions to fetch transcripts for.
	ErrNoSessions = errors.New("conversation has no recorded sessions")
)

// Fetcher retrieves the transcript bundles of a conversation.
type Fetcher struct {
	rec genesys.RecordingAPI
	stt genesys.SpeechTextAPI
	uf  genesys.URLFetcher

	notReadyRetries int
	notReadyWait    time.Duration
	logger          *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// FetcherOption is a functional option for the Fetcher.
type FetcherOption func(*Fetcher)

// WithNotReadyRetries overrides the recordings retry budget.
func WithNotReadyRetries(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.notReadyRetries = n
		}
	}
}

// WithNotReadyWait overrides the delay between recordings retries.
func WithNotReadyWait(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d >= 0 {
			f.notReadyWait = d
		}
	}
}

// WithLogger sets the fetcher logger.
func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a Fetcher over the given API surfaces.
func NewFetcher(rec genesys.RecordingAPI, stt genesys.SpeechTextAPI, uf genesys.URLFetcher, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		rec:             rec,
		stt:             stt,
		uf:              uf,
		notReadyRetries: DefNotReadyRetries,
		notReadyWait:    DefNotReadyWait,
		logger:          slog.Default(),
		sleep:           sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Conversation fetches all transcript bundles of a conversation, one per
// recorded communication, in the order the recordings listing reports them.
func (f *Fetcher) Conversation(ctx context.Context, conversationID string) ([]Bundle, error) {
	sessionIDs, err := f.sessionIDs(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if len(sessionIDs) == 0 {
		return nil, ErrNoSessions
	}

	urls := make([]string, len(sessionIDs))
	for i, sessID := range sessionIDs {
		tu, err := f.stt.GetTranscriptURL(ctx, conversationID, sessID)
		if err != nil {
			return nil, fmt.Errorf("resolving transcript URL for communication %s: %w", sessID, err)
		}
		if tu == nil || tu.URL == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoTranscriptURL, sessID)
		}
		urls[i] = tu.URL
	}

	bundles := make([]Bundle, len(urls))
	eg, ctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		eg.Go(func() error {
			if err := f.uf.FetchURL(ctx, u, &bundles[i]); err != nil {
				return fmt.Errorf("fetching transcript for communication %s: %w", sessionIDs[i], err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// sessionIDs lists the recorded session IDs of a conversation, retrying
// while the recordings are being restored from the archive.  The retry
// budget is on top of the initial attempt, so the default performs up to
// six listing calls.
func (f *Fetcher) sessionIDs(ctx context.Context, conversationID string) ([]string, error) {
	for attempt := 1; ; attempt++ {
		recs, ready, err := f.rec.GetConversationRecordings(ctx, conversationID)
		if err != nil {
			return nil, fmt.Errorf("listing recordings: %w", err)
		}
		if ready {
			var ids []string
			seen := make(map[string]bool)
			for _, r := range recs {
				if r.SessionID == "" || seen[r.SessionID] {
					continue
				}
				seen[r.SessionID] = true
				ids = append(ids, r.SessionID)
			}
			return ids, nil
		}
		if attempt > f.notReadyRetries {
			return nil, ErrRecordingsUnavailable
		}
		metrics.TranscriptNotReadyRetries.Inc()
		f.logger.InfoContext(ctx, "recordings not ready, waiting",
			"conversation_id", conversationID, "attempt", attempt, "wait", f.notReadyWait)
		if err := f.sleep(ctx, f.notReadyWait); err != nil {
			return nil, err
		}
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
