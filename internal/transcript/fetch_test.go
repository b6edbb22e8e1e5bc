package transcript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/genesys/mock_genesys"
)

type fetcherMocks struct {
	rec *mock_genesys.MockRecordingAPI
	stt *mock_genesys.MockSpeechTextAPI
	uf  *mock_genesys.MockURLFetcher
}

func newTestFetcher(t *testing.T, opts ...FetcherOption) (*Fetcher, fetcherMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := fetcherMocks{
		rec: mock_genesys.NewMockRecordingAPI(ctrl),
		stt: mock_genesys.NewMockSpeechTextAPI(ctrl),
		uf:  mock_genesys.NewMockURLFetcher(ctrl),
	}
	f := NewFetcher(m.rec, m.stt, m.uf, opts...)
	f.sleep = func(context.Context, time.Duration) error { return nil }
	return f, m
}

func TestFetcher_Conversation(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches one bundle per session in listing order", func(t *testing.T) {
		f, m := newTestFetcher(t)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: "s1"}, {SessionID: "s2"}}, true, nil)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s1").
			Return(&genesys.TranscriptURL{URL: "https://dl/s1"}, nil)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s2").
			Return(&genesys.TranscriptURL{URL: "https://dl/s2"}, nil)
		m.uf.EXPECT().FetchURL(gomock.Any(), "https://dl/s1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				out.(*Bundle).CommunicationID = "s1"
				return nil
			})
		m.uf.EXPECT().FetchURL(gomock.Any(), "https://dl/s2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				out.(*Bundle).CommunicationID = "s2"
				return nil
			})

		got, err := f.Conversation(ctx, "c1")
		assert.NoError(t, err)
		if assert.Len(t, got, 2) {
			assert.Equal(t, "s1", got[0].CommunicationID)
			assert.Equal(t, "s2", got[1].CommunicationID)
		}
	})

	t.Run("duplicate session IDs are fetched once", func(t *testing.T) {
		f, m := newTestFetcher(t)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: "s1"}, {SessionID: "s1"}}, true, nil)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s1").
			Return(&genesys.TranscriptURL{URL: "https://dl/s1"}, nil)
		m.uf.EXPECT().FetchURL(gomock.Any(), "https://dl/s1", gomock.Any()).Return(nil)

		got, err := f.Conversation(ctx, "c1")
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("retries while recordings are restoring", func(t *testing.T) {
		f, m := newTestFetcher(t)
		notReady := m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return(nil, false, nil).Times(2)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: "s1"}}, true, nil).After(notReady)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s1").
			Return(&genesys.TranscriptURL{URL: "https://dl/s1"}, nil)
		m.uf.EXPECT().FetchURL(gomock.Any(), "https://dl/s1", gomock.Any()).Return(nil)

		got, err := f.Conversation(ctx, "c1")
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		// The budget counts retries on top of the initial attempt, so
		// three retries means four listing calls.
		f, m := newTestFetcher(t, WithNotReadyRetries(3))
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return(nil, false, nil).Times(4)

		_, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, ErrRecordingsUnavailable)
	})

	t.Run("default budget makes six listing attempts", func(t *testing.T) {
		f, m := newTestFetcher(t)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return(nil, false, nil).Times(DefNotReadyRetries + 1)

		_, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, ErrRecordingsUnavailable)
	})

	t.Run("no recorded sessions", func(t *testing.T) {
		f, m := newTestFetcher(t)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: ""}}, true, nil)

		_, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, ErrNoSessions)
	})

	t.Run("missing transcript URL aborts the reconstruction", func(t *testing.T) {
		f, m := newTestFetcher(t)
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: "s1"}, {SessionID: "s2"}}, true, nil)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s1").
			Return(&genesys.TranscriptURL{}, nil)

		_, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, ErrNoTranscriptURL)
	})

	t.Run("payload fetch error discards everything", func(t *testing.T) {
		f, m := newTestFetcher(t)
		boom := errors.New("download failed")
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return([]genesys.Recording{{SessionID: "s1"}}, true, nil)
		m.stt.EXPECT().GetTranscriptURL(gomock.Any(), "c1", "s1").
			Return(&genesys.TranscriptURL{URL: "https://dl/s1"}, nil)
		m.uf.EXPECT().FetchURL(gomock.Any(), "https://dl/s1", gomock.Any()).Return(boom)

		got, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("recordings listing error", func(t *testing.T) {
		f, m := newTestFetcher(t)
		boom := errors.New("api down")
		m.rec.EXPECT().GetConversationRecordings(gomock.Any(), "c1").
			Return(nil, false, boom)

		_, err := f.Conversation(ctx, "c1")
		assert.ErrorIs(t, err, boom)
	})
}
