package timewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		start   string
		end     string
		want    Window
		wantErr error
	}{
		{
			name:  "valid window in the past",
			start: "2024-01-01T00:00:00Z",
			end:   "2024-01-07T23:59:59Z",
			want: Window{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			name:  "future end is clamped to now",
			start: "2024-06-01T00:00:00Z",
			end:   "2030-01-01T00:00:00Z",
			want: Window{
				Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				End:   testNow,
			},
		},
		{
			name:  "offset timestamps are normalised to UTC",
			start: "2024-01-01T02:00:00+02:00",
			end:   "2024-01-02T00:00:00Z",
			want: Window{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "garbage start",
			start:   "yesterday",
			end:     "2024-01-07T23:59:59Z",
			wantErr: ErrInvalidStart,
		},
		{
			name:    "garbage end",
			start:   "2024-01-01T00:00:00Z",
			end:     "someday",
			wantErr: ErrInvalidEnd,
		},
		{
			name:    "start equals end",
			start:   "2024-01-01T00:00:00Z",
			end:     "2024-01-01T00:00:00Z",
			wantErr: ErrStartNotBeforeEnd,
		},
		{
			name:    "start after end",
			start:   "2024-01-07T00:00:00Z",
			end:     "2024-01-01T00:00:00Z",
			wantErr: ErrStartNotBeforeEnd,
		},
		{
			name:    "future start is rejected",
			start:   "2030-01-01T00:00:00Z",
			end:     "2030-01-02T00:00:00Z",
			wantErr: ErrStartInFuture,
		},
		{
			name:    "start at now with clamped end",
			start:   "2024-06-15T12:00:00Z",
			end:     "2030-01-01T00:00:00Z",
			wantErr: ErrStartNotBeforeEnd,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.start, tt.end, testNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Start.Equal(tt.want.Start), "start: got %v, want %v", got.Start, tt.want.Start)
			assert.True(t, got.End.Equal(tt.want.End), "end: got %v, want %v", got.End, tt.want.End)
		})
	}
}

func TestWindow_Interval(t *testing.T) {
	t.Parallel()
	w, err := Parse("2024-01-01T00:00:00Z", "2024-01-07T23:59:59Z", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z/2024-01-07T23:59:59Z", w.Interval())
	assert.Equal(t, "2024-01-01 to 2024-01-07", w.Days())
}
