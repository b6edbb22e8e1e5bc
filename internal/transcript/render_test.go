package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUtterances(t *testing.T) {
	idx := func(i int) *int { return &i }
	const base = int64(1_700_000_000_000)
	bundle := Bundle{
		ConversationID:        "c1",
		ConversationStartTime: base,
		Participants: []Participant{
			{ParticipantPurpose: "ivr", StartTimeMs: base, EndTimeMs: base + 4000},
			{ParticipantPurpose: "customer", StartTimeMs: base, EndTimeMs: base + 60000},
		},
		Transcripts: []Transcript{{
			Phrases: []Phrase{
				{PhraseIndex: 0, ParticipantPurpose: "internal", Text: "I'm an IVR", StartTimeMs: base},
				{PhraseIndex: 1, ParticipantPurpose: "external", Text: "I'm a customer", StartTimeMs: base + 5000},
			},
			Analytics: &Analytics{Sentiment: []SentimentEntry{
				{PhraseIndex: idx(1), Sentiment: 1},
			}},
		}},
	}

	got := BuildUtterances([]Bundle{bundle})
	if assert.Len(t, got, 2) {
		assert.Equal(t, "IVR", got[0].Speaker)
		assert.Equal(t, "I'm an IVR", got[0].Text)
		assert.Nil(t, got[0].Sentiment)
		assert.Equal(t, "Customer", got[1].Speaker)
		if assert.NotNil(t, got[1].Sentiment) {
			assert.Equal(t, 1, *got[1].Sentiment)
		}
	}
}

func TestBuildUtterances_fallbackSpeaker(t *testing.T) {
	// no participant matches: the phrase's own purpose labels the speaker.
	bundle := Bundle{
		ConversationStartTime: 1000,
		Transcripts: []Transcript{{
			Phrases: []Phrase{{ParticipantPurpose: "external", Text: "hello", StartTimeMs: 2000}},
		}},
	}
	got := BuildUtterances([]Bundle{bundle})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Customer", got[0].Speaker)
	}
}

func TestBuildUtterances_decoratedTextPreferred(t *testing.T) {
	bundle := Bundle{
		Transcripts: []Transcript{{
			Phrases: []Phrase{
				{ParticipantPurpose: "internal", Text: "hello there how", DecoratedText: "Hello there. How?"},
				{ParticipantPurpose: "internal", Text: "plain"},
			},
		}},
	}
	got := BuildUtterances([]Bundle{bundle})
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Hello there. How?", got[0].Text)
		assert.Equal(t, "plain", got[1].Text)
	}
}

func TestBuildUtterances_multipleBundles(t *testing.T) {
	mk := func(text string) Bundle {
		return Bundle{Transcripts: []Transcript{{
			Phrases: []Phrase{{ParticipantPurpose: "internal", Text: text}},
		}}}
	}
	got := BuildUtterances([]Bundle{mk("first leg"), mk("second leg")})
	if assert.Len(t, got, 2) {
		assert.Equal(t, "first leg", got[0].Text)
		assert.Equal(t, "second leg", got[1].Text)
	}
}

func Test_offsetLabel(t *testing.T) {
	tests := []struct {
		name string
		u    Utterance
		want string
	}{
		{"zero offset", Utterance{StartMs: 1000, ConversationStartMs: 1000}, "00:00"},
		{"five seconds", Utterance{StartMs: 6000, ConversationStartMs: 1000}, "00:05"},
		{"over an hour keeps total minutes", Utterance{StartMs: 1000 + 3_723_000, ConversationStartMs: 1000}, "62:03"},
		{"missing phrase start", Utterance{ConversationStartMs: 1000}, "--:--"},
		{"missing conversation start", Utterance{StartMs: 1000}, "--:--"},
		{"negative offset", Utterance{StartMs: 500, ConversationStartMs: 1000}, "--:--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offsetLabel(tt.u))
		})
	}
}

func TestRender(t *testing.T) {
	idx := func(i int) *int { return &i }
	const base = int64(1_700_000_000_000)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Render(nil))
	})

	t.Run("with sentiment column", func(t *testing.T) {
		bundle := Bundle{
			ConversationStartTime: base,
			Participants: []Participant{
				{ParticipantPurpose: "ivr", StartTimeMs: base, EndTimeMs: base + 4000},
				{ParticipantPurpose: "customer", StartTimeMs: base, EndTimeMs: base + 60000},
			},
			Transcripts: []Transcript{{
				Phrases: []Phrase{
					{PhraseIndex: 0, ParticipantPurpose: "internal", Text: "I'm an IVR", StartTimeMs: base},
					{PhraseIndex: 1, ParticipantPurpose: "external", Text: "I'm a customer", StartTimeMs: base + 5000},
				},
				Analytics: &Analytics{Sentiment: []SentimentEntry{
					{PhraseIndex: idx(1), Sentiment: 1},
				}},
			}},
		}
		want := "Time   Who       Sentiment  Utterance\n" +
			"00:00  IVR                  I'm an IVR\n" +
			"00:05  Customer  Positive   I'm a customer"
		assert.Equal(t, want, Render(BuildUtterances([]Bundle{bundle})))
	})

	t.Run("sentiment column omitted when unannotated", func(t *testing.T) {
		us := []Utterance{
			{Speaker: "Agent", Text: "hello", StartMs: 1000, ConversationStartMs: 1000},
			{Speaker: "Customer", Text: "hi", StartMs: 3000, ConversationStartMs: 1000},
		}
		want := "Time   Who       Utterance\n" +
			"00:00  Agent     hello\n" +
			"00:02  Customer  hi"
		assert.Equal(t, want, Render(us))
	})
}
