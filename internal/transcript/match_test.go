package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_roleClassOf(t *testing.T) {
	tests := []struct {
		purpose string
		want    RoleClass
	}{
		{"user", RoleInternal},
		{"agent", RoleInternal},
		{"internal", RoleInternal},
		{"acd", RoleInternal},
		{"ivr", RoleInternal},
		{"voicemail", RoleInternal},
		{"fax", RoleInternal},
		{"IVR", RoleInternal},
		{"external", RoleExternal},
		{"customer", RoleExternal},
		{"Customer", RoleExternal},
		{"outbound", RoleUnknown},
		{"", RoleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, roleClassOf(tt.purpose))
		})
	}
}

func Test_phraseClassOf(t *testing.T) {
	assert.Equal(t, RoleInternal, phraseClassOf("internal"))
	assert.Equal(t, RoleExternal, phraseClassOf("External"))
	// phrase labels are only ever the two generic ones; a participant-style
	// purpose on a phrase matches nothing.
	assert.Equal(t, RoleUnknown, phraseClassOf("agent"))
	assert.Equal(t, RoleUnknown, phraseClassOf(""))
}

func Test_matchParticipant(t *testing.T) {
	participants := []Participant{
		{ParticipantPurpose: "ivr", StartTimeMs: 1000, EndTimeMs: 5000},
		{ParticipantPurpose: "agent", StartTimeMs: 5000, EndTimeMs: 20000},
		{ParticipantPurpose: "customer", StartTimeMs: 1000, EndTimeMs: 20000},
	}
	t.Run("internal phrase resolves by interval", func(t *testing.T) {
		got := matchParticipant(Phrase{ParticipantPurpose: "internal", StartTimeMs: 2000}, participants)
		if assert.NotNil(t, got) {
			assert.Equal(t, "ivr", got.ParticipantPurpose)
		}
		got = matchParticipant(Phrase{ParticipantPurpose: "internal", StartTimeMs: 6000}, participants)
		if assert.NotNil(t, got) {
			assert.Equal(t, "agent", got.ParticipantPurpose)
		}
	})
	t.Run("interval end is exclusive", func(t *testing.T) {
		got := matchParticipant(Phrase{ParticipantPurpose: "internal", StartTimeMs: 5000}, participants)
		if assert.NotNil(t, got) {
			assert.Equal(t, "agent", got.ParticipantPurpose)
		}
	})
	t.Run("external phrase never matches internal party", func(t *testing.T) {
		got := matchParticipant(Phrase{ParticipantPurpose: "external", StartTimeMs: 2000}, participants)
		if assert.NotNil(t, got) {
			assert.Equal(t, "customer", got.ParticipantPurpose)
		}
	})
	t.Run("unknown phrase purpose matches nothing", func(t *testing.T) {
		assert.Nil(t, matchParticipant(Phrase{ParticipantPurpose: "monitor", StartTimeMs: 2000}, participants))
	})
	t.Run("outside all intervals", func(t *testing.T) {
		assert.Nil(t, matchParticipant(Phrase{ParticipantPurpose: "internal", StartTimeMs: 30000}, participants))
	})
	t.Run("incomplete interval never matches", func(t *testing.T) {
		open := []Participant{{ParticipantPurpose: "agent", StartTimeMs: 1000}}
		assert.Nil(t, matchParticipant(Phrase{ParticipantPurpose: "internal", StartTimeMs: 2000}, open))
	})
}

func TestFriendlyPurpose(t *testing.T) {
	tests := []struct {
		purpose string
		want    string
	}{
		{"internal", "Agent"},
		{"user", "Agent"},
		{"agent", "Agent"},
		{"external", "Customer"},
		{"customer", "Customer"},
		{"acd", "ACD"},
		{"ivr", "IVR"},
		{"IVR", "IVR"},
		{"voicemail", "Voicemail"},
		{"fax", "Fax"},
		{"campaign", "campaign"},
	}
	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyPurpose(tt.purpose))
		})
	}
}

func Test_sentimentIndex(t *testing.T) {
	idx := func(i int) *int { return &i }
	t.Run("no analytics", func(t *testing.T) {
		assert.Nil(t, sentimentIndex(Transcript{}))
	})
	t.Run("entries without index are skipped", func(t *testing.T) {
		tr := Transcript{Analytics: &Analytics{Sentiment: []SentimentEntry{
			{PhraseIndex: idx(0), Sentiment: 1},
			{Sentiment: -1},
			{PhraseIndex: idx(2), Sentiment: 0},
		}}}
		assert.Equal(t, map[int]int{0: 1, 2: 0}, sentimentIndex(tr))
	})
}

func TestSentimentLabel(t *testing.T) {
	v := func(i int) *int { return &i }
	assert.Equal(t, "", SentimentLabel(nil))
	assert.Equal(t, "Positive", SentimentLabel(v(1)))
	assert.Equal(t, "Neutral", SentimentLabel(v(0)))
	assert.Equal(t, "Negative", SentimentLabel(v(-1)))
	assert.Equal(t, "", SentimentLabel(v(5)))
}
