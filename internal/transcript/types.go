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

// Package transcript reconstructs a speaker-attributed, time-aligned
// conversation record from the fragmented per-communication transcript
// payloads of the speech and text analytics store.
package transcript

// In this file: the raw transcript payload shape and the derived Utterance.
// Field names follow the platform transcript JSON schema.  Millisecond
// timestamps are epoch based; zero means the field was absent.

// Bundle is the collection of transcripts associated with one communication
// (recording session) of a conversation.
type Bundle struct {
	OrganizationID        string        `json:"organizationId,omitempty"`
	ConversationID        string        `json:"conversationId,omitempty"`
	CommunicationID       string        `json:"communicationId,omitempty"`
	MediaType             string        `json:"mediaType,omitempty"`
	ConversationStartTime int64         `json:"conversationStartTime,omitempty"`
	StartTime             int64         `json:"startTime,omitempty"`
	Transcripts           []Transcript  `json:"transcripts,omitempty"`
	Participants          []Participant `json:"participants,omitempty"`
}

// Transcript is one recognised transcript within a bundle.  Phrases are
// chronological within a single transcript.
type Transcript struct {
	TranscriptID string     `json:"transcriptId,omitempty"`
	Language     string     `json:"language,omitempty"`
	Phrases      []Phrase   `json:"phrases,omitempty"`
	Analytics    *Analytics `json:"analytics,omitempty"`
}

// Analytics carries the per-transcript analytics annotations.
type Analytics struct {
	Sentiment []SentimentEntry `json:"sentiment,omitempty"`
}

// SentimentEntry annotates one phrase, identified by its index, with a
// sentiment value restricted to {-1, 0, 1}.  The list is sparse: not every
// phrase has an entry.
type SentimentEntry struct {
	PhraseIndex *int `json:"phraseIndex,omitempty"`
	Sentiment   int  `json:"sentiment"`
}

// Phrase is one recognised utterance span within a transcript.
type Phrase struct {
	PhraseIndex        int    `json:"phraseIndex"`
	ParticipantPurpose string `json:"participantPurpose,omitempty"`
	Text               string `json:"text,omitempty"`
	// DecoratedText is the punctuated variant of Text, preferred when
	// present.
	DecoratedText string `json:"decoratedText,omitempty"`
	StartTimeMs   int64  `json:"startTimeMs,omitempty"`
	Type          string `json:"type,omitempty"`
}

// Participant is a conversation party with a role and a presence interval.
// The interval [StartTimeMs, EndTimeMs) is half-open.
type Participant struct {
	ParticipantPurpose string `json:"participantPurpose,omitempty"`
	UserID             string `json:"userId,omitempty"`
	QueueID            string `json:"queueId,omitempty"`
	ANI                string `json:"ani,omitempty"`
	DNIS               string `json:"dnis,omitempty"`
	StartTimeMs        int64  `json:"startTimeMs,omitempty"`
	EndTimeMs          int64  `json:"endTimeMs,omitempty"`
}

// Utterance is one row of the reconstructed conversation record.  It is
// derived per render call and never persisted.
type Utterance struct {
	// Speaker is the friendly name of the resolved participant, or of the
	// phrase's own purpose label when no participant matched.
	Speaker string
	// Text is the phrase text (decorated variant preferred).
	Text string
	// Sentiment is the joined sentiment value, nil when no annotation
	// matched the phrase.
	Sentiment *int
	// StartMs and ConversationStartMs locate the utterance in time; both
	// must be present for a relative timestamp to be displayed.
	StartMs             int64
	ConversationStartMs int64
}
