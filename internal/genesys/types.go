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

package genesys

// In this file: request and response types of the platform API endpoints
// that the server consumes.  Field names follow the platform JSON schema.

// DetailsQuery is the body of an analytics conversation details query, both
// for asynchronous jobs and for the synchronous paged variant.
type DetailsQuery struct {
	Interval       string          `json:"interval"`
	Order          string          `json:"order,omitempty"`
	OrderBy        string          `json:"orderBy,omitempty"`
	Paging         *Paging         `json:"paging,omitempty"`
	SegmentFilters []SegmentFilter `json:"segmentFilters,omitempty"`
}

// Paging selects a page of a synchronous query response.
type Paging struct {
	PageSize   int `json:"pageSize"`
	PageNumber int `json:"pageNumber"`
}

// SegmentFilter filters conversations by segment-level dimensions.
type SegmentFilter struct {
	Type       string      `json:"type"` // "and" or "or"
	Predicates []Predicate `json:"predicates"`
}

// Predicate is a single dimension/value match within a segment filter.
type Predicate struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

// DetailsJob is the response to a details job submission.  JobID may be
// empty if the platform did not accept the job.
type DetailsJob struct {
	JobID string `json:"jobId"`
}

// DetailsJobStatus reports the state of a submitted details job.  State is
// one of QUEUED, PENDING, FULFILLED, FAILED, CANCELLED or EXPIRED.
type DetailsJobStatus struct {
	State string `json:"state"`
}

// DetailsJobResults is a page of results of a fulfilled details job.
type DetailsJobResults struct {
	Conversations []Conversation `json:"conversations"`
	Cursor        string         `json:"cursor,omitempty"`
}

// DetailsQueryResponse is the response of the synchronous details query.
type DetailsQueryResponse struct {
	Conversations []Conversation `json:"conversations"`
	TotalHits     int            `json:"totalHits"`
}

// Conversation is an analytics conversation detail record.
type Conversation struct {
	ConversationID    string        `json:"conversationId"`
	ConversationStart string        `json:"conversationStart,omitempty"`
	ConversationEnd   string        `json:"conversationEnd,omitempty"`
	Direction         string        `json:"originatingDirection,omitempty"`
	MinMOS            float64       `json:"mediaStatsMinConversationMos,omitempty"`
	Participants      []Participant `json:"participants,omitempty"`
}

// Participant is a party of an analytics conversation.
type Participant struct {
	ParticipantID   string    `json:"participantId,omitempty"`
	ParticipantName string    `json:"participantName,omitempty"`
	Purpose         string    `json:"purpose,omitempty"`
	Sessions        []Session `json:"sessions,omitempty"`
}

// Session is a single media session of a participant.
type Session struct {
	SessionID string    `json:"sessionId,omitempty"`
	MediaType string    `json:"mediaType,omitempty"`
	ANI       string    `json:"ani,omitempty"`
	DNIS      string    `json:"dnis,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Segments  []Segment `json:"segments,omitempty"`
}

// Segment is the finest grained unit of a conversation's routing path.
type Segment struct {
	SegmentType  string `json:"segmentType,omitempty"`
	QueueID      string `json:"queueId,omitempty"`
	WrapUpCode   string `json:"wrapUpCode,omitempty"`
	SegmentStart string `json:"segmentStart,omitempty"`
	SegmentEnd   string `json:"segmentEnd,omitempty"`
}

// Queue is a routing queue.
type Queue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
}

// QueueListing is a page of routing queues.
type QueueListing struct {
	Entities   []Queue `json:"entities"`
	PageSize   int     `json:"pageSize"`
	PageNumber int     `json:"pageNumber"`
	PageCount  int     `json:"pageCount"`
	Total      int     `json:"total"`
}

// ConversationMetrics is the speech and text analytics summary of a
// conversation.  SentimentScore ranges from -1 to 1.
type ConversationMetrics struct {
	Conversation struct {
		ID string `json:"id"`
	} `json:"conversation"`
	SentimentScore *float64 `json:"sentimentScore,omitempty"`
	SentimentTrend *float64 `json:"sentimentTrend,omitempty"`
}

// Recording is a recording of a single communication within a conversation.
type Recording struct {
	ID        string `json:"id,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	MediaType string `json:"media,omitempty"`
	FileState string `json:"fileState,omitempty"`
}

// TranscriptURL is a short-lived pre-signed URL of a raw transcript payload.
type TranscriptURL struct {
	URL string `json:"url"`
}
