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

// In this file: the API interfaces consumed by the other packages, and the
// mock generation directive.

import "context"

//go:generate mockgen -destination mock_genesys/mock_genesys.go . AnalyticsAPI,RoutingAPI,SpeechTextAPI,RecordingAPI,URLFetcher

// AnalyticsAPI is the analytics conversation details surface.
type AnalyticsAPI interface {
	CreateDetailsJob(ctx context.Context, q *DetailsQuery) (*DetailsJob, error)
	GetDetailsJob(ctx context.Context, jobID string) (*DetailsJobStatus, error)
	GetDetailsJobResults(ctx context.Context, jobID string) (*DetailsJobResults, error)
	QueryDetails(ctx context.Context, q *DetailsQuery) (*DetailsQueryResponse, error)
	GetConversationDetails(ctx context.Context, conversationIDs []string) ([]Conversation, error)
}

// RoutingAPI is the routing queue surface.
type RoutingAPI interface {
	GetQueues(ctx context.Context, name string, pageSize, pageNumber int) (*QueueListing, error)
}

// SpeechTextAPI is the speech and text analytics surface.
type SpeechTextAPI interface {
	GetConversationMetrics(ctx context.Context, conversationID string) (*ConversationMetrics, error)
	GetTranscriptURL(ctx context.Context, conversationID, communicationID string) (*TranscriptURL, error)
}

// RecordingAPI is the conversation recordings surface.
type RecordingAPI interface {
	GetConversationRecordings(ctx context.Context, conversationID string) (recs []Recording, ready bool, err error)
}

// URLFetcher dereferences a pre-signed URL into a JSON payload.
type URLFetcher interface {
	FetchURL(ctx context.Context, rawURL string, out any) error
}

var (
	_ AnalyticsAPI  = (*Client)(nil)
	_ RoutingAPI    = (*Client)(nil)
	_ SpeechTextAPI = (*Client)(nil)
	_ RecordingAPI  = (*Client)(nil)
	_ URLFetcher    = (*Client)(nil)
)
