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

// In this file: speech and text analytics endpoints.

import (
	"context"
	"net/url"
)

// GetConversationMetrics returns the speech and text analytics summary
// (sentiment score and trend) of a conversation.
func (c *Client) GetConversationMetrics(ctx context.Context, conversationID string) (*ConversationMetrics, error) {
	var m ConversationMetrics
	path := "/api/v2/speechandtextanalytics/conversations/" + url.PathEscape(conversationID)
	if _, err := c.do(ctx, "GET", path, nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTranscriptURL returns the pre-signed URL of the raw transcript payload
// of one communication (recording session) within a conversation.
func (c *Client) GetTranscriptURL(ctx context.Context, conversationID, communicationID string) (*TranscriptURL, error) {
	var tu TranscriptURL
	path := "/api/v2/speechandtextanalytics/conversations/" + url.PathEscape(conversationID) +
		"/communications/" + url.PathEscape(communicationID) + "/transcripturl"
	if _, err := c.do(ctx, "GET", path, nil, nil, &tu); err != nil {
		return nil, err
	}
	return &tu, nil
}
