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

// In this file: conversation recording endpoints.

import (
	"context"
	"net/http"
	"net/url"
)

// GetConversationRecordings lists the recordings of a conversation.  While
// the platform is restoring archived recordings it responds with 202
// Accepted and no body; this is reported as ready == false and the caller
// is expected to retry after a delay.
func (c *Client) GetConversationRecordings(ctx context.Context, conversationID string) (recs []Recording, ready bool, err error) {
	path := "/api/v2/conversations/" + url.PathEscape(conversationID) + "/recordings"
	status, err := c.do(ctx, "GET", path, nil, nil, &recs)
	if err != nil {
		return nil, false, err
	}
	if status == http.StatusAccepted {
		return nil, false, nil
	}
	return recs, true, nil
}
