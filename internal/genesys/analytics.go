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

// In this file: analytics conversation details endpoints.

import (
	"context"
	"net/url"
	"strings"
)

// CreateDetailsJob submits an asynchronous conversation details query.  The
// returned job ID may be empty if the platform did not accept the job; the
// caller must treat that as a submission failure.
func (c *Client) CreateDetailsJob(ctx context.Context, q *DetailsQuery) (*DetailsJob, error) {
	var job DetailsJob
	if _, err := c.do(ctx, "POST", "/api/v2/analytics/conversations/details/jobs", nil, q, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetDetailsJob returns the state of a previously submitted details job.
func (c *Client) GetDetailsJob(ctx context.Context, jobID string) (*DetailsJobStatus, error) {
	var st DetailsJobStatus
	if _, err := c.do(ctx, "GET", "/api/v2/analytics/conversations/details/jobs/"+url.PathEscape(jobID), nil, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetDetailsJobResults fetches the results of a fulfilled details job.
func (c *Client) GetDetailsJobResults(ctx context.Context, jobID string) (*DetailsJobResults, error) {
	var res DetailsJobResults
	path := "/api/v2/analytics/conversations/details/jobs/" + url.PathEscape(jobID) + "/results"
	if _, err := c.do(ctx, "GET", path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// QueryDetails runs the synchronous paged conversation details query.
func (c *Client) QueryDetails(ctx context.Context, q *DetailsQuery) (*DetailsQueryResponse, error) {
	var res DetailsQueryResponse
	if _, err := c.do(ctx, "POST", "/api/v2/analytics/conversations/details/query", nil, q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetConversationDetails returns the detail records for up to 100
// conversations by ID.
func (c *Client) GetConversationDetails(ctx context.Context, conversationIDs []string) ([]Conversation, error) {
	q := url.Values{"id": {strings.Join(conversationIDs, ",")}}
	var res struct {
		Conversations []Conversation `json:"conversations"`
	}
	if _, err := c.do(ctx, "GET", "/api/v2/analytics/conversations/details", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Conversations, nil
}
