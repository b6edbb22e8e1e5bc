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

// In this file: routing queue endpoints.

import (
	"context"
	"net/url"
	"strconv"
)

// GetQueues searches routing queues by name.  Wildcards ('*') are supported
// by the platform in the name pattern.
func (c *Client) GetQueues(ctx context.Context, name string, pageSize, pageNumber int) (*QueueListing, error) {
	q := url.Values{
		"name":       {name},
		"pageSize":   {strconv.Itoa(pageSize)},
		"pageNumber": {strconv.Itoa(pageNumber)},
	}
	var listing QueueListing
	if _, err := c.do(ctx, "GET", "/api/v2/routing/queues", q, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}
