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

package mcp

// In this file: the search_queues tool.

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const (
	defQueuePageSize = 100
	maxQueuePageSize = 500
)

func (s *Server) toolSearchQueues() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_queues",
		mcplib.WithDescription("Searches for routing queues based on their name, allowing for wildcard searches. Returns a paginated list of matching queues, including their Name, ID, Description (if available), and Member Count (if available). Also provides pagination details like current page, page size, total results found, and total pages available. Useful for finding specific queue IDs, checking queue configurations, or listing available queues."),
		mcplib.WithString("name",
			mcplib.Description("The name (or partial name) of the routing queue(s) to search for. Wildcards ('*') are supported for pattern matching (e.g., 'Support*', '*Emergency', '*Sales*'). Use '*' alone to retrieve all queues"),
			mcplib.Required(),
		),
		mcplib.WithNumber("pageNumber",
			mcplib.Description("The page number of the results to retrieve, starting from 1. Defaults to 1 if not specified. Used with 'pageSize' for navigating large result sets"),
		),
		mcplib.WithNumber("pageSize",
			mcplib.Description("The maximum number of queues to return per page. Defaults to 100 if not specified. Used with 'pageNumber' for pagination. The maximum value is 500"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("search_queues", s.handleSearchQueues)}
}

func (s *Server) handleSearchQueues(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr("name is required."), nil
	}
	pageNumber := intArg(req, "pageNumber", 1)
	pageSize := intArg(req, "pageSize", defQueuePageSize)
	if pageNumber < 1 {
		return resultErr("pageNumber must be a positive integer."), nil
	}
	if pageSize < 1 || pageSize > maxQueuePageSize {
		return resultErr(fmt.Sprintf("pageSize must be between 1 and %d.", maxQueuePageSize)), nil
	}

	listing, err := s.api.Routing.GetQueues(ctx, name, pageSize, pageNumber)
	if err != nil {
		return resultErr(apiFailMessage("search queues", err)), nil
	}

	if len(listing.Entities) == 0 {
		if name == "*" {
			return resultText("No routing queues found in the system."), nil
		}
		return resultText(fmt.Sprintf("No routing queues found matching the name pattern %q.", name)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found the following queues matching %q:\n", name)
	for _, q := range listing.Entities {
		if q.ID == "" || q.Name == "" {
			continue
		}
		fmt.Fprintf(&sb, "• Name: %s\n", q.Name)
		fmt.Fprintf(&sb, "  • ID: %s\n", q.ID)
		if q.Description != "" {
			fmt.Fprintf(&sb, "  • Description: %s\n", q.Description)
		}
		if q.MemberCount > 0 {
			fmt.Fprintf(&sb, "  • Member Count: %d\n", q.MemberCount)
		}
	}
	sb.WriteString(paginationInfo("Total Matching Queues",
		listing.PageNumber, listing.PageSize, listing.PageCount, listing.Total))

	return resultText(sb.String()), nil
}
