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

// In this file: helpers shared by the tool handlers: input validation,
// failure message mapping and pagination rendering.  Message texts are part
// of the tool contract and must stay stable.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/timewin"
)

const (
	startDateDesc = "The start date/time in ISO-8601 format (e.g., '2024-01-01T00:00:00Z')"
	endDateDesc   = "The end date/time in ISO-8601 format (e.g., '2024-01-07T23:59:59Z')"
)

// apiFailMessage converts a platform API error into the user-facing failure
// message of a tool.  Unauthorized errors get a fixed remediation message
// instead of the raw error text.
func apiFailMessage(action string, err error) string {
	if genesys.IsUnauthorized(err) {
		return "Failed to " + action + ": Unauthorised access. Please check API credentials or permissions."
	}
	return "Failed to " + action + ": " + err.Error()
}

// jobFailMessage converts a job poller error into the user-facing failure
// message of a tool.  Terminal job states, missing job IDs and poll timeouts
// each get a distinct message; transport errors fall through to
// apiFailMessage.
func jobFailMessage(action string, err error) string {
	var term *analytics.TerminalError
	switch {
	case errors.Is(err, analytics.ErrNoJobID):
		return "Job ID not returned from Genesys Cloud."
	case errors.Is(err, analytics.ErrPollTimeout):
		return "Timed out waiting for analytics job to complete."
	case errors.As(err, &term):
		switch term.State {
		case analytics.StateFailed:
			return "Analytics job failed."
		case analytics.StateCancelled:
			return "Analytics job was cancelled."
		case analytics.StateExpired:
			return "Analytics job results have expired."
		default:
			return "Analytics job returned an unknown or undefined state."
		}
	default:
		return apiFailMessage(action, err)
	}
}

// windowArg parses and validates the startDate/endDate arguments.  On
// failure the second return value is the user-facing message.
func (s *Server) windowArg(req mcplib.CallToolRequest) (timewin.Window, string) {
	startStr, _ := stringArg(req, "startDate")
	endStr, _ := stringArg(req, "endDate")
	w, err := timewin.Parse(startStr, endStr, s.now())
	switch {
	case err == nil:
		return w, ""
	case errors.Is(err, timewin.ErrInvalidStart):
		return w, "startDate is not a valid ISO-8601 date."
	case errors.Is(err, timewin.ErrInvalidEnd):
		return w, "endDate is not a valid ISO-8601 date."
	case errors.Is(err, timewin.ErrStartInFuture):
		return w, "Start date must not be in the future."
	default:
		return w, "Start date must be before end date."
	}
}

// uuidList validates that every element of ids is a UUID and that the list
// size is within [1, max].  Returns the user-facing message on failure.
func uuidList(ids []string, max int, what string) string {
	if len(ids) == 0 {
		return fmt.Sprintf("At least one %s ID is required.", what)
	}
	if len(ids) > max {
		return fmt.Sprintf("At most %d %s IDs may be given.", max, what)
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Sprintf("%q is not a valid %s ID (expected a UUID).", id, what)
		}
	}
	return ""
}

// paginationInfo renders the pagination footer shared by the search tools.
// Unknown values render as "N/A"; the page count is derived from the total
// and page size when the platform did not report it (pageCount < 0).
func paginationInfo(totalName string, pageNumber, pageSize, pageCount, total int) string {
	na := func(n int) string {
		if n <= 0 {
			return "N/A"
		}
		return fmt.Sprint(n)
	}
	pages := "N/A"
	switch {
	case pageCount > 0:
		pages = fmt.Sprint(pageCount)
	case pageSize > 0:
		n := (total + pageSize - 1) / pageSize
		if n < 1 {
			n = 1
		}
		pages = fmt.Sprint(n)
	}
	return strings.Join([]string{
		"--- Pagination Info ---",
		"Page Number: " + na(pageNumber),
		"Page Size: " + na(pageSize),
		"Total Pages: " + pages,
		totalName + ": " + na(total),
	}, "\n")
}

// customerPurposeFilter selects customer-purpose segments; every details
// query carries it so that system legs are not counted.
func customerPurposeFilter() genesys.SegmentFilter {
	return genesys.SegmentFilter{
		Type:       "and",
		Predicates: []genesys.Predicate{{Dimension: "purpose", Value: "customer"}},
	}
}

// queueFilter matches segments routed through any of the given queues.
func queueFilter(queueIDs []string) genesys.SegmentFilter {
	preds := make([]genesys.Predicate, len(queueIDs))
	for i, id := range queueIDs {
		preds[i] = genesys.Predicate{Dimension: "queueId", Value: id}
	}
	return genesys.SegmentFilter{Type: "or", Predicates: preds}
}
