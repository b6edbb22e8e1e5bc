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

// In this file: the search_voice_conversations and voice_call_quality tools.
// Voice search is a synchronous paged details query, not a job.

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/callscope/callscope/internal/genesys"
)

const (
	defVoicePageSize = 100
	maxVoicePageSize = 100
	maxQualityIDs    = 100
)

// MOS quality thresholds.
const (
	mosPoorBelow      = 3.5
	mosExcellentAbove = 4.3
)

func (s *Server) toolSearchVoiceConversations() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_voice_conversations",
		mcplib.WithTitleAnnotation("Search Voice Conversations"),
		mcplib.WithDescription("Searches for voice conversations within a specified time window, optionally filtering by phone number. Returns a paginated list of conversation metadata for use in further analysis or tool calls."),
		mcplib.WithString("phoneNumber",
			mcplib.Description("Optional. Filters results to only include conversations involving this phone number (e.g., '+440000000000')"),
		),
		mcplib.WithNumber("pageNumber",
			mcplib.Description("The page number of the results to retrieve, starting from 1. Defaults to 1 if not specified. Used with 'pageSize' for navigating large result sets"),
		),
		mcplib.WithNumber("pageSize",
			mcplib.Description("The maximum number of conversations to return per page. Defaults to 100 if not specified. Used with 'pageNumber' for pagination. The maximum value is 100"),
		),
		mcplib.WithString("startDate",
			mcplib.Description(startDateDesc),
			mcplib.Required(),
		),
		mcplib.WithString("endDate",
			mcplib.Description(endDateDesc),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("search_voice_conversations", s.handleSearchVoiceConversations)}
}

func (s *Server) handleSearchVoiceConversations(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	w, msg := s.windowArg(req)
	if msg != "" {
		return resultErr(msg), nil
	}
	pageNumber := intArg(req, "pageNumber", 1)
	pageSize := intArg(req, "pageSize", defVoicePageSize)
	if pageNumber < 1 {
		return resultErr("pageNumber must be a positive integer."), nil
	}
	if pageSize < 1 || pageSize > maxVoicePageSize {
		return resultErr(fmt.Sprintf("pageSize must be between 1 and %d.", maxVoicePageSize)), nil
	}

	filters := []genesys.SegmentFilter{
		{Type: "or", Predicates: []genesys.Predicate{{Dimension: "mediaType", Value: "voice"}}},
		{Type: "or", Predicates: []genesys.Predicate{
			{Dimension: "direction", Value: "inbound"},
			{Dimension: "direction", Value: "outbound"},
		}},
	}
	if phone, ok := stringArg(req, "phoneNumber"); ok && phone != "" {
		filters = append(filters, aniFilter(phone))
	}

	resp, err := s.api.Analytics.QueryDetails(ctx, &genesys.DetailsQuery{
		Interval:       w.Interval(),
		Order:          "desc",
		OrderBy:        "conversationStart",
		Paging:         &genesys.Paging{PageSize: pageSize, PageNumber: pageNumber},
		SegmentFilters: filters,
	})
	if err != nil {
		return resultErr(apiFailMessage("search conversations", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total hits: %d\n\n", resp.TotalHits)
	sb.WriteString("Conversation IDs and Durations of matches:\n")
	for _, conv := range resp.Conversations {
		if conv.ConversationID == "" {
			continue
		}
		sb.WriteString(conv.ConversationID)
		if d, ok := conversationDuration(conv); ok {
			fmt.Fprintf(&sb, " (%s)", d)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(paginationInfo("Total Conversations returned", pageNumber, pageSize, -1, resp.TotalHits))
	return resultText(sb.String()), nil
}

// aniFilter matches the caller's number.  The number is normalised to bare
// digits, which is what the platform indexes ANI values by.
func aniFilter(phoneNumber string) genesys.SegmentFilter {
	var digits strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return genesys.SegmentFilter{
		Type:       "or",
		Predicates: []genesys.Predicate{{Dimension: "ani", Value: digits.String()}},
	}
}

// conversationDuration renders the duration of a conversation in the largest
// whole unit ("42 seconds", "5 minutes", "2 hours", "3 days").
func conversationDuration(conv genesys.Conversation) (string, bool) {
	start, err := time.Parse(time.RFC3339, conv.ConversationStart)
	if err != nil {
		return "", false
	}
	end, err := time.Parse(time.RFC3339, conv.ConversationEnd)
	if err != nil {
		return "", false
	}
	d := end.Sub(start)
	if d < 0 {
		return "", false
	}
	plural := func(n int64, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case d < time.Minute:
		return plural(int64(d.Round(time.Second)/time.Second), "second"), true
	case d < time.Hour:
		return plural(int64(d.Round(time.Minute)/time.Minute), "minute"), true
	case d < 24*time.Hour:
		return plural(int64(d.Round(time.Hour)/time.Hour), "hour"), true
	default:
		return plural(int64(d.Round(24*time.Hour)/(24*time.Hour)), "day"), true
	}
}

func (s *Server) toolVoiceCallQuality() mcpsrv.ServerTool {
	tool := mcplib.NewTool("voice_call_quality",
		mcplib.WithDescription("Retrieves voice call quality metrics for one or more conversations by ID. This tool specifically focuses on voice interactions and returns the minimum Mean Opinion Score (MOS) observed in each conversation, helping identify degraded or poor-quality voice calls."),
		mcplib.WithArray("conversationIds",
			mcplib.Description("A list of up to 100 conversation IDs to evaluate voice call quality for"),
			mcplib.Items(map[string]any{"type": "string"}),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("voice_call_quality", s.handleVoiceCallQuality)}
}

func (s *Server) handleVoiceCallQuality(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	conversationIDs, _ := stringSliceArg(req, "conversationIds")
	if msg := uuidList(conversationIDs, maxQualityIDs, "conversation"); msg != "" {
		return resultErr(msg), nil
	}

	convs, err := s.api.Analytics.GetConversationDetails(ctx, conversationIDs)
	if err != nil {
		return resultErr(apiFailMessage("query conversations call quality", err)), nil
	}

	var entries []string
	for _, conv := range convs {
		if conv.ConversationID == "" || conv.MinMOS == 0 {
			continue
		}
		entries = append(entries, fmt.Sprintf("• Conversation ID: %s\n  • Minimum MOS: %.2f (%s)",
			conv.ConversationID, conv.MinMOS, mosLabel(conv.MinMOS)))
	}
	if len(entries) == 0 {
		return resultText("No valid call quality data found for the given conversation IDs."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Call Quality Report for %d conversation(s):\n\n", len(conversationIDs))
	sb.WriteString("MOS Quality Legend:\n")
	sb.WriteString("  Poor:       MOS < 3.5\n")
	sb.WriteString("  Acceptable: 3.5 <= MOS < 4.3\n")
	sb.WriteString("  Excellent:  MOS >= 4.3\n\n")
	sb.WriteString(strings.Join(entries, "\n"))
	return resultText(sb.String()), nil
}

func mosLabel(mos float64) string {
	switch {
	case mos < mosPoorBelow:
		return "Poor"
	case mos < mosExcellentAbove:
		return "Acceptable"
	default:
		return "Excellent"
	}
}
