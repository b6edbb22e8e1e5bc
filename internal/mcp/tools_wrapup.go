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

// In this file: the wrap_up_code_analytics tool.  This is the heaviest
// analysis the server runs, so its poller gets the larger attempt budget.

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
)

const (
	maxWrapUpQueues   = 100
	maxWrapUpCodes    = 50
	topQueuesPerCode  = 5
	exampleIDsPerCode = 3
)

// wrapUpMediaTypes are the media types the wrap-up filter accepts.
var wrapUpMediaTypes = map[string]bool{
	"voice": true, "email": true, "chat": true, "sms": true,
	"messaging": true, "callback": true, "social": true, "video": true,
}

func (s *Server) toolWrapUpCodeAnalytics() mcpsrv.ServerTool {
	tool := mcplib.NewTool("wrap_up_code_analytics",
		mcplib.WithTitleAnnotation("Wrap-Up Code Analytics"),
		mcplib.WithDescription("Analyzes wrap-up codes from conversations to understand interaction types and volumes. Useful for answering questions like 'how many inquiries came today' or 'what types of calls did we receive'. Returns detailed breakdown by wrap-up code, queue, and media type."),
		mcplib.WithString("startDate",
			mcplib.Description(startDateDesc),
			mcplib.Required(),
		),
		mcplib.WithString("endDate",
			mcplib.Description(endDateDesc),
			mcplib.Required(),
		),
		mcplib.WithArray("queueIds",
			mcplib.Description("Optional: List of up to 100 queue IDs to filter by"),
			mcplib.Items(map[string]any{"type": "string"}),
		),
		mcplib.WithArray("wrapUpCodes",
			mcplib.Description("Optional: List of specific wrap-up codes to filter by"),
			mcplib.Items(map[string]any{"type": "string"}),
		),
		mcplib.WithArray("mediaTypes",
			mcplib.Description("Optional: Filter by specific media types (voice, email, chat, sms, messaging, callback, social, video)"),
			mcplib.Items(map[string]any{"type": "string"}),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("wrap_up_code_analytics", s.handleWrapUpCodeAnalytics)}
}

func (s *Server) handleWrapUpCodeAnalytics(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	w, msg := s.windowArg(req)
	if msg != "" {
		return resultErr(msg), nil
	}

	var extra []genesys.SegmentFilter
	if queueIDs, ok := stringSliceArg(req, "queueIds"); ok && len(queueIDs) > 0 {
		if msg := uuidList(queueIDs, maxWrapUpQueues, "queue"); msg != "" {
			return resultErr(msg), nil
		}
		extra = append(extra, queueFilter(queueIDs))
	}
	if mediaTypes, ok := stringSliceArg(req, "mediaTypes"); ok && len(mediaTypes) > 0 {
		preds := make([]genesys.Predicate, 0, len(mediaTypes))
		for _, mt := range mediaTypes {
			if !wrapUpMediaTypes[mt] {
				return resultErr(fmt.Sprintf("%q is not a valid media type.", mt)), nil
			}
			preds = append(preds, genesys.Predicate{Dimension: "mediaType", Value: mt})
		}
		extra = append(extra, genesys.SegmentFilter{Type: "or", Predicates: preds})
	}
	wrapUpCodes, ok := stringSliceArg(req, "wrapUpCodes")
	if ok && len(wrapUpCodes) > maxWrapUpCodes {
		return resultErr(fmt.Sprintf("At most %d wrap-up codes may be given.", maxWrapUpCodes)), nil
	}
	if len(wrapUpCodes) > 0 {
		preds := make([]genesys.Predicate, len(wrapUpCodes))
		for i, code := range wrapUpCodes {
			preds[i] = genesys.Predicate{Dimension: "wrapUpCode", Value: code}
		}
		extra = append(extra, genesys.SegmentFilter{Type: "or", Predicates: preds})
	}

	convs, err := s.runDetailsJob(ctx, w, "desc", extra,
		analytics.WithMaxAttempts(analytics.HeavyMaxAttempts))
	if err != nil {
		return resultErr(jobFailMessage("query conversations", err)), nil
	}

	rep := analytics.WrapUpBreakdown(convs)
	return resultText(renderWrapUpReport(w.Days(), rep)), nil
}

func renderWrapUpReport(period string, rep *analytics.WrapUpReport) string {
	var sb strings.Builder
	sb.WriteString("WRAP-UP CODE ANALYTICS REPORT\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&sb, "Period: %s\n", period)
	fmt.Fprintf(&sb, "Total Conversations: %d\n", rep.Total)
	fmt.Fprintf(&sb, "Conversations with Wrap-Up: %d\n", rep.Wrapped)
	fmt.Fprintf(&sb, "Wrap-Up Coverage: %d%%\n", rep.Coverage())
	fmt.Fprintf(&sb, "Unique Wrap-Up Codes: %d\n", len(rep.Stats))

	if len(rep.Stats) == 0 {
		sb.WriteString("\nNo wrap-up codes found for the specified criteria.")
		return sb.String()
	}

	sb.WriteString("\nDETAILED BREAKDOWN:")
	for _, st := range rep.Stats {
		fmt.Fprintf(&sb, "\n\nWrap-Up Code: %q\n", st.Code)
		fmt.Fprintf(&sb, "  Count: %d (%d%%)\n", st.N, st.Percentage)
		sb.WriteString("  Top Queues:\n")
		for _, c := range analytics.TopCounts(st.Queues, topQueuesPerCode) {
			fmt.Fprintf(&sb, "    %s: %d\n", c.Key, c.N)
		}
		sb.WriteString("  Media Types:\n")
		for _, c := range analytics.TopCounts(st.MediaTypes, 0) {
			fmt.Fprintf(&sb, "    %s: %d\n", c.Key, c.N)
		}
		examples := st.Examples
		if len(examples) > exampleIDsPerCode {
			examples = examples[:exampleIDsPerCode]
		}
		fmt.Fprintf(&sb, "  Example Conversations: %s", strings.Join(examples, ", "))
	}
	return sb.String()
}
