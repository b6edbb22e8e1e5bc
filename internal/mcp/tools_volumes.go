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

// In this file: the query_queue_volumes and sample_conversations_by_queue
// tools.  Both drive an asynchronous details job through the poller and
// aggregate the fetched records.

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/timewin"
)

const (
	maxVolumeQueues = 300
	sampleSize      = 100
)

func (s *Server) toolQueryQueueVolumes() mcpsrv.ServerTool {
	tool := mcplib.NewTool("query_queue_volumes",
		mcplib.WithTitleAnnotation("Query Queue Volumes"),
		mcplib.WithDescription("Returns a breakdown of how many conversations occurred in each specified queue between two dates. Useful for comparing workload across queues."),
		mcplib.WithArray("queueIds",
			mcplib.Description("List of up to 300 queue IDs to filter conversations by"),
			mcplib.Items(map[string]any{"type": "string"}),
			mcplib.Required(),
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
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("query_queue_volumes", s.handleQueryQueueVolumes)}
}

func (s *Server) handleQueryQueueVolumes(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	queueIDs, _ := stringSliceArg(req, "queueIds")
	if msg := uuidList(queueIDs, maxVolumeQueues, "queue"); msg != "" {
		return resultErr(msg), nil
	}
	w, msg := s.windowArg(req)
	if msg != "" {
		return resultErr(msg), nil
	}

	convs, err := s.runDetailsJob(ctx, w, "asc", []genesys.SegmentFilter{queueFilter(queueIDs)},
		analytics.WithMaxAttempts(analytics.DefMaxAttempts))
	if err != nil {
		return resultErr(jobFailMessage("query conversations", err)), nil
	}

	counts := analytics.CountByQueue(convs, queueIDs)

	var sb strings.Builder
	sb.WriteString("Queue volume breakdown for that period:")
	for _, id := range queueIDs {
		fmt.Fprintf(&sb, "\nQueue ID: %s - Total conversations: %d", id, counts[id])
	}
	return resultText(sb.String()), nil
}

func (s *Server) toolSampleConversationsByQueue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("sample_conversations_by_queue",
		mcplib.WithDescription("Retrieves conversation analytics for a specific queue between two dates, returning a representative sample of conversation IDs. Useful for reporting, investigation, or summarisation."),
		mcplib.WithString("queueId",
			mcplib.Description("The UUID ID of the queue to filter conversations by. (e.g., 00000000-0000-0000-0000-000000000000)"),
			mcplib.Required(),
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
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("sample_conversations_by_queue", s.handleSampleConversationsByQueue)}
}

func (s *Server) handleSampleConversationsByQueue(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	queueID, _ := stringArg(req, "queueId")
	if msg := uuidList([]string{queueID}, 1, "queue"); msg != "" {
		return resultErr(msg), nil
	}
	w, msg := s.windowArg(req)
	if msg != "" {
		return resultErr(msg), nil
	}

	convs, err := s.runDetailsJob(ctx, w, "asc", []genesys.SegmentFilter{queueFilter([]string{queueID})},
		analytics.WithMaxAttempts(analytics.DefMaxAttempts))
	if err != nil {
		return resultErr(jobFailMessage("query conversations", err)), nil
	}

	ids := analytics.ConversationIDs(convs)
	sampled := analytics.SampleEvenly(ids, sampleSize)
	if len(sampled) == 0 {
		return resultText("No conversations found in queue during specified period."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sample of %d conversations (out of %d) in the queue during that period.\n\n", len(sampled), len(ids))
	sb.WriteString("Conversation IDs:")
	for _, id := range sampled {
		sb.WriteString("\n" + id)
	}
	return resultText(sb.String()), nil
}

// runDetailsJob submits an asynchronous details query for the window with
// the customer purpose filter plus any extra segment filters, and drives it
// to completion.
func (s *Server) runDetailsJob(ctx context.Context, w timewin.Window, order string, extra []genesys.SegmentFilter, opts ...analytics.PollerOption) ([]genesys.Conversation, error) {
	q := &genesys.DetailsQuery{
		Interval:       w.Interval(),
		Order:          order,
		OrderBy:        "conversationStart",
		SegmentFilters: append([]genesys.SegmentFilter{customerPurposeFilter()}, extra...),
	}
	opts = append(opts, analytics.WithLogger(s.logger))
	opts = append(opts, s.poll...)
	return analytics.NewPoller(s.api.Analytics, opts...).Run(ctx, q)
}
