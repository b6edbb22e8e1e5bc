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

// In this file: the conversation_sentiment tool.  Per-conversation metric
// lookups run concurrently; individual not-found results are reported inline
// while an unauthorized error fails the whole call.

import (
	"context"
	"fmt"
	"math"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/callscope/callscope/internal/genesys"
)

const maxSentimentIDs = 100

func (s *Server) toolConversationSentiment() mcpsrv.ServerTool {
	tool := mcplib.NewTool("conversation_sentiment",
		mcplib.WithDescription("Retrieves sentiment analysis scores for one or more conversations. Sentiment is evaluated based on customer phrases, categorized as positive, neutral, or negative. The result includes both a numeric sentiment score (-100 to 100) and an interpreted sentiment label."),
		mcplib.WithArray("conversationIds",
			mcplib.Description("A list of up to 100 conversation IDs to retrieve sentiment for"),
			mcplib.Items(map[string]any{"type": "string"}),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("conversation_sentiment", s.handleConversationSentiment)}
}

func (s *Server) handleConversationSentiment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	conversationIDs, _ := stringSliceArg(req, "conversationIds")
	if msg := uuidList(conversationIDs, maxSentimentIDs, "conversation"); msg != "" {
		return resultErr(msg), nil
	}

	type outcome struct {
		metrics  *genesys.ConversationMetrics
		notFound bool
		err      error
	}
	outcomes := make([]outcome, len(conversationIDs))

	eg, gctx := errgroup.WithContext(ctx)
	for i, id := range conversationIDs {
		eg.Go(func() error {
			m, err := s.api.SpeechText.GetConversationMetrics(gctx, id)
			switch {
			case err == nil:
				outcomes[i] = outcome{metrics: m}
			case genesys.IsNotFound(err):
				outcomes[i] = outcome{notFound: true}
			case genesys.IsUnauthorized(err):
				// Abort the whole call; the remaining lookups are pointless.
				return err
			default:
				outcomes[i] = outcome{err: err}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return resultErr("Failed to retrieve sentiment analysis: Unauthorised access. Please check API credentials or permissions."), nil
	}

	var entries []string
	for i, o := range outcomes {
		switch {
		case o.notFound:
			entries = append(entries, fmt.Sprintf("• Conversation ID: %s\n  • Error: Conversation not found", conversationIDs[i]))
		case o.err != nil || o.metrics == nil:
			// ignore the conversation
		case o.metrics.Conversation.ID == "" || o.metrics.SentimentScore == nil:
			// No sentiment data recorded.
		default:
			score := int(math.Round(*o.metrics.SentimentScore * 100))
			entries = append(entries, fmt.Sprintf("• Conversation ID: %s\n  • Sentiment Score: %d (%s)",
				o.metrics.Conversation.ID, score, interpretSentiment(score)))
		}
	}
	if len(entries) == 0 {
		return resultText("No sentiment data found for the given conversation IDs."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sentiment results for %d conversation(s):", len(entries))
	for _, e := range entries {
		sb.WriteString("\n\n" + e)
	}
	return resultText(sb.String()), nil
}

// interpretSentiment maps a scaled score (-100..100) to a label.
func interpretSentiment(score int) string {
	switch {
	case score > 55:
		return "Positive"
	case score >= 20:
		return "Slightly Positive"
	case score > -20:
		return "Neutral"
	case score >= -55:
		return "Slightly Negative"
	default:
		return "Negative"
	}
}
