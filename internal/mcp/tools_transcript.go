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

// In this file: the conversation_transcript tool.

import (
	"context"
	"errors"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/callscope/callscope/internal/transcript"
)

func (s *Server) toolConversationTranscript() mcpsrv.ServerTool {
	tool := mcplib.NewTool("conversation_transcript",
		mcplib.WithTitleAnnotation("Conversation Transcript"),
		mcplib.WithDescription("Retrieves a structured transcript of the conversation, including speaker labels, utterance timestamps, and sentiment annotations where available. The transcript is formatted as a time-aligned list of utterances attributed to each participant (e.g., customer or agent)"),
		mcplib.WithString("conversationId",
			mcplib.Description("The UUID of the conversation to retrieve the transcript for (e.g., 00000000-0000-0000-0000-000000000000)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: instrument("conversation_transcript", s.handleConversationTranscript)}
}

func (s *Server) handleConversationTranscript(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	conversationID, _ := stringArg(req, "conversationId")
	if msg := uuidList([]string{conversationID}, 1, "conversation"); msg != "" {
		return resultErr(msg), nil
	}

	bundles, err := s.bundles.Conversation(ctx, conversationID)
	switch {
	case err == nil:
	case errors.Is(err, transcript.ErrRecordingsUnavailable), errors.Is(err, transcript.ErrNoSessions):
		return resultErr("Failed to retrieve transcript."), nil
	case errors.Is(err, transcript.ErrNoTranscriptURL):
		return resultErr("URL for transcript was not provided for conversation"), nil
	default:
		return resultErr(apiFailMessage("retrieve transcript", err)), nil
	}

	rendered := transcript.Render(transcript.BuildUtterances(bundles))
	if rendered == "" {
		return resultText("No transcript content was found for the conversation."), nil
	}
	return resultText(rendered), nil
}
