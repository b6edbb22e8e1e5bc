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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/metrics"
	"github.com/callscope/callscope/internal/transcript"
)

const (
	serverName    = "callscope-mcp"
	serverVersion = "1.0.0"
)

// API groups the platform API surfaces that the tools consume.
type API struct {
	Analytics  genesys.AnalyticsAPI
	Routing    genesys.RoutingAPI
	SpeechText genesys.SpeechTextAPI
	Recording  genesys.RecordingAPI
	Files      genesys.URLFetcher
}

// bundleSource retrieves the transcript bundles of a conversation.
type bundleSource interface {
	Conversation(ctx context.Context, conversationID string) ([]transcript.Bundle, error)
}

// Server wraps an MCP server and the platform API surfaces behind it.
type Server struct {
	mcp     *mcpsrv.MCPServer
	api     API
	bundles bundleSource
	poll    []analytics.PollerOption
	logger  *slog.Logger
	now     func() time.Time
}

// Option is the signature of the Server option-setting function.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithPollerOptions appends options applied to every analytics job poller
// the tools construct.
func WithPollerOptions(opts ...analytics.PollerOption) Option {
	return func(s *Server) {
		s.poll = append(s.poll, opts...)
	}
}

// withBundleSource replaces the transcript fetcher.  Test hook.
func withBundleSource(src bundleSource) Option {
	return func(s *Server) {
		s.bundles = src
	}
}

// withClock replaces the wall clock used for time window validation.  Test
// hook.
func withClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new MCP server over the given API surfaces.  The server is
// populated with all available tools but does not start listening until one
// of the Serve* methods is called.
func New(api API, opts ...Option) *Server {
	s := &Server{
		api:    api,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bundles == nil {
		s.bundles = transcript.NewFetcher(api.Recording, api.SpeechText, api.Files,
			transcript.WithLogger(s.logger))
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions()),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the tool set to
// the connecting agent.
func instructions() string {
	return `You are connected to a Genesys Cloud analytics MCP server.

Available tools allow you to:
- Search routing queues by name (wildcards supported)
- Compare conversation volumes across queues over a time window
- Retrieve a representative sample of conversation IDs for a queue
- Break down conversations by wrap-up code, queue and media type
- Search voice conversations, optionally by phone number
- Evaluate voice call quality (minimum MOS per conversation)
- Retrieve sentiment analysis scores for conversations
- Reconstruct a full, speaker-attributed conversation transcript

All tools are read-only. Dates are ISO-8601 instants (e.g. "2024-01-01T00:00:00Z");
queue and conversation identifiers are UUIDs.
`
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8421".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolSearchQueues(),
		s.toolQueryQueueVolumes(),
		s.toolSampleConversationsByQueue(),
		s.toolWrapUpCodeAnalytics(),
		s.toolSearchVoiceConversations(),
		s.toolVoiceCallQuality(),
		s.toolConversationSentiment(),
		s.toolConversationTranscript(),
	}
}

// instrument counts tool invocations by outcome.
func instrument(name string, h mcpsrv.ToolHandlerFunc) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := h(ctx, req)
		status := "ok"
		if err != nil || (res != nil && res.IsError) {
			status = "error"
		}
		metrics.ToolCalls.WithLabelValues(name, status).Inc()
		return res, err
	}
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps a message in a CallToolResult with
// IsError=true.
func resultErr(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// stringSliceArg extracts a named string-array argument from a tool call
// request.  Returns (nil, false) if the argument is absent or any element is
// not a string.
func stringSliceArg(req mcplib.CallToolRequest, name string) ([]string, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
