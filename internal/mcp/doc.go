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

// Package mcp implements a Model Context Protocol (MCP) server exposing
// Genesys Cloud contact-centre analytics as callable tools.  AI agents can
// search routing queues and voice conversations, break down queue volumes
// and wrap-up codes, inspect call quality and sentiment, and reconstruct
// full conversation transcripts.
//
// The server is read-only with respect to the platform: every tool is a
// query, none mutates contact-centre state.  Tool handlers never let a
// domain failure escape as a Go error; all failures are converted to
// IsError tool results with a human-readable message.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
