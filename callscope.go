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

// Package callscope provides a read-only MCP server over the Genesys Cloud
// Platform API: queue search, conversation analytics, call quality,
// sentiment and transcript reconstruction.
package callscope

// In this file: the Session, which owns the authenticated API client and
// constructs the MCP server over it.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/mcp"
)

// Session stores basic session parameters.  Zero value is not usable, must
// be initialised with New.
type Session struct {
	client *genesys.Client
	log    *slog.Logger

	cfg      config
	clOpts   []genesys.ClientOption
	pollOpts []analytics.PollerOption
}

// New creates a new session with the provided options and verifies the
// credentials by obtaining an access token.  If authentication fails,
// AuthError is returned.
func New(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	s := &Session{
		cfg: defConfig,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.cfg.limits.Validate(); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("API limits failed validation: %s", vErr)
		}
		return nil, err
	}

	clOpts := append([]genesys.ClientOption{
		genesys.WithLimits(s.cfg.limits),
		genesys.WithLogger(s.log),
	}, s.clOpts...)
	s.client = genesys.NewClient(cfg.Region, cfg.ClientID, cfg.ClientSecret, clOpts...)

	if err := s.client.Login(ctx); err != nil {
		return nil, &AuthError{Err: err}
	}
	s.log.DebugContext(ctx, "session established", "region", cfg.Region)

	return s, nil
}

// Client returns the underlying API client.
func (s *Session) Client() *genesys.Client {
	return s.client
}

// Server constructs the MCP server exposing the session's tools.  The
// server does not start listening until one of its Serve methods is called.
func (s *Session) Server() *mcp.Server {
	return mcp.New(mcp.API{
		Analytics:  s.client,
		Routing:    s.client,
		SpeechText: s.client,
		Recording:  s.client,
		Files:      s.client,
	},
		mcp.WithLogger(s.log),
		mcp.WithPollerOptions(s.pollOpts...),
	)
}
