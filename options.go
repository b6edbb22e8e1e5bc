package callscope

import (
	"log/slog"

	"github.com/callscope/callscope/internal/analytics"
	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/network"
)

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLogger sets the logger to use for the session.  If this option is not
// given, slog.Default() is used.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Session) {
		if lg != nil {
			s.log = lg
		}
	}
}

// WithLimits sets the API request limits to use for the session.  If this
// option is not given, network.DefLimits is used.  Invalid limits are
// rejected by New.
func WithLimits(l network.Limits) Option {
	return func(s *Session) {
		s.cfg.limits = l
	}
}

// WithClientOptions appends options for the underlying API client.  Used in
// tests to point the client at a test server.
func WithClientOptions(opts ...genesys.ClientOption) Option {
	return func(s *Session) {
		s.clOpts = append(s.clOpts, opts...)
	}
}

// WithPollerOptions appends options applied to every analytics job poller
// the server's tools construct.
func WithPollerOptions(opts ...analytics.PollerOption) Option {
	return func(s *Session) {
		s.pollOpts = append(s.pollOpts, opts...)
	}
}
