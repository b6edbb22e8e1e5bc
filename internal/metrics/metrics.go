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

// Package metrics exposes Prometheus instrumentation for the server.  The
// metrics listener is optional and runs on its own address so that the MCP
// transports stay untouched.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ToolCalls counts MCP tool invocations by tool name and outcome
	// ("ok" or "error").
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callscope_tool_calls_total",
		Help: "Number of MCP tool calls by tool and outcome.",
	}, []string{"tool", "status"})

	// JobPolls counts analytics job status polls.
	JobPolls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callscope_job_polls_total",
		Help: "Number of analytics details job status polls.",
	})

	// JobOutcomes counts finished analytics jobs by outcome (fulfilled,
	// failed, cancelled, expired, unknown, timeout).
	JobOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callscope_job_outcomes_total",
		Help: "Number of analytics details jobs by final outcome.",
	}, []string{"outcome"})

	// TranscriptNotReadyRetries counts recording listings that were retried
	// because the recordings were still being restored.
	TranscriptNotReadyRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callscope_transcript_not_ready_retries_total",
		Help: "Number of recording list retries while recordings were being restored.",
	})
)

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shctx)
	case err := <-errCh:
		return err
	}
}
