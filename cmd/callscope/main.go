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

// Command callscope starts the Genesys Cloud analytics MCP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/callscope/callscope"
	"github.com/callscope/callscope/internal/metrics"
)

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// credentials from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	httpAddr     string // serve MCP over streamable HTTP instead of stdio
	metricsAddr  string // serve Prometheus metrics, empty disables
	verbose      bool
	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}
	initLog(p.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, p); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p params) error {
	if p.metricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, p.metricsAddr); err != nil {
				slog.Error("metrics server error", "error", err)
			}
		}()
	}

	sess, err := callscope.New(ctx, callscope.ConfigFromEnv())
	if err != nil {
		return err
	}

	srv := sess.Server()
	if p.httpAddr != "" {
		return srv.ServeHTTP(ctx, p.httpAddr)
	}
	return srv.ServeStdio(ctx)
}

// initLog configures the default logger.  Diagnostics go to stderr; stdout
// is reserved for the stdio MCP transport.
func initLog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("callscope", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Callscope %s\n"+
				"Callscope is a read-only MCP server for Genesys Cloud conversation\n"+
				"analytics: queue search, volumes, call quality, sentiment and\n"+
				"transcripts.\n\n"+
				"Credentials are read from %s, %s and %s\n"+
				"environment variables (or a .env file in the working directory).\n\n"+
				"Usage:  %s [flags]\n\n",
			build,
			callscope.EnvRegion, callscope.EnvClientID, callscope.EnvClientSecret,
			filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.httpAddr, "http", "", "serve MCP over streamable HTTP on the given `address` instead of stdio")
	fs.StringVar(&p.metricsAddr, "metrics", "", "serve Prometheus metrics on the given `address`")
	fs.BoolVar(&p.verbose, "v", false, "verbose output")
	fs.BoolVar(&p.printVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, nil
}
