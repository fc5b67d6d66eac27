// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/defaults"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/serializer"
)

const (
	name           = "mtl-gpu-family-check"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Report which Metal GPU families each GPU supports",
		Description: `Enumerates every Metal device on this machine, queries each one against
the known list of GPU families and prints a per-device report.

# Examples

Text report on stdout:
  mtl-gpu-family-check

Structured output to a file:
  mtl-gpu-family-check --format yaml --output gpus.yaml

Simulated devices, with node-exporter textfile metrics:
  mtl-gpu-family-check --profile dual-gpu.yaml --metrics-file /var/lib/node_exporter/mtl.prom`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("output format (%v)", serializer.SupportedFormats()),
				Sources: cli.EnvVars(defaults.EnvFormat),
				Value:   defaults.Format,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the report to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "read devices from a YAML or JSON device profile instead of Metal",
				Sources: cli.EnvVars(defaults.EnvProfile),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "also write Prometheus textfile metrics to this path",
				Sources: cli.EnvVars(defaults.EnvMetricsFile),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(defaults.EnvLogLevel),
				Value:   defaults.LogLevel,
			},
		},
		Writer:    stdout,
		ErrWriter: stderr,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid usage", err)
		},
		Action: checkAction,
	}
}

// Execute runs the root command against the process arguments and exits.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the command line in args and returns the process exit code.
// The report goes to stdout; the one-line error, if any, goes to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newRootCmd(stdout, stderr).Run(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, errorLine(err))
	}
	return exitCode(err)
}
