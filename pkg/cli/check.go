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
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/defaults"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/device/fixture"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/device/metal"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/logging"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/metrics"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/serializer"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/session"
)

const sourceMetal = "metal"

// platform is a device platform that holds resources until closed.
type platform interface {
	device.Platform
	Close() error
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " ")),
			map[string]any{"count": cmd.Args().Len()})
	}

	if err := initLogger(cmd); err != nil {
		return err
	}
	runID := uuid.NewString()
	slog.Debug("starting",
		"run", runID,
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.RunTimeout)
	defer cancel()

	plat, h, source, err := openPlatform(cmd.String("profile"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := plat.Close(); cerr != nil {
			slog.Warn("failed to release devices", "error", cerr)
		}
	}()

	out := &reportOutput{
		format: outFormat,
		path:   cmd.String("output"),
		stdout: cmd.Root().Writer,
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("failed to close output", "path", out.path, "error", cerr)
		}
	}()

	s := &session.Session{
		Version:    version,
		Host:       h.String(),
		Source:     source,
		Platform:   plat,
		Serializer: out,
	}
	rep, err := s.Run(ctx)
	if err != nil {
		return err
	}

	if path := cmd.String("metrics-file"); path != "" {
		if err := metrics.WriteTextfile(path, rep); err != nil {
			return err
		}
		slog.Debug("wrote metrics textfile", "run", runID, "path", path)
	}

	slog.Debug("done", "run", runID, "devices", len(rep.Devices))
	return nil
}

// initLogger installs the default logger on the command's error writer.
func initLogger(cmd *cli.Command) error {
	err := logging.SetDefaultStructuredLoggerWithLevel(cmd.Root().ErrWriter, name, version, cmd.String("log-level"))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --log-level", err)
	}
	return nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if outFormat.IsUnknown() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", cmd.String("format")),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return outFormat, nil
}

// openPlatform returns the fixture platform when a profile is given and
// the Metal platform of this host otherwise, along with the report source.
func openPlatform(profile string) (platform, host.Info, string, error) {
	if profile != "" {
		p, err := fixture.Load(profile)
		if err != nil {
			return nil, host.Info{}, "", err
		}
		slog.Debug("using device profile", "path", profile, "host", p.Host().String())
		return p, p.Host(), "profile:" + profile, nil
	}

	h := host.Detect()
	p, err := metal.Open(h)
	if err != nil {
		return nil, h, "", errors.Wrap(errors.ErrCodeInternal, "failed to open Metal", err)
	}
	return p, h, sourceMetal, nil
}

// reportOutput opens its destination on the first write, so a run that
// fails before producing a report leaves no file behind.
type reportOutput struct {
	format serializer.Format
	path   string
	stdout io.Writer
	w      *serializer.Writer
}

func (o *reportOutput) Serialize(ctx context.Context, v any) error {
	if o.w == nil {
		if err := o.open(); err != nil {
			return err
		}
	}
	return o.w.Serialize(ctx, v)
}

func (o *reportOutput) open() error {
	if strings.TrimSpace(o.path) == "" {
		o.w = serializer.NewWriter(o.format, o.stdout)
		return nil
	}
	w, err := serializer.NewFileWriter(o.format, o.path)
	if err != nil {
		return err
	}
	o.w = w
	return nil
}

func (o *reportOutput) Close() error {
	if o.w == nil {
		return nil
	}
	return o.w.Close()
}
