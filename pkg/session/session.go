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

// Package session drives one report run: it enumerates devices,
// evaluates each against the family catalog and serializes the report.
package session

import (
	"context"
	"log/slog"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/header"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/report"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/serializer"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/support"
)

// NoDeviceMessage is the single line reported when no GPU exists.
const NoDeviceMessage = "No Metal-compatible GPU found."

// Session holds the collaborators of a run.
type Session struct {
	// Version is recorded in the report header.
	Version string

	// Host labels the report header (e.g. "macos 14.5"). Optional.
	Host string

	// Source names where devices came from (e.g. "metal" or a profile
	// path). Optional.
	Source string

	// Platform supplies devices and resolves families.
	Platform device.Platform

	// Catalog is the family catalog. If nil, family.Default is used.
	Catalog *family.Catalog

	// Serializer writes the report. If nil, text is written to stdout.
	Serializer serializer.Serializer
}

// Run builds the report and serializes it. When no device exists it
// returns a NOT_FOUND error and writes nothing.
func (s *Session) Run(ctx context.Context) (*report.Report, error) {
	rep, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	out := s.Serializer
	if out == nil {
		out = serializer.NewStdoutWriter(serializer.FormatText)
	}
	if err := out.Serialize(ctx, rep); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to write report", err)
	}

	return rep, nil
}

// Build enumerates the platform and evaluates every device in order.
func (s *Session) Build(ctx context.Context) (*report.Report, error) {
	if s.Platform == nil {
		return nil, errors.New(errors.ErrCodeInternal, "session has no platform")
	}
	cat := s.Catalog
	if cat == nil {
		cat = family.Default()
	}

	def, ok := s.Platform.DefaultDevice()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, NoDeviceMessage)
	}

	devices := device.List(s.Platform, def)
	slog.Debug("evaluating devices",
		"count", len(devices),
		"default", def.Name(),
		"families", cat.Len())

	rep := report.New(
		header.WithMetadata(header.KeyVersion, s.Version),
		header.WithMetadata(header.KeyHost, s.Host),
		header.WithMetadata(header.KeySource, s.Source),
	)

	for i, d := range devices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := support.Evaluate(s.Platform, d, cat)
		rep.Add(report.NewDevice(i+1, d, res, device.IsDefault(d, def)))

		slog.Debug("evaluated device",
			"ordinal", i+1,
			"name", d.Name(),
			"supported", len(res.Supported),
			"unsupported", len(res.Unsupported))
	}

	return rep, nil
}
