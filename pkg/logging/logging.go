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

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SetDefaultStructuredLoggerWithLevel installs a JSON logger writing to w
// as the slog default. Unknown level names are rejected.
func SetDefaultStructuredLoggerWithLevel(w io.Writer, module, version, level string) error {
	logger, err := NewStructuredLogger(w, module, version, level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// NewStructuredLogger returns a JSON logger writing to w, tagged with
// module and version. Debug loggers include the source location.
func NewStructuredLogger(w io.Writer, module, version, level string) (*slog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})
	return slog.New(h).With("module", module, "version", version), nil
}

// ParseLogLevel converts a case-insensitive level name to a slog.Level.
// An empty name is info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
