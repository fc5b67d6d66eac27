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

// Package logging configures log/slog for mtl-gpu-family-check.
//
// Records are written as JSON, to stderr in the CLI, and carry the module and version
// of the binary. Debug loggers also record the source location. Logs
// never go to stdout, which is reserved for the report.
//
// # Log Levels
//
// Supported levels (case-insensitive):
//   - DEBUG: per-device evaluation details with source location
//   - INFO: run lifecycle messages
//   - WARN/WARNING: recoverable problems such as an ignored format
//   - ERROR: failures that end the run
//
// # Usage
//
//	if err := logging.SetDefaultStructuredLoggerWithLevel(os.Stderr, "mtl-gpu-family-check", version, "warn"); err != nil {
//	    return err
//	}
//	slog.Debug("evaluated device", "ordinal", 1, "supported", 7)
//
// The CLI binds the level to --log-level and LOG_LEVEL.
//
// # Output Format
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {"function": "...", "file": "session.go", "line": 97},
//	    "msg": "evaluated device",
//	    "module": "mtl-gpu-family-check",
//	    "version": "v1.0.0",
//	    "ordinal": 1
//	}
package logging
