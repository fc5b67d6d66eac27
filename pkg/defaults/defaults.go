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

package defaults

import "time"

// Output defaults.
const (
	// Format is the report format used when --format is not set.
	Format = "text"

	// LogLevel keeps a normal run silent on stderr.
	LogLevel = "warn"
)

// Environment variables bound to CLI flags.
const (
	EnvFormat      = "MTL_GPU_FAMILY_CHECK_FORMAT"
	EnvProfile     = "MTL_GPU_FAMILY_CHECK_PROFILE"
	EnvMetricsFile = "MTL_GPU_FAMILY_CHECK_METRICS_FILE"
	EnvLogLevel    = "LOG_LEVEL"
)

// Timeouts.
const (
	// RunTimeout bounds one full report run, from device enumeration to
	// the last byte written.
	RunTimeout = 30 * time.Second
)
