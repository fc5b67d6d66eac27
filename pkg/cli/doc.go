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

// Package cli implements the mtl-gpu-family-check command line.
//
// With no arguments the command enumerates the Metal devices of this
// machine and prints a text report to stdout:
//
//	mtl-gpu-family-check
//
// Optional flags select the output format and destination, replace Metal
// with a device profile, and write Prometheus textfile metrics:
//
//	mtl-gpu-family-check --format json --output gpus.json
//	mtl-gpu-family-check --profile dual-gpu.yaml --metrics-file mtl.prom
//
// # Exit Codes
//
//   - 0: report written, including devices with no supported family
//   - 1: no Metal device, or an internal failure
//   - 2: invalid flags, arguments or device profile
//
// When no device exists stderr receives exactly one line,
// "No Metal-compatible GPU found.", and stdout is empty.
//
// # Environment
//
//	MTL_GPU_FAMILY_CHECK_FORMAT        default for --format
//	MTL_GPU_FAMILY_CHECK_PROFILE       default for --profile
//	MTL_GPU_FAMILY_CHECK_METRICS_FILE  default for --metrics-file
//	LOG_LEVEL                          default for --log-level
package cli
