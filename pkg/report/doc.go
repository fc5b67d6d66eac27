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

// Package report assembles and renders the GPU family report.
//
// A Report holds one Device block per GPU. Each block records the device
// name, whether it is the default, the characteristics the host could
// answer and the supported/unsupported family partitions.
//
// Text renders the fixed human-readable layout:
//
//	Metal GPU Family Check
//
//	Discovered 1 Metal device.
//
//	Device 1: Apple M2 (default)
//	  Registry ID: 0x100000ABC
//	  Headless: no
//	  Supported GPU families:
//	    • Apple 1 – baseline iOS/tvOS family
//	  Unsupported (known) GPU families:
//	    • Apple 9
//
// The same Report serializes to JSON or YAML through the serializer
// package. Output never contains time-dependent data.
package report
