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

// Package header provides the common header for structured documents.
//
// Reports serialized as JSON or YAML begin with a Kubernetes-style header:
//
//	kind: GPUFamilyReport
//	apiVersion: mtl-gpu-family-check/v1
//	metadata:
//	  version: v0.1.0
//	  host: macos 14.5
//
// The header carries no timestamp: output is a function of the devices
// and the tool version only.
package header
