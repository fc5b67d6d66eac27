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

// Package serializer writes reports and reads device profiles.
//
// Supported output formats:
//   - text: the value's own human-readable rendering (see TextWriter)
//   - json: indented JSON
//   - yaml: YAML with two-space indentation
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatText, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, rep); err != nil {
//		return err
//	}
//
// Reading:
//
//	profile, err := serializer.FromFile[fixture.Profile]("devices.yaml")
//
// The input format is detected from the file extension.
package serializer
