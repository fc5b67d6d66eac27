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

package header

// Kind identifies the type of a structured document.
type Kind string

const (
	// KindReport is a GPU family report.
	KindReport Kind = "GPUFamilyReport"
	// KindProfile is a simulated device profile.
	KindProfile Kind = "DeviceProfile"
)

// APIVersion is the current document schema version.
const APIVersion = "mtl-gpu-family-check/v1"

// Metadata keys.
const (
	KeyVersion = "version"
	KeyHost    = "host"
	KeySource  = "source"
)

func (k Kind) String() string {
	return string(k)
}

// Option configures a Header.
type Option func(*Header)

// WithMetadata sets one metadata entry. Empty values are ignored.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a Header of the given kind with the current API version.
// It never records wall-clock time, so documents built from the same
// inputs are identical.
func New(kind Kind, opts ...Option) *Header {
	h := &Header{
		Kind:       kind,
		APIVersion: APIVersion,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains versioning and metadata for structured output.
// It follows Kubernetes-style resource conventions.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind" yaml:"kind"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// Metadata contains key-value pairs about how the document was produced.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
