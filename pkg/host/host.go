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

package host

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// OS names used for availability checks.
const (
	OSMacOS = "macos"
	OSiOS   = "ios"
)

// Info identifies the operating system probes are gated against.
type Info struct {
	// OS is the lower-case OS name (macos, ios, linux, ...).
	OS string `json:"os" yaml:"os"`

	// Version is the OS product version. Nil when unknown.
	Version *semver.Version `json:"version,omitempty" yaml:"version,omitempty"`
}

// New builds an Info from an OS name and a version string such as "14.5".
// An empty version leaves Version unset.
func New(osName, version string) (Info, error) {
	info := Info{OS: normalizeOS(osName)}
	if strings.TrimSpace(version) == "" {
		return info, nil
	}
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return Info{}, fmt.Errorf("invalid %s version %q: %w", info.OS, version, err)
	}
	info.Version = v
	return info, nil
}

// String returns "os version", or just the OS name when the version is unknown.
func (i Info) String() string {
	if i.Version == nil {
		return i.OS
	}
	return i.OS + " " + i.Version.Original()
}

// Detect returns the running host. The version is looked up from the
// kernel where the platform exposes it.
func Detect() Info {
	info := Info{OS: normalizeOS(runtime.GOOS)}
	if raw := productVersion(); raw != "" {
		if v, err := semver.NewVersion(raw); err == nil {
			info.Version = v
		}
	}
	return info
}

func normalizeOS(name string) string {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "darwin", "macos", "macosx", "osx":
		return OSMacOS
	case "ios", "ipados":
		return OSiOS
	default:
		return n
	}
}
