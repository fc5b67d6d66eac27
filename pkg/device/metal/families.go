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

package metal

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
)

// introduced maps MTLGPUFamily raw values to the OS releases that
// define them.
var introduced = map[family.ID]map[string]*semver.Constraints{
	1001: since("10.15", "13.0"),
	1002: since("10.15", "13.0"),
	1003: since("10.15", "13.0"),
	1004: since("10.15", "13.0"),
	1005: since("10.15", "13.0"),
	1006: since("10.15", "13.0"),
	1007: since("11.0", "14.0"),
	1008: since("12.0", "15.0"),
	1009: since("14.0", "17.0"),
	1010: since("26.0", "26.0"),

	2001: since("10.15", "13.0"),
	2002: since("10.15", "13.0"),

	3001: since("10.15", "13.0"),
	3002: since("10.15", "13.0"),
	3003: since("10.15", "13.0"),

	4001: since("10.15", "13.0"),
	4002: since("10.15", "13.0"),

	5001: since("13.0", "16.0"),
	5002: since("26.0", "26.0"),
}

func since(macOS, iOS string) map[string]*semver.Constraints {
	return map[string]*semver.Constraints{
		host.OSMacOS: mustConstraint(">= " + macOS),
		host.OSiOS:   mustConstraint(">= " + iOS),
	}
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(fmt.Sprintf("invalid constraint %q: %v", s, err))
	}
	return c
}

// resolve reports whether the OS described by h defines the family.
func resolve(h host.Info, id family.ID) (device.Family, bool) {
	if h.Version == nil {
		return 0, false
	}
	c, ok := introduced[id][h.OS]
	if !ok || !c.Check(h.Version) {
		return 0, false
	}
	return device.Family(id), true
}

// ResolveFamily maps a catalog identifier to the native MTLGPUFamily value.
func (p *Platform) ResolveFamily(id family.ID) (device.Family, bool) {
	return resolve(p.host, id)
}

var _ device.Platform = (*Platform)(nil)
