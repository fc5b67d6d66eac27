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

package device

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
)

// Requirement is the minimum OS version that answers a probe.
type Requirement struct {
	OS         string
	Constraint *semver.Constraints
}

// Availability maps each characteristic to the hosts that can answer it.
// A characteristic with no matching requirement is unavailable.
type Availability map[Characteristic][]Requirement

// DefaultAvailability follows the Metal API availability of each property.
// Every probe is a macOS-only MTLDevice property.
var DefaultAvailability = Availability{
	CharRegistryID:    {requireOS(host.OSMacOS, ">= 10.13")},
	CharHeadless:      {requireOS(host.OSMacOS, ">= 10.11")},
	CharLowPower:      {requireOS(host.OSMacOS, ">= 10.13")},
	CharRemovable:     {requireOS(host.OSMacOS, ">= 10.13")},
	CharSharesDisplay: {requireOS(host.OSMacOS, ">= 10.15")},
}

func requireOS(osName, constraint string) Requirement {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("invalid availability constraint %q: %v", constraint, err))
	}
	return Requirement{OS: osName, Constraint: c}
}

// Available reports whether h can answer the characteristic probe.
// A host with an unknown version answers nothing.
func (a Availability) Available(c Characteristic, h host.Info) bool {
	if h.Version == nil {
		return false
	}
	for _, r := range a[c] {
		if r.OS == h.OS && r.Constraint.Check(h.Version) {
			return true
		}
	}
	return false
}

// Characteristics gates raw probe answers by host availability. The
// shared-display characteristic is derived from the removable and
// headless answers.
func (a Availability) Characteristics(h host.Info, p Probe) Characteristics {
	out := make(Characteristics)

	if p.RegistryID != nil && a.Available(CharRegistryID, h) {
		out[CharRegistryID] = RegistryID(*p.RegistryID)
	}
	if p.Headless != nil && a.Available(CharHeadless, h) {
		out[CharHeadless] = Bool(*p.Headless)
	}
	if p.LowPower != nil && a.Available(CharLowPower, h) {
		out[CharLowPower] = Bool(*p.LowPower)
	}
	if p.Removable != nil && a.Available(CharRemovable, h) {
		out[CharRemovable] = Bool(*p.Removable)
	}
	if p.Removable != nil && p.Headless != nil && a.Available(CharSharesDisplay, h) {
		out[CharSharesDisplay] = Bool(!(*p.Removable || *p.Headless))
	}

	return out
}
