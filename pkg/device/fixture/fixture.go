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

// Package fixture implements device.Platform from a device profile file.
//
// Profiles let the report run on hosts without Metal, such as CI
// runners, and pin down exact device answers in tests:
//
//	kind: DeviceProfile
//	apiVersion: mtl-gpu-family-check/v1
//	host:
//	  os: macos
//	  version: "14.5"
//	families: [1001, 1002, 2002]   # optional; omit to recognise every identifier
//	default: 4294968000            # optional; defaults to the first device
//	devices:
//	  - name: Apple M2
//	    registryID: 4294968000
//	    headless: false
//	    supports: [1001, 2002]
//
// Characteristics left out of a device are absent from the report.
// Present ones are still gated by the host version.
package fixture

import (
	"fmt"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/header"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/serializer"
)

// Profile is the on-disk description of a simulated machine.
type Profile struct {
	header.Header `json:",inline" yaml:",inline"`

	Host     HostSpec     `json:"host" yaml:"host"`
	Families []family.ID  `json:"families,omitempty" yaml:"families,omitempty"`
	Default  *uint64      `json:"default,omitempty" yaml:"default,omitempty"`
	Devices  []DeviceSpec `json:"devices" yaml:"devices"`
}

// HostSpec is the simulated operating system.
type HostSpec struct {
	OS      string `json:"os" yaml:"os"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// DeviceSpec is one simulated GPU.
type DeviceSpec struct {
	Name       string      `json:"name" yaml:"name"`
	RegistryID uint64      `json:"registryID" yaml:"registryID"`
	Headless   *bool       `json:"headless,omitempty" yaml:"headless,omitempty"`
	LowPower   *bool       `json:"lowPower,omitempty" yaml:"lowPower,omitempty"`
	Removable  *bool       `json:"removable,omitempty" yaml:"removable,omitempty"`
	Supports   []family.ID `json:"supports,omitempty" yaml:"supports,omitempty"`
}

// Platform serves devices from a Profile.
type Platform struct {
	host    host.Info
	known   map[family.ID]bool
	def     device.Device
	devices []device.Device
}

// Load reads a profile from a .yaml, .yml or .json file.
func Load(path string) (*Platform, error) {
	p, err := serializer.FromFile[Profile](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to load device profile", err, map[string]any{"path": path})
	}
	return New(p)
}

// New builds a Platform from an in-memory profile.
func New(p *Profile) (*Platform, error) {
	if p.Kind != "" && p.Kind != header.KindProfile {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected profile kind %q, want %q", p.Kind, header.KindProfile))
	}

	h, err := host.New(p.Host.OS, p.Host.Version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid profile host", err)
	}

	plat := &Platform{host: h}

	if p.Families != nil {
		plat.known = make(map[family.ID]bool, len(p.Families))
		for _, id := range p.Families {
			plat.known[id] = true
		}
	}

	seen := make(map[uint64]string, len(p.Devices))
	for _, spec := range p.Devices {
		if spec.Name == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"profile device has empty name", map[string]any{"registryID": spec.RegistryID})
		}
		if prev, dup := seen[spec.RegistryID]; dup {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate registryID 0x%X", spec.RegistryID),
				map[string]any{"first": prev, "second": spec.Name})
		}
		seen[spec.RegistryID] = spec.Name
		plat.devices = append(plat.devices, newDevice(h, spec))
	}

	if len(plat.devices) == 0 {
		return plat, nil
	}

	if p.Default == nil {
		plat.def = plat.devices[0]
		return plat, nil
	}
	for _, d := range plat.devices {
		if d.ID() == *p.Default {
			plat.def = d
			return plat, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("default device 0x%X is not in the profile", *p.Default))
}

// Host returns the simulated host.
func (p *Platform) Host() host.Info {
	return p.host
}

// ResolveFamily recognises every identifier unless the profile limits them.
func (p *Platform) ResolveFamily(id family.ID) (device.Family, bool) {
	if p.known != nil && !p.known[id] {
		return 0, false
	}
	return device.Family(id), true
}

// DefaultDevice returns the profile's default device.
func (p *Platform) DefaultDevice() (device.Device, bool) {
	return p.def, p.def != nil
}

// Devices returns the profile's devices in file order.
func (p *Platform) Devices() []device.Device {
	return p.devices
}

// Close is a no-op.
func (p *Platform) Close() error {
	return nil
}

type simulated struct {
	id       uint64
	name     string
	chars    device.Characteristics
	supports map[device.Family]bool
}

func newDevice(h host.Info, spec DeviceSpec) *simulated {
	d := &simulated{
		id:   spec.RegistryID,
		name: spec.Name,
		chars: device.DefaultAvailability.Characteristics(h, device.Probe{
			RegistryID: &spec.RegistryID,
			Headless:   spec.Headless,
			LowPower:   spec.LowPower,
			Removable:  spec.Removable,
		}),
		supports: make(map[device.Family]bool, len(spec.Supports)),
	}
	for _, id := range spec.Supports {
		d.supports[device.Family(id)] = true
	}
	return d
}

func (d *simulated) ID() uint64 { return d.id }

func (d *simulated) Name() string { return d.name }

func (d *simulated) Characteristics() device.Characteristics { return d.chars }

func (d *simulated) SupportsFamily(f device.Family) bool { return d.supports[f] }
