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
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
)

// Family is the runtime's native representation of a GPU family.
type Family int64

// Resolver maps catalog identifiers to native families. Resolution fails
// when the running runtime predates the family.
type Resolver interface {
	ResolveFamily(id family.ID) (Family, bool)
}

// Device is a single GPU exposed by the platform.
type Device interface {
	// ID is the device identity used to match the default device.
	ID() uint64

	// Name is the display name reported by the driver.
	Name() string

	// Characteristics returns the optional attributes this host can answer.
	Characteristics() Characteristics

	// SupportsFamily queries live support for a resolved family.
	SupportsFamily(f Family) bool
}

// Platform enumerates devices and resolves families.
type Platform interface {
	Resolver

	// DefaultDevice returns the platform-selected device. The second
	// result is false when no device exists.
	DefaultDevice() (Device, bool)

	// Devices returns every device, in platform order. It may be empty
	// where the platform only exposes the default device.
	Devices() []Device
}

// List returns the devices a report covers: the full list, or the
// default device alone when the platform returns none.
func List(p Platform, def Device) []Device {
	devices := p.Devices()
	if len(devices) == 0 {
		return []Device{def}
	}
	return devices
}

// IsDefault reports whether d is the default device.
func IsDefault(d, def Device) bool {
	return def != nil && d.ID() == def.ID()
}
