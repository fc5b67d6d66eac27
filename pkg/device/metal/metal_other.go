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

//go:build !darwin || !cgo

package metal

import (
	"log/slog"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
)

// Platform is a Metal platform. This build has no Metal runtime.
type Platform struct {
	host host.Info
}

// Open returns a platform without devices.
func Open(h host.Info) (*Platform, error) {
	slog.Debug("metal runtime not available in this build", "host", h.String())
	return &Platform{host: h}, nil
}

// DefaultDevice always reports no device.
func (p *Platform) DefaultDevice() (device.Device, bool) {
	return nil, false
}

// Devices returns nil.
func (p *Platform) Devices() []device.Device {
	return nil
}

// Close is a no-op.
func (p *Platform) Close() error {
	return nil
}
