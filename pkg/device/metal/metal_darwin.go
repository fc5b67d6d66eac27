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

//go:build darwin && cgo

package metal

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Metal -framework Foundation

#import <Foundation/Foundation.h>
#import <Metal/Metal.h>
#include <TargetConditionals.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

// Probe results: -1 unavailable, 0 false, 1 true.

static void* mtl_default_device(void) {
	id<MTLDevice> dev = MTLCreateSystemDefaultDevice();
	if (dev == nil) {
		return NULL;
	}
	return (__bridge_retained void*)dev;
}

static int mtl_device_count(void) {
#if TARGET_OS_OSX
	@autoreleasepool {
		NSArray<id<MTLDevice>>* all = MTLCopyAllDevices();
		return (int)all.count;
	}
#else
	return 0;
#endif
}

static void* mtl_device_at(int i) {
#if TARGET_OS_OSX
	@autoreleasepool {
		NSArray<id<MTLDevice>>* all = MTLCopyAllDevices();
		if (i < 0 || (NSUInteger)i >= all.count) {
			return NULL;
		}
		return (__bridge_retained void*)all[(NSUInteger)i];
	}
#else
	return NULL;
#endif
}

static void mtl_release(void* d) {
	if (d != NULL) {
		id obj = (__bridge_transfer id)d;
		(void)obj;
	}
}

static char* mtl_device_name(void* d) {
	id<MTLDevice> dev = (__bridge id<MTLDevice>)d;
	const char* name = dev.name.UTF8String;
	return strdup(name != NULL ? name : "");
}

static int mtl_device_registry_id(void* d, uint64_t* out) {
#if TARGET_OS_OSX
	if (@available(macOS 10.13, *)) {
		id<MTLDevice> dev = (__bridge id<MTLDevice>)d;
		*out = dev.registryID;
		return 1;
	}
#endif
	return 0;
}

static int mtl_device_headless(void* d) {
#if TARGET_OS_OSX
	if (@available(macOS 10.11, *)) {
		return ((__bridge id<MTLDevice>)d).headless ? 1 : 0;
	}
#endif
	return -1;
}

static int mtl_device_low_power(void* d) {
#if TARGET_OS_OSX
	if (@available(macOS 10.13, *)) {
		return ((__bridge id<MTLDevice>)d).lowPower ? 1 : 0;
	}
#endif
	return -1;
}

static int mtl_device_removable(void* d) {
#if TARGET_OS_OSX
	if (@available(macOS 10.13, *)) {
		return ((__bridge id<MTLDevice>)d).removable ? 1 : 0;
	}
#endif
	return -1;
}

static int mtl_device_supports_family(void* d, int64_t raw) {
	if (@available(macOS 10.15, iOS 13.0, *)) {
		return [(__bridge id<MTLDevice>)d supportsFamily:(MTLGPUFamily)raw] ? 1 : 0;
	}
	return 0;
}
*/
import "C"

import (
	"log/slog"
	"unsafe"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/host"
)

// Platform is the Metal runtime of this machine. Close releases the
// retained device handles.
type Platform struct {
	host    host.Info
	def     *gpu
	devices []device.Device
	handles []unsafe.Pointer
}

// Open enumerates Metal devices. A machine without Metal yields a
// platform with no default device rather than an error.
func Open(h host.Info) (*Platform, error) {
	p := &Platform{host: h}

	handle := C.mtl_default_device()
	if handle == nil {
		slog.Debug("no default metal device", "host", h.String())
		return p, nil
	}
	p.handles = append(p.handles, handle)
	p.def = p.newGPU(handle)

	n := int(C.mtl_device_count())
	for i := 0; i < n; i++ {
		dh := C.mtl_device_at(C.int(i))
		if dh == nil {
			continue
		}
		p.handles = append(p.handles, dh)
		p.devices = append(p.devices, p.newGPU(dh))
	}

	slog.Debug("metal devices enumerated",
		"host", h.String(),
		"default", p.def.name,
		"count", len(p.devices))

	return p, nil
}

// DefaultDevice returns the system default Metal device.
func (p *Platform) DefaultDevice() (device.Device, bool) {
	if p.def == nil {
		return nil, false
	}
	return p.def, true
}

// Devices returns every Metal device. It is empty off macOS.
func (p *Platform) Devices() []device.Device {
	return p.devices
}

// Close releases all device handles. The platform is unusable afterwards.
func (p *Platform) Close() error {
	for _, h := range p.handles {
		C.mtl_release(h)
	}
	p.handles = nil
	p.def = nil
	p.devices = nil
	return nil
}

func (p *Platform) newGPU(handle unsafe.Pointer) *gpu {
	g := &gpu{handle: handle}

	cname := C.mtl_device_name(handle)
	g.name = C.GoString(cname)
	C.free(unsafe.Pointer(cname))

	var probe device.Probe

	var rid C.uint64_t
	if C.mtl_device_registry_id(handle, &rid) == 1 {
		v := uint64(rid)
		probe.RegistryID = &v
		g.id = v
	} else {
		// no registry on this OS; fall back to object identity
		g.id = uint64(uintptr(handle))
	}

	probe.Headless = tristate(C.mtl_device_headless(handle))
	probe.LowPower = tristate(C.mtl_device_low_power(handle))
	probe.Removable = tristate(C.mtl_device_removable(handle))

	g.chars = device.DefaultAvailability.Characteristics(p.host, probe)
	return g
}

func tristate(v C.int) *bool {
	if v < 0 {
		return nil
	}
	b := v == 1
	return &b
}

type gpu struct {
	handle unsafe.Pointer
	id     uint64
	name   string
	chars  device.Characteristics
}

func (g *gpu) ID() uint64 { return g.id }

func (g *gpu) Name() string { return g.name }

func (g *gpu) Characteristics() device.Characteristics { return g.chars }

func (g *gpu) SupportsFamily(f device.Family) bool {
	return C.mtl_device_supports_family(g.handle, C.int64_t(f)) == 1
}
