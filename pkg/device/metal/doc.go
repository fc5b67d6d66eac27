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

// Package metal implements device.Platform on top of Apple's Metal API.
//
// On darwin with cgo enabled, Open bridges to MTLCreateSystemDefaultDevice,
// MTLCopyAllDevices and -[MTLDevice supportsFamily:]. Every other build
// returns a platform without devices, which the report treats as "no
// Metal-compatible GPU".
//
// Family identifiers are resolved against the running OS: each native
// MTLGPUFamily value exists only from the OS release that introduced it,
// so an older runtime does not recognise newer families.
//
//	p, err := metal.Open(host.Detect())
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
package metal
