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

package report

import (
	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/header"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/support"
)

// Title is the first line of every text report.
const Title = "Metal GPU Family Check"

// Report is the assembled result for every device on the machine.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Devices []Device `json:"devices" yaml:"devices"`
}

// Characteristic is one rendered optional attribute.
type Characteristic struct {
	Name  string `json:"name" yaml:"name"`
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Device is the report block of a single device.
type Device struct {
	Ordinal         int              `json:"ordinal" yaml:"ordinal"`
	Name            string           `json:"name" yaml:"name"`
	ID              uint64           `json:"id" yaml:"id"`
	Default         bool             `json:"default" yaml:"default"`
	Characteristics []Characteristic `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	Supported       []support.Entry  `json:"supported" yaml:"supported"`
	Unsupported     []support.Entry  `json:"unsupported" yaml:"unsupported"`
}

// New creates an empty report with a header.
func New(opts ...header.Option) *Report {
	return &Report{
		Header:  *header.New(header.KindReport, opts...),
		Devices: []Device{},
	}
}

// NewDevice captures one device block. Ordinal is 1-based. Only present
// characteristics are recorded, in report order.
func NewDevice(ordinal int, dev device.Device, res support.Result, isDefault bool) Device {
	chars := dev.Characteristics()
	d := Device{
		Ordinal:     ordinal,
		Name:        dev.Name(),
		ID:          dev.ID(),
		Default:     isDefault,
		Supported:   res.Supported,
		Unsupported: res.Unsupported,
	}
	for _, name := range chars.Ordered() {
		v, _ := chars.Get(name)
		d.Characteristics = append(d.Characteristics, Characteristic{
			Name:  name.String(),
			Key:   name.Key(),
			Value: v.String(),
		})
	}
	return d
}

// Add appends a device block.
func (r *Report) Add(d Device) {
	r.Devices = append(r.Devices, d)
}
