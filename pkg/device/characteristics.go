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
	"strings"
)

// Characteristic names an optional device attribute.
type Characteristic string

const (
	CharRegistryID    Characteristic = "Registry ID"
	CharHeadless      Characteristic = "Headless"
	CharLowPower      Characteristic = "Low Power"
	CharRemovable     Characteristic = "Removable"
	CharSharesDisplay Characteristic = "Shared with display"
)

// CharacteristicOrder is the order characteristics are reported in.
var CharacteristicOrder = []Characteristic{
	CharRegistryID,
	CharHeadless,
	CharLowPower,
	CharRemovable,
	CharSharesDisplay,
}

// String returns the display label.
func (c Characteristic) String() string {
	return string(c)
}

// Key returns the machine-friendly name (e.g. "low-power").
func (c Characteristic) Key() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Value is the answer to a characteristic probe.
type Value struct {
	text   string
	flag   bool
	isFlag bool
}

// Bool wraps a yes/no answer.
func Bool(b bool) Value {
	return Value{flag: b, isFlag: true}
}

// Text wraps a free-form answer.
func Text(s string) Value {
	return Value{text: s}
}

// RegistryID formats a registry identifier as upper-case hex.
func RegistryID(id uint64) Value {
	return Text(fmt.Sprintf("0x%X", id))
}

// String renders the value for display: "yes"/"no" for flags.
func (v Value) String() string {
	if v.isFlag {
		if v.flag {
			return "yes"
		}
		return "no"
	}
	return v.text
}

// Characteristics holds the probes that succeeded on this host. A missing
// key means the probe is unavailable, never false.
type Characteristics map[Characteristic]Value

// Get returns the value and whether the probe is present.
func (c Characteristics) Get(name Characteristic) (Value, bool) {
	v, ok := c[name]
	return v, ok
}

// Ordered returns present characteristics in CharacteristicOrder.
func (c Characteristics) Ordered() []Characteristic {
	out := make([]Characteristic, 0, len(c))
	for _, name := range CharacteristicOrder {
		if _, ok := c[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Probe holds raw attribute answers from a platform before availability
// gating. Nil fields were not answered.
type Probe struct {
	RegistryID *uint64
	Headless   *bool
	LowPower   *bool
	Removable  *bool
}
