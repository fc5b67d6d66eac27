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

// Package support partitions the family catalog into the families a
// device supports and the ones it does not.
package support

import (
	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
)

// Entry is one family in a partition.
type Entry struct {
	Name string    `json:"name" yaml:"name"`
	ID   family.ID `json:"id" yaml:"id"`
	Note string    `json:"note,omitempty" yaml:"note,omitempty"`
}

// Display renders the entry as "name" or "name – note".
func (e Entry) Display() string {
	if e.Note == "" {
		return e.Name
	}
	return e.Name + " – " + e.Note
}

// Result holds the supported and unsupported families of one device,
// each in catalog order.
type Result struct {
	Supported   []Entry `json:"supported" yaml:"supported"`
	Unsupported []Entry `json:"unsupported" yaml:"unsupported"`
}

// Evaluate queries dev for every family in cat. Families the resolver
// does not recognise are left out of both partitions. Notes are kept
// only on supported entries.
func Evaluate(r device.Resolver, dev device.Device, cat *family.Catalog) Result {
	res := Result{
		Supported:   []Entry{},
		Unsupported: []Entry{},
	}

	for _, d := range cat.Descriptors() {
		f, ok := r.ResolveFamily(d.ID)
		if !ok {
			continue
		}
		if dev.SupportsFamily(f) {
			res.Supported = append(res.Supported, Entry{Name: d.Name, ID: d.ID, Note: d.Note})
		} else {
			res.Unsupported = append(res.Unsupported, Entry{Name: d.Name, ID: d.ID})
		}
	}

	return res
}
