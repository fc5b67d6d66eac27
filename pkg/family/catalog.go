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

package family

import (
	"fmt"
	"slices"
	"sync"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
)

// Catalog is an ordered, immutable set of family descriptors.
// Insertion order is the report order.
type Catalog struct {
	descriptors []Descriptor
}

// New builds a catalog from the given descriptors and validates it.
// Descriptors without a namespace are assigned the block their ID falls in.
func New(descriptors ...Descriptor) (*Catalog, error) {
	c := &Catalog{descriptors: make([]Descriptor, 0, len(descriptors))}
	for _, d := range descriptors {
		if d.Namespace == 0 {
			d.Namespace = d.ID.Namespace()
		}
		c.descriptors = append(c.descriptors, d)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that identifiers and names are unique and that every
// identifier stays inside its namespace block.
func (c *Catalog) Validate() error {
	ids := make(map[ID]string, len(c.descriptors))
	names := make(map[string]ID, len(c.descriptors))

	for _, d := range c.descriptors {
		if d.Name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"family descriptor has empty name", map[string]any{"id": int(d.ID)})
		}
		if prev, ok := ids[d.ID]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate family id %d", d.ID),
				map[string]any{"first": prev, "second": d.Name})
		}
		if prev, ok := names[d.Name]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate family name %q", d.Name),
				map[string]any{"first": int(prev), "second": int(d.ID)})
		}
		if !d.Namespace.IsValid() {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("family %q uses unknown namespace %d", d.Name, int(d.Namespace)),
				map[string]any{"id": int(d.ID)})
		}
		if !d.Namespace.Contains(d.ID) {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("family %q id %d outside %s namespace", d.Name, d.ID, d.Namespace),
				map[string]any{"namespace": int(d.Namespace)})
		}
		ids[d.ID] = d.Name
		names[d.Name] = d.ID
	}
	return nil
}

// Descriptors returns a copy of the descriptors in catalog order.
func (c *Catalog) Descriptors() []Descriptor {
	return slices.Clone(c.descriptors)
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// Default returns the built-in catalog. It is built on first use and
// shared by all callers.
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(known()...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in family catalog: %v", err))
	}
	return c
})

// known lists the built-in families. Append only: never renumber or
// reorder a shipped entry.
func known() []Descriptor {
	var b builder

	b.add(NamespaceApple, "Apple 1", 1001, "baseline iOS/tvOS family")
	b.add(NamespaceApple, "Apple 2", 1002, "")
	b.add(NamespaceApple, "Apple 3", 1003, "")
	b.add(NamespaceApple, "Apple 4", 1004, "")
	b.add(NamespaceApple, "Apple 5", 1005, "")
	b.add(NamespaceApple, "Apple 6", 1006, "")
	b.add(NamespaceApple, "Apple 7", 1007, "")
	b.add(NamespaceApple, "Apple 8", 1008, "")
	b.add(NamespaceApple, "Apple 9", 1009, "")
	b.add(NamespaceApple, "Apple 10", 1010, "")

	b.add(NamespaceMac, "Mac 1", 2001, "deprecated in favor of Mac 2")
	b.add(NamespaceMac, "Mac 2", 2002, "")

	b.add(NamespaceCommon, "Common 1", 3001, "")
	b.add(NamespaceCommon, "Common 2", 3002, "")
	b.add(NamespaceCommon, "Common 3", 3003, "")

	b.add(NamespaceMacCatalyst, "Mac Catalyst 1", 4001, "deprecated in favor of Mac 2")
	b.add(NamespaceMacCatalyst, "Mac Catalyst 2", 4002, "deprecated in favor of Mac 2")

	b.add(NamespaceMetal, "Metal 3", 5001, "")
	b.add(NamespaceMetal, "Metal 4", 5002, "requires macOS 26 or newer")

	return b.descriptors
}

type builder struct {
	descriptors []Descriptor
}

func (b *builder) add(ns Namespace, name string, id ID, note string) {
	b.descriptors = append(b.descriptors, Descriptor{
		Name:      name,
		ID:        id,
		Namespace: ns,
		Note:      note,
	})
}
