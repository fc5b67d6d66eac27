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
	"strconv"
)

// namespaceSize is the width of each identifier block.
const namespaceSize = 1000

// ID is the stable numeric identifier of a GPU family.
type ID int

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Namespace returns the block the identifier belongs to.
func (id ID) Namespace() Namespace {
	return Namespace(int(id) / namespaceSize * namespaceSize)
}

// Namespace is the base of a reserved identifier block. Blocks group
// families by generation and carry no behavior.
type Namespace int

const (
	NamespaceApple       Namespace = 1000
	NamespaceMac         Namespace = 2000
	NamespaceCommon      Namespace = 3000
	NamespaceMacCatalyst Namespace = 4000
	NamespaceMetal       Namespace = 5000
)

// Namespaces is the list of all reserved blocks in ascending order.
var Namespaces = []Namespace{
	NamespaceApple,
	NamespaceMac,
	NamespaceCommon,
	NamespaceMacCatalyst,
	NamespaceMetal,
}

// String returns the display name of the namespace.
func (n Namespace) String() string {
	switch n {
	case NamespaceApple:
		return "Apple"
	case NamespaceMac:
		return "Mac"
	case NamespaceCommon:
		return "Common"
	case NamespaceMacCatalyst:
		return "Mac Catalyst"
	case NamespaceMetal:
		return "Metal"
	default:
		return fmt.Sprintf("Namespace(%d)", int(n))
	}
}

// IsValid reports whether n is one of the reserved blocks.
func (n Namespace) IsValid() bool {
	return slices.Contains(Namespaces, n)
}

// Contains reports whether id falls inside the block. The base value
// itself is reserved and never assigned.
func (n Namespace) Contains(id ID) bool {
	return int(id) > int(n) && int(id) < int(n)+namespaceSize
}

// Descriptor describes one known GPU family.
type Descriptor struct {
	Name      string    `json:"name" yaml:"name"`
	ID        ID        `json:"id" yaml:"id"`
	Namespace Namespace `json:"-" yaml:"-"`
	Note      string    `json:"note,omitempty" yaml:"note,omitempty"`
}
