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
	"fmt"
	"io"
	"strings"
)

const (
	indent = "  "
	bullet = "    • "

	supportedHeader   = indent + "Supported GPU families:"
	supportedNone     = indent + "Supported GPU families: none from the known list."
	unsupportedHeader = indent + "Unsupported (known) GPU families:"
)

// WriteText renders the full report.
func (r *Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// Text returns the full report as text.
func (r *Report) Text() string {
	var b strings.Builder

	b.WriteString(Title + "\n\n")
	fmt.Fprintf(&b, "Discovered %d Metal device%s.\n\n", len(r.Devices), plural(len(r.Devices)))

	for _, d := range r.Devices {
		d.write(&b)
		b.WriteString("\n")
	}

	return b.String()
}

// WriteText renders one device block.
func (d Device) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, d.Text())
	return err
}

// Text returns one device block as text.
func (d Device) Text() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d Device) write(b *strings.Builder) {
	fmt.Fprintf(b, "Device %d: %s", d.Ordinal, d.Name)
	if d.Default {
		b.WriteString(" (default)")
	}
	b.WriteString("\n")

	for _, c := range d.Characteristics {
		fmt.Fprintf(b, "%s%s: %s\n", indent, c.Name, c.Value)
	}

	if len(d.Supported) == 0 {
		b.WriteString(supportedNone + "\n")
	} else {
		b.WriteString(supportedHeader + "\n")
		for _, e := range d.Supported {
			b.WriteString(bullet + e.Display() + "\n")
		}
	}

	if len(d.Unsupported) > 0 {
		b.WriteString(unsupportedHeader + "\n")
		for _, e := range d.Unsupported {
			// notes only qualify supported families
			b.WriteString(bullet + e.Name + "\n")
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
