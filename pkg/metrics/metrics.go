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

// Package metrics exports a report as Prometheus series in the textfile
// collector format, so node-exporter can pick up GPU family support.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/report"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/support"
)

const namespace = "mtl_gpu_family"

// Registry holds the report series on a private prometheus.Registry.
type Registry struct {
	reg       *prometheus.Registry
	devices   prometheus.Gauge
	supported *prometheus.GaugeVec
}

// NewRegistry creates an empty registry with the report series registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		devices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "devices",
				Help:      "Number of Metal devices in the last report",
			},
		),
		supported: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "supported",
				Help:      "Whether a device supports a known GPU family (1) or not (0)",
			},
			[]string{"device", "ordinal", "family", "id"},
		),
	}
	r.reg.MustRegister(r.devices, r.supported)
	return r
}

// Observe records every device of the report. Families skipped by the
// evaluation produce no series.
func (r *Registry) Observe(rep *report.Report) {
	r.devices.Set(float64(len(rep.Devices)))
	for _, d := range rep.Devices {
		ordinal := strconv.Itoa(d.Ordinal)
		r.set(d.Name, ordinal, d.Supported, 1)
		r.set(d.Name, ordinal, d.Unsupported, 0)
	}
}

func (r *Registry) set(dev, ordinal string, entries []support.Entry, v float64) {
	for _, e := range entries {
		r.supported.WithLabelValues(dev, ordinal, e.Name, e.ID.String()).Set(v)
	}
}

// WriteTextfile writes the registry to path atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to write metrics textfile", err, map[string]any{"path": path})
	}
	return nil
}

// WriteTextfile observes rep in a fresh registry and writes it to path.
func WriteTextfile(path string, rep *report.Report) error {
	r := NewRegistry()
	r.Observe(rep)
	return r.WriteTextfile(path)
}
