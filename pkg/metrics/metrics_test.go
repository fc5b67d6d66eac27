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

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/report"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/support"
)

func testReport() *report.Report {
	rep := report.New()
	rep.Add(report.Device{
		Ordinal: 1,
		Name:    "Apple M2",
		ID:      0x10,
		Default: true,
		Supported: []support.Entry{
			{Name: "Apple 1", ID: 1001, Note: "baseline iOS/tvOS family"},
			{Name: "Metal 3", ID: 5001},
		},
		Unsupported: []support.Entry{
			{Name: "Metal 4", ID: 5002},
		},
	})
	rep.Add(report.Device{
		Ordinal:     2,
		Name:        "Apple M2",
		ID:          0x11,
		Supported:   []support.Entry{},
		Unsupported: []support.Entry{},
	})
	return rep
}

func readTextfile(t *testing.T, rep *report.Report) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mtl.prom")
	require.NoError(t, WriteTextfile(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteTextfile(t *testing.T) {
	got := readTextfile(t, testReport())

	tests := []struct {
		name string
		line string
	}{
		{"device count type", "# TYPE mtl_gpu_family_devices gauge"},
		{"device count", "mtl_gpu_family_devices 2"},
		{"supported type", "# TYPE mtl_gpu_family_supported gauge"},
		{"supported family", `mtl_gpu_family_supported{device="Apple M2",family="Apple 1",id="1001",ordinal="1"} 1`},
		{"second supported family", `mtl_gpu_family_supported{device="Apple M2",family="Metal 3",id="5001",ordinal="1"} 1`},
		{"unsupported family", `mtl_gpu_family_supported{device="Apple M2",family="Metal 4",id="5002",ordinal="1"} 0`},
	}

	lines := strings.Split(got, "\n")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, lines, tt.line)
		})
	}
}

func TestWriteTextfile_EmptyPartitionsHaveNoSeries(t *testing.T) {
	got := readTextfile(t, testReport())
	assert.NotContains(t, got, `ordinal="2"`)
}

func TestWriteTextfile_NoDevices(t *testing.T) {
	got := readTextfile(t, report.New())
	assert.Contains(t, got, "mtl_gpu_family_devices 0\n")
	assert.NotContains(t, got, "mtl_gpu_family_supported{")
}

func TestWriteTextfile_Deterministic(t *testing.T) {
	assert.Equal(t, readTextfile(t, testReport()), readTextfile(t, testReport()))
}

func TestWriteTextfile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "mtl.prom")
	err := WriteTextfile(path, testReport())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
}
