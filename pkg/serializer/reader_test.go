package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.json", FormatJSON, false},
		{"CONFIG.JSON", FormatJSON, false},
		{"config.yaml", FormatYAML, false},
		{"config.yml", FormatYAML, false},
		{"config.txt", "", true},
		{"config", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewReader_TextUnsupported(t *testing.T) {
	_, err := NewReader(FormatText, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"test","value":1}`, false},
		{"yaml", FormatYAML, "name: test\nvalue: 1\n", false},
		{"json unknown field", FormatJSON, `{"name":"test","extra":1}`, true},
		{"yaml unknown field", FormatYAML, "name: test\nextra: 1\n", true},
		{"json invalid", FormatJSON, `{`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var cfg testConfig
			err = r.Deserialize(&cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testConfig{Name: testName, Value: 1}, cfg)
		})
	}
}

func TestReader_NilSafety(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\nvalue: 7\n"), 0o600))

	cfg, err := FromFile[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Value)

	_, err = FromFile[testConfig](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
