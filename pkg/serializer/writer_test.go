package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const testName = "test"

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type textConfig struct {
	testConfig
}

func (c textConfig) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, c.Name+"\n")
	return err
}

func TestWriter_SerializeText(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatText, &buf)

	if err := writer.Serialize(context.Background(), textConfig{testConfig{Name: testName}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != testName+"\n" {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestWriter_SerializeText_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatText, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: testName}); err == nil {
		t.Fatal("expected error for value without text rendering")
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Value != 456 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: testName, Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != testName {
		t.Errorf("expected name %q, got %q", testName, result.Name)
	}
}

func TestNewWriter_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	if err := w.Serialize(context.Background(), textConfig{testConfig{Name: testName}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != testName+"\n" {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestNewWriter_NilOutput(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	if w.output != os.Stdout {
		t.Error("expected stdout for nil output")
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	w, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := w.Serialize(context.Background(), testConfig{Name: testName}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(content), `"name": "test"`) {
		t.Errorf("unexpected file content: %s", content)
	}
}

func TestNewFileWriter_EmptyPathIsStdout(t *testing.T) {
	w, err := NewFileWriter(FormatText, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.output != os.Stdout {
		t.Error("expected stdout writer")
	}
}

func TestNewFileWriter_BadPath(t *testing.T) {
	if _, err := NewFileWriter(FormatText, filepath.Join(t.TempDir(), "missing", "out.txt")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("format %q should be known", f)
		}
	}
	if !Format("table").IsUnknown() {
		t.Error("table should be unknown")
	}
}
