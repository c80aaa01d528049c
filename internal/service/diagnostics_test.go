package service

import (
	"bytes"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osa911/astrobooking/internal/logging"
)

func TestDiagnosticsRecorderOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation_error.log")
	recorder := NewDiagnosticsRecorder(path, logging.NewWriterLogger(&bytes.Buffer{}, "debug"))

	recorder.Record("booking", url.Values{"phone": {"123"}, "tags": {"a", "b"}}, []string{`"phone" is required`})
	recorder.Record("contact", url.Values{"firstName": {"A"}}, []string{`"firstName" length must be at least 2 characters long`})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"endpoint\": \"contact\"") {
		t.Errorf("record is not indented with two spaces:\n%s", data)
	}

	var got DiagnosticRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Endpoint != "contact" {
		t.Errorf("Endpoint = %q, want %q", got.Endpoint, "contact")
	}
	if got.Body["firstName"] != "A" {
		t.Errorf("Body[firstName] = %v, want %q", got.Body["firstName"], "A")
	}
	if len(got.Errors) != 1 {
		t.Errorf("Errors = %v, want one entry", got.Errors)
	}
}

func TestDiagnosticsRecorderFailureIsLogged(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "dir", "validation_error.log")
	recorder := NewDiagnosticsRecorder(path, logging.NewWriterLogger(&out, "debug"))

	recorder.Record("booking", url.Values{}, []string{"x"})

	if !strings.Contains(out.String(), "Failed to write validation record") {
		t.Errorf("expected a warning, got %q", out.String())
	}
}

func TestDiagnosticsRecorderDisabled(t *testing.T) {
	var recorder *DiagnosticsRecorder
	recorder.Record("booking", nil, nil)

	NewDiagnosticsRecorder("", nil).Record("booking", nil, nil)
}

func TestFlattenForm(t *testing.T) {
	got := FlattenForm(url.Values{"a": {"1"}, "b": {"2", "3"}})
	if got["a"] != "1" {
		t.Errorf("FlattenForm()[a] = %v, want 1", got["a"])
	}
	if list, ok := got["b"].([]string); !ok || len(list) != 2 {
		t.Errorf("FlattenForm()[b] = %v, want two values", got["b"])
	}
}
