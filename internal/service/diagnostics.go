package service

import (
	"encoding/json"
	"net/url"
	"os"
	"sync"

	"github.com/osa911/astrobooking/internal/logging"
)

// DiagnosticRecord is the last rejected submission, kept for troubleshooting
type DiagnosticRecord struct {
	Endpoint string         `json:"endpoint"`
	Body     map[string]any `json:"body"`
	Errors   []string       `json:"errors"`
}

// DiagnosticsRecorder overwrites a single file with the most recent
// validation failure. Writes are best effort and never fail the request.
type DiagnosticsRecorder struct {
	path   string
	logger *logging.Logger
	mu     sync.Mutex
}

// NewDiagnosticsRecorder returns a recorder writing to path. An empty path
// disables recording.
func NewDiagnosticsRecorder(path string, logger *logging.Logger) *DiagnosticsRecorder {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DiagnosticsRecorder{path: path, logger: logger}
}

// Record writes the record, logging any failure as a warning
func (r *DiagnosticsRecorder) Record(endpoint string, form url.Values, errs []string) {
	if r == nil || r.path == "" {
		return
	}

	record := DiagnosticRecord{
		Endpoint: endpoint,
		Body:     FlattenForm(form),
		Errors:   errs,
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		r.logger.Warn("Failed to encode validation record for %s: %v", endpoint, err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Warn("Failed to write validation record to %s: %v", r.path, err)
	}
}

// FlattenForm turns single-valued fields into plain strings and keeps
// repeated fields as lists.
func FlattenForm(form url.Values) map[string]any {
	body := make(map[string]any, len(form))
	for key, values := range form {
		if len(values) == 1 {
			body[key] = values[0]
			continue
		}
		body[key] = values
	}
	return body
}
