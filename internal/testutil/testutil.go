// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/course-sidebar/internal/logging"
)

// WriteFile writes body to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// UseTempLog points the process logger at a temporary file for the duration
// of the test and returns its path.
func UseTempLog(t *testing.T, trace bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course-sidebar.log")
	logging.Configure(path)
	logging.SetTraceEnabled(trace)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	return path
}
