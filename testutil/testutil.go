package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/browsers-core/cliout"
)

// CaptureOutput captures everything written through cliout while fn runs.
// The previous writer and output format are always restored, even if fn
// returns an error. The error returned by fn is passed through.
//
// Example:
//
//	output, err := testutil.CaptureOutput(t, func() error {
//	    cliout.Success("matched")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	prevWriter := cliout.Writer()
	prevFormat := cliout.GetFormat()
	cliout.SetWriter(&buf)
	defer func() {
		cliout.SetWriter(prevWriter)
		if err := cliout.SetFormat(string(prevFormat)); err != nil {
			t.Logf("Failed to restore output format: %v", err)
		}
	}()

	err := fn()
	return buf.String(), err
}

// WriteFile writes content to name inside a temporary directory owned by the
// test and returns the full path. The directory is removed when the test
// completes.
//
// Example:
//
//	path := testutil.WriteFile(t, "profiles.yaml", "profiles: []\n")
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
