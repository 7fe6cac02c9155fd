// Package testutil provides common testing utilities for browsers-core.
//
// This package includes helpers for:
//   - Capturing command output written through cliout (CaptureOutput)
//   - Writing YAML fixtures into a per-test directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestRouteCommand(t *testing.T) {
//	    rulesPath := testutil.WriteFile(t, "rules.yaml", "rules: []\n")
//	    output, err := testutil.CaptureOutput(t, func() error {
//	        return run("route", "--rules", rulesPath, "https://example.com")
//	    })
//	    ...
//	}
package testutil
