// Package testutil provides common testing utilities for scalus packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Redirecting cliout output into a buffer (CaptureCLI)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Staging fixture files such as scalus.json (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
//	func TestVerify(t *testing.T) {
//	    out := testutil.CaptureCLI(t)
//	    dir := testutil.TempDir(t)
//	    cfg := testutil.WriteFile(t, dir, "scalus.json", `{"protocols": []}`)
//	    // run the command against cfg, then inspect out.String()
//	}
package testutil
