// Package security validates the paths scalus writes to and the files it
// trusts.
//
// Generated connection profiles are named from URL content, so the final
// path is checked against the directory it is meant to live in before
// anything is written:
//
//	if _, err := security.ValidatePathWithinBases(path, tempDir); err != nil {
//	    return err // wraps ErrPathTraversal
//	}
//
// Symbolic links are resolved on both sides. For paths that do not exist yet
// the nearest existing ancestor is resolved, so a temp directory reached
// through a link (e.g. /tmp on macOS) still compares equal.
//
// The configuration decides which programs are started, so
// ValidateFilePermissions reports configuration files that any user can
// modify.
package security
