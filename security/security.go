// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path escapes its allowed directory.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInsecureFilePermissions indicates a file is world-writable.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// validatePath rejects empty paths and paths with a ".." element.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: path contains a NUL byte", ErrInvalidPath)
	}
	if hasParentRef(path) {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}
	return nil
}

// ValidatePathWithinBases validates path and ensures it is one of the allowed
// base directories or inside one. It returns the resolved absolute path. With
// no bases only the path itself is validated.
func ValidatePathWithinBases(path string, allowedBases ...string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	realPath, err := resolve(path)
	if err != nil {
		return "", err
	}
	if len(allowedBases) == 0 {
		return realPath, nil
	}

	for _, base := range allowedBases {
		realBase, err := resolve(base)
		if err != nil {
			continue
		}
		if realPath == realBase || strings.HasPrefix(realPath, realBase+string(filepath.Separator)) {
			return realPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s is outside allowed directories", ErrPathTraversal, path)
}

// ValidateFilePermissions checks that a file is not world-writable. Windows
// uses ACLs, so the check is skipped there.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Mode().Perm()&0o002 != 0 {
		return fmt.Errorf("%w: %s is world-writable", ErrInsecureFilePermissions, path)
	}
	return nil
}

func hasParentRef(path string) bool {
	for _, elem := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if elem == ".." {
			return true
		}
	}
	return false
}

// resolve returns the absolute, cleaned path with symlinks evaluated on its
// longest existing prefix.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	abs = filepath.Clean(abs)

	var rest []string
	for dir := abs; ; {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = append([]string{filepath.Base(dir)}, rest...)
		dir = parent
	}
}
