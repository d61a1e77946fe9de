// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package editor opens the scalus configuration in the user's text editor.
// It supports automatic detection of editors on Windows, macOS, and Linux.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/jongio/scalus/pathutil"
)

// EnvEditor overrides EDITOR and VISUAL for scalus only.
const EnvEditor = "SCALUS_EDITOR"

// ErrNoEditor is returned when no editor can be found.
var ErrNoEditor = errors.New("no editor found; set SCALUS_EDITOR, EDITOR or VISUAL")

// OpenOptions configures how to open a file in an editor.
type OpenOptions struct {
	// Editor overrides the default editor detection.
	Editor string

	// LineNumber opens the file at a specific line (if supported by editor).
	LineNumber int
}

// Open opens path in the detected editor and blocks until it exits.
func Open(ctx context.Context, path string) error {
	return OpenWithOptions(ctx, path, OpenOptions{})
}

// OpenWithOptions opens a file with custom options and blocks until the
// editor exits.
func OpenWithOptions(ctx context.Context, path string, opts OpenOptions) error {
	editor := opts.Editor
	if editor == "" {
		editor = detectEditor()
	}
	if editor == "" {
		return ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, editor, buildEditorArgs(editor, path, opts.LineNumber)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

// detectEditor finds an available editor on the system.
func detectEditor() string {
	for _, key := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if validated := validateEditor(os.Getenv(key)); validated != "" {
			return validated
		}
	}

	for _, candidate := range getEditorCandidates() {
		if pathutil.FindToolInPath(candidate) != "" {
			return candidate
		}
	}
	return ""
}

// editorNamePattern validates editor names - only alphanumeric, dash, underscore, dot
var editorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)

// validateEditor returns editor if it is a plain command name found in PATH
// or an absolute path to an executable, and "" otherwise.
func validateEditor(editor string) string {
	if editor == "" {
		return ""
	}

	if !filepath.IsAbs(editor) {
		if containsPathSeparator(editor) || !editorNamePattern.MatchString(editor) {
			return ""
		}
	}
	if _, err := exec.LookPath(editor); err != nil {
		return ""
	}
	return editor
}

func containsPathSeparator(s string) bool {
	return strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator)
}

// getEditorCandidates returns a prioritized list of editors to try.
func getEditorCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"code", "notepad++", "notepad"}
	case "darwin":
		return []string{"code", "subl", "nano", "vim", "open"}
	default:
		return []string{"code", "subl", "gedit", "kate", "nano", "vim", "vi", "xdg-open"}
	}
}

// buildEditorArgs builds command arguments for the editor.
func buildEditorArgs(editor, path string, lineNumber int) []string {
	if lineNumber <= 0 {
		return []string{path}
	}

	name := strings.TrimSuffix(strings.ToLower(filepath.Base(editor)), ".exe")
	switch name {
	case "code":
		return []string{"--goto", fmt.Sprintf("%s:%d", path, lineNumber)}
	case "vi", "vim", "nvim", "nano":
		return []string{fmt.Sprintf("+%d", lineNumber), path}
	case "subl":
		return []string{fmt.Sprintf("%s:%d", path, lineNumber)}
	case "notepad++":
		return []string{fmt.Sprintf("-n%d", lineNumber), path}
	default:
		return []string{path}
	}
}
