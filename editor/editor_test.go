// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package editor

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetectEditor(t *testing.T) {
	sh := "sh"
	if runtime.GOOS == "windows" {
		sh = "cmd"
	}
	if _, err := exec.LookPath(sh); err != nil {
		t.Skipf("%s not in PATH", sh)
	}

	t.Run("SCALUS_EDITOR wins", func(t *testing.T) {
		t.Setenv(EnvEditor, sh)
		t.Setenv("EDITOR", "nonexistent-editor-xyz-123")
		if got := detectEditor(); got != sh {
			t.Errorf("detectEditor() = %q, want %q", got, sh)
		}
	})

	t.Run("falls back to VISUAL", func(t *testing.T) {
		t.Setenv(EnvEditor, "")
		t.Setenv("EDITOR", "nonexistent-editor-xyz-123")
		t.Setenv("VISUAL", sh)
		if got := detectEditor(); got != sh {
			t.Errorf("detectEditor() = %q, want %q", got, sh)
		}
	})

	t.Run("rejects invalid EDITOR", func(t *testing.T) {
		t.Setenv(EnvEditor, "")
		t.Setenv("EDITOR", "nonexistent-editor-xyz-123")
		t.Setenv("VISUAL", "")
		if got := detectEditor(); got == "nonexistent-editor-xyz-123" {
			t.Error("detectEditor() should reject nonexistent editor")
		}
	})
}

func TestValidateEditor(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		want   bool
	}{
		{"empty", "", false},
		{"relative path", "bin/vim", false},
		{"shell metacharacters", "vim;rm", false},
		{"missing command", "nonexistent-editor-xyz-123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateEditor(tt.editor) != ""; got != tt.want {
				t.Errorf("validateEditor(%q) valid = %v, want %v", tt.editor, got, tt.want)
			}
		})
	}

	if path, err := exec.LookPath("sh"); err == nil && runtime.GOOS != "windows" {
		if got := validateEditor(path); got != path {
			t.Errorf("validateEditor(%q) = %q, want the path", path, got)
		}
	}
}

func TestGetEditorCandidates(t *testing.T) {
	candidates := getEditorCandidates()
	if len(candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}
	if candidates[0] != "code" {
		t.Errorf("expected code first, got %q", candidates[0])
	}
}

func TestBuildEditorArgs(t *testing.T) {
	path := filepath.Join("dir", "scalus.json")
	tests := []struct {
		name   string
		editor string
		line   int
		want   []string
	}{
		{"no line", "vim", 0, []string{path}},
		{"code", "code", 4, []string{"--goto", path + ":4"}},
		{"vim by path", "/usr/bin/vim", 4, []string{"+4", path}},
		{"nano", "nano", 2, []string{"+2", path}},
		{"subl", "subl", 3, []string{path + ":3"}},
		{"notepad++", "notepad++.exe", 9, []string{"-n9", path}},
		{"unknown", "kate", 5, []string{path}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildEditorArgs(tt.editor, path, tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("buildEditorArgs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOpenWithOptions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX true/false")
	}

	t.Run("editor exits cleanly", func(t *testing.T) {
		if err := OpenWithOptions(context.Background(), "scalus.json", OpenOptions{Editor: "true"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("editor failure is reported", func(t *testing.T) {
		err := OpenWithOptions(context.Background(), "scalus.json", OpenOptions{Editor: "false"})
		if err == nil {
			t.Fatal("expected an error")
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Errorf("expected an exit error, got %v", err)
		}
	})
}
