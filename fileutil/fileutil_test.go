// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteAndReadLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/tmp", "nested", "profile.rdp")
	lines := []string{"full address:s:host", "username:s:alice", ""}

	if err := WriteLines(fs, path, lines); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Join(lines, LineSeparator); string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}

	info, err := fs.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != FilePermission {
		t.Errorf("perm = %v, want %v", info.Mode().Perm(), FilePermission)
	}

	got, err := ReadLines(fs, path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
		t.Errorf("ReadLines() = %q", got)
	}

	entries, err := afero.ReadDir(fs, filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestReadLinesCRLF(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/t.rdp", []byte("a:s:1\r\nb:s:2\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLines(fs, "/t.rdp")
	if err != nil {
		t.Fatal(err)
	}
	// bufio.ScanLines drops the trailing \r.
	if len(got) != 2 || got[0] != "a:s:1" || got[1] != "b:s:2" {
		t.Errorf("ReadLines() = %q", got)
	}
}

func TestReadLinesMissing(t *testing.T) {
	if _, err := ReadLines(afero.NewMemMapFs(), "/missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/x", []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Remove(fs, "/x"); err != nil {
		t.Errorf("Remove() error = %v", err)
	}
	if FileExists(fs, "/x") {
		t.Error("file still exists")
	}
	if err := Remove(fs, "/x"); err != nil {
		t.Errorf("Remove() of missing file error = %v", err)
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := EnsureDir(fs, "/a/b/c"); err != nil {
		t.Fatal(err)
	}
	if FileExists(fs, "/a/b/c") {
		t.Error("FileExists() true for a directory")
	}
	if ok, _ := afero.DirExists(fs, "/a/b/c"); !ok {
		t.Error("directory not created")
	}
}

func TestAtomicWriteFileOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := AtomicWriteFile(fs, "/f", []byte("one"), FilePermission); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWriteFile(fs, "/f", []byte("two"), FilePermission); err != nil {
		t.Fatal(err)
	}
	data, _ := afero.ReadFile(fs, "/f")
	if string(data) != "two" {
		t.Errorf("content = %q, want two", data)
	}
}
