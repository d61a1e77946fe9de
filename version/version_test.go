package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/testutil"
)

func TestNew_Defaults(t *testing.T) {
	info := New("scalus")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected Platform %q", info.Platform)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "scalus",
	}
	got := info.String()
	expected := "scalus version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNewCommand_HumanReadable(t *testing.T) {
	out := testutil.CaptureCLI(t)
	cmd := NewCommand(New("scalus"))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"scalus Version", "Build Date", "Git Commit", "Platform"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestNewCommand_JSON(t *testing.T) {
	out := testutil.CaptureCLI(t)
	if err := cliout.SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	cmd := NewCommand(New("scalus"))
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	var parsed Info
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, out.String())
	}
	if parsed.Name != "scalus" {
		t.Errorf("expected name 'scalus', got %q", parsed.Name)
	}
	if parsed.Version != "0.0.0-dev" {
		t.Errorf("expected version '0.0.0-dev', got %q", parsed.Version)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	out := testutil.CaptureCLI(t)
	cmd := NewCommand(New("scalus"))
	cmd.SetArgs([]string{"--quiet"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "0.0.0-dev" {
		t.Errorf("expected '0.0.0-dev', got %q", got)
	}
}
