// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// ProductName names the per-user data directory.
const ProductName = "scalus"

// BinaryDir returns the directory holding the running executable, with
// symlinks resolved. It falls back to the working directory.
func BinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// AppDataDir returns the per-user data directory: <LocalAppData>\scalus on
// Windows and ~/.scalus elsewhere. It is not created.
func AppDataDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(xdg.DataHome, ProductName)
	}
	return filepath.Join(xdg.Home, "."+ProductName)
}

// FullPath returns path unchanged when it is absolute and joined to base
// otherwise.
func FullPath(path, base string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// ResolveExecutable locates a client program. Paths containing a separator
// are returned as-is when they exist. Bare names are looked up in PATH and
// then in the common install directories.
func ResolveExecutable(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("executable name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("executable %s not found: %w", name, err)
		}
		return name, nil
	}
	if path := FindToolInPath(name); path != "" {
		return path, nil
	}
	if path := SearchToolInSystemPath(name); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("executable %s not found in PATH. %s", name, GetInstallSuggestion(name))
}

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	path, err := exec.LookPath(exeName(toolName))
	if err != nil {
		return ""
	}
	return path
}

// SearchToolInSystemPath searches the directories remote-desktop clients are
// commonly installed to. Returns "" when the tool is not found.
func SearchToolInSystemPath(toolName string) string {
	name := exeName(toolName)

	var searchPaths []string
	switch runtime.GOOS {
	case "windows":
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		searchPaths = []string{
			filepath.Join(systemRoot, "System32"),
			filepath.Join(os.Getenv("ProgramFiles"), "Remote Desktop"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Apps", "Remote Desktop"),
		}
	case "darwin":
		searchPaths = []string{
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/Applications/Microsoft Remote Desktop.app/Contents/MacOS",
			"/Applications/Windows App.app/Contents/MacOS",
		}
	default:
		searchPaths = []string{
			"/usr/local/bin",
			"/usr/bin",
			"/bin",
			"/snap/bin",
			"/var/lib/flatpak/exports/bin",
			filepath.Join(xdg.Home, ".local", "bin"),
		}
	}

	for _, dir := range searchPaths {
		fullPath := filepath.Join(dir, name)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			return fullPath
		}
	}
	return ""
}

// GetInstallSuggestion returns a suggestion for how to install a missing
// client.
func GetInstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"mstsc":     "mstsc ships with Windows; enable the Remote Desktop client feature",
		"msrdc":     "Install the Remote Desktop client from https://aka.ms/wvdclient",
		"xfreerdp":  "Install FreeRDP from your package manager (e.g. apt install freerdp2-x11)",
		"xfreerdp3": "Install FreeRDP 3 from your package manager (e.g. apt install freerdp3-x11)",
		"remmina":   "Install Remmina from https://remmina.org/how-to-install-remmina/",
		"open":      "open is part of macOS",
	}

	if suggestion, ok := suggestions[strings.TrimSuffix(strings.ToLower(toolName), ".exe")]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}

func exeName(toolName string) string {
	if runtime.GOOS == "windows" && filepath.Ext(toolName) == "" {
		return toolName + ".exe"
	}
	return toolName
}
