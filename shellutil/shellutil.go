// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/scalus/logutil"
)

// Shell identifiers used for script execution.
const (
	ShellBash       = "bash"
	ShellCmd        = "cmd"
	ShellPowerShell = "powershell"
	ShellPwsh       = "pwsh"
	ShellSh         = "sh"
	ShellZsh        = "zsh"
)

const (
	osWindows     = "windows"
	shebangPrefix = "#!"
	envCommand    = "env"
)

// DetectShell returns the interpreter for a script, or "" when path is not a
// script. Detection uses the file extension first and the shebang line
// second.
func DetectShell(scriptPath string) string {
	switch strings.ToLower(filepath.Ext(scriptPath)) {
	case ".ps1":
		if runtime.GOOS == osWindows {
			return ShellPowerShell
		}
		return ShellPwsh
	case ".cmd", ".bat":
		return ShellCmd
	case ".sh":
		return ShellBash
	case ".zsh":
		return ShellZsh
	}
	return ReadShebang(scriptPath)
}

// ReadShebang returns the base name of the interpreter named in the script's
// shebang line, e.g. "bash" for "#!/bin/bash" and "python3" for
// "#!/usr/bin/env python3". It returns "" when there is none.
func ReadShebang(scriptPath string) string {
	file, err := os.Open(scriptPath) // #nosec G304 - path comes from the trusted configuration
	if err != nil {
		return ""
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logutil.Debug("failed to close script", "path", filepath.Base(scriptPath), "error", closeErr)
		}
	}()

	reader := bufio.NewReader(file)
	buf := make([]byte, len(shebangPrefix))
	if _, err := io.ReadFull(reader, buf); err != nil || string(buf) != shebangPrefix {
		return ""
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return ""
	}
	if filepath.Base(parts[0]) == envCommand && len(parts) > 1 {
		return filepath.Base(parts[1])
	}
	return filepath.Base(parts[0])
}

// CommandFor returns the command line that runs path with args. Scripts are
// handed to their interpreter; anything else is returned unchanged.
func CommandFor(path string, args []string) (string, []string) {
	shell := DetectShell(path)
	if shell == "" {
		return path, args
	}

	var prefix []string
	switch shell {
	case ShellCmd:
		prefix = []string{ShellCmd, "/c", path}
	case ShellPowerShell, ShellPwsh:
		prefix = []string{shell, "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "RemoteSigned", "-File", path}
	default:
		prefix = []string{shell, path}
	}
	logutil.Debug("running script through interpreter", "script", path, "shell", shell)
	return prefix[0], append(prefix[1:], args...)
}
