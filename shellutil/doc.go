// Package shellutil decides how a configured program is started when it is a
// script rather than a binary.
//
// Interpreters are detected from the extension (.ps1, .cmd, .bat, .sh, .zsh)
// and, failing that, from the shebang line. CommandFor wraps the script in
// its interpreter and leaves binaries alone:
//
//	exe, args := shellutil.CommandFor("/opt/scalus/open-session.sh", []string{"%GeneratedFile%"})
//	// exe == "bash", args == ["/opt/scalus/open-session.sh", "%GeneratedFile%"]
package shellutil
