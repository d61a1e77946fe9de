// Package cliout writes the human and JSON output of the scalus commands.
//
// Output goes to stdout unless redirected with SetOutput. ANSI styling is
// applied only when the destination is a terminal and NO_COLOR is unset.
//
//	cliout.Header("Tokens")
//	cliout.Label("Host", m.Get(token.Host))
//
// Print chooses between a JSON document and a formatter based on the
// format selected with SetFormat:
//
//	err := cliout.Print(result, func() {
//	    cliout.Success("configuration is valid")
//	})
package cliout
