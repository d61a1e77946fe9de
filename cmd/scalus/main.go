// Command scalus is a protocol handler. It turns a remote-desktop URL into a
// connection profile and starts the configured client.
package main

import (
	"os"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/logutil"
)

func main() {
	err := newRootCmd(newApp()).Execute()
	_ = logutil.Close()
	if err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
