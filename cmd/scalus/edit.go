package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/fileutil"
	"github.com/jongio/scalus/logutil"
)

// emptyConfig seeds a configuration file that does not exist yet.
const emptyConfig = `{
  "protocols": [],
  "applications": []
}
`

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the configuration in a text editor and validate it afterwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			if !fileutil.FileExists(a.fs, path) {
				if err := fileutil.EnsureDir(a.fs, filepath.Dir(path)); err != nil {
					return err
				}
				if err := fileutil.AtomicWriteFile(a.fs, path, []byte(emptyConfig), fileutil.FilePermission); err != nil {
					return err
				}
				logutil.Info("created configuration", "path", path)
			}

			if err := a.openEditor(cmd.Context(), path); err != nil {
				return err
			}

			if _, _, err := a.loadConfig(); err != nil {
				cliout.Warning("%s is not valid yet", path)
				return err
			}
			cliout.Success("%s is valid", path)
			return nil
		},
	}
}
