package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/config"
	"github.com/jongio/scalus/urlparser"
)

type verifyResult struct {
	ConfigFile   string   `json:"configFile"`
	Valid        bool     `json:"valid"`
	Error        string   `json:"error,omitempty"`
	Applications []string `json:"applications,omitempty"`
	Parsers      []string `json:"parsers"`
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Validate the configuration and list the available parsers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := a.loadConfig()
			res := verifyResult{ConfigFile: path, Valid: err == nil, Parsers: urlparser.IDs()}
			if err != nil {
				res.Error = err.Error()
			} else {
				for _, app := range cfg.Applications {
					res.Applications = append(res.Applications, app.ID)
				}
			}

			if perr := cliout.Print(res, func() { printVerify(cfg, res) }); perr != nil {
				return perr
			}
			return err
		},
	}
}

func printVerify(cfg *config.Config, res verifyResult) {
	cliout.Header("Configuration")
	cliout.Label("File", res.ConfigFile)
	cliout.Label("Parsers", strings.Join(res.Parsers, ", "))
	if !res.Valid {
		return
	}

	rows := make([]cliout.TableRow, 0, len(cfg.Protocols))
	for _, p := range cfg.Protocols {
		rows = append(rows, cliout.TableRow{"Protocol": p.Protocol, "Application": p.AppID})
	}
	cliout.Table([]string{"Protocol", "Application"}, rows)
	cliout.Success("configuration is valid")
}
