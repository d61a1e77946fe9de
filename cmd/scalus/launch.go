package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/notify"
)

var errNoURL = errors.New("a url is required: pass it with -u or as an argument")

// urlArg returns the URL from the -u flag or the single positional argument.
func urlArg(flag string, args []string) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errNoURL
	}
}

func newLaunchCmd(a *app) *cobra.Command {
	var rawURL string
	cmd := &cobra.Command{
		Use:   "launch [-u URL | URL]",
		Short: "Generate the connection profile for a URL and start the client",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err := a.runLaunch(ctx, rawURL, args)
			if err != nil {
				logutil.Error("launch failed", "error", err)
				if nerr := notify.Error(ctx, a.notifier, "Scalus could not connect", err); nerr != nil {
					logutil.Warn("failed to send notification", "error", nerr)
				}
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "URL to launch")
	return cmd
}

func (a *app) runLaunch(ctx context.Context, flag string, args []string) error {
	rawURL, err := urlArg(flag, args)
	if err != nil {
		return err
	}
	cfg, _, err := a.loadConfig()
	if err != nil {
		return err
	}
	return a.newRunner(cfg).Run(ctx, rawURL)
}
