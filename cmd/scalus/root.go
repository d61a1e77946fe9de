package main

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/scalus/cliout"
	"github.com/jongio/scalus/config"
	"github.com/jongio/scalus/editor"
	"github.com/jongio/scalus/launch"
	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/notify"
	"github.com/jongio/scalus/pathutil"
	"github.com/jongio/scalus/security"
	"github.com/jongio/scalus/version"
)

// app carries the global flags and the collaborators the commands share.
type app struct {
	configPath     string
	debug          bool
	structuredLogs bool
	output         string

	fs         afero.Fs
	binDir     string
	dataDir    string
	notifier   notify.Notifier
	newRunner  func(*config.Config) *launch.Runner
	openEditor func(ctx context.Context, path string) error

	settings *config.Settings
}

func newApp() *app {
	return &app{
		fs:         afero.NewOsFs(),
		binDir:     pathutil.BinaryDir(),
		dataDir:    pathutil.AppDataDir(),
		notifier:   notify.New(notify.DefaultConfig()),
		newRunner:  launch.NewRunner,
		openEditor: editor.Open,
	}
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&a.configPath, "config", "", "Path to the configuration file (default: $"+config.EnvConfig+" or scalus.json next to the binary)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&a.structuredLogs, "structured-logs", false, "Write logs as JSON")
	flags.StringVarP(&a.output, "output", "o", "default", "Output format (default, json)")
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "scalus",
		Short:         "Launch remote-desktop clients from protocol URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliout.SetFormat(a.output); err != nil {
				return err
			}
			a.setupLogging()
			return nil
		},
	}
	a.bindFlags(root.PersistentFlags())

	info := version.New("scalus")
	root.Version = info.Version
	root.AddCommand(
		newLaunchCmd(a),
		newInfoCmd(a),
		newVerifyCmd(a),
		newEditCmd(a),
		version.NewCommand(info),
	)
	return root
}

// setupLogging reads appsettings and configures the global logger. A broken
// settings file falls back to defaults.
func (a *app) setupLogging() {
	settings, err := config.LoadSettings(a.fs, a.binDir, a.dataDir)
	a.settings = settings

	level := logutil.ParseLevel(settings.Logging.MinLevel)
	if a.debug || os.Getenv(logutil.EnvDebug) == "true" {
		level = logutil.LevelDebug
	}
	logutil.Setup(logutil.Options{
		Level:      level,
		Structured: a.structuredLogs,
		FileName:   settings.LogFile(),
		Console:    settings.Logging.Console || a.debug,
	})
	if err != nil {
		logutil.Warn("failed to read settings, using defaults", "error", err)
	}
}

// configFile returns the configuration path after settings are loaded.
func (a *app) configFile() string {
	if a.settings == nil {
		a.settings, _ = config.LoadSettings(a.fs, a.binDir, a.dataDir)
	}
	return a.settings.ConfigFile(a.configPath)
}

// loadConfig reads and validates the configuration. Loose permissions on
// the file are reported but do not fail the load.
func (a *app) loadConfig() (*config.Config, string, error) {
	path := a.configFile()
	cfg, err := config.Load(a.fs, path)
	if err != nil {
		return nil, path, err
	}
	if _, isOs := a.fs.(*afero.OsFs); isOs {
		if err := security.ValidateFilePermissions(path); err != nil {
			logutil.Warn("configuration file permissions", "path", path, "error", err)
		}
	}
	logutil.Debug("configuration loaded", "path", path, "applications", len(cfg.Applications))
	return cfg, path, nil
}
