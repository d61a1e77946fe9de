// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNoApplication indicates no application is configured for a protocol on
// this platform.
var ErrNoApplication = errors.New("no application configured")

// Platform names used in Application.Platforms.
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformMacOS   = "mac"
)

// ParserConfig controls how an application's URL is parsed and how its
// connection profile is generated.
type ParserConfig struct {
	// ParserID selects a registered URL parser.
	ParserID string `yaml:"parserId" json:"parserId" validate:"required"`
	// Options holds the post-launch wait policy.
	Options []string `yaml:"options,omitempty" json:"options,omitempty"`
	// UseDefaultTemplate writes the parser's generated settings.
	UseDefaultTemplate bool `yaml:"useDefaultTemplate,omitempty" json:"useDefaultTemplate,omitempty"`
	// UseTemplateFile names a template file. Tokens are substituted in the
	// path and in the content.
	UseTemplateFile string `yaml:"useTemplateFile,omitempty" json:"useTemplateFile,omitempty"`
	// PostProcessingExec runs after the profile has been written.
	PostProcessingExec string   `yaml:"postProcessingExec,omitempty" json:"postProcessingExec,omitempty"`
	PostProcessingArgs []string `yaml:"postProcessingArgs,omitempty" json:"postProcessingArgs,omitempty"`
}

// ProtocolMapping binds a URL scheme to an application id.
type ProtocolMapping struct {
	Protocol string `yaml:"protocol" json:"protocol" validate:"required"`
	AppID    string `yaml:"appId" json:"appId" validate:"required"`
}

// Application describes one client program.
type Application struct {
	ID          string       `yaml:"id" json:"id" validate:"required"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Platforms   []string     `yaml:"platforms,omitempty" json:"platforms,omitempty" validate:"dive,oneof=windows linux mac"`
	Protocol    string       `yaml:"protocol" json:"protocol" validate:"required"`
	Parser      ParserConfig `yaml:"parser" json:"parser"`
	Exec        string       `yaml:"exec" json:"exec" validate:"required"`
	Args        []string     `yaml:"args,omitempty" json:"args,omitempty"`
}

// Config is the application configuration.
type Config struct {
	Protocols    []ProtocolMapping `yaml:"protocols" json:"protocols" validate:"dive"`
	Applications []Application     `yaml:"applications" json:"applications" validate:"dive"`
}

var validate = validator.New()

// Parse decodes and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration file at path from fs.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks required fields and that every protocol mapping points to
// a configured application.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	ids := make(map[string]bool, len(c.Applications))
	for _, app := range c.Applications {
		if ids[app.ID] {
			return fmt.Errorf("duplicate application id %q", app.ID)
		}
		ids[app.ID] = true
	}
	for _, p := range c.Protocols {
		if !ids[p.AppID] {
			return fmt.Errorf("protocol %q maps to unknown application %q", p.Protocol, p.AppID)
		}
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// CurrentPlatform returns the Application.Platforms name of the running OS.
func CurrentPlatform() string {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformLinux
	}
}

// SupportsPlatform reports whether the application runs on platform. An
// application without platforms runs everywhere.
func (a Application) SupportsPlatform(platform string) bool {
	if len(a.Platforms) == 0 {
		return true
	}
	for _, p := range a.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}

// FindApplication returns the application mapped to protocol for platform.
// Protocol names are matched case-insensitively.
func (c *Config) FindApplication(protocol, platform string) (*Application, error) {
	for _, p := range c.Protocols {
		if !strings.EqualFold(p.Protocol, protocol) {
			continue
		}
		for i := range c.Applications {
			app := &c.Applications[i]
			if app.ID == p.AppID && app.SupportsPlatform(platform) {
				return app, nil
			}
		}
	}
	return nil, fmt.Errorf("%w for protocol %q on %s", ErrNoApplication, protocol, platform)
}
