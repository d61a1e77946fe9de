package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jongio/scalus/pathutil"
)

// Environment variables consulted when resolving files.
const (
	EnvConfig = "SCALUS_CONFIG"
)

// Default file names.
const (
	DefaultConfigFile = "scalus.json"
	DefaultLogFile    = "scalus.log"
)

var settingsFiles = []string{"appsettings.yaml", "appsettings.yml", "appsettings.json"}

// LogSettings configures the log output.
type LogSettings struct {
	FileName string `yaml:"fileName" json:"fileName"`
	MinLevel string `yaml:"minLevel" json:"minLevel"`
	Console  bool   `yaml:"console" json:"console"`
}

// Settings is the appsettings file next to the binary.
type Settings struct {
	Logging       LogSettings `yaml:"logging" json:"logging"`
	Configuration struct {
		FileName string `yaml:"fileName" json:"fileName"`
	} `yaml:"configuration" json:"configuration"`

	binDir  string
	dataDir string
}

// LoadSettings reads the first appsettings file found in binDir. Missing files
// yield empty settings.
func LoadSettings(fsys afero.Fs, binDir, dataDir string) (*Settings, error) {
	s := &Settings{binDir: binDir, dataDir: dataDir}
	for _, name := range settingsFiles {
		data, err := afero.ReadFile(fsys, filepath.Join(binDir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return s, err
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return s, err
		}
		break
	}
	return s, nil
}

// LogFile returns the log file path. Relative names resolve against the app
// data directory; without a setting the log sits next to the binary.
func (s *Settings) LogFile() string {
	if s.Logging.FileName == "" {
		return filepath.Join(s.binDir, DefaultLogFile)
	}
	return pathutil.FullPath(s.Logging.FileName, s.dataDir)
}

// ConfigFile resolves the configuration path. An explicit path wins, then
// SCALUS_CONFIG, then the appsettings entry, then scalus.json next to the
// binary.
func (s *Settings) ConfigFile(explicit string) string {
	switch {
	case explicit != "":
		return pathutil.FullPath(explicit, s.dataDir)
	case os.Getenv(EnvConfig) != "":
		return pathutil.FullPath(os.Getenv(EnvConfig), s.dataDir)
	case s.Configuration.FileName != "":
		return pathutil.FullPath(s.Configuration.FileName, s.dataDir)
	default:
		return filepath.Join(s.binDir, DefaultConfigFile)
	}
}
