package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jongio/scalus/config"
	"github.com/jongio/scalus/fileutil"
	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/pathutil"
	"github.com/jongio/scalus/security"
	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlparser"
)

// File name prefixes for generated profiles.
const (
	VaultPrefix   = "SG"
	ProductPrefix = "Scalus"
)

// Session materializes connection profiles for one launch and removes them
// on Close.
type Session struct {
	fs  afero.Fs
	cfg config.ParserConfig
	log *logutil.ComponentLogger

	binDir  string
	dataDir string
	homeDir string
	tempDir string
	newID   func() string

	mu      sync.Mutex
	cleanup []string
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithBinaryDir sets the directory relative template paths resolve against.
func WithBinaryDir(dir string) Option {
	return func(s *Session) { s.binDir = dir }
}

// WithAppDataDir sets the value of the AppDataDir token.
func WithAppDataDir(dir string) Option {
	return func(s *Session) { s.dataDir = dir }
}

// WithHomeDir sets the value of the Home token.
func WithHomeDir(dir string) Option {
	return func(s *Session) { s.homeDir = dir }
}

// WithTempDir sets the directory generated files are written to.
func WithTempDir(dir string) Option {
	return func(s *Session) { s.tempDir = dir }
}

// WithIDGenerator replaces the UUID source used in file names.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// NewSession returns a session writing to fs.
func NewSession(fs afero.Fs, cfg config.ParserConfig, opts ...Option) *Session {
	s := &Session{
		fs:      fs,
		cfg:     cfg,
		log:     logutil.NewLogger("profile"),
		binDir:  pathutil.BinaryDir(),
		dataDir: pathutil.AppDataDir(),
		homeDir: xdg.Home,
		tempDir: os.TempDir(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Materialize writes the profile for m and returns its path. It sets the
// Home, AppDataDir, TempDir and GeneratedFile tokens. An empty path with a
// nil error means no profile was configured or the template could not be
// read; the reason is logged.
func (s *Session) Materialize(p urlparser.Parser, m *token.Map) (string, error) {
	m.Set(token.Home, s.homeDir)
	m.Set(token.AppDataDir, s.dataDir)
	m.Set(token.TempDir, s.tempDir)

	lines, ext, ok := s.template(p, m)
	if !ok {
		return "", nil
	}
	if ext == "" {
		ext = urlparser.DefaultFileExtension
	}

	path, err := s.outputPath(m, ext)
	if err != nil {
		return "", err
	}
	if _, err := security.ValidatePathWithinBases(path, s.tempDir); err != nil {
		s.log.Error("generated file name escapes the temp directory", "path", path, "error", err)
		return "", nil
	}
	s.track(path)

	if err := fileutil.WriteLines(s.fs, path, token.RenderAll(m, lines)); err != nil {
		return "", fmt.Errorf("failed to write profile: %w", err)
	}
	m.Set(token.GeneratedFile, path)
	s.log.Info("generated profile", "path", path, "lines", len(lines))
	return path, nil
}

// template returns the lines to render and the extension of the output file.
func (s *Session) template(p urlparser.Parser, m *token.Map) ([]string, string, bool) {
	switch {
	case s.cfg.UseDefaultTemplate:
		s.log.Info("using default template")
		return p.DefaultTemplate(), p.FileExtension(), true

	case s.cfg.UseTemplateFile != "":
		path := pathutil.FullPath(token.Render(m, s.cfg.UseTemplateFile), s.binDir)
		s.log.Info("using template file", "path", path)
		lines, err := fileutil.ReadLines(s.fs, path)
		if err != nil {
			s.log.Error("cannot read template file", "path", path, "error", err)
			return nil, "", false
		}
		ext := filepath.Ext(path)
		if ext == "" {
			ext = p.FileExtension()
		}
		return lines, ext, true

	default:
		s.log.Debug("no template configured")
		return nil, "", false
	}
}

// outputPath derives the file name from the connection target. Vault
// connections are named after the vault target, others after host and user.
// Without either a random name is used.
func (s *Session) outputPath(m *token.Map, ext string) (string, error) {
	switch {
	case m.IsSet(token.Vault):
		return filepath.Join(s.tempDir, fileName(VaultPrefix, m.Get(token.TargetHost), m.Get(token.TargetUser), s.newID(), ext)), nil

	case m.IsSet(token.Host) || m.IsSet(token.User):
		return filepath.Join(s.tempDir, fileName(ProductPrefix, m.Get(token.Host), m.Get(token.User), s.newID(), ext)), nil

	default:
		if err := fileutil.EnsureDir(s.fs, s.tempDir); err != nil {
			return "", err
		}
		f, err := afero.TempFile(s.fs, s.tempDir, "*"+ext)
		if err != nil {
			return "", fmt.Errorf("failed to create temp file: %w", err)
		}
		name := f.Name()
		s.track(name)
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to create temp file: %w", err)
		}
		return name, nil
	}
}

func fileName(prefix, host, user, id, ext string) string {
	host = strings.ReplaceAll(host, ".", "~")
	user = strings.ReplaceAll(user, `\`, "~")
	return fmt.Sprintf("%s-%s_%s_%s%s", prefix, host, user, id, ext)
}

// PostProcessing returns the configured post-processing command with tokens
// rendered. The generated file is appended as the last argument unless an
// argument already references it. Nothing is returned when no command is
// configured or no file was generated.
func (s *Session) PostProcessing(m *token.Map) (string, []string) {
	if s.cfg.PostProcessingExec == "" || !m.IsSet(token.GeneratedFile) {
		return "", nil
	}

	exe := token.Render(m, s.cfg.PostProcessingExec)
	args := make([]string, 0, len(s.cfg.PostProcessingArgs)+1)
	referenced := false
	for _, arg := range s.cfg.PostProcessingArgs {
		if token.References(arg, token.GeneratedFile) {
			referenced = true
		}
		args = append(args, token.Render(m, arg))
	}
	if !referenced {
		args = append(args, m.Get(token.GeneratedFile))
	}
	s.log.Info("post-processing command", "exe", exe, "args", strings.Join(args, ","))
	return exe, args
}

// Files returns the paths registered for cleanup.
func (s *Session) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cleanup...)
}

func (s *Session) track(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.cleanup {
		if p == path {
			return
		}
	}
	s.cleanup = append(s.cleanup, path)
}

// Close deletes every registered file. It attempts all deletions and
// returns their joined errors. Later calls do nothing.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, path := range s.cleanup {
		if err := fileutil.Remove(s.fs, path); err != nil {
			s.log.Warn("failed to delete generated file", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		s.log.Debug("deleted generated file", "path", path)
	}
	s.cleanup = nil
	return errors.Join(errs...)
}
