package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/jongio/scalus/cmdutil"
	"github.com/jongio/scalus/config"
	"github.com/jongio/scalus/env"
	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/pathutil"
	"github.com/jongio/scalus/procutil"
	"github.com/jongio/scalus/profile"
	"github.com/jongio/scalus/shellutil"
	"github.com/jongio/scalus/token"
	"github.com/jongio/scalus/urlparser"
	"github.com/jongio/scalus/urlutil"
)

// ErrNoProtocol indicates the URL carries no scheme to dispatch on.
var ErrNoProtocol = errors.New("url has no protocol")

// Starter launches the client program.
type Starter interface {
	Start(ctx context.Context, path string, args []string, env []string) (procutil.Process, error)
}

// Runner executes the launch sequence for one URL.
type Runner struct {
	Config   *config.Config
	Fs       afero.Fs
	Platform string

	Services   cmdutil.Executor
	Starter    Starter
	Controller Controller

	// SessionOptions are passed to every profile.Session.
	SessionOptions []profile.Option
	// Environ returns the inherited environment; os.Environ when nil.
	Environ func() []string
	// ResolveExecutable locates programs; pathutil.ResolveExecutable when nil.
	ResolveExecutable func(name string) (string, error)
}

// NewRunner returns a Runner for the local machine.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		Config:   cfg,
		Fs:       afero.NewOsFs(),
		Platform: config.CurrentPlatform(),
		Services: cmdutil.Services{OnLine: preprocessorOutput},
		Starter:  procutil.Starter{},
	}
}

// Result describes a parsed URL.
type Result struct {
	Application *config.Application
	Parser      urlparser.Parser
	Tokens      token.Map
}

// Parse resolves the application for rawURL and parses it with the
// application's parser.
func (r *Runner) Parse(rawURL string) (*Result, error) {
	if err := urlutil.Validate(rawURL); err != nil {
		return nil, err
	}
	protocol := urlutil.Scheme(rawURL, "")
	if protocol == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoProtocol, rawURL)
	}

	app, err := r.Config.FindApplication(protocol, r.Platform)
	if err != nil {
		return nil, err
	}
	parser, err := urlparser.New(app.Parser.ParserID)
	if err != nil {
		return nil, fmt.Errorf("application %s: %w", app.ID, err)
	}
	tokens, err := parser.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &Result{Application: app, Parser: parser, Tokens: tokens}, nil
}

// Run parses rawURL, generates the connection profile, starts the configured
// client and waits according to the wait policy. Generated files are deleted
// before Run returns.
func (r *Runner) Run(ctx context.Context, rawURL string) error {
	res, err := r.Parse(rawURL)
	if err != nil {
		return err
	}
	app := res.Application
	log := logutil.NewLogger("launch").WithProtocol(res.Tokens.Get(token.Protocol)).WithFields("app", app.ID)
	log.Info("launching", "url", rawURL)

	session := profile.NewSession(r.Fs, app.Parser, r.SessionOptions...)
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("failed to clean up generated files", "error", err)
		}
	}()

	if _, err := session.Materialize(res.Parser, &res.Tokens); err != nil {
		log.Error("failed to generate profile", "error", err)
	}
	r.preprocess(ctx, log, session, &res.Tokens)

	exe, args, err := r.command(app, &res.Tokens)
	if err != nil {
		return err
	}
	environ := env.Merge(r.environ(), env.TokenEnvironment(&res.Tokens), runtime.GOOS == "windows")

	log.Info("starting application", "exe", exe, "args", strings.Join(args, " "))
	proc, err := r.Starter.Start(ctx, exe, args, environ)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", app.Name, err)
	}
	log.Info("application started", "pid", proc.Pid())

	r.Controller.After(ctx, proc, app.Parser.Options)
	return nil
}

// preprocess runs the configured post-processing command on the generated
// profile. Failures are logged.
func (r *Runner) preprocess(ctx context.Context, log *logutil.ComponentLogger, session *profile.Session, m *token.Map) {
	exe, args := session.PostProcessing(m)
	if exe == "" {
		return
	}
	resolved, err := r.resolve(exe)
	if err != nil {
		log.Error("selected file preprocessor does not exist", "exe", exe, "error", err)
		return
	}
	exe, args = shellutil.CommandFor(resolved, args)

	log.Debug("starting file preprocessor", "exe", exe, "args", strings.Join(args, " "))
	code, stdout, stderr, err := r.Services.Execute(ctx, exe, args)
	if err != nil {
		log.Error("file preprocessor failed", "error", err)
		return
	}
	log.Info("file preprocess result", "code", code, "output", stdout, "err", stderr)
}

// preprocessorOutput streams one line of pre-processor output to the debug
// log while the pre-processor runs.
func preprocessorOutput(line string) {
	logutil.NewLogger("launch").WithOperation("preprocess").Debug("preprocessor output", "line", line)
}

// command renders the application's command line.
func (r *Runner) command(app *config.Application, m *token.Map) (string, []string, error) {
	exe := token.Render(m, strings.TrimSpace(app.Exec))
	resolved, err := r.resolve(exe)
	if err != nil {
		return "", nil, fmt.Errorf("application %s: %w", app.ID, err)
	}

	args := make([]string, 0, len(app.Args))
	for _, arg := range app.Args {
		args = append(args, token.Render(m, strings.TrimSpace(arg)))
	}
	exe, args = shellutil.CommandFor(resolved, args)
	return exe, args, nil
}

func (r *Runner) resolve(name string) (string, error) {
	if r.ResolveExecutable != nil {
		return r.ResolveExecutable(name)
	}
	return pathutil.ResolveExecutable(name)
}

func (r *Runner) environ() []string {
	if r.Environ != nil {
		return r.Environ()
	}
	return os.Environ()
}
