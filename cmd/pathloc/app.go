// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pathloc/pathloc/internal/config"
	"github.com/pathloc/pathloc/internal/directory"
	"github.com/pathloc/pathloc/internal/instance"
	"github.com/pathloc/pathloc/internal/issue"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer; every Cobra handler receives an App reference.
	App struct {
		Config ConfigProvider
		fs     afero.Fs
		dialer instance.Dialer
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Fs is the existence oracle for argument resolution and the
		// filesystem config files are written to.
		Fs afero.Fs
		// Dialer connects to the running instance.
		Dialer instance.Dialer
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// rootOptions holds the persistent flags shared by every command.
	rootOptions struct {
		verbose    bool
		configFile string
		socket     string
	}

	// session is the per-invocation state derived from flags and config.
	session struct {
		cfg       *config.Config
		cfgPath   types.FilesystemPath
		logger    *log.Logger
		addresses *directory.Directory
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider(config.WithFs(deps.Fs))
	}
	if deps.Dialer == nil {
		deps.Dialer = instance.DefaultDialer()
	}

	return &App{
		Config: deps.Config,
		fs:     deps.Fs,
		dialer: deps.Dialer,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

func (o *rootOptions) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(o.configFile)}
}

// newSession loads configuration and builds the logger and address lookup
// for one command invocation. Flags win over config values.
func (a *App) newSession(ctx context.Context, opts *rootOptions) (*session, error) {
	loaded, err := a.Config.Load(ctx, opts.loadOptions())
	if err != nil {
		a.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		if opts.verbose {
			fmt.Fprintln(a.stderr, formatErrorForDisplay(err, true))
		}
		return nil, err
	}
	cfg := loaded.Config

	level := log.WarnLevel
	if parsed, parseErr := log.ParseLevel(cfg.Log.Level.String()); parseErr == nil {
		level = parsed
	}
	if opts.verbose || cfg.UI.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})

	override := opts.socket
	if override == "" {
		override = cfg.SocketPath.String()
	}

	return &session{
		cfg:       cfg,
		cfgPath:   loaded.Path,
		logger:    logger,
		addresses: directory.New(override),
	}, nil
}

// renderIssue writes the catalogued hint for id to stderr. Rendering
// failures fall back to the raw Markdown.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(scheme.String())
	if err != nil {
		rendered = string(iss.MarkdownMsg())
	}
	fmt.Fprint(a.stderr, rendered)
}

// unreachable turns a notifier failure into the exit code reserved for "no
// running instance", after printing the matching hint.
func (a *App) unreachable(s *session, err error) error {
	id := issue.InstanceUnreachableId
	if errors.Is(err, directory.ErrNoSocketDir) {
		id = issue.SocketDirUnavailableId
	}
	a.renderIssue(id, s.cfg.UI.ColorScheme)
	return &ExitError{Code: types.ExitNoInstance, Err: err}
}
