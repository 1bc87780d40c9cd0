// Package app wires configuration, logging, metrics and the calculator
// front ends into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/ecccalc/internal/cli"
	"github.com/agbru/ecccalc/internal/config"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/logging"
	"github.com/agbru/ecccalc/internal/metrics"
	"github.com/agbru/ecccalc/internal/montgomery"
	"github.com/agbru/ecccalc/internal/orchestration"
	"github.com/agbru/ecccalc/internal/ui"
)

// Application represents the ecccalc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *orchestration.Registry
	Cache     *montgomery.Cache
	Metrics   *metrics.Metrics
	Logger    logging.Logger
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom strategy registry for the application.
func WithRegistry(r *orchestration.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger replaces the default zerolog logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the interactive mode.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// The Montgomery cache is owned by the application and reports its lookups
// to the application's metrics.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = orchestration.NewDefaultRegistry()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "ecccalc")
	}
	app.Metrics = metrics.New()
	app.Cache = montgomery.NewCache(montgomery.WithObserver(app.Metrics))

	programName := "ecccalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		// The flag package reports its own parse errors.
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if level, err := zerolog.ParseLevel(a.Config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("configuration loaded",
		logging.String("op", a.Config.Op),
		logging.String("curve", a.Config.Curve),
		logging.String("algo", a.Config.Algo),
		logging.Duration("timeout", a.Config.Timeout))

	var code int
	if a.Config.REPL {
		code = a.runREPL(out)
	} else {
		code = a.runCalculate(ctx, out)
	}

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := a.Metrics.WriteText(out); err != nil {
			a.Logger.Error("metrics dump failed", err)
		}
	}
	return code
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive calculator on a.In.
func (a *Application) runREPL(out io.Writer) int {
	repl, err := cli.NewREPL(a.Registry, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Curve:       a.Config.Curve,
		Timeout:     a.Config.Timeout,
		Cache:       a.Cache,
	})
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
