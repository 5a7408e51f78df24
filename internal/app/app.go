// Package app wires configuration, logging, and presentation into the
// potcalc application and owns its exit codes.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/potify/potcalc/internal/config"
	apperrors "github.com/potify/potcalc/internal/errors"
	"github.com/potify/potcalc/internal/logging"
	"github.com/potify/potcalc/internal/ui"
)

// Application represents the potcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, including the program name.
//   - errWriter: The writer for errors and usage output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "potcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

// newLogger builds the zerolog-backed logger for the configured level.
func newLogger(cfg config.AppConfig, errWriter io.Writer) logging.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: errWriter, NoColor: cfg.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	return logging.NewZerologAdapter(zl)
}

// Run executes the application and returns its exit code.
//
// Parameters:
//   - out: The writer for standard output.
//
// Returns:
//   - int: One of the apperrors exit codes.
func (a *Application) Run(out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if err := a.Config.Validate(); err != nil {
		a.Logger.Error("invalid pot dimensions", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return a.runCompute(out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
