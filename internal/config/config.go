// Package config defines the application configuration, command-line
// parsing, and boundary validation of pot dimensions.
//
// Configuration resolution chain (highest priority first):
//  1. CLI flags (-base, -top, -height, ...)
//  2. Environment variables (POTCALC_BASE, POTCALC_TOP, ...)
//  3. Static defaults (the demonstration pot)
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/potify/potcalc/internal/errors"
)

// Default dimensions are the demonstration pot: an 11 cm base, a 19 cm
// rim, 18 cm tall.
const (
	DefaultBase   = 11.0
	DefaultTop    = 19.0
	DefaultHeight = 18.0
	DefaultUnit   = "cm"
)

// Pot holds the physical measurements of one frustum-shaped pot.
// All values share one linear unit.
type Pot struct {
	// Base is the diameter measured at the base of the pot.
	Base float64
	// Top is the diameter measured at the top of the pot.
	Top float64
	// Height is the height of the pot.
	Height float64
}

// Validate checks that the dimensions describe a pot the two-cone
// construction can handle. The geometry kernel performs no checks of
// its own, so every rejection the design requires happens here.
//
// Returns:
//   - error: A ValidationError naming the offending dimension, or nil.
func (p Pot) Validate() error {
	if p.Base <= 0 {
		return apperrors.NewValidationError("base", "diameter must be positive, got %v", p.Base)
	}
	if p.Top <= 0 {
		return apperrors.NewValidationError("top", "diameter must be positive, got %v", p.Top)
	}
	if p.Height <= 0 {
		return apperrors.NewValidationError("height", "must be positive, got %v", p.Height)
	}
	if p.Top == p.Base {
		return apperrors.NewValidationError("top", "must differ from the base diameter (%v): the slant triangle degenerates", p.Base)
	}
	if p.Top < p.Base {
		return apperrors.NewValidationError("top", "must exceed the base diameter (the pot widens upward), got top=%v base=%v", p.Top, p.Base)
	}

	// The slant side, extended, must meet the axis below the pot's
	// base. A steep pot (height above the slant half-width) qualifies
	// once height^2 > (top^2 - base^2)/4; at height == halfWidth the
	// apex angle vanishes and the construction divides by zero.
	halfWidth := (p.Top - p.Base) / 2
	if p.Height == halfWidth {
		return apperrors.NewValidationError("height", "must differ from half the diameter spread (%v): the apex angle degenerates", halfWidth)
	}
	if p.Height > halfWidth && p.Height*p.Height <= (p.Top*p.Top-p.Base*p.Base)/4 {
		return apperrors.NewValidationError("height", "too small for this taper: the virtual apex falls inside the pot (need height² > %v)", (p.Top*p.Top-p.Base*p.Base)/4)
	}
	return nil
}

// AppConfig holds the full application configuration assembled from
// flags and environment variables.
type AppConfig struct {
	// Pot is the primary pot to measure.
	Pot Pot
	// SecondPot is the optional pot to compare against; valid only when
	// Compare is true.
	SecondPot Pot
	// Compare enables the two-pot comparison mode.
	Compare bool
	// Unit is the linear unit label used for display (never converted).
	Unit string
	// Breakdown shows the construction angles and virtual-cone heights.
	Breakdown bool
	// Quiet suppresses everything except the final value, for scripting.
	Quiet bool
	// JSON emits the result as a single JSON document.
	JSON bool
	// OutputFile is the path to save a report (empty for no file output).
	OutputFile string
	// NoColor disables colorized output.
	NoColor bool
	// LogLevel selects the zerolog level (debug, info, warn, error).
	LogLevel string
}

// ParseConfig parses command-line arguments and environment overrides
// into an AppConfig. Flags win over environment variables; environment
// variables win over defaults.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The assembled configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Pot:      Pot{Base: DefaultBase, Top: DefaultTop, Height: DefaultHeight},
		Unit:     DefaultUnit,
		LogLevel: "warn",
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Computes the volume of a frustum-shaped pot from its base diameter,\n")
		fmt.Fprintf(errWriter, "top diameter, and height. With a second pot, compares the two.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables with the %s prefix override defaults\n", EnvPrefix)
		fmt.Fprintf(errWriter, "for flags not set on the command line (e.g. %sBASE).\n", EnvPrefix)
	}

	fs.Float64Var(&cfg.Pot.Base, "base", cfg.Pot.Base, "base diameter of the pot")
	fs.Float64Var(&cfg.Pot.Top, "top", cfg.Pot.Top, "top diameter of the pot")
	fs.Float64Var(&cfg.Pot.Height, "height", cfg.Pot.Height, "height of the pot")
	fs.Float64Var(&cfg.SecondPot.Base, "base2", 0, "base diameter of the second pot (enables comparison)")
	fs.Float64Var(&cfg.SecondPot.Top, "top2", 0, "top diameter of the second pot")
	fs.Float64Var(&cfg.SecondPot.Height, "height2", 0, "height of the second pot")
	fs.StringVar(&cfg.Unit, "unit", cfg.Unit, "unit label for display (no conversion is performed)")
	fs.BoolVar(&cfg.Breakdown, "breakdown", false, "show the construction angles and virtual-cone heights")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the computed value(s)")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the computed value(s) (shorthand)")
	fs.BoolVar(&cfg.JSON, "json", false, "emit the result as JSON")
	fs.StringVar(&cfg.OutputFile, "o", "", "write a report to the given file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colorized output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	// Any second-pot dimension implies comparison mode; the pots are
	// validated as a pair below.
	cfg.Compare = cfg.SecondPot != (Pot{})

	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}
	if cfg.Unit == "" {
		return AppConfig{}, apperrors.NewConfigError("unit label must not be empty")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return AppConfig{}, apperrors.NewConfigError("unknown log level %q (want debug, info, warn, or error)", cfg.LogLevel)
	}

	return cfg, nil
}

// Validate applies the pot-dimension validation to every pot the
// configuration names.
//
// Returns:
//   - error: The first ValidationError encountered, or nil.
func (c AppConfig) Validate() error {
	if err := c.Pot.Validate(); err != nil {
		return err
	}
	if c.Compare {
		if err := c.SecondPot.Validate(); err != nil {
			return fmt.Errorf("second pot: %w", err)
		}
	}
	return nil
}
