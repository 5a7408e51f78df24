// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "POTCALC_"

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvFloat64 returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as float64, or the default value if not set
// or invalid.
func getEnvFloat64(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the POTCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig)
}

// envOverrides is the declarative table of all environment variable overrides.
// Grouped as: dimensions, display, output, logging.
var envOverrides = []envOverride{
	// Dimension overrides
	{"BASE", []string{"base"}, func(c *AppConfig) {
		c.Pot.Base = getEnvFloat64("BASE", c.Pot.Base)
	}},
	{"TOP", []string{"top"}, func(c *AppConfig) {
		c.Pot.Top = getEnvFloat64("TOP", c.Pot.Top)
	}},
	{"HEIGHT", []string{"height"}, func(c *AppConfig) {
		c.Pot.Height = getEnvFloat64("HEIGHT", c.Pot.Height)
	}},
	{"BASE2", []string{"base2"}, func(c *AppConfig) {
		c.SecondPot.Base = getEnvFloat64("BASE2", c.SecondPot.Base)
	}},
	{"TOP2", []string{"top2"}, func(c *AppConfig) {
		c.SecondPot.Top = getEnvFloat64("TOP2", c.SecondPot.Top)
	}},
	{"HEIGHT2", []string{"height2"}, func(c *AppConfig) {
		c.SecondPot.Height = getEnvFloat64("HEIGHT2", c.SecondPot.Height)
	}},
	// Display overrides
	{"UNIT", []string{"unit"}, func(c *AppConfig) {
		c.Unit = getEnvString("UNIT", c.Unit)
	}},
	{"BREAKDOWN", []string{"breakdown"}, func(c *AppConfig) {
		c.Breakdown = getEnvBool("BREAKDOWN", c.Breakdown)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig) {
		c.Quiet = getEnvBool("QUIET", c.Quiet)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig) {
		c.NoColor = getEnvBool("NO_COLOR", c.NoColor)
	}},
	// Output overrides
	{"JSON", []string{"json"}, func(c *AppConfig) {
		c.JSON = getEnvBool("JSON", c.JSON)
	}},
	{"OUTPUT", []string{"o"}, func(c *AppConfig) {
		c.OutputFile = getEnvString("OUTPUT", c.OutputFile)
	}},
	// Logging overrides
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig) {
		c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	}},
}

// applyEnvOverrides applies every environment override whose flag was
// not explicitly set on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		o.apply(cfg)
	}
}
