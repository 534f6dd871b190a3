// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

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

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the PVADJUST_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparseable values are ignored and the flag default is kept.
var envOverrides = []envOverride{
	// Numeric overrides
	{"ALPHA", "alpha", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Alpha = parsed
		}
	}},
	{"PLOT_WIDTH", "plot-width", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.PlotWidth = parsed
		}
	}},
	{"PLOT_HEIGHT", "plot-height", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.PlotHeight = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"PLOT_DIR", "plot-dir", func(c *AppConfig, v string) {
		c.PlotDir = v
	}},
	{"PLOT_FORMAT", "plot-format", func(c *AppConfig, v string) {
		c.PlotFormat = v
	}},
	{"THEME", "theme", func(c *AppConfig, v string) {
		c.Theme = v
	}},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v string) {
		c.LogFormat = v
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},

	// Boolean overrides
	{"NO_DISPLAY", "no-display", func(c *AppConfig, v string) {
		c.NoDisplay = parseBoolEnv(v, c.NoDisplay)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with PVADJUST_):
//   - ALPHA, PLOT_DIR, PLOT_FORMAT, PLOT_WIDTH, PLOT_HEIGHT, NO_DISPLAY,
//     NO_COLOR, THEME, LOG_LEVEL, METRICS_FILE, TIMEOUT
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
