// Package config parses the command line and environment into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/pvadjust/internal/errors"
	"github.com/agbru/pvadjust/internal/logging"
	"github.com/agbru/pvadjust/internal/ui"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "PVADJUST_"

// Default values for the configuration.
const (
	// DefaultAlpha is the significance threshold drawn on every figure.
	// It is a visual reference only and never enters an adjustment.
	DefaultAlpha      = 0.05
	DefaultPlotFormat = "png"
	DefaultPlotWidth  = 6.0
	DefaultPlotHeight = 4.0
	DefaultLogLevel   = "warn"
	DefaultTheme      = "dark"
)

// DefaultTimeout of zero leaves the run unbounded, so a figure may stay open
// for as long as the user wants.
const DefaultTimeout time.Duration = 0

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// supportedPlotFormats lists the image formats the figure exporter accepts.
var supportedPlotFormats = []string{"png", "svg", "pdf"}

// AppConfig holds the presentation settings of a run. The input p-values and
// the correction methods are fixed and deliberately absent here.
type AppConfig struct {
	// Alpha is the significance threshold drawn on each figure.
	Alpha float64
	// PlotDir is the directory figures are exported to; empty disables export.
	PlotDir string
	// PlotFormat is the exported image format (png, svg or pdf).
	PlotFormat string
	// PlotWidth and PlotHeight are the exported figure size in inches.
	PlotWidth  float64
	PlotHeight float64
	// NoDisplay skips the blocking terminal viewer.
	NoDisplay bool
	// NoColor disables ANSI colors in console output and the viewer.
	NoColor bool
	// Theme selects the color theme (dark, light, none).
	Theme string
	// LogLevel is the minimum level written to the error stream.
	LogLevel string
	// LogFormat selects human-readable (console) or JSON log lines.
	LogFormat string
	// MetricsFile, when set, receives Prometheus text-format metrics at exit.
	MetricsFile string
	// Timeout bounds the whole run, including time spent in the viewer.
	// Zero means no limit.
	Timeout time.Duration
}

// ParseConfig parses args into an AppConfig. Priority is
// CLI flags > PVADJUST_* environment variables > defaults.
//
// On --help it returns flag.ErrHelp after printing usage to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.Float64Var(&config.Alpha, "alpha", DefaultAlpha, "Significance threshold drawn on each figure (visual reference only).")
	fs.StringVar(&config.PlotDir, "plot-dir", "", "Directory to export the figures to (disabled when empty).")
	fs.StringVar(&config.PlotFormat, "plot-format", DefaultPlotFormat, "Exported figure format: "+strings.Join(supportedPlotFormats, ", ")+".")
	fs.Float64Var(&config.PlotWidth, "plot-width", DefaultPlotWidth, "Exported figure width in inches.")
	fs.Float64Var(&config.PlotHeight, "plot-height", DefaultPlotHeight, "Exported figure height in inches.")
	fs.BoolVar(&config.NoDisplay, "no-display", false, "Do not open the terminal figure viewer.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: dark, light, none.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&config.LogFormat, "log-format", LogFormatConsole, "Log format: console, json.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file at exit.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run, viewer included (0 = no limit).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Adjusts the example p-values with the Bonferroni and Benjamini-Hochberg\n")
		fmt.Fprintf(errWriter, "procedures, prints them and shows one figure per method.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&config, fs)
	config.PlotFormat = strings.ToLower(config.PlotFormat)
	config.LogFormat = strings.ToLower(config.LogFormat)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if !(c.Alpha > 0 && c.Alpha < 1) {
		return apperrors.ValidationError{Field: "alpha", Message: fmt.Sprintf("must be in (0, 1), got %g", c.Alpha)}
	}
	if !isSupportedFormat(c.PlotFormat) {
		return apperrors.ValidationError{Field: "plot-format", Message: fmt.Sprintf("unsupported format %q", c.PlotFormat)}
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return apperrors.ValidationError{Field: "plot-size", Message: "width and height must be positive"}
	}
	if !ui.IsValidTheme(c.Theme) {
		return apperrors.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", c.Theme)}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: err.Error()}
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return apperrors.ValidationError{Field: "log-format", Message: fmt.Sprintf("unknown format %q", c.LogFormat)}
	}
	if c.Timeout < 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must not be negative"}
	}
	return nil
}

func isSupportedFormat(format string) bool {
	for _, f := range supportedPlotFormats {
		if f == format {
			return true
		}
	}
	return false
}
