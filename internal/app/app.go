// Package app wires configuration, the correction passes, console output,
// figure export and the blocking viewer into a single run.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/pvadjust/internal/cli"
	"github.com/agbru/pvadjust/internal/config"
	"github.com/agbru/pvadjust/internal/correction"
	apperrors "github.com/agbru/pvadjust/internal/errors"
	"github.com/agbru/pvadjust/internal/logging"
	"github.com/agbru/pvadjust/internal/metrics"
	"github.com/agbru/pvadjust/internal/plot"
	"github.com/agbru/pvadjust/internal/sysmon"
	"github.com/agbru/pvadjust/internal/tui"
	"github.com/agbru/pvadjust/internal/ui"
)

const tracerName = "github.com/agbru/pvadjust/internal/app"

// Application represents the pvadjust application instance.
type Application struct {
	Config    config.AppConfig
	Viewer    Viewer
	Metrics   *metrics.Metrics
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithViewer sets the figure viewer. By default figures are shown in the
// terminal the application writes to.
func WithViewer(v Viewer) AppOption {
	return func(a *Application) { a.Viewer = v }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "pvadjust"
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
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		if cfg.LogFormat == config.LogFormatJSON {
			app.Logger = logging.NewLogger(errWriter, "pvadjust").WithLevel(level)
		} else {
			app.Logger = logging.NewConsoleLogger(errWriter).WithLevel(level)
		}
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewMetrics()
	}
	return app, nil
}

// Run adjusts the example p-values with each method in turn. For every
// method it prints the report, exports the figure when configured and shows
// it, waiting for the user before moving on. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	if a.Config.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancelTimeout()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Viewer == nil && !a.Config.NoDisplay {
		a.Viewer = tui.NewViewer(os.Stdin, out)
	}

	err := a.runCorrections(ctx, out)
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "run", Limit: a.Config.Timeout}
	}
	if werr := a.writeMetrics(ctx); err == nil {
		err = werr
	}

	if err != nil {
		a.Logger.Debug("run failed", logging.Err(err))
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// runCorrections runs the correction passes strictly one after the other.
func (a *Application) runCorrections(ctx context.Context, out io.Writer) error {
	if a.Config.PlotDir != "" {
		if err := os.MkdirAll(a.Config.PlotDir, 0o755); err != nil {
			return apperrors.RenderError{Path: a.Config.PlotDir, Cause: err}
		}
	}

	pvals := correction.ExamplePValues()
	for _, m := range correction.Methods() {
		if err := a.runMethod(ctx, out, m, pvals); err != nil {
			return apperrors.WrapError(err, "%s", m.Label())
		}
	}
	return nil
}

// runMethod runs one correction pass inside its own span.
func (a *Application) runMethod(ctx context.Context, out io.Writer, m correction.Method, pvals []float64) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "correction."+m.String(),
		trace.WithAttributes(
			attribute.String("method", m.String()),
			attribute.Int("comparisons", len(pvals)),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	adjusted, err := correction.Adjust(m, pvals)
	if err != nil {
		return err
	}
	result := correction.Result{Method: m, Original: pvals, Adjusted: adjusted}

	a.Metrics.ObserveCorrection(m.String(), adjusted, a.Config.Alpha)
	a.Logger.Debug("correction applied",
		logging.String("method", m.String()),
		logging.Int("comparisons", len(pvals)),
		logging.Floats("adjusted", adjusted),
		logging.Float64("alpha", a.Config.Alpha))

	cli.DisplayAdjustment(out, result)

	fig := plot.NewFigure(result, a.Config.Alpha)
	if a.Config.PlotDir != "" {
		path, err := plot.SaveTo(fig, a.Config.PlotDir, a.Config.PlotFormat, a.Config.PlotWidth, a.Config.PlotHeight)
		if err != nil {
			return err
		}
		a.Metrics.ObserveFigure(a.Config.PlotFormat)
		a.Logger.Info("figure exported", logging.String("path", path))
		cli.DisplayFigureSaved(out, path)
	}

	if a.Config.NoDisplay {
		return nil
	}
	span.AddEvent("display")
	if err := a.Viewer.Show(ctx, fig); err != nil {
		return err
	}
	a.Metrics.ObserveFigure("terminal")
	return nil
}

// writeMetrics writes the metrics textfile when one is configured, with a
// host resource snapshot taken just before.
func (a *Application) writeMetrics(ctx context.Context) error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	if stats, err := sysmon.Sample(context.WithoutCancel(ctx)); err != nil {
		a.Logger.Warn("system sampling failed", logging.Err(err))
	} else {
		a.Metrics.ObserveSystem(stats)
		a.Logger.Debug("system sampled",
			logging.Float64("cpu_percent", stats.CPUPercent),
			logging.Uint64("mem_used", stats.MemUsed))
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return apperrors.WrapError(err, "failed to write metrics")
	}
	return nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
