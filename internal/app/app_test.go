package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/pvadjust/internal/app/mocks"
	"github.com/agbru/pvadjust/internal/config"
	"github.com/agbru/pvadjust/internal/correction"
	apperrors "github.com/agbru/pvadjust/internal/errors"
	"github.com/agbru/pvadjust/internal/logging"
	"github.com/agbru/pvadjust/internal/metrics"
	"github.com/agbru/pvadjust/internal/plot"
)

const (
	originalLine   = "Original p-values: [0.01 0.03 0.05 0.4 0.1]\n"
	bonferroniLine = "Bonferroni adjusted p-values: [0.05 0.15 0.25 1 0.5]\n"
	bhLine         = "Benjamini-Hochberg (BH) adjusted p-values: [0.05 0.075 0.08333333333333333 0.4 0.125]\n"
)

func newTestApp(t *testing.T, args []string, opts ...AppOption) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	opts = append([]AppOption{WithLogger(logging.Nop())}, opts...)
	app, err := New(append([]string{"pvadjust", "--no-color"}, args...), &errBuf, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app, &errBuf
}

// figureOf matches the figure drawn for a given method.
type figureOf correction.Method

func (m figureOf) Matches(x any) bool {
	f, ok := x.(plot.Figure)
	return ok && f.Method == correction.Method(m)
}

func (m figureOf) String() string {
	return "is the figure of " + correction.Method(m).String()
}

func TestRun_ShowsFiguresInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	var out bytes.Buffer
	var printedBeforeShow []string
	record := func(_ context.Context, _ plot.Figure) error {
		printedBeforeShow = append(printedBeforeShow, out.String())
		return nil
	}
	gomock.InOrder(
		viewer.EXPECT().Show(gomock.Any(), figureOf(correction.MethodBonferroni)).DoAndReturn(record),
		viewer.EXPECT().Show(gomock.Any(), figureOf(correction.MethodBenjaminiHochberg)).DoAndReturn(record),
	)

	app, _ := newTestApp(t, nil, WithViewer(viewer))
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}

	if got, want := out.String(), originalLine+bonferroniLine+originalLine+bhLine; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}

	// The BH report must not be printed until the Bonferroni figure is dismissed.
	if len(printedBeforeShow) != 2 {
		t.Fatalf("expected 2 figures, got %d", len(printedBeforeShow))
	}
	if printedBeforeShow[0] != originalLine+bonferroniLine {
		t.Errorf("output before the first figure = %q", printedBeforeShow[0])
	}
	if printedBeforeShow[1] != originalLine+bonferroniLine+originalLine+bhLine {
		t.Errorf("output before the second figure = %q", printedBeforeShow[1])
	}
}

func TestRun_FigureContents(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	var figures []plot.Figure
	viewer.EXPECT().Show(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, f plot.Figure) error {
			figures = append(figures, f)
			return nil
		})

	app, _ := newTestApp(t, []string{"--alpha", "0.1"}, WithViewer(viewer))
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	wantTitles := []string{"Bonferroni Correction", "Benjamini-Hochberg Correction"}
	for i, f := range figures {
		if f.Title != wantTitles[i] {
			t.Errorf("figure %d title = %q, want %q", i, f.Title, wantTitles[i])
		}
		if f.Threshold != 0.1 {
			t.Errorf("figure %d threshold = %v, want 0.1", i, f.Threshold)
		}
		if f.Len() != 5 {
			t.Errorf("figure %d has %d points, want 5", i, f.Len())
		}
	}
}

func TestRun_DisplayErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)
	viewer.EXPECT().
		Show(gomock.Any(), figureOf(correction.MethodBonferroni)).
		Return(apperrors.DisplayError{Cause: errors.New("no terminal")}).
		Times(1)

	var out bytes.Buffer
	app, errBuf := newTestApp(t, nil, WithViewer(viewer))
	code := app.Run(context.Background(), &out)

	if code != apperrors.ExitErrorDisplay {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorDisplay)
	}
	if got, want := out.String(), originalLine+bonferroniLine; got != want {
		t.Errorf("BH must not run after a display failure, output = %q", got)
	}
	if !strings.Contains(errBuf.String(), "Error:") || !strings.Contains(errBuf.String(), "no terminal") {
		t.Errorf("expected a diagnostic on the error writer, got %q", errBuf.String())
	}
}

func TestRun_NoDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	var out bytes.Buffer
	app, _ := newTestApp(t, []string{"--no-display"}, WithViewer(viewer))
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if got, want := out.String(), originalLine+bonferroniLine+originalLine+bhLine; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ExportsFigures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	m := metrics.NewMetrics()

	var out bytes.Buffer
	app, _ := newTestApp(t, []string{"--no-display", "--plot-dir", dir, "--plot-format", "svg"}, WithMetrics(m))
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	for _, name := range []string{"bonferroni.svg", "fdr_bh.svg"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(out.String(), "Figure saved to "+path) {
			t.Errorf("expected a confirmation line for %s", path)
		}
	}

	expected := `
# HELP pvadjust_figures_rendered_total Figures rendered, by target (terminal or file format).
# TYPE pvadjust_figures_rendered_total counter
pvadjust_figures_rendered_total{target="svg"} 2
`
	if err := testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected), "pvadjust_figures_rendered_total"); err != nil {
		t.Errorf("unexpected figure metrics: %v", err)
	}
}

func TestRun_WritesMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvadjust.prom")

	app, _ := newTestApp(t, []string{"--no-display", "--metrics-file", path})
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading metrics file: %v", err)
	}
	for _, want := range []string{
		`pvadjust_corrections_total{method="bonferroni"} 1`,
		`pvadjust_corrections_total{method="fdr_bh"} 1`,
		`pvadjust_below_threshold{method="fdr_bh"} 0`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file should contain %q", want)
		}
	}
}

// slowViewer keeps each figure open for hold, or until the context ends.
func slowViewer(hold time.Duration, shown *int) func(context.Context, plot.Figure) error {
	return func(ctx context.Context, _ plot.Figure) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(hold):
			*shown++
			return nil
		}
	}
}

func TestRun_DefaultConfigNeverTimesOutInViewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	shown := 0
	viewer.EXPECT().Show(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(slowViewer(100*time.Millisecond, &shown))

	var out bytes.Buffer
	app, errBuf := newTestApp(t, nil, WithViewer(viewer))
	if app.Config.Timeout != 0 {
		t.Fatalf("default Timeout = %v, want no limit", app.Config.Timeout)
	}
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d; stderr: %s", code, apperrors.ExitSuccess, errBuf.String())
	}
	if shown != 2 {
		t.Errorf("figures dismissed = %d, want 2", shown)
	}
	if got, want := out.String(), originalLine+bonferroniLine+originalLine+bhLine; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ExplicitTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	shown := 0
	viewer.EXPECT().Show(gomock.Any(), figureOf(correction.MethodBonferroni)).DoAndReturn(slowViewer(time.Minute, &shown))

	var out bytes.Buffer
	app, errBuf := newTestApp(t, []string{"--timeout", "50ms"}, WithViewer(viewer))
	if code := app.Run(context.Background(), &out); code != apperrors.ExitErrorTimeout {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if shown != 0 {
		t.Errorf("figures dismissed = %d, want 0", shown)
	}
	if !strings.Contains(errBuf.String(), "timed out after 50ms") {
		t.Errorf("expected a timeout diagnostic, got %q", errBuf.String())
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := mocks.NewMockViewer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	app, _ := newTestApp(t, nil, WithViewer(viewer))
	if code := app.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed after cancellation, got %q", out.String())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		help bool
		code int
	}{
		{"alpha out of range", []string{"--alpha", "2"}, false, apperrors.ExitErrorConfig},
		{"unknown format", []string{"--plot-format", "bmp"}, false, apperrors.ExitErrorConfig},
		{"positional argument", []string{"0.5"}, false, apperrors.ExitErrorConfig},
		{"help", []string{"--help"}, true, apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := New(append([]string{"pvadjust"}, tt.args...), &errBuf)
			if err == nil {
				t.Fatal("expected an error")
			}
			if IsHelpError(err) != tt.help {
				t.Errorf("IsHelpError() = %v, want %v", IsHelpError(err), tt.help)
			}
			if !tt.help && apperrors.ExitCodeFor(err) != tt.code {
				t.Errorf("ExitCodeFor() = %d, want %d", apperrors.ExitCodeFor(err), tt.code)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	app, err := New([]string{"pvadjust"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if app.Logger == nil || app.Metrics == nil {
		t.Error("New should install a default logger and metrics")
	}
	if app.Config.Alpha != config.DefaultAlpha {
		t.Errorf("Alpha = %v, want %v", app.Config.Alpha, config.DefaultAlpha)
	}
}

func TestNew_JSONLogs(t *testing.T) {
	var errBuf bytes.Buffer
	app, err := New([]string{"pvadjust", "--no-display", "--no-color", "--log-format", "json", "--log-level", "debug"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	logs := errBuf.String()
	for _, want := range []string{`"component":"pvadjust"`, `"method":"fdr_bh"`, `"comparisons":5`} {
		if !strings.Contains(logs, want) {
			t.Errorf("JSON logs should contain %s, got:\n%s", want, logs)
		}
	}
	if strings.Contains(out.String(), "{") {
		t.Errorf("logs must not reach stdout, got %q", out.String())
	}
}
