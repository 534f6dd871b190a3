// Package tui shows correction figures in the terminal and blocks until the
// user dismisses them.
package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	apperrors "github.com/agbru/pvadjust/internal/errors"
	"github.com/agbru/pvadjust/internal/plot"
)

var (
	errNotTerminal  = errors.New("output is not an interactive terminal")
	errNotDismissed = errors.New("viewer exited before the figure was dismissed")
)

// Viewer displays figures in a full-screen terminal program.
type Viewer struct {
	in         io.Reader
	out        io.Writer
	isTerminal func(io.Writer) bool
}

// NewViewer creates a viewer reading keys from in and drawing to out.
func NewViewer(in io.Reader, out io.Writer) *Viewer {
	return &Viewer{in: in, out: out, isTerminal: isTerminal}
}

// Show draws the figure and blocks until it is dismissed or ctx is done.
// It returns an apperrors.DisplayError when out is not a terminal and
// context.Canceled when the user quits instead of dismissing.
func (v *Viewer) Show(ctx context.Context, f plot.Figure) error {
	if !v.isTerminal(v.out) {
		return apperrors.DisplayError{Cause: errNotTerminal}
	}

	// Styles follow the theme active at display time.
	initViewerStyles()

	p := tea.NewProgram(NewModel(f),
		tea.WithContext(ctx),
		tea.WithInput(v.in),
		tea.WithOutput(v.out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return apperrors.DisplayError{Cause: err}
	}
	if m, ok := final.(Model); ok {
		if m.Aborted() {
			return context.Canceled
		}
		if !m.Dismissed() {
			return apperrors.DisplayError{Cause: errNotDismissed}
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
