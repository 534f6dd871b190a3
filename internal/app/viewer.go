//go:generate mockgen -source=viewer.go -destination=mocks/mock_viewer.go -package=mocks

package app

import (
	"context"

	"github.com/agbru/pvadjust/internal/plot"
)

// Viewer shows a figure and blocks until the user dismisses it.
// The terminal implementation lives in the tui package.
type Viewer interface {
	// Show displays f and returns once it has been dismissed, the context is
	// done, or the display is unavailable.
	Show(ctx context.Context, f plot.Figure) error
}
