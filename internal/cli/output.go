// Package cli renders correction results on the console.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayAdjustment], [DisplayFigureSaved], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatAdjustment].
package cli

import (
	"fmt"
	"io"

	"github.com/agbru/pvadjust/internal/correction"
	"github.com/agbru/pvadjust/internal/format"
	"github.com/agbru/pvadjust/internal/ui"
)

// FormatAdjustment returns the two report lines for a result without any
// color codes:
//
//	Original p-values: [0.01 0.03 0.05 0.4 0.1]
//	Bonferroni adjusted p-values: [0.05 0.15 0.25 1 0.5]
func FormatAdjustment(r correction.Result) string {
	return fmt.Sprintf("Original p-values: %s\n%s adjusted p-values: %s\n",
		format.FormatSequence(r.Original),
		r.Method.Label(),
		format.FormatSequence(r.Adjusted))
}

// DisplayAdjustment writes the report lines for a result, coloring the
// labels with the active theme.
//
// Parameters:
//   - out: The destination writer.
//   - r: The correction result to report.
func DisplayAdjustment(out io.Writer, r correction.Result) {
	fmt.Fprintf(out, "%sOriginal p-values:%s %s\n",
		ui.ColorPrimary(), ui.ColorReset(), format.FormatSequence(r.Original))
	fmt.Fprintf(out, "%s%s adjusted p-values:%s %s\n",
		ui.ColorSuccess(), r.Method.Label(), ui.ColorReset(), format.FormatSequence(r.Adjusted))
}

// DisplayFigureSaved confirms that a figure was written to path.
func DisplayFigureSaved(out io.Writer, path string) {
	fmt.Fprintf(out, "%sFigure saved to%s %s\n", ui.ColorSecondary(), ui.ColorReset(), path)
}

// DisplayError writes a diagnostic line for a fatal error.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
}
