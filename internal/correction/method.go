package correction

import (
	"fmt"

	apperrors "github.com/agbru/pvadjust/internal/errors"
)

// ExamplePValues returns a fresh copy of the fixed example input.
func ExamplePValues() []float64 {
	return []float64{0.01, 0.03, 0.05, 0.4, 0.1}
}

// Method identifies a multiple-comparison correction procedure.
type Method int

const (
	// MethodBonferroni scales each p-value by the number of comparisons.
	MethodBonferroni Method = iota
	// MethodBenjaminiHochberg applies the FDR step-up procedure.
	MethodBenjaminiHochberg
)

// Methods returns the supported procedures in the order they are run.
func Methods() []Method {
	return []Method{MethodBonferroni, MethodBenjaminiHochberg}
}

// String returns the method identifier.
func (m Method) String() string {
	switch m {
	case MethodBonferroni:
		return "bonferroni"
	case MethodBenjaminiHochberg:
		return "fdr_bh"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Label is the name used in console output.
func (m Method) Label() string {
	switch m {
	case MethodBonferroni:
		return "Bonferroni"
	case MethodBenjaminiHochberg:
		return "Benjamini-Hochberg (BH)"
	default:
		return m.String()
	}
}

// ShortLabel is the name used in figure legends.
func (m Method) ShortLabel() string {
	switch m {
	case MethodBenjaminiHochberg:
		return "BH"
	default:
		return m.Label()
	}
}

// Title is the figure title for the method.
func (m Method) Title() string {
	switch m {
	case MethodBonferroni:
		return "Bonferroni Correction"
	case MethodBenjaminiHochberg:
		return "Benjamini-Hochberg Correction"
	default:
		return m.Label()
	}
}

// Adjust applies the given method to pvals.
func Adjust(m Method, pvals []float64) ([]float64, error) {
	switch m {
	case MethodBonferroni:
		return Bonferroni(pvals), nil
	case MethodBenjaminiHochberg:
		return BenjaminiHochberg(pvals), nil
	default:
		return nil, apperrors.UnknownMethodError{Method: m.String()}
	}
}

// Result pairs the original p-values with their adjustment.
// Original and Adjusted always have the same length.
type Result struct {
	Method   Method
	Original []float64
	Adjusted []float64
}

// Len returns the number of comparisons.
func (r Result) Len() int { return len(r.Original) }
