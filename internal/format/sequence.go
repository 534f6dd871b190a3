package format

import (
	"strconv"
	"strings"
)

// FormatProbability formats a single value with the shortest representation
// that round-trips to the same float64.
func FormatProbability(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatSequence renders values as a bracketed, space-separated list,
// e.g. "[0.01 0.03 0.05 0.4 0.1]".
//
// Parameters:
//   - values: The sequence to format. A nil or empty slice yields "[]".
//
// Returns:
//   - string: The formatted sequence.
func FormatSequence(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatProbability(v))
	}
	b.WriteByte(']')
	return b.String()
}
