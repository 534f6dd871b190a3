package correction

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bonferroni returns min(p*n, 1) for every p-value, where n is the number of
// comparisons. Values are not clipped from below.
func Bonferroni(pvals []float64) []float64 {
	adjusted := make([]float64, len(pvals))
	floats.ScaleTo(adjusted, float64(len(pvals)), pvals)
	for i, v := range adjusted {
		adjusted[i] = math.Min(v, 1.0)
	}
	return adjusted
}

// BenjaminiHochberg returns p-values adjusted with the Benjamini-Hochberg
// step-up procedure.
//
// The p-values are ranked in ascending order, each is scaled by n/rank, and a
// running minimum is taken from the largest rank down so the adjusted values
// never decrease with rank. Results are clipped to [0, 1] and returned in the
// order of the input.
func BenjaminiHochberg(pvals []float64) []float64 {
	n := len(pvals)
	adjusted := make([]float64, n)
	if n == 0 {
		return adjusted
	}

	sorted := make([]float64, n)
	copy(sorted, pvals)
	order := make([]int, n)
	floats.Argsort(sorted, order)

	total := float64(n)
	running := math.Inf(1)
	for rank := n; rank >= 1; rank-- {
		candidate := sorted[rank-1] * total / float64(rank)
		running = math.Min(running, candidate)
		adjusted[order[rank-1]] = clip(running)
	}
	return adjusted
}

func clip(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
