// Package correction adjusts p-values for multiple comparisons.
//
// Two procedures are provided: Bonferroni, which scales every p-value by the
// number of comparisons, and the Benjamini-Hochberg step-up procedure, which
// controls the false discovery rate. Both are pure functions: the input slice
// is never modified and the output is index-aligned with it.
package correction
