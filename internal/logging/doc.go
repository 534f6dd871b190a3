// Package logging provides a unified logging interface for pvadjust.
// It abstracts the underlying zerolog implementation so components log
// structured fields without depending on the backend directly.
package logging
