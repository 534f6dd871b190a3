package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/agbru/pvadjust/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args request the version banner.
// Arguments after a "--" terminator are ignored.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "pvadjust %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
