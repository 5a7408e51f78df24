package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/potify/potcalc/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the argument vector requests the
// version, so main can answer before any parsing or setup.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-v", "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "potcalc %s (%s)\n", Version, runtime.Version())
}
