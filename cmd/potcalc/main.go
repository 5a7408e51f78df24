package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/potify/potcalc/internal/app"
	apperrors "github.com/potify/potcalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		// Flag-syntax errors are already echoed by the flag set; the
		// post-parse checks are not, so print those here.
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(os.Stdout))
}
