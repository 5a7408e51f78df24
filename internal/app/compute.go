package app

import (
	"fmt"
	"io"
	"math"

	"github.com/potify/potcalc/internal/cli"
	apperrors "github.com/potify/potcalc/internal/errors"
	"github.com/potify/potcalc/internal/logging"
)

// runCompute measures the configured pot(s) and presents the result in
// the selected output mode.
func (a *Application) runCompute(out io.Writer) int {
	measurements := []cli.Measurement{cli.Measure(a.Config.Pot, a.Config.Unit)}
	if a.Config.Compare {
		measurements = append(measurements, cli.Measure(a.Config.SecondPot, a.Config.Unit))
	}

	for i, m := range measurements {
		// Dimension validation keeps the construction well-defined, but
		// extreme magnitudes can still overflow the cone volumes. Gate
		// those here rather than print a non-finite result.
		if math.IsNaN(m.Volume) || math.IsInf(m.Volume, 0) {
			err := apperrors.GeometryError{Cause: fmt.Errorf("volume of pot %d is not finite (%v)", i+1, m.Volume)}
			a.Logger.Error("construction produced a non-finite volume", err, logging.Int("pot", i+1))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		a.Logger.Debug("pot measured",
			logging.Int("pot", i+1),
			logging.Float64("alpha", m.Alpha),
			logging.Float64("beta", m.Beta),
			logging.Float64("volume", m.Volume),
		)
	}

	if a.Config.JSON {
		if err := cli.WriteJSON(out, measurements...); err != nil {
			a.Logger.Error("failed to encode result", err)
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return a.saveReportIfNeeded(measurements)
	}

	if a.Config.Quiet {
		for _, m := range measurements {
			cli.DisplayQuietResult(out, m)
		}
		return a.saveReportIfNeeded(measurements)
	}

	cli.PrintExecutionConfig(a.Config, out)
	if a.Config.Compare {
		cli.DisplayComparison(out, measurements[0], measurements[1])
	} else {
		cli.DisplayResult(out, measurements[0])
	}
	if a.Config.Breakdown {
		for _, m := range measurements {
			cli.DisplayBreakdown(out, m)
		}
	}

	if code := a.saveReportIfNeeded(measurements); code != apperrors.ExitSuccess {
		return code
	}
	if a.Config.OutputFile != "" {
		fmt.Fprintf(out, "Report saved to: %s\n", a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}

// saveReportIfNeeded writes the report file when one was requested.
func (a *Application) saveReportIfNeeded(measurements []cli.Measurement) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteReportToFile(a.Config.OutputFile, measurements...); err != nil {
		a.Logger.Error("failed to write report", err, logging.String("path", a.Config.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
