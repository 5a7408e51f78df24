// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayComparison].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/potify/potcalc/internal/config"
	"github.com/potify/potcalc/internal/format"
	"github.com/potify/potcalc/internal/geometry"
	"github.com/potify/potcalc/internal/ui"
)

// Measurement is the fully derived result for one pot: the input
// dimensions plus every intermediate of the two-cone construction.
type Measurement struct {
	// Pot holds the input dimensions.
	Pot config.Pot
	// Alpha is the apex half-angle of the virtual cones, in radians.
	Alpha float64
	// Beta is the slant-triangle base angle, in radians.
	Beta float64
	// SmallConeHeight is the height of the cone sliced off below the base.
	SmallConeHeight float64
	// BigConeHeight is the height of the full virtual cone.
	BigConeHeight float64
	// Volume is the pot volume in cubic units.
	Volume float64
	// Unit is the linear unit label.
	Unit string
}

// Measure runs the two-cone construction for one pot and collects every
// derived value for presentation.
func Measure(pot config.Pot, unit string) Measurement {
	alpha, beta := geometry.ComputeAngles(pot.Top, pot.Base, pot.Height)
	hSmall, hBig := geometry.ConeHeights(pot.Base, pot.Top, pot.Height)
	return Measurement{
		Pot:             pot,
		Alpha:           alpha,
		Beta:            beta,
		SmallConeHeight: hSmall,
		BigConeHeight:   hBig,
		Volume:          geometry.FrustumVolume(pot.Base, pot.Top, pot.Height),
		Unit:            unit,
	}
}

// PrintExecutionConfig displays the dimensions about to be computed.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Pot Measurements ---\n")
	fmt.Fprintf(out, "Base %s%v %s%s, top %s%v %s%s, height %s%v %s%s.\n",
		ui.ColorInfo(), cfg.Pot.Base, cfg.Unit, ui.ColorReset(),
		ui.ColorInfo(), cfg.Pot.Top, cfg.Unit, ui.ColorReset(),
		ui.ColorInfo(), cfg.Pot.Height, cfg.Unit, ui.ColorReset())
	if cfg.Compare {
		fmt.Fprintf(out, "Second pot: base %s%v %s%s, top %s%v %s%s, height %s%v %s%s.\n",
			ui.ColorInfo(), cfg.SecondPot.Base, cfg.Unit, ui.ColorReset(),
			ui.ColorInfo(), cfg.SecondPot.Top, cfg.Unit, ui.ColorReset(),
			ui.ColorInfo(), cfg.SecondPot.Height, cfg.Unit, ui.ColorReset())
	}
}

// DisplayResult displays the volume of one pot.
func DisplayResult(out io.Writer, m Measurement) {
	fmt.Fprintf(out, "Volume of the pot is %s%s%s.\n",
		ui.ColorSuccess(), format.FormatVolume(m.Volume, m.Unit), ui.ColorReset())
}

// DisplayBreakdown displays the construction angles and virtual-cone
// heights behind a result.
func DisplayBreakdown(out io.Writer, m Measurement) {
	fmt.Fprintf(out, "\n--- Construction Breakdown ---\n")
	fmt.Fprintf(out, "beta  (slant base angle): %s%s%s\n",
		ui.ColorInfo(), format.FormatAngle(m.Beta), ui.ColorReset())
	fmt.Fprintf(out, "alpha (apex half-angle):  %s%s%s\n",
		ui.ColorInfo(), format.FormatAngle(m.Alpha), ui.ColorReset())
	fmt.Fprintf(out, "small cone height: %s%s%s\n",
		ui.ColorSecondary(), format.FormatLength(m.SmallConeHeight, m.Unit), ui.ColorReset())
	fmt.Fprintf(out, "big cone height:   %s%s%s\n",
		ui.ColorSecondary(), format.FormatLength(m.BigConeHeight, m.Unit), ui.ColorReset())
	fmt.Fprintf(out, "big cone volume:   %s%s%s\n",
		ui.ColorSecondary(), format.FormatVolume(geometry.ConeVolume(m.Pot.Top/2, m.BigConeHeight), m.Unit), ui.ColorReset())
	fmt.Fprintf(out, "small cone volume: %s%s%s\n",
		ui.ColorSecondary(), format.FormatVolume(geometry.ConeVolume(m.Pot.Base/2, m.SmallConeHeight), m.Unit), ui.ColorReset())
}

// DisplayComparison displays both pot volumes and their absolute
// difference.
func DisplayComparison(out io.Writer, first, second Measurement) {
	fmt.Fprintf(out, "Volume of the first pot is %s%s%s.\n",
		ui.ColorSuccess(), format.FormatVolume(first.Volume, first.Unit), ui.ColorReset())
	fmt.Fprintf(out, "Volume of the second pot is %s%s%s.\n",
		ui.ColorSuccess(), format.FormatVolume(second.Volume, second.Unit), ui.ColorReset())
	fmt.Fprintf(out, "Difference in volume is %s%s%s.\n",
		ui.ColorPrimary(), format.FormatVolume(math.Abs(first.Volume-second.Volume), first.Unit), ui.ColorReset())
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line bare value suitable for scripting.
func FormatQuietResult(m Measurement) string {
	return strconv.FormatFloat(m.Volume, 'f', -1, 64)
}

// DisplayQuietResult prints only the computed volume.
func DisplayQuietResult(out io.Writer, m Measurement) {
	fmt.Fprintln(out, FormatQuietResult(m))
}

// jsonPot is the JSON shape of one measured pot.
type jsonPot struct {
	Base            float64 `json:"base"`
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
	AlphaRad        float64 `json:"alpha_rad"`
	BetaRad         float64 `json:"beta_rad"`
	SmallConeHeight float64 `json:"small_cone_height"`
	BigConeHeight   float64 `json:"big_cone_height"`
	Volume          float64 `json:"volume"`
}

// jsonResult is the top-level JSON document.
type jsonResult struct {
	Unit       string    `json:"unit"`
	Pots       []jsonPot `json:"pots"`
	Difference *float64  `json:"difference,omitempty"`
}

// WriteJSON emits the measurements as a single indented JSON document.
// With two measurements the absolute volume difference is included.
//
// Parameters:
//   - out: The writer for the JSON document.
//   - measurements: One or two measured pots.
//
// Returns:
//   - error: An error if encoding fails.
func WriteJSON(out io.Writer, measurements ...Measurement) error {
	if len(measurements) == 0 {
		return fmt.Errorf("no measurements to encode")
	}
	doc := jsonResult{Unit: measurements[0].Unit}
	for _, m := range measurements {
		doc.Pots = append(doc.Pots, jsonPot{
			Base:            m.Pot.Base,
			Top:             m.Pot.Top,
			Height:          m.Pot.Height,
			AlphaRad:        m.Alpha,
			BetaRad:         m.Beta,
			SmallConeHeight: m.SmallConeHeight,
			BigConeHeight:   m.BigConeHeight,
			Volume:          m.Volume,
		})
	}
	if len(measurements) == 2 {
		diff := math.Abs(measurements[0].Volume - measurements[1].Volume)
		doc.Difference = &diff
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteReportToFile writes a plain-text report of the measurements to a file.
//
// Parameters:
//   - path: The file to create; parent directories are created as needed.
//   - measurements: One or two measured pots.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(path string, measurements ...Measurement) error {
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Pot Volume Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "\n")

	for i, m := range measurements {
		fmt.Fprintf(file, "Pot %d: base %v %s, top %v %s, height %v %s\n",
			i+1, m.Pot.Base, m.Unit, m.Pot.Top, m.Unit, m.Pot.Height, m.Unit)
		fmt.Fprintf(file, "  beta:  %s\n", format.FormatAngle(m.Beta))
		fmt.Fprintf(file, "  alpha: %s\n", format.FormatAngle(m.Alpha))
		fmt.Fprintf(file, "  small cone height: %s\n", format.FormatLength(m.SmallConeHeight, m.Unit))
		fmt.Fprintf(file, "  big cone height:   %s\n", format.FormatLength(m.BigConeHeight, m.Unit))
		fmt.Fprintf(file, "  volume: %s\n", format.FormatVolume(m.Volume, m.Unit))
		fmt.Fprintf(file, "\n")
	}
	if len(measurements) == 2 {
		fmt.Fprintf(file, "Difference in volume: %s\n",
			format.FormatVolume(math.Abs(measurements[0].Volume-measurements[1].Volume), measurements[0].Unit))
	}

	return nil
}
