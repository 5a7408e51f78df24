// Package format provides pure formatting helpers for measurements.
// Format* functions return strings without performing I/O, mirroring
// the naming conventions of the cli package.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatVolume formats a cubic-unit volume for display with grouped
// thousands and two decimals, e.g. "1,539.60 cm³".
//
// Non-finite values are rendered verbatim ("NaN cm³", "+Inf cm³") so a
// degenerate computation stays visible instead of being masked by the
// formatter.
//
// Parameters:
//   - volume: The volume in cubic units.
//   - unit: The linear unit label (e.g. "cm"); the cube sign is appended.
//
// Returns:
//   - string: The formatted volume.
func FormatVolume(volume float64, unit string) string {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return fmt.Sprintf("%v %s³", volume, unit)
	}
	return fmt.Sprintf("%s %s³", humanize.CommafWithDigits(volume, 2), unit)
}

// FormatLength formats a linear measurement with grouped thousands,
// e.g. "15.43 cm".
func FormatLength(length float64, unit string) string {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return fmt.Sprintf("%v %s", length, unit)
	}
	return fmt.Sprintf("%s %s", humanize.CommafWithDigits(length, 2), unit)
}

// FormatAngle formats an angle given in radians, showing both radians
// and degrees, e.g. "1.3521 rad (77.47°)".
func FormatAngle(radians float64) string {
	degrees := radians * 180 / math.Pi
	return fmt.Sprintf("%.4f rad (%.2f°)", radians, degrees)
}
