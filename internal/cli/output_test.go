package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potify/potcalc/internal/config"
	"github.com/potify/potcalc/internal/ui"
)

// plainTheme disables colors for deterministic output assertions.
func plainTheme(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetTheme(prev.Name) })
}

func demoMeasurement() Measurement {
	return Measure(config.Pot{Base: 11, Top: 19, Height: 18}, "cm")
}

func TestMeasure(t *testing.T) {
	m := demoMeasurement()

	assert.InDelta(t, -1.1334584350470127, m.Alpha, 1e-12)
	assert.InDelta(t, 1.3521273809209546, m.Beta, 1e-12)
	assert.InDelta(t, -2.5714285714285716, m.SmallConeHeight, 1e-12)
	assert.InDelta(t, 15.428571428571429, m.BigConeHeight, 1e-12)
	assert.InDelta(t, 1539.604799734255, m.Volume, 1e-9)
	assert.Equal(t, "cm", m.Unit)
}

func TestPrintExecutionConfig(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer

	cfg := config.AppConfig{
		Pot:       config.Pot{Base: 11, Top: 19, Height: 18},
		SecondPot: config.Pot{Base: 17, Top: 18, Height: 16},
		Compare:   true,
		Unit:      "cm",
	}
	PrintExecutionConfig(cfg, &buf)

	out := buf.String()
	assert.Contains(t, out, "Base 11 cm")
	assert.Contains(t, out, "top 19 cm")
	assert.Contains(t, out, "height 18 cm")
	assert.Contains(t, out, "Second pot")
	assert.Contains(t, out, "base 17 cm")
}

func TestDisplayResult(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer

	DisplayResult(&buf, demoMeasurement())

	assert.Contains(t, buf.String(), "Volume of the pot is 1,539.60 cm³.")
}

func TestDisplayBreakdown(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer

	DisplayBreakdown(&buf, demoMeasurement())

	out := buf.String()
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "1.3521 rad (77.47°)")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "-1.1335 rad (-64.94°)")
	assert.Contains(t, out, "small cone height: -2.57 cm")
	assert.Contains(t, out, "big cone height:   15.42 cm")
}

func TestDisplayComparison(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer

	first := demoMeasurement()
	second := Measure(config.Pot{Base: 17, Top: 18, Height: 16}, "cm")
	DisplayComparison(&buf, first, second)

	out := buf.String()
	assert.Contains(t, out, "Volume of the first pot is 1,539.60 cm³.")
	assert.Contains(t, out, "Volume of the second pot is 1,352.29 cm³.")
	assert.Contains(t, out, "Difference in volume is 187.30 cm³.")
}

func TestFormatQuietResult(t *testing.T) {
	m := demoMeasurement()
	got := FormatQuietResult(m)

	// Quiet output must be a bare machine-parseable number.
	assert.True(t, strings.HasPrefix(got, "1539.60479973425"), "got %q", got)
	assert.NotContains(t, got, ",")
	assert.NotContains(t, got, " ")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	first := demoMeasurement()
	second := Measure(config.Pot{Base: 17, Top: 18, Height: 16}, "cm")
	require.NoError(t, WriteJSON(&buf, first, second))

	var doc struct {
		Unit string `json:"unit"`
		Pots []struct {
			Base   float64 `json:"base"`
			Volume float64 `json:"volume"`
		} `json:"pots"`
		Difference *float64 `json:"difference"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "cm", doc.Unit)
	require.Len(t, doc.Pots, 2)
	assert.Equal(t, 11.0, doc.Pots[0].Base)
	assert.InDelta(t, 1539.604799734255, doc.Pots[0].Volume, 1e-9)
	require.NotNil(t, doc.Difference)
	assert.InDelta(t, math.Abs(first.Volume-second.Volume), *doc.Difference, 1e-9)
}

func TestWriteJSON_SinglePotOmitsDifference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, demoMeasurement()))

	assert.NotContains(t, buf.String(), "difference")
}

func TestWriteJSON_NoMeasurements(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteJSON(&buf))
}

func TestWriteReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "pot.txt")

	first := demoMeasurement()
	second := Measure(config.Pot{Base: 17, Top: 18, Height: 16}, "cm")
	require.NoError(t, WriteReportToFile(path, first, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	report := string(data)
	assert.Contains(t, report, "# Pot Volume Report")
	assert.Contains(t, report, "Pot 1: base 11 cm, top 19 cm, height 18 cm")
	assert.Contains(t, report, "Pot 2: base 17 cm, top 18 cm, height 16 cm")
	assert.Contains(t, report, "volume: 1,539.60 cm³")
	assert.Contains(t, report, "Difference in volume: 187.30 cm³")
}

func TestWriteReportToFile_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, WriteReportToFile("", demoMeasurement()))
}
