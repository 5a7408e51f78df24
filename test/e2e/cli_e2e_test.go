package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles the potcalc binary into a temp dir and returns
// its path.
func buildBinary(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	binName := "potcalc"
	if runtime.GOOS == "windows" {
		binName = "potcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; build from the
	// module root two levels up.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/potcalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run(), "failed to build potcalc")

	return binPath
}

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "default demonstration pot",
			args:     []string{"-no-color"},
			wantOut:  "volume of the pot is 1,539.60 cm",
			wantCode: 0,
		},
		{
			name:     "explicit dimensions",
			args:     []string{"-no-color", "-base", "17", "-top", "18", "-height", "16"},
			wantOut:  "1,352.29 cm",
			wantCode: 0,
		},
		{
			name:     "comparison mode",
			args:     []string{"-no-color", "-base2", "17", "-top2", "18", "-height2", "16"},
			wantOut:  "difference in volume is 187.30 cm",
			wantCode: 0,
		},
		{
			name:     "quiet mode",
			args:     []string{"-q"},
			wantOut:  "1539.604799734",
			wantCode: 0,
		},
		{
			name:     "json mode",
			args:     []string{"-json"},
			wantOut:  `"volume"`,
			wantCode: 0,
		},
		{
			name:     "breakdown",
			args:     []string{"-no-color", "-breakdown"},
			wantOut:  "construction breakdown",
			wantCode: 0,
		},
		{
			name:     "custom unit label",
			args:     []string{"-no-color", "-unit", "in"},
			wantOut:  "1,539.60 in",
			wantCode: 0,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "version",
			args:     []string{"--version"},
			wantOut:  "potcalc",
			wantCode: 0,
		},
		{
			name:     "equal diameters rejected",
			args:     []string{"-base", "10", "-top", "10"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "inverted taper rejected",
			args:     []string{"-base", "19", "-top", "11"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "unknown log level rejected",
			args:     []string{"-log-level", "loud"},
			wantOut:  "unknown log level",
			wantCode: 4,
		},
		{
			name:     "unexpected positional arguments rejected",
			args:     []string{"foo", "bar"},
			wantOut:  "unexpected arguments",
			wantCode: 4,
		},
		{
			name:     "empty unit label rejected",
			args:     []string{"-unit", ""},
			wantOut:  "unit label must not be empty",
			wantCode: 4,
		},
		{
			name:     "malformed flag value rejected",
			args:     []string{"-base", "abc"},
			wantOut:  "invalid value",
			wantCode: 4,
		},
		{
			name:     "environment override",
			args:     []string{"-q"},
			env:      []string{"POTCALC_BASE=17", "POTCALC_TOP=18", "POTCALC_HEIGHT=16"},
			wantOut:  "1352.295435594",
			wantCode: 0,
		},
		{
			name:     "flag wins over environment",
			args:     []string{"-q", "-base", "11", "-top", "19", "-height", "18"},
			env:      []string{"POTCALC_BASE=17", "POTCALC_TOP=18", "POTCALC_HEIGHT=16"},
			wantOut:  "1539.604799734",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), tt.env...)
			output, err := cmd.CombinedOutput()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run potcalc: %v", err)
			}

			assert.Equal(t, tt.wantCode, code, "output: %s", output)
			if tt.wantOut != "" {
				assert.Contains(t, strings.ToLower(string(output)), tt.wantOut, "output: %s", output)
			}
		})
	}
}

// TestCLI_E2E_ReportFile verifies the -o report writer end to end.
func TestCLI_E2E_ReportFile(t *testing.T) {
	binPath := buildBinary(t)
	reportPath := filepath.Join(t.TempDir(), "report.txt")

	cmd := exec.Command(binPath, "-no-color", "-o", reportPath, "-base2", "17", "-top2", "18", "-height2", "16")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	report := strings.ToLower(string(data))
	assert.Contains(t, report, "pot volume report")
	assert.Contains(t, report, "pot 1: base 11 cm")
	assert.Contains(t, report, "difference in volume")
}
