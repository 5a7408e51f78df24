package ui

import "testing"

// restoreTheme resets the active theme after a test mutates global state.
func restoreTheme(t *testing.T) {
	t.Helper()
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetTheme(prev.Name) })
}

func TestSetTheme(t *testing.T) {
	restoreTheme(t)

	tests := []struct {
		name     string
		theme    string
		wantName string
	}{
		{"dark theme", "dark", "dark"},
		{"light theme", "light", "light"},
		{"none theme", "none", "none"},
		{"unknown falls back to dark", "solarized", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.theme)
			if got := GetCurrentTheme().Name; got != tt.wantName {
				t.Errorf("GetCurrentTheme().Name = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	restoreTheme(t)

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme(true) selected %q, want %q", got, "none")
	}
	if ColorSuccess() != "" || ColorReset() != "" {
		t.Error("NoColorTheme must emit empty escape codes")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	restoreTheme(t)
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme with NO_COLOR selected %q, want %q", got, "none")
	}
}

func TestColorAccessors_MatchTheme(t *testing.T) {
	restoreTheme(t)

	SetTheme("dark")
	if ColorPrimary() != DarkTheme.Primary {
		t.Errorf("ColorPrimary() = %q, want %q", ColorPrimary(), DarkTheme.Primary)
	}
	if ColorError() != DarkTheme.Error {
		t.Errorf("ColorError() = %q, want %q", ColorError(), DarkTheme.Error)
	}

	SetTheme("light")
	if ColorWarning() != LightTheme.Warning {
		t.Errorf("ColorWarning() = %q, want %q", ColorWarning(), LightTheme.Warning)
	}
}
