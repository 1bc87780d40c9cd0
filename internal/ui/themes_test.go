package ui

import (
	"strings"
	"testing"
)

func withTheme(t *testing.T, th Theme) {
	t.Helper()
	prev := GetCurrentTheme()
	SetCurrentTheme(th)
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestSetTheme(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "orange"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	prev := GetCurrentTheme()
	prevDetect := hasDarkBackground
	defer func() {
		SetCurrentTheme(prev)
		hasDarkBackground = prevDetect
	}()

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("light background", func(t *testing.T) {
		hasDarkBackground = func() bool { return false }
		InitTheme(false)
		if GetCurrentTheme().Name != "light" {
			t.Errorf("theme = %q, want light", GetCurrentTheme().Name)
		}
	})

	t.Run("dark background", func(t *testing.T) {
		hasDarkBackground = func() bool { return true }
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("theme = %q, want dark", GetCurrentTheme().Name)
		}
	})
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	withTheme(t, DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorGreen() != DarkTheme.Success || ColorReset() != DarkTheme.Reset {
		t.Error("color accessors do not match the dark theme")
	}

	SetCurrentTheme(NoColorTheme)
	for name, c := range map[string]string{
		"red": ColorRed(), "green": ColorGreen(), "yellow": ColorYellow(),
		"blue": ColorBlue(), "magenta": ColorMagenta(), "cyan": ColorCyan(),
		"grey": ColorGrey(), "bold": ColorBold(), "underline": ColorUnderline(),
		"reset": ColorReset(),
	} {
		if c != "" {
			t.Errorf("%s = %q under the no-color theme", name, c)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	withTheme(t, NoColorTheme)
	out := RenderBanner("ecccalc")
	if !strings.Contains(out, "ecccalc") {
		t.Errorf("banner %q does not contain the title", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("banner %q is missing its rounded border", out)
	}
	if strings.Contains(out, "\x1b[38") {
		t.Errorf("banner %q carries colors under the no-color theme", out)
	}
}

func TestThemePalettes(t *testing.T) {
	tests := []struct {
		theme          Theme
		primary, error string
	}{
		{DarkTheme, "\033[38;5;39m", "\033[38;5;196m"},
		{LightTheme, "\033[38;5;27m", "\033[38;5;124m"},
		{OrangeTheme, "\033[38;5;208m", "\033[38;5;196m"},
	}
	for _, tt := range tests {
		if tt.theme.Primary != tt.primary || tt.theme.Error != tt.error {
			t.Errorf("%s: primary=%q error=%q", tt.theme.Name, tt.theme.Primary, tt.theme.Error)
		}
		if tt.theme.Reset != "\033[0m" || tt.theme.Bold != "\033[1m" {
			t.Errorf("%s: bold/reset sequences wrong", tt.theme.Name)
		}
	}
	if NoColorTheme != (Theme{Name: "none"}) {
		t.Errorf("NoColorTheme carries sequences: %+v", NoColorTheme)
	}
}
