package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminals, so colors are
// lipgloss.AdaptiveColor throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted   = ac("240", "243")
	colorAccent  = ac("26", "39")
	colorError   = ac("124", "203")
	colorSuccess = ac("28", "40")
	colorBorder  = ac("250", "243")

	styleHeader = lipgloss.NewStyle().Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleError  = lipgloss.NewStyle().Foreground(colorError)
	styleOK     = lipgloss.NewStyle().Foreground(colorSuccess)

	styleTabActive = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	styleTab       = lipgloss.NewStyle().Foreground(colorMuted)

	styleFieldLabel = lipgloss.NewStyle().Foreground(colorMuted)
	styleSelected   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// applyThemePreference honors an explicit light/dark override before falling
// back to lipgloss's background detection.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OPSLOG_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// Heuristic: COLORFGBG is often "fg;bg"; use the last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

// applyColorProfilePreference respects NO_COLOR and CLICOLOR_FORCE.
func applyColorProfilePreference() {
	if v := strings.TrimSpace(os.Getenv("NO_COLOR")); v != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
