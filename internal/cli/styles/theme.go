// Package styles provides the lipgloss styles and renderers used by the
// dockyard CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of a Theme.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Surface string
	Error   string
	Warning string
}

// DefaultPalette returns the built-in dark colors.
func DefaultPalette() Palette {
	return Palette{
		Text:    "#e6e6e6",
		Muted:   "#8a8a8a",
		Accent:  "#4ade80",
		Surface: "#2d2d2d",
		Error:   "#ef4444",
		Warning: "#f59e0b",
	}
}

// Theme holds the colors and styles shared by the renderers.
type Theme struct {
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	BadgeMuted   lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette derives every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	return &Theme{
		Accent:  accent,
		Success: accent,
		Error:   lipgloss.Color(p.Error),

		Title:        lipgloss.NewStyle().Foreground(text).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(muted).Bold(true),
		Normal:       lipgloss.NewStyle().Foreground(text),
		Subtle:       lipgloss.NewStyle().Foreground(muted),
		Highlight:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		WarningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		SuccessStyle: lipgloss.NewStyle().Foreground(accent),
		BadgeMuted: lipgloss.NewStyle().
			Foreground(text).
			Background(lipgloss.Color(p.Surface)).
			Padding(0, 1),
	}
}
