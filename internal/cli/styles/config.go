package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderSource renders where the effective config came from. An empty
// path means only defaults and environment overrides apply.
func (r *ConfigRenderer) RenderSource(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		return fmt.Sprintf("  %s Config %s\n",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render("(defaults, no file loaded)"),
		)
	}
	return fmt.Sprintf("  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderValid renders the success message of `config validate`.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return r.RenderSource(path) + fmt.Sprintf("  %s Config is valid\n", iconStyle.Render(IconCheck))
}

// RenderError renders an error message. Multi-line validation errors keep
// one problem per line.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	lines := strings.Split(err.Error(), "\n")
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", iconStyle.Render(IconX), lines[0])
	for _, l := range lines[1:] {
		b.WriteString("  ")
		b.WriteString(r.theme.WarningStyle.Render(l))
		b.WriteString("\n")
	}
	return b.String()
}
