package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with an ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// Two docked panes and a tab.
	logo := `┌──┬───┐
│▓▓│   │
│▓▓├───┤
│▓▓│   │
└──┴───┘`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	lines := []string{
		r.theme.Title.Render("dockyard"),
		fmt.Sprintf("%s %s", keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s", keyStyle.Render("Commit "), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s", keyStyle.Render("Built  "), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s", keyStyle.Render("Go     "), valStyle.Render(info.GoVersion)),
		"",
		keyStyle.Render(build.RepoURL()),
	}
	return strings.Join(lines, "\n")
}
