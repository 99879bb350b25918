package styles_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/scenario"
	"github.com/bnema/dockyard/internal/ui/drag"
)

func TestLayoutRenderer_RenderResult(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme())
	res := &scenario.Result{
		Outcomes: []drag.State{drag.StateDropped, drag.StateCancelled, drag.StateIdle},
		Snapshot: scenario.Snapshot{
			MainWindows: []scenario.AreaSnapshot{{
				Name: "main",
				Rect: geom.Rect{Width: 800, Height: 600},
				Root: scenario.NodeSnapshot{
					Orientation: "row",
					Rect:        geom.Rect{Width: 800, Height: 600},
					Children: []scenario.NodeSnapshot{
						{Tabs: []string{"files"}, Rect: geom.Rect{Width: 397, Height: 600}},
						{Tabs: []string{"editor", "log"}, Current: 1, Rect: geom.Rect{X: 402, Width: 398, Height: 600}},
					},
				},
			}},
			FloatingWindows: []scenario.AreaSnapshot{{
				Name: "Tool",
				Rect: geom.Rect{X: 10, Y: 20, Width: 200, Height: 100},
				Root: scenario.NodeSnapshot{Orientation: "row"},
			}},
		},
	}

	out := r.RenderResult("demo", res)

	for _, want := range []string{"demo", "dropped", "cancelled", "click", "main", "800x600+0+0", "row", "files", "[log]", "398x600+402+0", "Tool", "(empty)"} {
		assert.Contains(t, out, want)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[3], "└─ ")
	assert.Contains(t, lines[4], "   ├─ ")
	assert.Contains(t, lines[5], "   └─ ")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderSource(""), "defaults")
	assert.Contains(t, r.RenderValid("/tmp/config.toml"), "/tmp/config.toml")
	assert.Contains(t, r.RenderValid("/tmp/config.toml"), "valid")

	out := r.RenderError(fmt.Errorf("%w:\n  - a\n  - b", errors.New("invalid configuration")))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "invalid configuration")
	assert.Contains(t, lines[2], "- b")
}

func TestRenderWindowInfo(t *testing.T) {
	theme := styles.NewTheme()
	out := theme.RenderWindowInfo(styles.WindowInfo{
		Handle:  0x1a00003,
		Title:   "editor",
		Rect:    geom.Rect{X: 100, Y: 50, Width: 800, Height: 600},
		Visible: true,
		MinSize: geom.Size{Width: 80, Height: 90},
		MaxSize: geom.Size{Width: 1000, Height: 1000},
	})

	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "0x1a00003")
	assert.Contains(t, out, "800x600+100+50")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "80x90")

	assert.Contains(t, theme.RenderWindowInfo(styles.WindowInfo{}), "(untitled)")
	assert.Contains(t, theme.RenderWindowInfo(styles.WindowInfo{}), "hidden")
}

func TestAboutRenderer(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{Version: "v1.2.3", Commit: "abc123", GoVersion: "go1.25"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "go1.25")
	assert.Contains(t, out, build.RepoURL())
}

func TestNewThemeFromPalette(t *testing.T) {
	p := styles.DefaultPalette()
	p.Accent = "#00ff00"
	theme := styles.NewThemeFromPalette(p)

	assert.Equal(t, lipgloss.Color("#00ff00"), theme.Accent)
	assert.Equal(t, theme.Accent, theme.Success)
	assert.Contains(t, theme.SizeBadge(geom.Size{Width: 3, Height: 4}), "3x4")
}
