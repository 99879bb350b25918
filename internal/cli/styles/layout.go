package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/scenario"
	"github.com/bnema/dockyard/internal/ui/drag"
)

// LayoutRenderer prints docking snapshots as trees.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderResult renders a scenario run: drag outcomes, then every window.
func (r *LayoutRenderer) RenderResult(name string, res *scenario.Result) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(r.theme.Title.Render(name))
		b.WriteString("\n")
	}
	if len(res.Outcomes) > 0 {
		parts := make([]string, len(res.Outcomes))
		for i, o := range res.Outcomes {
			parts[i] = r.outcome(o)
		}
		fmt.Fprintf(&b, "%s %s\n", r.theme.Subtle.Render("drags:"), strings.Join(parts, " "))
	}
	b.WriteString(r.RenderSnapshot(res.Snapshot))
	return b.String()
}

func (r *LayoutRenderer) outcome(s drag.State) string {
	switch s {
	case drag.StateDropped:
		return r.theme.SuccessStyle.Render(s.String())
	case drag.StateCancelled:
		return r.theme.WarningStyle.Render(s.String())
	default:
		return r.theme.Subtle.Render("click")
	}
}

// RenderSnapshot renders main windows first, then floating windows from
// the topmost down.
func (r *LayoutRenderer) RenderSnapshot(s scenario.Snapshot) string {
	var b strings.Builder
	for _, a := range s.MainWindows {
		r.renderArea(&b, IconWindow, a)
	}
	for _, a := range s.FloatingWindows {
		r.renderArea(&b, IconFloat, a)
	}
	return b.String()
}

func (r *LayoutRenderer) renderArea(b *strings.Builder, icon string, a scenario.AreaSnapshot) {
	fmt.Fprintf(b, "%s %s %s\n",
		r.theme.Highlight.Render(icon),
		r.theme.Title.Render(a.Name),
		r.theme.RectBadge(a.Rect),
	)
	if a.Root.IsContainer() && len(a.Root.Children) == 0 {
		b.WriteString(treeLast)
		b.WriteString(r.theme.Subtle.Render("(empty)"))
		b.WriteString("\n")
		return
	}
	r.renderNode(b, "", true, a.Root)
}

func (r *LayoutRenderer) renderNode(b *strings.Builder, prefix string, last bool, n scenario.NodeSnapshot) {
	connector, childPrefix := treeBranch, prefix+treePipe
	if last {
		connector, childPrefix = treeLast, prefix+treeSpace
	}

	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(r.label(n))
	b.WriteString("\n")

	for i, c := range n.Children {
		r.renderNode(b, childPrefix, i == len(n.Children)-1, c)
	}
}

func (r *LayoutRenderer) label(n scenario.NodeSnapshot) string {
	var parts []string
	if n.IsContainer() {
		parts = append(parts, r.theme.Subtitle.Render(IconColumns+" "+n.Orientation))
	} else {
		tabs := make([]string, len(n.Tabs))
		for i, t := range n.Tabs {
			if i == n.Current {
				tabs[i] = r.theme.Highlight.Render("[" + t + "]")
			} else {
				tabs[i] = r.theme.Normal.Render(t)
			}
		}
		parts = append(parts, r.theme.Subtle.Render(IconTab), strings.Join(tabs, " "))
	}
	parts = append(parts, r.theme.RectBadge(n.Rect))
	if n.Hidden {
		parts = append(parts, r.theme.Subtle.Render("hidden"))
	}
	return strings.Join(parts, " ")
}
