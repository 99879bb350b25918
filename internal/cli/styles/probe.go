package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/geom"
)

// WindowInfo is what `x11 probe` reports about a top-level window.
type WindowInfo struct {
	Handle  uint64
	Title   string
	Rect    geom.Rect
	Visible bool
	MinSize geom.Size
	MaxSize geom.Size
}

// RenderWindowInfo renders one probed window.
func (t *Theme) RenderWindowInfo(w WindowInfo) string {
	var b strings.Builder
	title := w.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "%s %s %s\n",
		t.Highlight.Render(IconWindow),
		t.Title.Render(title),
		t.BadgeMuted.Render(fmt.Sprintf("0x%x", w.Handle)),
	)

	visibility := t.SuccessStyle.Render("visible")
	if !w.Visible {
		visibility = t.WarningStyle.Render("hidden")
	}
	fmt.Fprintf(&b, "  %s %s\n", t.Subtle.Render("geometry"), t.RectBadge(w.Rect))
	fmt.Fprintf(&b, "  %s %s\n", t.Subtle.Render("state   "), visibility)
	fmt.Fprintf(&b, "  %s %s %s %s\n",
		t.Subtle.Render("size    "),
		t.SizeBadge(w.MinSize),
		t.Subtle.Render(IconArrow),
		t.SizeBadge(w.MaxSize),
	)
	return b.String()
}
