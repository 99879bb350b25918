package styles

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/geom"
)

// RectBadge renders a rectangle as "WxH+X+Y".
func (t *Theme) RectBadge(r geom.Rect) string {
	return t.BadgeMuted.Render(fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y))
}

// SizeBadge renders a size as "WxH".
func (t *Theme) SizeBadge(s geom.Size) string {
	return t.BadgeMuted.Render(fmt.Sprintf("%dx%d", s.Width, s.Height))
}
