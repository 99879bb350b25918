// Package terminal renders docking layouts on a character terminal with
// tcell. One cell is one pixel of the core geometry; the view tree itself
// is the headless one.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/view"
)

// HotBand is the outer-edge drop band in cells.
const HotBand = 2

// tabPadding is the blank space around a tab title.
const tabPadding = 2

// MeasureTab returns the cell width of a tab showing title.
func MeasureTab(title string) int {
	return runewidth.StringWidth(title) + tabPadding
}

// DockOptions returns docking options sized for cells. Flags from base are
// kept.
func DockOptions(base dock.Options) dock.Options {
	base.TitleBarHeight = 1
	base.TabBarHeight = 1
	base.SeparatorThickness = 1
	base.MinimumItemSize = geom.Size{Width: 12, Height: 3}
	base.MeasureTab = MeasureTab
	if base.IconScale <= 0 {
		base.IconScale = 1
	}
	return base
}

// Frontend is the terminal view factory and platform.
type Frontend struct {
	*headless.Frontend
}

var (
	_ view.Factory  = (*Frontend)(nil)
	_ view.Platform = (*Frontend)(nil)
)

// New creates a terminal frontend.
func New(opts ...headless.Option) *Frontend {
	return &Frontend{Frontend: headless.New(opts...)}
}

var buttonGlyphs = map[view.ButtonType]rune{
	view.ButtonClose:      'x',
	view.ButtonFloat:      '^',
	view.ButtonNormal:     'v',
	view.ButtonMinimize:   '_',
	view.ButtonMaximize:   '+',
	view.ButtonAutoHide:   '<',
	view.ButtonUnautoHide: '>',
}

// IconForButtonType returns the glyph drawn for t. Scale is ignored.
func (f *Frontend) IconForButtonType(t view.ButtonType, _ float64) view.Icon {
	if r, ok := buttonGlyphs[t]; ok {
		return r
	}
	return nil
}

// drawText writes s from (x, y), clipped to width cells. Wide runes that
// would straddle the clip edge are dropped. Returns the cells used.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > width {
			break
		}
		s.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

// fill paints r with ch.
func fill(s tcell.Screen, r geom.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// frame draws a box border along the edges of r.
func frame(s tcell.Screen, r geom.Rect, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
