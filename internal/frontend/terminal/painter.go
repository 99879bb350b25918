package terminal

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/indicators"
)

// Theme holds the styles used by the painter.
type Theme struct {
	Background   tcell.Style
	Border       tcell.Style
	TitleBar     tcell.Style
	Tab          tcell.Style
	ActiveTab    tcell.Style
	Separator    tcell.Style
	Content      tcell.Style
	RubberBand   tcell.Style
	Indicator    tcell.Style
	ActiveZone   tcell.Style
	FloatingEdge tcell.Style
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return Theme{
		Background:   base,
		Border:       base.Foreground(tcell.ColorGray),
		TitleBar:     base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		Tab:          base.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorSilver),
		ActiveTab:    base.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite).Bold(true),
		Separator:    base.Foreground(tcell.ColorDimGray),
		Content:      base.Foreground(tcell.ColorDimGray),
		RubberBand:   base.Background(tcell.NewRGBColor(40, 60, 90)),
		Indicator:    base.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite),
		ActiveZone:   base.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack).Bold(true),
		FloatingEdge: base.Foreground(tcell.ColorYellow),
	}
}

var zoneGlyphs = map[indicators.DropLocation]rune{
	indicators.DropLocationLeft:        tcell.RuneLArrow,
	indicators.DropLocationRight:       tcell.RuneRArrow,
	indicators.DropLocationTop:         tcell.RuneUArrow,
	indicators.DropLocationBottom:      tcell.RuneDArrow,
	indicators.DropLocationCenter:      tcell.RuneDiamond,
	indicators.DropLocationOuterLeft:   tcell.RuneLArrow,
	indicators.DropLocationOuterRight:  tcell.RuneRArrow,
	indicators.DropLocationOuterTop:    tcell.RuneUArrow,
	indicators.DropLocationOuterBottom: tcell.RuneDArrow,
}

// Painter draws a registry's windows onto a screen.
type Painter struct {
	screen tcell.Screen
	theme  Theme
}

// NewPainter creates a painter for screen.
func NewPainter(screen tcell.Screen, theme Theme) *Painter {
	return &Painter{screen: screen, theme: theme}
}

// Paint redraws everything: main windows, then floating windows from the
// bottom of the stack up, then the drop indicators.
func (p *Painter) Paint(reg *dock.Registry, overlay *indicators.Overlay) {
	p.screen.SetStyle(p.theme.Background)
	p.screen.Clear()

	for _, mw := range reg.MainWindows() {
		p.paintArea(mw.DropArea())
		if g := mw.OverlayedGroup(); g != nil {
			fill(p.screen, g.Geometry(), ' ', p.theme.Background)
			p.paintGroup(g)
		}
	}

	floating := reg.FloatingWindows()
	slices.Reverse(floating)
	for _, fw := range floating {
		p.paintFloating(fw)
	}

	if overlay != nil {
		p.paintOverlay(overlay)
	}
	p.screen.Show()
}

func (p *Painter) paintArea(a *dock.DropArea) {
	for _, s := range a.Layout().Separators() {
		ch := tcell.RuneVLine
		if s.Orientation() == geom.Vertical {
			ch = tcell.RuneHLine
		}
		fill(p.screen, s.Geometry(), ch, p.theme.Separator)
	}
	for _, g := range a.Groups() {
		if g.IsVisible() {
			p.paintGroup(g)
		}
	}
}

func (p *Painter) paintFloating(fw *dock.FloatingWindow) {
	r := fw.Geometry()
	fill(p.screen, r, ' ', p.theme.Background)
	if tb := fw.TitleBar(); tb.IsVisible() {
		p.paintTitleBar(tb)
	}
	p.paintArea(fw.DropArea())
	frame(p.screen, fw.DropArea().Geometry(), p.theme.FloatingEdge)
}

func (p *Painter) paintGroup(g *dock.Group) {
	if tb := g.TitleBar(); tb.IsVisible() {
		p.paintTitleBar(tb)
	}
	if bar := g.TabBar(); bar.IsVisible() {
		p.paintTabBar(g, bar)
	}

	body := g.Stack().Geometry()
	frame(p.screen, body, p.theme.Border)
	if dw := g.CurrentDockWidget(); dw != nil && body.Height > 2 {
		inner := body.Inset(1, 1)
		label := dw.Title()
		x := inner.X + max(0, (inner.Width-runewidth.StringWidth(label))/2)
		drawText(p.screen, x, inner.Y+inner.Height/2, inner.Right()-x, label, p.theme.Content)
	}
}

func (p *Painter) paintTitleBar(tb *dock.TitleBar) {
	r := tb.Geometry()
	if r.IsEmpty() {
		return
	}
	fill(p.screen, r, ' ', p.theme.TitleBar)

	buttons := tb.Buttons()
	x := r.Right()
	for i := len(buttons) - 1; i >= 0; i-- {
		glyph, ok := tb.Icon(buttons[i]).(rune)
		if !ok || x-2 < r.X {
			continue
		}
		x -= 2
		p.screen.SetContent(x, r.Y, glyph, nil, p.theme.TitleBar)
	}
	drawText(p.screen, r.X+1, r.Y, max(0, x-r.X-2), tb.Title(), p.theme.TitleBar)
}

func (p *Painter) paintTabBar(g *dock.Group, bar *dock.TabBar) {
	fill(p.screen, bar.Geometry(), ' ', p.theme.Tab)
	widgets := g.DockWidgets()
	for i, r := range bar.TabRects() {
		if i >= len(widgets) {
			break
		}
		style := p.theme.Tab
		if i == g.CurrentIndex() {
			style = p.theme.ActiveTab
		}
		fill(p.screen, r, ' ', style)
		drawText(p.screen, r.X+tabPadding/2, r.Y, r.Width-tabPadding/2, widgets[i].Title(), style)
	}
}

func (p *Painter) paintOverlay(o *indicators.Overlay) {
	st := o.State()
	if !st.Visible {
		return
	}
	if !st.RubberBand.IsEmpty() {
		fill(p.screen, st.RubberBand, ' ', p.theme.RubberBand)
	}

	for _, a := range o.Affordances() {
		style := p.theme.Indicator
		if a.Active {
			style = p.theme.ActiveZone
		}
		switch o.IndicatorType() {
		case indicators.TypeSegmented:
			fill(p.screen, a.Rect, ' ', style)
		default:
			c := a.Rect.Center()
			p.screen.SetContent(c.X, c.Y, zoneGlyphs[a.Location], nil, style)
		}
	}
}
