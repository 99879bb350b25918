package layout

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
)

// MDIItem is a freely positioned guest inside an MDILayout.
type MDIItem struct {
	guest    Guest
	geometry geom.Rect
}

// Guest returns the hosted content.
func (m *MDIItem) Guest() Guest { return m.guest }

// Geometry returns the item rectangle.
func (m *MDIItem) Geometry() geom.Rect { return m.geometry }

// MDILayout hosts guests at arbitrary positions inside its area. Items are
// kept inside the area and within their own min and max. The last item in
// the stacking order is on top.
type MDILayout struct {
	area    geom.Rect
	items   []*MDIItem
	floor   geom.Size
	onEvent []func()
	logger  zerolog.Logger
}

// NewMDI creates an MDI layout covering area.
func NewMDI(ctx context.Context, area geom.Rect) *MDILayout {
	log := logging.FromContext(ctx)
	return &MDILayout{
		area:   area,
		floor:  geom.HardcodedMinimumSize,
		logger: log.With().Str("component", "mdi-layout").Logger(),
	}
}

// SetMinimumItemSize overrides the absolute floor applied to every item.
func (m *MDILayout) SetMinimumItemSize(s geom.Size) { m.floor = s }

// Geometry returns the MDI area.
func (m *MDILayout) Geometry() geom.Rect { return m.area }

// Items returns the items in stacking order, bottom first.
func (m *MDILayout) Items() []*MDIItem { return slices.Clone(m.items) }

// Add places g at r, clamped to its constraints and to the area.
func (m *MDILayout) Add(g Guest, r geom.Rect) (*MDIItem, error) {
	if g == nil {
		return nil, ErrNilGuest
	}
	it := &MDIItem{guest: g}
	m.items = append(m.items, it)
	m.place(it, r)
	m.logger.Debug().Int("items", len(m.items)).Msg("mdi item added")
	m.notify()
	return it, nil
}

// Remove detaches it from the layout.
func (m *MDILayout) Remove(it *MDIItem) error {
	idx := slices.Index(m.items, it)
	if idx < 0 {
		return fmt.Errorf("remove mdi item: %w", ErrItemNotFound)
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	m.notify()
	return nil
}

// SetItemGeometry moves and resizes it.
func (m *MDILayout) SetItemGeometry(it *MDIItem, r geom.Rect) error {
	if !slices.Contains(m.items, it) {
		return fmt.Errorf("resize mdi item: %w", ErrItemNotFound)
	}
	m.place(it, r)
	m.notify()
	return nil
}

// Raise moves it to the top of the stacking order.
func (m *MDILayout) Raise(it *MDIItem) {
	idx := slices.Index(m.items, it)
	if idx < 0 || idx == len(m.items)-1 {
		return
	}
	m.items = append(slices.Delete(m.items, idx, idx+1), it)
	m.notify()
}

// ItemAt returns the topmost visible item under p.
func (m *MDILayout) ItemAt(p geom.Point) (*MDIItem, bool) {
	for i := len(m.items) - 1; i >= 0; i-- {
		it := m.items[i]
		if it.guest.IsVisible() && it.geometry.Contains(p) {
			return it, true
		}
	}
	return nil, false
}

// SetGeometry changes the area and re-clamps every item into it.
func (m *MDILayout) SetGeometry(area geom.Rect) {
	m.area = area
	for _, it := range m.items {
		m.place(it, it.geometry)
	}
	m.notify()
}

// OnInvalidated registers fn to run after any change.
func (m *MDILayout) OnInvalidated(fn func()) {
	m.onEvent = append(m.onEvent, fn)
}

func (m *MDILayout) place(it *MDIItem, r geom.Rect) {
	minSize := it.guest.MinSize().ExpandedTo(m.floor)
	maxSize := it.guest.MaxSize().BoundedTo(geom.HardcodedMaximumSize).ExpandedTo(minSize)
	size := geom.ClampSize(r.Size(), minSize, maxSize)

	// Stay inside the area when it is large enough; an oversized item is
	// pinned to the top-left corner.
	x := geom.Clamp(r.X, m.area.X, max(m.area.Right()-size.Width, m.area.X))
	y := geom.Clamp(r.Y, m.area.Y, max(m.area.Bottom()-size.Height, m.area.Y))

	it.geometry = geom.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
	it.guest.SetGeometry(it.geometry)
}

func (m *MDILayout) notify() {
	for _, fn := range m.onEvent {
		fn()
	}
}
