package drag

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// drop mutates the layouts for a release at p over h.
func (c *Controller) drop(h indicators.Hit, p geom.Point) error {
	if h.IsNone() {
		return c.dropOnNothing(p)
	}

	c.logger.Debug().
		Str("drop_area", h.Area.Name()).
		Str("location", h.Location.String()).
		Int("dock_widgets", len(c.window.DockWidgets())).
		Msg("dropping")

	if fw, ok := c.window.FloatingWindow(); ok {
		return dropWindow(fw, h)
	}
	w := c.window.(*deferredWindow)
	if w.dockWidget != nil && w.Group() == nil {
		return dropDockWidget(w.dockWidget, h)
	}
	return dropGroup(w.Group(), h)
}

// dropOnNothing leaves an eager window where it is. A deferred drag gets
// its floating window now, under the pointer.
func (c *Controller) dropOnNothing(p geom.Point) error {
	if _, ok := c.window.FloatingWindow(); ok {
		return nil
	}
	w := c.window.(*deferredWindow)

	var (
		fw  *dock.FloatingWindow
		err error
	)
	if w.dockWidget != nil && w.Group() == nil {
		fw, err = c.registry.FloatDockWidget(w.dockWidget)
	} else {
		fw, err = c.registry.FloatGroup(w.Group())
	}
	if err != nil {
		return fmt.Errorf("float on release: %w", err)
	}
	fw.Move(p.Sub(c.offset))
	return nil
}

// dropWindow moves every group of fw into the target, closing fw.
func dropWindow(fw *dock.FloatingWindow, h indicators.Hit) error {
	if h.Location == indicators.DropLocationCenter && h.Group != nil {
		for _, dw := range fw.DockWidgets() {
			if err := moveTab(dw, h.Group); err != nil {
				return err
			}
		}
		return nil
	}

	tree, _, err := fw.DropArea().TakeAll()
	if err != nil {
		return fmt.Errorf("take floating content: %w", err)
	}
	if err := h.Area.AddItem(tree, insertLocation(h), relativeGroup(h)); err != nil {
		// Put the content back so nothing is lost.
		if rerr := fw.DropArea().AddItem(tree, layout.LocationLeft, nil); rerr != nil {
			return fmt.Errorf("%w (restore failed: %v)", err, rerr)
		}
		return err
	}
	fw.Close()
	return nil
}

func dropGroup(g *dock.Group, h indicators.Hit) error {
	if h.Location == indicators.DropLocationCenter && h.Group != nil {
		for _, dw := range g.DockWidgets() {
			if err := moveTab(dw, h.Group); err != nil {
				return err
			}
		}
		return nil
	}

	from := g.DropArea()
	if from != nil {
		if err := from.DetachGroup(g); err != nil {
			return err
		}
	}
	if err := h.Area.AddGroup(g, insertLocation(h), relativeGroup(h)); err != nil {
		if from != nil {
			if rerr := from.AddGroup(g, layout.LocationLeft, nil); rerr != nil {
				return fmt.Errorf("%w (restore failed: %v)", err, rerr)
			}
		}
		return err
	}
	return nil
}

func dropDockWidget(dw *dock.DockWidget, h indicators.Hit) error {
	if h.Location == indicators.DropLocationCenter && h.Group != nil {
		return moveTab(dw, h.Group)
	}
	from := dw.Group()
	if err := dw.Close(); err != nil {
		return err
	}
	if _, err := h.Area.AddDockWidget(dw, insertLocation(h), relativeGroup(h)); err != nil {
		if from != nil && !from.IsEmpty() {
			if rerr := from.AddDockWidget(dw); rerr != nil {
				return fmt.Errorf("%w (restore failed: %v)", err, rerr)
			}
		}
		return err
	}
	return nil
}

func moveTab(dw *dock.DockWidget, to *dock.Group) error {
	if dw.Group() == to {
		return nil
	}
	if !to.AcceptsTab(dw.Affinities()) {
		return fmt.Errorf("tab %q into %q: %w", dw.Name(), to.Title(), dock.ErrAffinityMismatch)
	}
	if err := dw.Close(); err != nil {
		return err
	}
	return to.AddDockWidget(dw)
}

// insertLocation maps a zone to an insertion side. Center only reaches
// here for an empty area, which any side fills.
func insertLocation(h indicators.Hit) layout.Location {
	if loc := h.Location.LayoutLocation(); loc != layout.LocationNone {
		return loc
	}
	return layout.LocationLeft
}

func relativeGroup(h indicators.Hit) *dock.Group {
	if h.Location.IsOuter() {
		return nil
	}
	return h.Group
}
