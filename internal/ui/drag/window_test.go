package drag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

func floatingFixture(t *testing.T) (*dock.Registry, *dock.MainWindow, *dock.FloatingWindow) {
	t.Helper()
	r, err := dock.NewRegistry(context.Background(), view.NullFactory{}, dock.DefaultOptions())
	require.NoError(t, err)
	m, err := r.NewMainWindow("main", dock.WithGeometry(geom.Rect{Width: 800, Height: 600}))
	require.NoError(t, err)
	dw, err := r.NewDockWidget("a", "a", dock.WithAffinities("editor"))
	require.NoError(t, err)
	fw, err := r.FloatDockWidget(dw)
	require.NoError(t, err)
	return r, m, fw
}

func TestWindowBeingDragged_NeverContainsItsOwnLayout(t *testing.T) {
	_, m, fw := floatingFixture(t)
	g := fw.Groups()[0]
	other := layout.New(context.Background())

	variants := map[string]WindowBeingDragged{
		"eager":    newEagerWindow(fw, FromTitleBar(fw.TitleBar())),
		"deferred": newDeferredWindow(FromTab(g.TabBar(), 0), dock.DefaultOptions()),
	}
	for name, w := range variants {
		t.Run(name, func(t *testing.T) {
			assert.False(t, w.Contains(fw.Layout()))
			assert.True(t, w.Contains(m.Layout()))
			assert.True(t, w.Contains(other))
			assert.False(t, w.Contains(nil))
			assert.Equal(t, []string{"editor"}, w.Affinities())
			assert.Len(t, w.DockWidgets(), 1)
		})
	}
}

func TestEagerWindow_ReferenceDiesWithWindow(t *testing.T) {
	_, m, fw := floatingFixture(t)
	w := newEagerWindow(fw, FromTitleBar(fw.TitleBar()))
	size := w.Size()

	fw.Close()

	assert.False(t, w.IsValid())
	_, ok := w.FloatingWindow()
	assert.False(t, ok)
	assert.True(t, w.Contains(m.Layout()))
	assert.Empty(t, w.DockWidgets())
	assert.Equal(t, size, w.Size(), "cached sizes survive")
}

func TestDeferredWindow_DockWidgetSizes(t *testing.T) {
	r, m, _ := floatingFixture(t)
	opts := r.Options()
	a, err := r.NewDockWidget("b", "b", dock.WithMinSize(geom.Size{Width: 200, Height: 100}))
	require.NoError(t, err)
	c, err := r.NewDockWidget("c", "c")
	require.NoError(t, err)
	g, err := m.AddDockWidget(a, layout.LocationLeft, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddDockWidget(c))

	w := newDeferredWindow(FromTab(g.TabBar(), 0), opts)

	assert.Nil(t, w.Group())
	assert.Equal(t, geom.Size{Width: 200, Height: 100 + opts.TitleBarHeight}, w.MinSize())
	assert.Equal(t, g.Geometry().Size(), w.Size())
	assert.True(t, w.IsValid())
	require.NoError(t, a.Close())
	assert.False(t, w.IsValid())
}
