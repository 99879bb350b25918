package drag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/drag/mocks"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

type env struct {
	registry    *dock.Registry
	main        *dock.MainWindow
	controller  *drag.Controller
	transitions []string
}

func newEnv(t *testing.T, deferred bool, mainOpts ...dock.MainWindowOption) *env {
	t.Helper()
	ctx := context.Background()
	r, err := dock.NewRegistry(ctx, headless.New(), dock.DefaultOptions())
	require.NoError(t, err)
	mainOpts = append([]dock.MainWindowOption{dock.WithGeometry(geom.Rect{Width: 800, Height: 600})}, mainOpts...)
	m, err := r.NewMainWindow("main", mainOpts...)
	require.NoError(t, err)

	overlay := indicators.New(ctx, r, indicators.WithHotBand(20))
	opts := drag.DefaultOptions()
	opts.DeferFloatingWindows = deferred

	e := &env{registry: r, main: m, controller: drag.NewController(ctx, r, overlay, opts)}
	e.controller.OnStateChanged(func(from, to drag.State) {
		e.transitions = append(e.transitions, to.String())
	})
	return e
}

func (e *env) dock(t *testing.T, name string, loc layout.Location, opts ...dock.DockWidgetOption) *dock.Group {
	t.Helper()
	dw, err := e.registry.NewDockWidget(name, name, opts...)
	require.NoError(t, err)
	g, err := e.main.AddDockWidget(dw, loc, nil)
	require.NoError(t, err)
	return g
}

// startDrag presses on src and moves past the threshold.
func (e *env) startDrag(t *testing.T, src drag.Draggable) geom.Point {
	t.Helper()
	p := src.DragRect().Center()
	require.NoError(t, e.controller.Press(src, p, drag.ButtonLeft))
	require.NoError(t, e.controller.Move(p.Add(geom.Point{X: 10})))
	require.Equal(t, drag.StateDragging, e.controller.State())
	return p
}

func grabCounts(t *testing.T, n any) (int, int) {
	t.Helper()
	node, ok := n.(*headless.ControllerNode)
	require.True(t, ok)
	return node.GrabCounts()
}

func TestController_ThresholdAndClick(t *testing.T) {
	e := newEnv(t, false)
	g := e.dock(t, "a", layout.LocationLeft)
	src := drag.FromTitleBar(g.TitleBar())
	p := g.DragRect().Center()

	require.NoError(t, e.controller.Press(src, p, drag.ButtonLeft))
	require.NoError(t, e.controller.Move(p.Add(geom.Point{X: 2})))
	assert.Equal(t, drag.StatePreDrag, e.controller.State())
	assert.ErrorIs(t, e.controller.Press(src, p, drag.ButtonLeft), drag.ErrDragInProgress)

	require.NoError(t, e.controller.Release(p))

	assert.Equal(t, drag.StateIdle, e.controller.State())
	assert.Empty(t, e.registry.FloatingWindows())
	assert.Equal(t, []string{"pre-drag", "idle"}, e.transitions)
	grabs, _ := grabCounts(t, g.TitleBar().Native())
	assert.Zero(t, grabs, "a click never grabs")
}

func TestController_PressValidation(t *testing.T) {
	e := newEnv(t, false)
	g := e.dock(t, "a", layout.LocationLeft)

	err := e.controller.Press(drag.FromTitleBar(g.TitleBar()), geom.Point{X: 400, Y: 500}, drag.ButtonLeft)
	assert.ErrorIs(t, err, drag.ErrOutsideDragRect)
	assert.ErrorIs(t, e.controller.Release(geom.Point{}), drag.ErrNotDragging)
	assert.NoError(t, e.controller.Press(drag.FromTitleBar(g.TitleBar()), g.DragRect().Center(), drag.ButtonRight))
	assert.Equal(t, drag.StateIdle, e.controller.State())
}

func TestController_EagerDropOnOuterEdge(t *testing.T) {
	// Arrange
	e := newEnv(t, false)
	a := e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)

	// Act: floating window appears as soon as the drag starts.
	e.startDrag(t, drag.FromTitleBar(b.TitleBar()))
	fw, ok := e.controller.WindowBeingDragged().FloatingWindow()
	require.True(t, ok)
	assert.Same(t, fw, b.FloatingWindow())
	assert.Equal(t, []*dock.Group{a}, e.main.DropArea().Groups())

	require.NoError(t, e.controller.Move(geom.Point{X: 5, Y: 300}))
	assert.Equal(t, indicators.DropLocationOuterLeft, e.controller.LastHit().Location)
	require.NoError(t, e.controller.Release(geom.Point{X: 5, Y: 300}))

	// Assert
	assert.Equal(t, drag.StateIdle, e.controller.State())
	assert.Equal(t, []*dock.Group{b, a}, e.main.DropArea().Groups())
	assert.Equal(t, dock.StateDocked, b.State())
	assert.True(t, fw.IsClosed())
	assert.Empty(t, e.registry.FloatingWindows())
	assert.Equal(t, []string{"pre-drag", "dragging", "dropped", "idle"}, e.transitions)

	grabs, releases := grabCounts(t, fw.Native())
	assert.Equal(t, 1, grabs)
	assert.Equal(t, 1, releases)
}

func TestController_EagerDropAsTab(t *testing.T) {
	e := newEnv(t, false)
	a := e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)
	bw := b.DockWidgets()[0]

	e.startDrag(t, drag.FromTitleBar(b.TitleBar()))
	target := a.Geometry().Center()
	require.NoError(t, e.controller.Move(target))
	require.NoError(t, e.controller.Release(target))

	assert.Equal(t, 2, a.Count())
	assert.Same(t, a, bw.Group())
	assert.Equal(t, []*dock.Group{a}, e.main.DropArea().Groups())
	assert.Empty(t, e.registry.FloatingWindows())
}

func TestController_CenterOfForeignGroupDocksBeside(t *testing.T) {
	e := newEnv(t, false, dock.WithMainWindowAffinities("editor", "tool"))
	ed := e.dock(t, "ed", layout.LocationLeft, dock.WithAffinities("editor"))
	tl := e.dock(t, "tl", layout.LocationRight, dock.WithAffinities("tool"))
	tw := tl.DockWidgets()[0]

	e.startDrag(t, drag.FromTitleBar(tl.TitleBar()))
	target := ed.Geometry().Center()
	require.NoError(t, e.controller.Move(target))
	hit := e.controller.LastHit()
	assert.Same(t, ed, hit.Group)
	assert.NotEqual(t, indicators.DropLocationCenter, hit.Location)
	assert.False(t, hit.IsNone())
	require.NoError(t, e.controller.Release(target))

	assert.Equal(t, 1, ed.Count())
	assert.Equal(t, []string{"editor"}, ed.Affinities())
	require.NotNil(t, tw.Group())
	assert.NotSame(t, ed, tw.Group())
	assert.Equal(t, []string{"tool"}, tw.Group().Affinities())
	assert.Len(t, e.main.DropArea().Groups(), 2)
	assert.Empty(t, e.registry.FloatingWindows())
}

func TestController_CancelPaths(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(t *testing.T, c *drag.Controller, src drag.Draggable)
	}{
		{
			name:   "escape",
			cancel: func(t *testing.T, c *drag.Controller, _ drag.Draggable) { c.Escape() },
		},
		{
			name: "press with another button",
			cancel: func(t *testing.T, c *drag.Controller, src drag.Draggable) {
				require.NoError(t, c.Press(src, geom.Point{X: 300, Y: 300}, drag.ButtonRight))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, false)
			e.dock(t, "a", layout.LocationLeft)
			b := e.dock(t, "b", layout.LocationRight)
			src := drag.FromTitleBar(b.TitleBar())
			e.startDrag(t, src)
			fw, _ := e.controller.WindowBeingDragged().FloatingWindow()

			tt.cancel(t, e.controller, src)

			assert.Equal(t, drag.StateIdle, e.controller.State())
			assert.Equal(t, []string{"pre-drag", "dragging", "cancelled", "idle"}, e.transitions)
			assert.False(t, fw.IsClosed(), "the window stays where the drag left it")
			grabs, releases := grabCounts(t, fw.Native())
			assert.Equal(t, 1, grabs)
			assert.Equal(t, 1, releases)

			e.controller.Cancel()
			_, releases = grabCounts(t, fw.Native())
			assert.Equal(t, 1, releases, "release happens once")
		})
	}
}

func TestController_WindowDestroyedMidDrag(t *testing.T) {
	e := newEnv(t, false)
	e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)
	e.startDrag(t, drag.FromTitleBar(b.TitleBar()))
	fw, _ := e.controller.WindowBeingDragged().FloatingWindow()

	fw.Close()
	err := e.controller.Move(geom.Point{X: 300, Y: 300})

	assert.ErrorIs(t, err, drag.ErrWindowDestroyed)
	assert.Equal(t, drag.StateIdle, e.controller.State())
	assert.Contains(t, e.transitions, "cancelled")
	grabs, releases := grabCounts(t, fw.Native())
	assert.Equal(t, 1, grabs)
	assert.Equal(t, 1, releases)
}

func TestController_DeferredKeepsGroupDocked(t *testing.T) {
	// Arrange
	e := newEnv(t, true)
	a := e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)
	bw := b.DockWidgets()[0]

	// Act
	e.startDrag(t, drag.FromTitleBar(b.TitleBar()))

	// Assert: no window yet, sizes come from the group.
	w := e.controller.WindowBeingDragged()
	_, ok := w.FloatingWindow()
	assert.False(t, ok)
	assert.Empty(t, e.registry.FloatingWindows())
	assert.Equal(t, b.Geometry().Size(), w.Size())
	assert.Equal(t, b.MinSize(), w.MinSize())
	assert.Equal(t, b.MaxSize(), w.MaxSize())
	assert.True(t, w.Contains(e.main.Layout()))

	// Act: drop as a tab of a.
	target := a.Geometry().Center()
	require.NoError(t, e.controller.Move(target))
	require.NoError(t, e.controller.Release(target))

	assert.Same(t, a, bw.Group())
	assert.Equal(t, []*dock.Group{a}, e.main.DropArea().Groups())
	grabs, releases := grabCounts(t, b.TitleBar().Native())
	assert.Equal(t, 1, grabs)
	assert.Equal(t, 1, releases)
}

func TestController_DeferredReleaseOverOwnGroupFloats(t *testing.T) {
	e := newEnv(t, true)
	a := e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)
	before := b.Geometry()

	e.startDrag(t, drag.FromTitleBar(b.TitleBar()))
	p := before.Center()
	require.NoError(t, e.controller.Move(p))
	assert.Equal(t, indicators.DropLocationNone, e.controller.LastHit().Location)
	require.NoError(t, e.controller.Release(p))

	// Released over its own group: nothing accepts, so it floats.
	require.Len(t, e.registry.FloatingWindows(), 1)
	assert.Equal(t, []*dock.Group{a}, e.main.DropArea().Groups())
}

func TestController_DeferredBuildsWindowOnRelease(t *testing.T) {
	e := newEnv(t, true)
	e.dock(t, "a", layout.LocationLeft)
	b := e.dock(t, "b", layout.LocationRight)
	press := e.startDrag(t, drag.FromTitleBar(b.TitleBar()))
	offset := press.Sub(b.Geometry().TopLeft())

	p := geom.Point{X: 2000, Y: 2000}
	require.NoError(t, e.controller.Move(p))
	require.NoError(t, e.controller.Release(p))

	fws := e.registry.FloatingWindows()
	require.Len(t, fws, 1)
	assert.Same(t, fws[0], b.FloatingWindow())
	assert.Equal(t, p.Sub(offset), fws[0].Geometry().TopLeft())
}

func TestController_DeferredTabDrag(t *testing.T) {
	e := newEnv(t, true)
	a := e.dock(t, "a", layout.LocationLeft)
	extra, err := e.registry.NewDockWidget("extra", "extra")
	require.NoError(t, err)
	require.NoError(t, a.AddDockWidget(extra))

	idx := 1
	src := drag.FromTab(a.TabBar(), idx)
	require.Same(t, extra, src.DockWidget())
	e.startDrag(t, src)
	assert.Nil(t, e.controller.WindowBeingDragged().Group(), "only one tab moves")

	p := geom.Point{X: 795, Y: 300}
	require.NoError(t, e.controller.Move(p))
	require.NoError(t, e.controller.Release(p))

	require.Len(t, e.main.DropArea().Groups(), 2)
	assert.Equal(t, 1, a.Count())
	assert.Same(t, e.main.DropArea().Groups()[1], extra.Group())
}

func TestController_AffinityFiltering(t *testing.T) {
	e := newEnv(t, false, dock.WithMainWindowAffinities("editor"))
	tool, err := e.registry.NewDockWidget("tool", "tool", dock.WithAffinities("tool"))
	require.NoError(t, err)
	fw, err := e.registry.FloatDockWidget(tool)
	require.NoError(t, err)
	fw.Move(geom.Point{X: 100, Y: 100})

	e.startDrag(t, drag.FromTitleBar(fw.TitleBar()))
	p := geom.Point{X: 400, Y: 300}
	require.NoError(t, e.controller.Move(p))
	assert.Equal(t, indicators.DropLocationNone, e.controller.LastHit().Location)
	require.NoError(t, e.controller.Release(p))

	assert.False(t, fw.IsClosed())
	assert.True(t, e.main.Layout().IsEmpty())
}

// grabbingSource swaps the pointer grab target of a draggable.
type grabbingSource struct {
	drag.Draggable
	grabber drag.Grabber
}

func (s grabbingSource) Grabber() drag.Grabber { return s.grabber }

func TestController_FailedDropReleasesGrabOnce(t *testing.T) {
	// Arrange: a fixed window with no room left, and a source elsewhere.
	e := newEnv(t, true)
	small, err := e.registry.NewMainWindow("small",
		dock.WithFixedSize(geom.Size{Width: 150, Height: 200}))
	require.NoError(t, err)
	dw, err := e.registry.NewDockWidget("a", "a")
	require.NoError(t, err)
	_, err = small.AddDockWidget(dw, layout.LocationLeft, nil)
	require.NoError(t, err)
	require.NoError(t, e.main.SetGeometry(geom.Rect{X: 500, Width: 400, Height: 300}))
	b := e.dock(t, "b", layout.LocationLeft)

	grabber := mocks.NewMockGrabber(t)
	grabber.EXPECT().GrabMouse().Return().Once()
	grabber.EXPECT().ReleaseMouse().Return().Once()
	src := grabbingSource{Draggable: drag.FromTitleBar(b.TitleBar()), grabber: grabber}

	// Act
	e.startDrag(t, src)
	p := geom.Point{X: 3, Y: 100}
	require.NoError(t, e.controller.Move(p))
	require.Equal(t, indicators.DropLocationOuterLeft, e.controller.LastHit().Location)
	err = e.controller.Release(p)

	// Assert
	assert.ErrorIs(t, err, layout.ErrUnsatisfiableMinimum)
	assert.Equal(t, drag.StateIdle, e.controller.State())
	assert.Contains(t, e.transitions, "cancelled")
	assert.Same(t, e.main.DropArea(), b.DropArea(), "group is put back")
}

func TestController_SetOptions(t *testing.T) {
	e := newEnv(t, false)
	g := e.dock(t, "a", layout.LocationLeft)
	src := drag.FromTitleBar(g.TitleBar())
	p := g.DragRect().Center()

	require.NoError(t, e.controller.SetOptions(drag.Options{Threshold: 20}))
	require.NoError(t, e.controller.Press(src, p, drag.ButtonLeft))
	require.NoError(t, e.controller.Move(p.Add(geom.Point{X: 10})))
	assert.Equal(t, drag.StatePreDrag, e.controller.State())

	assert.ErrorIs(t, e.controller.SetOptions(drag.DefaultOptions()), drag.ErrDragInProgress)
	require.NoError(t, e.controller.Release(p))
	assert.NoError(t, e.controller.SetOptions(drag.DefaultOptions()))
}
