package x11

import (
	"context"
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/ui/view"
)

const root xproto.Window = 1

type fakeWindow struct {
	parent   xproto.Window
	rect     geom.Rect // root coordinates
	mapped   bool
	hints    sizeHints
	name     string
	children []xproto.Window
}

type fakeServer struct {
	windows  map[xproto.Window]*fakeWindow
	focus    xproto.Window
	grabs    int
	ungrabs  int
	grabErr  error
	closed   []xproto.Window
	reparent []xproto.Window
}

func newFakeServer() *fakeServer {
	return &fakeServer{windows: map[xproto.Window]*fakeWindow{
		root: {rect: geom.Rect{Width: 1920, Height: 1080}, mapped: true},
	}}
}

func (s *fakeServer) add(id, parent xproto.Window, r geom.Rect) *fakeWindow {
	w := &fakeWindow{parent: parent, rect: r, mapped: true}
	s.windows[id] = w
	s.windows[parent].children = append(s.windows[parent].children, id)
	return w
}

var errBadWindow = errors.New("BadWindow")

func (s *fakeServer) get(w xproto.Window) (*fakeWindow, error) {
	fw, ok := s.windows[w]
	if !ok {
		return nil, errBadWindow
	}
	return fw, nil
}

func (s *fakeServer) Root() xproto.Window { return root }

func (s *fakeServer) Geometry(w xproto.Window) (geom.Rect, error) {
	fw, err := s.get(w)
	if err != nil {
		return geom.Rect{}, err
	}
	return fw.rect, nil
}

func (s *fakeServer) Viewable(w xproto.Window) (bool, error) {
	fw, err := s.get(w)
	if err != nil {
		return false, err
	}
	return fw.mapped, nil
}

func (s *fakeServer) Tree(w xproto.Window) (xproto.Window, []xproto.Window, error) {
	fw, err := s.get(w)
	if err != nil {
		return 0, nil, err
	}
	return fw.parent, fw.children, nil
}

func (s *fakeServer) Configure(w xproto.Window, r geom.Rect) {
	fw := s.windows[w]
	origin := s.windows[fw.parent].rect.TopLeft()
	if fw.parent == root {
		origin = geom.Point{}
	}
	fw.rect = r.Translate(origin)
}

func (s *fakeServer) Map(w xproto.Window, mapped bool) { s.windows[w].mapped = mapped }
func (s *fakeServer) Focused() (xproto.Window, error)  { return s.focus, nil }
func (s *fakeServer) Focus(w xproto.Window)            { s.focus = w }

func (s *fakeServer) Reparent(w, parent xproto.Window, at geom.Point) {
	s.reparent = append(s.reparent, w)
	fw := s.windows[w]
	s.windows[fw.parent].children = without(s.windows[fw.parent].children, w)
	fw.parent = parent
	s.windows[parent].children = append(s.windows[parent].children, w)
	origin := geom.Point{}
	if parent != root {
		origin = s.windows[parent].rect.TopLeft()
	}
	fw.rect = geom.RectFrom(at.Add(origin), fw.rect.Size())
}

func (s *fakeServer) SizeHints(w xproto.Window) (sizeHints, error) {
	fw, err := s.get(w)
	if err != nil {
		return sizeHints{}, err
	}
	return fw.hints, nil
}

func (s *fakeServer) GrabPointer(xproto.Window) error {
	if s.grabErr != nil {
		return s.grabErr
	}
	s.grabs++
	return nil
}

func (s *fakeServer) UngrabPointer() { s.ungrabs++ }

func (s *fakeServer) Close(w xproto.Window) error {
	s.closed = append(s.closed, w)
	return nil
}

func (s *fakeServer) Name(w xproto.Window) string { return s.windows[w].name }

func without(ids []xproto.Window, id xproto.Window) []xproto.Window {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// newTree builds root > frame(10) > client(11) > panel(12).
func newTree(t *testing.T) (*fakeServer, *Platform) {
	t.Helper()
	srv := newFakeServer()
	frame := srv.add(10, root, geom.Rect{X: 100, Y: 50, Width: 800, Height: 600})
	frame.name = "editor"
	srv.add(11, 10, geom.Rect{X: 100, Y: 80, Width: 800, Height: 570})
	srv.add(12, 11, geom.Rect{X: 120, Y: 100, Width: 200, Height: 300})
	return srv, newPlatform(context.Background(), srv)
}

func TestPlatform_TopLevelClimbsToRootChild(t *testing.T) {
	_, p := newTree(t)

	win, ok := p.TopLevel(p.Wrap(12))

	require.True(t, ok)
	assert.Equal(t, uint64(10), win.Handle())
	assert.Equal(t, geom.Rect{X: 100, Y: 50, Width: 800, Height: 600}, win.Geometry())
	assert.True(t, win.IsVisible())
	assert.Equal(t, "editor", win.(*Window).Title())
}

func TestPlatform_TopLevelEdgeCases(t *testing.T) {
	_, p := newTree(t)

	tests := []struct {
		name   string
		native view.Native
	}{
		{"root window", p.Wrap(uint32(root))},
		{"unknown window", p.Wrap(99)},
		{"zero id", p.Wrap(0)},
		{"foreign native", headless.NewNode("bare")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := p.TopLevel(tt.native)
			assert.False(t, ok)
		})
	}
}

func TestPlatform_ThroughBridge(t *testing.T) {
	srv, p := newTree(t)
	bridge := view.NewBridge(context.Background(), p)

	w := bridge.Create(p.Wrap(12))
	win, ok := w.Window()
	require.True(t, ok)
	assert.Equal(t, uint64(10), win.Handle())
	assert.True(t, w.IsVisible())

	// Unmapping the frame hides every view in it.
	srv.windows[10].mapped = false
	assert.False(t, w.IsVisible())
}

func TestNative_SetGeometryIsParentRelative(t *testing.T) {
	srv, p := newTree(t)
	panel := p.Wrap(12)

	panel.SetGeometry(geom.Rect{X: 150, Y: 120, Width: 100, Height: 100})

	assert.Equal(t, geom.Rect{X: 150, Y: 120, Width: 100, Height: 100}, srv.windows[12].rect)
	assert.Equal(t, geom.Rect{X: 150, Y: 120, Width: 100, Height: 100}, panel.Geometry())
}

func TestNative_Navigation(t *testing.T) {
	_, p := newTree(t)

	assert.Nil(t, p.Wrap(10).Parent())
	parent := p.Wrap(12).Parent()
	require.NotNil(t, parent)
	assert.Equal(t, uint32(11), parent.(*Native).ID())

	kids := p.Wrap(10).Children()
	require.Len(t, kids, 1)
	assert.Equal(t, uint32(11), kids[0].(*Native).ID())
}

func TestNative_SetParentKeepsScreenPositionAndHides(t *testing.T) {
	srv, p := newTree(t)
	panel := p.Wrap(12)

	panel.SetParent(nil)

	assert.Equal(t, []xproto.Window{12}, srv.reparent)
	assert.Equal(t, root, srv.windows[12].parent)
	assert.Equal(t, geom.Point{X: 120, Y: 100}, srv.windows[12].rect.TopLeft())
	assert.False(t, panel.IsVisible())

	panel.SetParent(p.Wrap(10))
	assert.Equal(t, xproto.Window(10), srv.windows[12].parent)
	assert.Equal(t, geom.Point{X: 120, Y: 100}, srv.windows[12].rect.TopLeft())
}

func TestNative_SizeHintProperties(t *testing.T) {
	srv, p := newTree(t)
	srv.windows[12].hints = hintsFromICCCM(&icccm.NormalHints{
		Flags:    icccm.SizeHintPMinSize,
		MinWidth: 80, MinHeight: 10,
	})
	w := view.NewBridge(context.Background(), p).Create(p.Wrap(12))

	minSize, ok := p.Wrap(12).Property(view.PropertyMinSize)
	require.True(t, ok)
	assert.Equal(t, geom.Size{Width: 80, Height: 10}, minSize)
	_, ok = p.Wrap(12).Property(view.PropertyMaxSize)
	assert.False(t, ok)

	// Hints below the hard-coded minimum are raised; missing max falls back.
	assert.Equal(t, geom.Size{Width: 80, Height: 10}.ExpandedTo(geom.HardcodedMinimumSize), w.MinSize())
	assert.Equal(t, geom.HardcodedMaximumSize, w.MaxSize())
}

func TestNative_GrabPairing(t *testing.T) {
	srv, p := newTree(t)
	n := p.Wrap(10)

	n.GrabMouse()
	n.GrabMouse()
	n.ReleaseMouse()
	n.ReleaseMouse()

	assert.Equal(t, 1, srv.grabs)
	assert.Equal(t, 1, srv.ungrabs)
}

func TestNative_FailedGrabIsNotReleased(t *testing.T) {
	srv, p := newTree(t)
	srv.grabErr = ErrGrabFailed
	n := p.Wrap(10)

	n.GrabMouse()
	n.ReleaseMouse()

	assert.Equal(t, 0, srv.ungrabs)
}

func TestNative_FocusAndClose(t *testing.T) {
	srv, p := newTree(t)
	n := p.Wrap(11)

	assert.False(t, n.HasFocus())
	n.SetFocus()
	assert.True(t, n.HasFocus())

	focused, err := p.Focused()
	require.NoError(t, err)
	assert.Equal(t, uint32(11), focused.ID())

	n.GrabMouse()
	n.Close()
	assert.Equal(t, []xproto.Window{11}, srv.closed)
	assert.Equal(t, 1, srv.ungrabs)
}

func TestPlatform_FocusedRootIsNoWindow(t *testing.T) {
	srv, p := newTree(t)
	srv.focus = root

	_, err := p.Focused()
	assert.ErrorIs(t, err, ErrNoWindow)
}
