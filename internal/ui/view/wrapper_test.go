package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/ui/view"
	"github.com/bnema/dockyard/internal/ui/view/mocks"
)

type fakeController struct {
	kind view.Type
	min  geom.Size
	max  geom.Size
}

func (c *fakeController) Type() view.Type    { return c.kind }
func (c *fakeController) MinSize() geom.Size { return c.min }
func (c *fakeController) MaxSize() geom.Size { return c.max }

func newBridge(t *testing.T, fe *headless.Frontend, opts ...view.BridgeOption) *view.Bridge {
	t.Helper()
	return view.NewBridge(context.Background(), fe, opts...)
}

func TestWrapper_ReparentScenario(t *testing.T) {
	// Arrange
	fe := headless.New()
	bridge := newBridge(t, fe)
	root1 := bridge.Create(fe.NewRootView("root1"))
	root2 := bridge.Create(fe.NewRootView("root2"))

	// Act / Assert: empty root
	assert.Empty(t, root1.ChildViews())

	child := bridge.Create(headless.NewNode("child"))
	child.SetParent(root1)

	require.Len(t, root1.ChildViews(), 1)
	assert.True(t, root1.ChildViews()[0].Equals(child))
	assert.True(t, child.ParentView().Equals(root1))

	child.SetParent(root2)

	assert.Empty(t, root1.ChildViews())
	require.Len(t, root2.ChildViews(), 1)
	assert.True(t, child.ParentView().Equals(root2))
}

func TestWrapper_SetParentHides(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	root := bridge.Create(fe.NewRootView("root"))
	child := bridge.Create(headless.NewNode("child"))

	child.SetParent(root)

	assert.False(t, child.IsVisible())
	child.SetVisible(true)
	assert.True(t, child.IsVisible())
}

func TestBridge_CreateNil(t *testing.T) {
	bridge := newBridge(t, headless.New())

	assert.Nil(t, bridge.Create(nil))
}

func TestWrapper_Is(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	group := bridge.Create(fe.CreateGroup(&fakeController{kind: view.TypeGroup}, nil))
	bare := bridge.Create(headless.NewNode("bare"))
	band := bridge.Create(fe.CreateRubberBand(nil))

	tests := []struct {
		name string
		w    *view.Wrapper
		kind view.Type
		want bool
	}{
		{"group is group", group, view.TypeGroup, true},
		{"group is not title bar", group, view.TypeTitleBar, false},
		{"every wrapper is a view wrapper", bare, view.TypeViewWrapper, true},
		{"internal layout item", group, view.TypeLayoutItem, false},
		{"rubber band is rubber band", band, view.TypeRubberBand, true},
		{"group is not rubber band", group, view.TypeRubberBand, false},
		{"bare native is not rubber band", bare, view.TypeRubberBand, false},
		{"rubber band has no controller kind", band, view.TypeGroup, false},
		{"internal indicator overlay", group, view.TypeDropAreaIndicatorOverlay, false},
		{"none", group, view.TypeNone, false},
		{"bare native has no controller kind", bare, view.TypeGroup, false},
		{"unknown kind", group, view.Type(1 << 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Is(tt.kind))
		})
	}
}

func TestWrapper_IsRespectsFrontendSupport(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe, view.WithSupportedTypes(^(view.TypeSideBar | view.TypeMDIArea)))
	sideBar := bridge.Create(fe.CreateSideBar(&fakeController{kind: view.TypeSideBar}, nil))

	assert.False(t, sideBar.Is(view.TypeSideBar))
	assert.Equal(t, view.TypeSideBar, sideBar.Type())
}

func TestWrapper_ControllerLookup(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	c := &fakeController{kind: view.TypeDockWidget}

	w := bridge.Create(fe.CreateDockWidget(c, nil))

	assert.Same(t, c, w.Controller())
	assert.Nil(t, bridge.Create(headless.NewNode("bare")).Controller())

	internal := bridge.Create(headless.NewControllerNode(&fakeController{kind: view.TypeLayoutItem}, "item"))
	assert.Nil(t, internal.Controller(), "internal kinds never resolve")
	assert.Equal(t, view.TypeNone, internal.Type())

	band := bridge.Create(fe.CreateRubberBand(nil))
	assert.Nil(t, band.Controller())
	assert.Equal(t, view.TypeRubberBand, band.Type())
}

func TestWrapper_RubberBandRespectsFrontendSupport(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe, view.WithSupportedTypes(^view.TypeRubberBand))
	band := bridge.Create(fe.CreateRubberBand(nil))

	assert.False(t, band.Is(view.TypeRubberBand))
}

func TestWrapper_Window(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	rootNode := fe.NewRootView("root")
	root := bridge.Create(rootNode)
	child := bridge.Create(headless.NewNode("child"))
	detached := bridge.Create(headless.NewNode("detached"))
	child.SetParent(root)

	_, ok := detached.Window()
	assert.False(t, ok, "no window without a native top-level")

	win, ok := child.Window()
	require.True(t, ok)
	assert.True(t, child.RootView().Equals(root))

	rootWin, _ := root.Window()
	assert.True(t, win.Equals(rootWin))
	assert.Nil(t, detached.RootView())
}

func TestWrapper_HiddenWindowHidesView(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	rootNode := fe.NewRootView("root")
	child := bridge.Create(headless.NewNode("child"))
	child.SetParent(bridge.Create(rootNode))
	child.SetVisible(true)

	rootNode.SetVisible(false)

	assert.False(t, child.IsVisible())
}

func TestWrapper_WindowThroughPlatform(t *testing.T) {
	platform := mocks.NewMockPlatform(t)
	bridge := view.NewBridge(context.Background(), platform)
	w := bridge.Create(headless.NewNode("n"))
	platform.EXPECT().TopLevel(mock.Anything).Return(nil, false).Once()

	win, ok := w.Window()

	assert.False(t, ok)
	assert.Nil(t, win)
}

func TestWrapper_NoPlatform(t *testing.T) {
	bridge := view.NewBridge(context.Background(), nil)
	w := bridge.Create(headless.NewNode("n"))

	_, ok := w.Window()

	assert.False(t, ok)
	assert.True(t, w.IsVisible())
}

func TestWrapper_SizeFallbacks(t *testing.T) {
	bridge := newBridge(t, headless.New())

	tests := []struct {
		name    string
		props   map[string]geom.Size
		wantMin geom.Size
		wantMax geom.Size
	}{
		{
			name:    "no properties",
			wantMin: geom.HardcodedMinimumSize,
			wantMax: geom.HardcodedMaximumSize,
		},
		{
			name:    "min below floor is raised",
			props:   map[string]geom.Size{view.PropertyMinSize: {Width: 10, Height: 10}},
			wantMin: geom.Size{Width: 80, Height: 90},
			wantMax: geom.HardcodedMaximumSize,
		},
		{
			name:    "min above floor is kept",
			props:   map[string]geom.Size{view.PropertyMinSize: {Width: 200, Height: 300}},
			wantMin: geom.Size{Width: 200, Height: 300},
			wantMax: geom.HardcodedMaximumSize,
		},
		{
			name:    "empty max means unbounded",
			props:   map[string]geom.Size{view.PropertyMaxSize: {}},
			wantMin: geom.HardcodedMinimumSize,
			wantMax: geom.HardcodedMaximumSize,
		},
		{
			name:    "max is bounded",
			props:   map[string]geom.Size{view.PropertyMaxSize: {Width: 500, Height: 20000000}},
			wantMin: geom.HardcodedMinimumSize,
			wantMax: geom.Size{Width: 500, Height: 16777215},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := headless.NewNode("bare")
			for k, v := range tt.props {
				n.SetProperty(k, v)
			}
			w := bridge.Create(n)

			assert.Equal(t, tt.wantMin, w.MinSize())
			assert.Equal(t, tt.wantMax, w.MaxSize())
		})
	}
}

func TestWrapper_BoundSizesComeFromController(t *testing.T) {
	fe := headless.New()
	bridge := newBridge(t, fe)
	c := &fakeController{
		kind: view.TypeGroup,
		min:  geom.Size{Width: 10, Height: 10},
		max:  geom.Size{Width: 300, Height: 300},
	}
	n := fe.CreateGroup(c, nil)
	n.(*headless.ControllerNode).SetProperty(view.PropertyMinSize, geom.Size{Width: 999, Height: 999})

	w := bridge.Create(n)

	assert.Equal(t, c.min, w.MinSize())
	assert.Equal(t, c.max, w.MaxSize())
}

func TestWrapper_GrabForwardsToNative(t *testing.T) {
	bridge := newBridge(t, headless.New())
	n := headless.NewNode("n")
	w := bridge.Create(n)

	w.GrabMouse()
	w.ReleaseMouse()

	grabs, releases := n.GrabCounts()
	assert.Equal(t, 1, grabs)
	assert.Equal(t, 1, releases)
}
