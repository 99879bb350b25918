package headless

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/view"
)

// Window is a simulated platform top-level.
type Window struct {
	handle uint64
	root   *Node
}

func (w *Window) Handle() uint64      { return w.handle }
func (w *Window) Geometry() geom.Rect { return w.root.geometry }
func (w *Window) IsVisible() bool     { return w.root.IsVisible() }
func (w *Window) Root() view.Native   { return w.root.self }

// Frontend is both the view factory and the platform of the headless
// frontend.
type Frontend struct {
	disabled   view.Type
	nodes      []view.Native
	nextHandle uint64
}

var (
	_ view.Factory  = (*Frontend)(nil)
	_ view.Platform = (*Frontend)(nil)
)

// Option configures a Frontend.
type Option func(*Frontend)

// WithoutKinds makes the factory return nil for the kinds in mask.
func WithoutKinds(mask view.Type) Option {
	return func(f *Frontend) { f.disabled |= mask }
}

// New creates a headless frontend.
func New(opts ...Option) *Frontend {
	f := &Frontend{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Nodes returns every native created so far.
func (f *Frontend) Nodes() []view.Native { return f.nodes }

// NewWindow turns root into the root view of a new top-level window.
func (f *Frontend) NewWindow(root view.Native) *Window {
	f.nextHandle++
	w := &Window{handle: f.nextHandle, root: asNode(root)}
	w.root.window = w
	return w
}

// NewRootView creates a bare view shown in its own window.
func (f *Frontend) NewRootView(name string) *Node {
	n := newNode(name)
	f.track(n)
	f.NewWindow(n)
	return n
}

// TopLevel walks up to the root and returns its window.
func (f *Frontend) TopLevel(n view.Native) (view.NativeWindow, bool) {
	node := asNode(n)
	for node != nil {
		if node.window != nil {
			return node.window, true
		}
		node = asNode(node.parent)
	}
	return nil, false
}

func (f *Frontend) track(n view.Native) {
	asNode(n).frontend = f
	f.nodes = append(f.nodes, n)
}

func (f *Frontend) create(kind view.Type, c view.Controller, parent view.Native) view.Native {
	if f.disabled&kind != 0 {
		return nil
	}
	n := NewControllerNode(c, kind.String())
	f.track(n)
	if parent != nil {
		n.SetParent(parent)
	}
	return n
}

func (f *Frontend) CreateDockWidget(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeDockWidget, c, p)
}

func (f *Frontend) CreateGroup(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeGroup, c, p)
}

func (f *Frontend) CreateTitleBar(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeTitleBar, c, p)
}

func (f *Frontend) CreateTabBar(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeTabBar, c, p)
}

func (f *Frontend) CreateStack(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeStack, c, p)
}

func (f *Frontend) CreateSeparator(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeSeparator, c, p)
}

// CreateFloatingWindow creates the view and a top-level window for it.
func (f *Frontend) CreateFloatingWindow(c view.Controller, p view.Native) view.Native {
	n := f.create(view.TypeFloatingWindow, c, nil)
	if n != nil {
		f.NewWindow(n)
	}
	return n
}

// CreateRubberBand creates a bare view; rubber bands have no controller.
func (f *Frontend) CreateRubberBand(p view.Native) view.Native {
	if f.disabled&view.TypeRubberBand != 0 {
		return nil
	}
	n := newNode("rubber-band")
	n.kind = view.TypeRubberBand
	f.track(n)
	n.visible = false
	if p != nil {
		n.SetParent(p)
	}
	return n
}

func (f *Frontend) CreateSideBar(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeSideBar, c, p)
}

func (f *Frontend) CreateDropArea(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeDropArea, c, p)
}

func (f *Frontend) CreateMDILayout(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeMDILayout, c, p)
}

func (f *Frontend) CreateIndicatorOverlay(c view.Controller, p view.Native) view.Native {
	return f.create(view.TypeDropAreaIndicatorOverlay, c, p)
}

// IconForButtonType returns the icon resource name.
func (f *Frontend) IconForButtonType(t view.ButtonType, scale float64) view.Icon {
	name := view.IconName(t, scale)
	if name == "" {
		return nil
	}
	return name
}
