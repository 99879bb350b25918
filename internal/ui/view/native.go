package view

import "github.com/bnema/dockyard/internal/domain/geom"

// Property names read from bare natives that carry no controller.
const (
	PropertyMinSize = "min_size"
	PropertyMaxSize = "max_size"
)

// Controller is a domain object rendered by a native view.
type Controller interface {
	Type() Type
}

// Native is the capability set every frontend implements for one of its
// view handles.
type Native interface {
	Geometry() geom.Rect
	SetGeometry(geom.Rect)
	IsVisible() bool
	SetVisible(bool)
	HasFocus() bool
	SetFocus()
	Parent() Native
	Children() []Native
	SetParent(Native)
	// Property returns an out-of-band size tag set on the handle.
	Property(name string) (geom.Size, bool)
	GrabMouse()
	ReleaseMouse()
	Close()
}

// Bound is a Native created for a controller. Its size constraints come
// from the controller rather than from property tags.
type Bound interface {
	Native
	Controller() Controller
	MinSize() geom.Size
	MaxSize() geom.Size
}

// Marked is a bare native that carries its own kind instead of a
// controller, as rubber bands do.
type Marked interface {
	Native
	Kind() Type
}

// NativeWindow is a platform top-level window.
type NativeWindow interface {
	Handle() uint64
	Geometry() geom.Rect
	IsVisible() bool
	// Root returns the view filling the window, if any.
	Root() Native
}

// Platform answers window queries for natives. It is injected by the
// frontend and never owned by the core.
type Platform interface {
	// TopLevel returns the window hosting n, or false when n is not
	// shown in a native window.
	TopLevel(n Native) (NativeWindow, bool)
}
