package view

import "github.com/bnema/dockyard/internal/domain/geom"

// Window wraps a platform top-level.
type Window struct {
	native NativeWindow
	bridge *Bridge
}

// Handle returns the platform identifier.
func (w *Window) Handle() uint64 { return w.native.Handle() }

// Geometry returns the window frame rectangle.
func (w *Window) Geometry() geom.Rect { return w.native.Geometry() }

// IsVisible reports whether the window is mapped.
func (w *Window) IsVisible() bool { return w.native.IsVisible() }

// RootView returns the view filling the window.
func (w *Window) RootView() *Wrapper { return w.bridge.Create(w.native.Root()) }

// Equals reports whether both wrap the same platform window.
func (w *Window) Equals(o *Window) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.native.Handle() == o.native.Handle()
}
