package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
)

// Bridge creates wrappers for one frontend.
type Bridge struct {
	platform  Platform
	supported Type
	logger    zerolog.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithSupportedTypes restricts the optional kinds (side bars and MDI areas)
// the frontend provides. All kinds are supported by default.
func WithSupportedTypes(mask Type) BridgeOption {
	return func(b *Bridge) { b.supported = mask }
}

// NewBridge creates a bridge answering window queries through platform,
// which may be nil for frontends without native windows.
func NewBridge(ctx context.Context, platform Platform, opts ...BridgeOption) *Bridge {
	log := logging.FromContext(ctx)
	b := &Bridge{
		platform:  platform,
		supported: ^Type(0),
		logger:    log.With().Str("component", "view-bridge").Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Create wraps n. The wrapper does not own n and holds no other state, so
// any number of wrappers may share a native. Returns nil for a nil native.
func (b *Bridge) Create(n Native) *Wrapper {
	if n == nil {
		return nil
	}
	return &Wrapper{native: n, bridge: b}
}

// Wrapper is a uniform view over a frontend handle.
type Wrapper struct {
	native Native
	bridge *Bridge
}

// Native returns the wrapped handle.
func (w *Wrapper) Native() Native { return w.native }

// Controller returns the controller bound to the handle, scanning the
// closed set of kinds. Internal kinds never match.
func (w *Wrapper) Controller() Controller {
	bound, ok := w.native.(Bound)
	if !ok {
		return nil
	}
	c := bound.Controller()
	if c == nil {
		return nil
	}

	for _, t := range AllTypes() {
		if classify(t) != classController {
			continue
		}
		if c.Type() == t {
			return c
		}
	}
	return nil
}

// Type returns the kind of the bound controller or of a marked bare
// native, or TypeNone.
func (w *Wrapper) Type() Type {
	if c := w.Controller(); c != nil {
		return c.Type()
	}
	if m, ok := w.native.(Marked); ok && classify(m.Kind()) == classBare {
		return m.Kind()
	}
	return TypeNone
}

// Is reports whether the view is of kind t. Every wrapper is a
// TypeViewWrapper; internal kinds are never matched.
func (w *Wrapper) Is(t Type) bool {
	switch classify(t) {
	case classWrapper:
		return true
	case classInternal:
		w.bridge.logger.Warn().Str("type", t.String()).Msg("type query for internal view kind")
		return false
	case classController:
		if w.bridge.supported&t == 0 {
			return false
		}
		c := w.Controller()
		return c != nil && c.Type() == t
	case classBare:
		if w.bridge.supported&t == 0 {
			return false
		}
		m, ok := w.native.(Marked)
		return ok && m.Kind() == t
	default:
		return false
	}
}

// Window returns the top-level window hosting the view. It is built on
// demand and absent when the view is not shown in a native window.
func (w *Wrapper) Window() (*Window, bool) {
	if w.bridge.platform == nil {
		return nil, false
	}
	nw, ok := w.bridge.platform.TopLevel(w.native)
	if !ok || nw == nil {
		return nil, false
	}
	return &Window{native: nw, bridge: w.bridge}, true
}

// RootView returns the view filling the hosting window, or nil.
func (w *Wrapper) RootView() *Wrapper {
	win, ok := w.Window()
	if !ok {
		return nil
	}
	return win.RootView()
}

// MinSize returns the controller's minimum for bound handles. Bare handles
// use the min_size property, never below the hard-coded minimum.
func (w *Wrapper) MinSize() geom.Size {
	if bound, ok := w.native.(Bound); ok {
		return bound.MinSize()
	}
	s, ok := w.native.Property(PropertyMinSize)
	if !ok {
		return geom.HardcodedMinimumSize
	}
	return s.ExpandedTo(geom.HardcodedMinimumSize)
}

// MaxSize returns the controller's maximum for bound handles. Bare handles
// use the max_size property, never above the hard-coded maximum; an unset
// or empty property means the hard-coded maximum.
func (w *Wrapper) MaxSize() geom.Size {
	if bound, ok := w.native.(Bound); ok {
		return bound.MaxSize()
	}
	s, ok := w.native.Property(PropertyMaxSize)
	if !ok || s.IsEmpty() {
		return geom.HardcodedMaximumSize
	}
	return s.BoundedTo(geom.HardcodedMaximumSize)
}

// Geometry returns the view rectangle.
func (w *Wrapper) Geometry() geom.Rect { return w.native.Geometry() }

// SetGeometry moves and resizes the view.
func (w *Wrapper) SetGeometry(r geom.Rect) { w.native.SetGeometry(r) }

// IsVisible reports whether the view is shown. A view in a hidden window
// is not visible.
func (w *Wrapper) IsVisible() bool {
	if !w.native.IsVisible() {
		return false
	}
	if win, ok := w.Window(); ok {
		return win.IsVisible()
	}
	return true
}

// SetVisible shows or hides the view.
func (w *Wrapper) SetVisible(v bool) { w.native.SetVisible(v) }

// HasFocus reports whether the view has keyboard focus.
func (w *Wrapper) HasFocus() bool { return w.native.HasFocus() }

// SetFocus gives the view keyboard focus.
func (w *Wrapper) SetFocus() { w.native.SetFocus() }

// ParentView returns the parent view, or nil for a root.
func (w *Wrapper) ParentView() *Wrapper { return w.bridge.Create(w.native.Parent()) }

// ChildViews returns the direct children.
func (w *Wrapper) ChildViews() []*Wrapper {
	kids := w.native.Children()
	out := make([]*Wrapper, 0, len(kids))
	for _, k := range kids {
		out = append(out, w.bridge.Create(k))
	}
	return out
}

// SetParent reparents the view; nil detaches it. Like native toolkits, a
// reparented view is hidden until shown again.
func (w *Wrapper) SetParent(p *Wrapper) {
	var parent Native
	if p != nil {
		parent = p.native
	}
	w.native.SetParent(parent)
	w.native.SetVisible(false)
}

// Equals reports whether both wrappers share a native handle.
func (w *Wrapper) Equals(o *Wrapper) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.native == o.native
}

// GrabMouse routes all pointer input to the view.
func (w *Wrapper) GrabMouse() { w.native.GrabMouse() }

// ReleaseMouse ends a grab started with GrabMouse.
func (w *Wrapper) ReleaseMouse() { w.native.ReleaseMouse() }

// Close closes the view.
func (w *Wrapper) Close() { w.native.Close() }
