// Package x11 adapts X11 windows to the view capability interface. Only
// window queries, reparenting and pointer grabs are provided; painting is
// left to the client owning the windows.
package x11

import (
	"context"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/view"
)

// Platform answers top-level window queries for X11 natives.
type Platform struct {
	srv    server
	logger zerolog.Logger
}

var _ view.Platform = (*Platform)(nil)

// NewPlatform creates a platform over an open connection.
func NewPlatform(ctx context.Context, conn *Connection) *Platform {
	return newPlatform(ctx, conn)
}

func newPlatform(ctx context.Context, srv server) *Platform {
	log := logging.FromContext(ctx)
	return &Platform{
		srv:    srv,
		logger: log.With().Str("component", "x11-platform").Logger(),
	}
}

// Wrap returns the native for window id.
func (p *Platform) Wrap(id uint32) *Native {
	return &Native{platform: p, id: xproto.Window(id)}
}

// TopLevel climbs the window tree from n to the child of the root window
// containing it. Natives of other frontends are skipped through their
// parents until an X11 one is found.
func (p *Platform) TopLevel(n view.Native) (view.NativeWindow, bool) {
	var xn *Native
	for n != nil {
		if candidate, ok := n.(*Native); ok {
			xn = candidate
			break
		}
		n = n.Parent()
	}
	if xn == nil || xn.id == 0 {
		return nil, false
	}

	top, err := p.topLevelOf(xn.id)
	if err != nil {
		p.logger.Debug().Err(err).Uint32("window", uint32(xn.id)).Msg("top-level lookup failed")
		return nil, false
	}
	return &Window{native: p.Wrap(uint32(top))}, true
}

func (p *Platform) topLevelOf(w xproto.Window) (xproto.Window, error) {
	root := p.srv.Root()
	if w == root {
		return 0, ErrNoWindow
	}
	for {
		parent, _, err := p.srv.Tree(w)
		if err != nil {
			return 0, err
		}
		if parent == root || parent == 0 {
			return w, nil
		}
		w = parent
	}
}

// Window is an X11 top-level window.
type Window struct {
	native *Native
}

var _ view.NativeWindow = (*Window)(nil)

func (w *Window) Handle() uint64      { return uint64(w.native.id) }
func (w *Window) Geometry() geom.Rect { return w.native.Geometry() }
func (w *Window) IsVisible() bool     { return w.native.IsVisible() }
func (w *Window) Root() view.Native   { return w.native }

// Title returns the window manager name of the window.
func (w *Window) Title() string { return w.native.Title() }

// Native is a view over one X11 window. Geometry is in root coordinates.
type Native struct {
	platform *Platform
	id       xproto.Window
	grabbed  bool
}

var _ view.Native = (*Native)(nil)

// ID returns the X11 window id.
func (n *Native) ID() uint32 { return uint32(n.id) }

// Title returns the _NET_WM_NAME or WM_NAME of the window.
func (n *Native) Title() string { return n.srv().Name(n.id) }

func (n *Native) srv() server { return n.platform.srv }

func (n *Native) warn(err error, msg string) {
	n.platform.logger.Warn().Err(err).Uint32("window", uint32(n.id)).Msg(msg)
}

func (n *Native) Geometry() geom.Rect {
	r, err := n.srv().Geometry(n.id)
	if err != nil {
		n.warn(err, "geometry query failed")
		return geom.Rect{}
	}
	return r
}

// SetGeometry moves the window so that it covers r in root coordinates.
func (n *Native) SetGeometry(r geom.Rect) {
	local := r
	if parent := n.parentID(); parent != 0 && parent != n.srv().Root() {
		pr, err := n.srv().Geometry(parent)
		if err != nil {
			n.warn(err, "parent geometry query failed")
			return
		}
		local = r.Translate(geom.Point{X: -pr.X, Y: -pr.Y})
	}
	n.srv().Configure(n.id, local)
}

func (n *Native) IsVisible() bool {
	v, err := n.srv().Viewable(n.id)
	if err != nil {
		n.warn(err, "attribute query failed")
		return false
	}
	return v
}

func (n *Native) SetVisible(v bool) { n.srv().Map(n.id, v) }

func (n *Native) HasFocus() bool {
	f, err := n.srv().Focused()
	return err == nil && f == n.id
}

func (n *Native) SetFocus() { n.srv().Focus(n.id) }

func (n *Native) parentID() xproto.Window {
	parent, _, err := n.srv().Tree(n.id)
	if err != nil {
		n.warn(err, "tree query failed")
		return 0
	}
	return parent
}

// Parent returns nil for children of the root window.
func (n *Native) Parent() view.Native {
	parent := n.parentID()
	if parent == 0 || parent == n.srv().Root() {
		return nil
	}
	return n.platform.Wrap(uint32(parent))
}

func (n *Native) Children() []view.Native {
	_, kids, err := n.srv().Tree(n.id)
	if err != nil {
		n.warn(err, "tree query failed")
		return nil
	}
	out := make([]view.Native, 0, len(kids))
	for _, k := range kids {
		out = append(out, n.platform.Wrap(uint32(k)))
	}
	return out
}

// SetParent reparents the window under p, keeping its on-screen position.
// A nil or foreign parent moves it to the root window. Reparenting hides
// the window.
func (n *Native) SetParent(p view.Native) {
	target := n.srv().Root()
	if xp, ok := p.(*Native); ok && xp != nil {
		target = xp.id
	}

	at := n.Geometry().TopLeft()
	if target != n.srv().Root() {
		pr, err := n.srv().Geometry(target)
		if err != nil {
			n.warn(err, "parent geometry query failed")
			return
		}
		at = at.Sub(pr.TopLeft())
	}
	n.srv().Map(n.id, false)
	n.srv().Reparent(n.id, target, at)
}

// Property maps min_size and max_size to the ICCCM size hints.
func (n *Native) Property(name string) (geom.Size, bool) {
	h, err := n.srv().SizeHints(n.id)
	if err != nil {
		return geom.Size{}, false
	}
	switch name {
	case view.PropertyMinSize:
		return h.min, h.hasMin
	case view.PropertyMaxSize:
		return h.max, h.hasMax
	}
	return geom.Size{}, false
}

// GrabMouse grabs the pointer. Failures are logged; a second grab while
// held is a no-op.
func (n *Native) GrabMouse() {
	if n.grabbed {
		return
	}
	if err := n.srv().GrabPointer(n.id); err != nil {
		n.warn(err, "pointer grab failed")
		return
	}
	n.grabbed = true
}

func (n *Native) ReleaseMouse() {
	if !n.grabbed {
		return
	}
	n.srv().UngrabPointer()
	n.grabbed = false
}

func (n *Native) Close() {
	n.ReleaseMouse()
	if err := n.srv().Close(n.id); err != nil {
		n.warn(err, "close request failed")
	}
}

// Focused returns the native holding the input focus.
func (p *Platform) Focused() (*Native, error) {
	id, err := p.srv.Focused()
	if err != nil {
		return nil, err
	}
	if id == 0 || id == p.srv.Root() {
		return nil, ErrNoWindow
	}
	return p.Wrap(uint32(id)), nil
}
