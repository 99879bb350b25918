package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/bnema/dockyard/internal/domain/geom"
)

var (
	// ErrGrabFailed is returned when the server refuses a pointer grab.
	ErrGrabFailed = errors.New("pointer grab failed")
	// ErrNoWindow is returned for the zero window id.
	ErrNoWindow = errors.New("no window")
)

// sizeHints is the subset of WM_NORMAL_HINTS the frontend reads.
type sizeHints struct {
	min, max       geom.Size
	hasMin, hasMax bool
}

// server is the X request surface used by the frontend.
type server interface {
	Root() xproto.Window
	Geometry(w xproto.Window) (geom.Rect, error)
	Viewable(w xproto.Window) (bool, error)
	Tree(w xproto.Window) (parent xproto.Window, children []xproto.Window, err error)
	Configure(w xproto.Window, r geom.Rect)
	Map(w xproto.Window, mapped bool)
	Focused() (xproto.Window, error)
	Focus(w xproto.Window)
	Reparent(w, parent xproto.Window, at geom.Point)
	SizeHints(w xproto.Window) (sizeHints, error)
	GrabPointer(w xproto.Window) error
	UngrabPointer()
	Close(w xproto.Window) error
	Name(w xproto.Window) string
}

// Connection manages the X11 connection.
type Connection struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

var _ server = (*Connection)(nil)

// NewConnection connects to the display named by $DISPLAY.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return &Connection{xu: xu, root: xu.RootWin()}, nil
}

// Disconnect closes the connection to the X server.
func (c *Connection) Disconnect() { c.xu.Conn().Close() }

func (c *Connection) Root() xproto.Window { return c.root }

// Geometry returns the window rectangle in root coordinates.
func (c *Connection) Geometry(w xproto.Window) (geom.Rect, error) {
	conn := c.xu.Conn()
	g, err := xproto.GetGeometry(conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("get geometry of 0x%x: %w", w, err)
	}
	tr, err := xproto.TranslateCoordinates(conn, w, c.root, 0, 0).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("translate coordinates of 0x%x: %w", w, err)
	}
	return geom.Rect{X: int(tr.DstX), Y: int(tr.DstY), Width: int(g.Width), Height: int(g.Height)}, nil
}

func (c *Connection) Viewable(w xproto.Window) (bool, error) {
	attrs, err := xproto.GetWindowAttributes(c.xu.Conn(), w).Reply()
	if err != nil {
		return false, fmt.Errorf("get attributes of 0x%x: %w", w, err)
	}
	return attrs.MapState == xproto.MapStateViewable, nil
}

func (c *Connection) Tree(w xproto.Window) (xproto.Window, []xproto.Window, error) {
	tree, err := xproto.QueryTree(c.xu.Conn(), w).Reply()
	if err != nil {
		return 0, nil, fmt.Errorf("query tree of 0x%x: %w", w, err)
	}
	return tree.Parent, tree.Children, nil
}

// Configure moves and resizes w. r is relative to the parent window.
func (c *Connection) Configure(w xproto.Window, r geom.Rect) {
	xproto.ConfigureWindow(
		c.xu.Conn(),
		w,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(r.X)), uint32(int32(r.Y)), uint32(max(r.Width, 1)), uint32(max(r.Height, 1))},
	)
}

func (c *Connection) Map(w xproto.Window, mapped bool) {
	if mapped {
		xproto.MapWindow(c.xu.Conn(), w)
		return
	}
	xproto.UnmapWindow(c.xu.Conn(), w)
}

func (c *Connection) Focused() (xproto.Window, error) {
	reply, err := xproto.GetInputFocus(c.xu.Conn()).Reply()
	if err != nil {
		return 0, fmt.Errorf("get input focus: %w", err)
	}
	return reply.Focus, nil
}

func (c *Connection) Focus(w xproto.Window) {
	xproto.SetInputFocus(c.xu.Conn(), xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime)
}

func (c *Connection) Reparent(w, parent xproto.Window, at geom.Point) {
	xproto.ReparentWindow(c.xu.Conn(), w, parent, int16(at.X), int16(at.Y))
}

// SizeHints reads the ICCCM minimum and maximum sizes of w.
func (c *Connection) SizeHints(w xproto.Window) (sizeHints, error) {
	nh, err := icccm.WmNormalHintsGet(c.xu, w)
	if err != nil {
		return sizeHints{}, fmt.Errorf("read WM_NORMAL_HINTS of 0x%x: %w", w, err)
	}
	return hintsFromICCCM(nh), nil
}

// GrabPointer grabs the pointer for w, retrying once when another client
// holds it.
func (c *Connection) GrabPointer(w xproto.Window) error {
	conn := c.xu.Conn()
	grab := func() (*xproto.GrabPointerReply, error) {
		return xproto.GrabPointer(
			conn,
			false,
			w,
			uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
			xproto.WindowNone,
			xproto.CursorNone,
			xproto.TimeCurrentTime,
		).Reply()
	}

	reply, err := grab()
	if err != nil {
		return fmt.Errorf("grab pointer: %w", err)
	}
	if reply.Status == xproto.GrabStatusAlreadyGrabbed {
		xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
		if reply, err = grab(); err != nil {
			return fmt.Errorf("grab pointer: %w", err)
		}
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("%w: status %d", ErrGrabFailed, reply.Status)
	}
	return nil
}

func (c *Connection) UngrabPointer() {
	xproto.UngrabPointer(c.xu.Conn(), xproto.TimeCurrentTime)
}

// Close asks the window manager to close w.
func (c *Connection) Close(w xproto.Window) error {
	if err := ewmh.CloseWindow(c.xu, w); err != nil {
		return fmt.Errorf("close 0x%x: %w", w, err)
	}
	return nil
}

// Name returns _NET_WM_NAME, falling back to WM_NAME.
func (c *Connection) Name(w xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.xu, w); err == nil && name != "" {
		return name
	}
	name, _ := icccm.WmNameGet(c.xu, w)
	return name
}

func hintsFromICCCM(nh *icccm.NormalHints) sizeHints {
	var h sizeHints
	if nh == nil {
		return h
	}
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		h.min = geom.Size{Width: int(nh.MinWidth), Height: int(nh.MinHeight)}
		h.hasMin = true
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		h.max = geom.Size{Width: int(nh.MaxWidth), Height: int(nh.MaxHeight)}
		h.hasMax = true
	}
	return h
}
