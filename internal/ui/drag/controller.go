package drag

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/view"
)

var (
	// ErrDragInProgress is returned when a drag starts while another one
	// is active.
	ErrDragInProgress = errors.New("a drag is already in progress")
	// ErrNotDragging is returned by operations needing an active drag.
	ErrNotDragging = errors.New("no drag in progress")
	// ErrWindowDestroyed is returned when the dragged content went away
	// mid-drag. The drag is cancelled.
	ErrWindowDestroyed = errors.New("dragged window was destroyed")
	// ErrOutsideDragRect is returned when a press misses the drag area.
	ErrOutsideDragRect = errors.New("press outside the drag area")
)

// DefaultThreshold is the pointer travel, in Manhattan length, that turns a
// press into a drag.
const DefaultThreshold = 4

// State is the drag state machine position.
type State int

const (
	StateIdle State = iota
	StatePreDrag
	StateDragging
	StateDropped
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreDrag:
		return "pre-drag"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Options configures a Controller.
type Options struct {
	// Threshold is the travel needed before a press becomes a drag.
	Threshold int
	// DeferFloatingWindows keeps dragged groups docked until release and
	// builds the floating window only when dropped over nothing. Needed
	// where clients cannot move their own windows, as under Wayland.
	DeferFloatingWindows bool
}

// DefaultOptions returns the default drag options.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Controller runs one drag at a time for a registry.
type Controller struct {
	registry *dock.Registry
	overlay  *indicators.Overlay
	opts     Options

	state    State
	source   Draggable
	pressPos geom.Point
	offset   geom.Point
	window   WindowBeingDragged
	grabber  Grabber
	grabbed  bool
	lastHit  indicators.Hit

	observers []func(from, to State)
	logger    zerolog.Logger
}

// NewController creates an idle controller dropping into registry's areas
// through overlay.
func NewController(ctx context.Context, registry *dock.Registry, overlay *indicators.Overlay, opts Options) *Controller {
	log := logging.FromContext(ctx)
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Controller{
		registry: registry,
		overlay:  overlay,
		opts:     opts,
		logger:   log.With().Str("component", "drag-controller").Logger(),
	}
}

func (c *Controller) State() State                           { return c.state }
func (c *Controller) WindowBeingDragged() WindowBeingDragged { return c.window }
func (c *Controller) LastHit() indicators.Hit                { return c.lastHit }
func (c *Controller) Overlay() *indicators.Overlay           { return c.overlay }

// OnStateChanged registers fn to run after every transition.
func (c *Controller) OnStateChanged(fn func(from, to State)) {
	c.observers = append(c.observers, fn)
}

// Press handles a button press on src at p. A press with another button
// during a drag cancels it.
func (c *Controller) Press(src Draggable, p geom.Point, b Button) error {
	switch c.state {
	case StateDragging:
		if b != ButtonLeft {
			c.Cancel()
			return nil
		}
		return ErrDragInProgress
	case StatePreDrag:
		if b != ButtonLeft {
			c.setState(StateIdle)
			c.source = nil
			return nil
		}
		return ErrDragInProgress
	}

	if b != ButtonLeft {
		return nil
	}
	if src == nil {
		return fmt.Errorf("press: %w", dock.ErrNilController)
	}
	if !src.DragRect().Contains(p) {
		return ErrOutsideDragRect
	}

	c.source = src
	c.pressPos = p
	c.setState(StatePreDrag)
	return nil
}

// Move handles pointer motion.
func (c *Controller) Move(p geom.Point) error {
	switch c.state {
	case StatePreDrag:
		if p.Sub(c.pressPos).ManhattanLength() < c.opts.Threshold {
			return nil
		}
		if err := c.start(); err != nil {
			c.source = nil
			c.setState(StateIdle)
			return err
		}
		fallthrough
	case StateDragging:
		if !c.window.IsValid() {
			c.Cancel()
			return ErrWindowDestroyed
		}
		if fw, ok := c.window.FloatingWindow(); ok {
			fw.Move(p.Sub(c.offset))
		}
		c.overlay.Hover(p, c.window)
		c.lastHit = c.overlay.State().Hit
		return nil
	default:
		return nil
	}
}

// Release ends the drag at p, dropping onto the target under it. A
// release before the threshold is a plain click.
func (c *Controller) Release(p geom.Point) (err error) {
	switch c.state {
	case StatePreDrag:
		c.source = nil
		c.setState(StateIdle)
		return nil
	case StateDragging:
	default:
		return ErrNotDragging
	}

	defer c.exit(StateDropped, &err)

	if !c.window.IsValid() {
		return ErrWindowDestroyed
	}
	c.overlay.Hover(p, c.window)
	c.lastHit = c.overlay.State().Hit
	return c.drop(c.lastHit, p)
}

// SetOptions replaces the options. A drag in progress keeps the mode it
// started with; the threshold applies from the next press.
func (c *Controller) SetOptions(opts Options) error {
	if c.state != StateIdle {
		return ErrDragInProgress
	}
	c.opts = opts
	return nil
}

// Cancel aborts the drag. The dragged content stays where it is.
func (c *Controller) Cancel() {
	switch c.state {
	case StatePreDrag:
		c.source = nil
		c.setState(StateIdle)
	case StateDragging:
		c.exit(StateCancelled, nil)
	}
}

// Escape is the keyboard cancel.
func (c *Controller) Escape() { c.Cancel() }

// start enters Dragging. In eager mode the floating window is created now
// and detached from the source layout.
func (c *Controller) start() error {
	src := c.source
	if src.IsWindow() || !c.opts.DeferFloatingWindows {
		fw, err := c.makeWindow(src)
		if err != nil {
			return err
		}
		if err := c.registry.Raise(fw); err != nil {
			return err
		}
		c.window = newEagerWindow(fw, src)
		c.offset = c.pressPos.Sub(fw.Geometry().TopLeft())
		c.grabber = grabberOf(fw.Native(), src)
	} else {
		c.window = newDeferredWindow(src, c.registry.Options())
		if g := c.window.Group(); g != nil {
			c.offset = c.pressPos.Sub(g.Geometry().TopLeft())
		} else {
			c.offset = geom.Point{}
		}
		c.grabber = src.Grabber()
	}

	if c.grabber != nil {
		c.grabber.GrabMouse()
		c.grabbed = true
	} else {
		c.logger.Debug().Msg("drag source has no view to grab the pointer with")
	}
	c.setState(StateDragging)
	return nil
}

func (c *Controller) makeWindow(src Draggable) (*dock.FloatingWindow, error) {
	if src.IsWindow() {
		if fw := src.FloatingWindow(); fw != nil && !fw.IsClosed() {
			return fw, nil
		}
		return nil, ErrWindowDestroyed
	}
	if dw := src.DockWidget(); dw != nil {
		return c.registry.FloatDockWidget(dw)
	}
	return c.registry.FloatGroup(src.Group())
}

func grabberOf(n view.Native, src Draggable) Grabber {
	if n != nil {
		return n
	}
	return src.Grabber()
}

// exit is the single way out of Dragging. It releases the pointer grab
// taken by start, exactly once.
func (c *Controller) exit(outcome State, errp *error) {
	if errp != nil && *errp != nil {
		outcome = StateCancelled
		c.logger.Debug().Err(*errp).Msg("drop failed")
	}
	if c.grabbed {
		c.grabbed = false
		c.grabber.ReleaseMouse()
	}
	c.overlay.Hide()
	c.setState(outcome)

	c.grabber = nil
	c.source = nil
	c.window = nil
	c.setState(StateIdle)
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	from := c.state
	c.state = s
	c.logger.Debug().Str("from", from.String()).Str("to", s.String()).Msg("drag state changed")
	for _, fn := range c.observers {
		fn(from, s)
	}
}
