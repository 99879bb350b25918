package terminal

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// settingsKey coalesces reloads of drag and indicator options.
const settingsKey = "settings"

// settings are the options a config reload may change.
type settings struct {
	drag       drag.Options
	indicators []indicators.Option
}

// App drives one main window on a terminal screen. Mouse input feeds the
// drag controller and separator drags; every handled event repaints.
type App struct {
	screen   tcell.Screen
	registry *dock.Registry
	main     *dock.MainWindow
	drag     *drag.Controller
	painter  *Painter
	tasks    *Coalescer
	pending  atomic.Pointer[settings]

	buttons   tcell.ButtonMask
	separator *layout.Separator
	sepLayout *layout.Layout
	sepPos    geom.Point

	logger zerolog.Logger
}

// NewApp creates an app over an initialized screen.
func NewApp(ctx context.Context, screen tcell.Screen, reg *dock.Registry, main *dock.MainWindow, ctl *drag.Controller) *App {
	log := logging.FromContext(ctx)
	a := &App{
		screen:   screen,
		registry: reg,
		main:     main,
		drag:     ctl,
		painter:  NewPainter(screen, DefaultTheme()),
		logger:   log.With().Str("component", "terminal-app").Logger(),
	}
	a.tasks = NewCoalescer(a.Post)
	ctl.OnStateChanged(func(_, to drag.State) {
		if to == drag.StateIdle && a.pending.Load() != nil {
			a.postSettings()
		}
	})
	return a
}

// Resize fits the main window to the screen.
func (a *App) Resize() {
	w, h := a.screen.Size()
	if err := a.main.SetGeometry(geom.Rect{Width: w, Height: h}); err != nil {
		a.logger.Warn().Err(err).Int("width", w).Int("height", h).Msg("screen too small for layout")
	}
}

// Paint redraws the screen.
func (a *App) Paint() { a.painter.Paint(a.registry, a.drag.Overlay()) }

// Run polls screen events until ctx is done or the user quits. Events are
// read on a separate goroutine; handling stays on the caller's.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)
	defer a.tasks.Stop()

	a.Resize()
	a.Paint()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				return nil
			}
			a.Paint()
		}
	}
}

// HandleEvent applies one event and reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.Resize()
	case *tcell.EventKey:
		return a.handleKey(tev)
	case *tcell.EventMouse:
		x, y := tev.Position()
		a.handleMouse(geom.Point{X: x, Y: y}, tev.Buttons())
	case *tcell.EventInterrupt:
		if fn, ok := tev.Data().(func()); ok {
			fn()
		}
	}
	return false
}

// Post queues fn to run on the event loop. It is safe to call from any
// goroutine.
func (a *App) Post(fn func()) error {
	return a.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// PostLatest is Post with per-key coalescing: only the last fn posted for
// key before the loop runs it is kept.
func (a *App) PostLatest(key string, fn func()) error { return a.tasks.Post(key, fn) }

// Reconfigure replaces the drag and indicator options. It is safe to call
// from any goroutine. Options that arrive during a drag are held and
// applied once the controller is idle again.
func (a *App) Reconfigure(opts drag.Options, ind ...indicators.Option) {
	a.pending.Store(&settings{
		drag:       opts,
		indicators: slices.Concat(ind, []indicators.Option{indicators.WithHotBand(HotBand)}),
	})
	a.postSettings()
}

func (a *App) postSettings() {
	if err := a.PostLatest(settingsKey, a.applySettings); err != nil {
		a.logger.Warn().Err(err).Msg("settings reload not queued")
	}
}

func (a *App) applySettings() {
	s := a.pending.Load()
	if s == nil {
		return
	}
	if err := a.drag.SetOptions(s.drag); err != nil {
		a.logger.Debug().Err(err).Msg("settings held until the drag ends")
		return
	}
	a.drag.Overlay().Reconfigure(s.indicators...)
	a.pending.CompareAndSwap(s, nil)
	a.logger.Debug().Msg("settings applied")
}

// Drag returns the drag controller. Only touch it from the event loop.
func (a *App) Drag() *drag.Controller { return a.drag }

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.drag.Escape()
		a.separator = nil
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Rune() == 'q' && a.drag.State() == drag.StateIdle {
			return true
		}
	}
	return false
}

func (a *App) handleMouse(p geom.Point, buttons tcell.ButtonMask) {
	prev := a.buttons
	a.buttons = buttons
	pressed := buttons &^ prev
	released := prev &^ buttons

	switch {
	case pressed&tcell.Button1 != 0:
		a.pressLeft(p)
	case pressed&tcell.Button2 != 0:
		a.press(nil, p, drag.ButtonRight)
	case pressed&tcell.Button3 != 0:
		a.press(nil, p, drag.ButtonMiddle)
	case released&tcell.Button1 != 0:
		a.releaseLeft(p)
	case buttons&tcell.Button1 != 0:
		a.moveLeft(p)
	}
}

func (a *App) press(src drag.Draggable, p geom.Point, b drag.Button) {
	if err := a.drag.Press(src, p, b); err != nil {
		a.logger.Debug().Err(err).Int("x", p.X).Int("y", p.Y).Msg("press ignored")
	}
}

func (a *App) pressLeft(p geom.Point) {
	if a.drag.State() != drag.StateIdle {
		a.press(nil, p, drag.ButtonLeft)
		return
	}
	if src, ok := a.draggableAt(p); ok {
		a.press(src, p, drag.ButtonLeft)
		return
	}
	for _, area := range a.registry.DropAreas() {
		if !area.Geometry().Contains(p) {
			continue
		}
		if s, ok := area.Layout().SeparatorAt(p); ok {
			a.separator, a.sepLayout, a.sepPos = s, area.Layout(), p
		}
		return
	}
}

func (a *App) moveLeft(p geom.Point) {
	if a.separator != nil {
		o := a.separator.Orientation()
		moved, err := a.sepLayout.DragSeparator(a.separator, along(p, o)-along(a.sepPos, o))
		if err != nil {
			a.logger.Debug().Err(err).Msg("separator drag rejected")
			a.separator = nil
			return
		}
		if moved != 0 {
			a.sepPos = p
		}
		return
	}
	if err := a.drag.Move(p); err != nil {
		a.logger.Debug().Err(err).Msg("drag move failed")
	}
}

func (a *App) releaseLeft(p geom.Point) {
	if a.separator != nil {
		a.separator = nil
		return
	}
	if a.drag.State() == drag.StateIdle {
		return
	}
	if err := a.drag.Release(p); err != nil && !errors.Is(err, drag.ErrNotDragging) {
		a.logger.Warn().Err(err).Msg("drop failed")
	}
}

// draggableAt finds the title bar or tab under p. Pressing a tab also
// makes it current.
func (a *App) draggableAt(p geom.Point) (drag.Draggable, bool) {
	for _, fw := range a.registry.FloatingWindows() {
		if !fw.Geometry().Contains(p) {
			continue
		}
		if tb := fw.TitleBar(); tb.IsVisible() && tb.Geometry().Contains(p) {
			return drag.FromTitleBar(tb), true
		}
		return a.groupDraggable(fw.DropArea(), p)
	}
	for _, mw := range a.registry.MainWindows() {
		if mw.Geometry().Contains(p) {
			return a.groupDraggable(mw.DropArea(), p)
		}
	}
	return nil, false
}

func (a *App) groupDraggable(area *dock.DropArea, p geom.Point) (drag.Draggable, bool) {
	g, ok := area.GroupAt(p)
	if !ok {
		return nil, false
	}
	if bar := g.TabBar(); bar.IsVisible() {
		if i, ok := bar.TabAt(p); ok {
			if err := g.SetCurrentIndex(i); err != nil {
				a.logger.Debug().Err(err).Msg("tab select failed")
			}
			return drag.FromTab(bar, i), true
		}
	}
	if g.DragRect().Contains(p) {
		return drag.FromTitleBar(g.TitleBar()), true
	}
	return nil, false
}

func along(p geom.Point, o geom.Orientation) int {
	if o == geom.Horizontal {
		return p.X
	}
	return p.Y
}
