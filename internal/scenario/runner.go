package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/drag"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// Options carries the configured docking behavior a scenario runs with.
type Options struct {
	Dock       dock.Options
	Drag       drag.Options
	Indicators []indicators.Option
}

// DefaultOptions returns the library defaults.
func DefaultOptions() Options {
	return Options{Dock: dock.DefaultOptions(), Drag: drag.DefaultOptions()}
}

// Result is the outcome of a run.
type Result struct {
	Snapshot Snapshot
	// Outcomes has one entry per drag step. StateIdle means the press never
	// passed the drag threshold.
	Outcomes []drag.State
}

// Runner replays one scenario.
type Runner struct {
	scenario *Scenario
	registry *dock.Registry
	main     *dock.MainWindow
	drag     *drag.Controller
	widgets  map[string]*dock.DockWidget

	outcome drag.State
	logger  zerolog.Logger
}

// NewRunner builds the registry, main window and dock widgets declared by
// sc on a headless frontend.
func NewRunner(ctx context.Context, sc *Scenario, opts Options) (*Runner, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}

	indicatorOpts := opts.Indicators
	if sc.Indicators != "" {
		kind, err := indicators.ParseType(sc.Indicators)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
		indicatorOpts = append(indicatorOpts[:len(indicatorOpts):len(indicatorOpts)], indicators.WithType(kind))
	}
	dragOpts := opts.Drag
	if sc.DeferFloatingWindows != nil {
		dragOpts.DeferFloatingWindows = *sc.DeferFloatingWindows
	}

	reg, err := dock.NewRegistry(ctx, headless.New(), opts.Dock)
	if err != nil {
		return nil, fmt.Errorf("create registry: %w", err)
	}
	main, err := reg.NewMainWindow("main", dock.WithGeometry(geom.Rect{Width: sc.Window.Width, Height: sc.Window.Height}))
	if err != nil {
		return nil, fmt.Errorf("create main window: %w", err)
	}

	r := &Runner{
		scenario: sc,
		registry: reg,
		main:     main,
		drag:     drag.NewController(ctx, reg, indicators.New(ctx, reg, indicatorOpts...), dragOpts),
		widgets:  make(map[string]*dock.DockWidget, len(sc.Widgets)),
		logger:   logging.Component(ctx, "scenario").With().Str("scenario", sc.Name).Logger(),
	}
	r.drag.OnStateChanged(func(_, to drag.State) {
		if to == drag.StateDropped || to == drag.StateCancelled {
			r.outcome = to
		}
	})

	for _, w := range sc.Widgets {
		title := w.Title
		if title == "" {
			title = w.Name
		}
		var dwOpts []dock.DockWidgetOption
		if len(w.Affinities) > 0 {
			dwOpts = append(dwOpts, dock.WithAffinities(w.Affinities...))
		}
		if !w.MinSize.IsEmpty() {
			dwOpts = append(dwOpts, dock.WithMinSize(w.MinSize))
		}
		dw, err := reg.NewDockWidget(w.Name, title, dwOpts...)
		if err != nil {
			return nil, fmt.Errorf("create dock widget %q: %w", w.Name, err)
		}
		r.widgets[w.Name] = dw
	}
	return r, nil
}

// Registry exposes the docking state, mostly for tests.
func (r *Runner) Registry() *dock.Registry { return r.registry }

// MainWindow returns the scenario's main window.
func (r *Runner) MainWindow() *dock.MainWindow { return r.main }

// Run applies every step in order and stops at the first failure. The
// snapshot reflects the state up to that point either way.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	for i, s := range r.scenario.Steps {
		if err := ctx.Err(); err != nil {
			return r.finish(res), err
		}
		r.logger.Debug().Int("step", i).Str("op", string(s.Op)).Str("widget", s.Widget).Msg("applying step")
		if err := r.apply(s, res); err != nil {
			return r.finish(res), fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
	}
	return r.finish(res), nil
}

func (r *Runner) finish(res *Result) *Result {
	res.Snapshot = Take(r.registry)
	return res
}

func (r *Runner) apply(s Step, res *Result) error {
	switch s.Op {
	case OpDock:
		return r.dock(s)
	case OpFloat:
		dw, err := r.widget(s.Widget)
		if err != nil {
			return err
		}
		_, err = r.registry.FloatDockWidget(dw)
		return err
	case OpDrag:
		outcome, err := r.dragStep(s)
		if err != nil {
			return err
		}
		res.Outcomes = append(res.Outcomes, outcome)
		return nil
	case OpSelect:
		g, err := r.group(s.Widget)
		if err != nil {
			return err
		}
		return g.SetCurrentIndex(tabIndex(g, r.widgets[s.Widget]))
	case OpSeparator:
		seps := r.main.Layout().Separators()
		if s.Index >= len(seps) {
			return fmt.Errorf("%d of %d: %w", s.Index, len(seps), ErrNoSeparator)
		}
		_, err := r.main.Layout().DragSeparator(seps[s.Index], s.Delta)
		return err
	case OpResize:
		return r.main.SetGeometry(geom.Rect{Width: s.Size.Width, Height: s.Size.Height})
	case OpClose:
		dw, err := r.widget(s.Widget)
		if err != nil {
			return err
		}
		return dw.Close()
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, s.Op)
	}
}

// dock places a widget in the main window. A widget that is already open
// is closed first.
func (r *Runner) dock(s Step) error {
	dw, err := r.widget(s.Widget)
	if err != nil {
		return err
	}
	loc, err := parseLocation(s.Location)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := dw.Close(); err != nil {
		return err
	}

	var rel *dock.Group
	if s.RelativeTo != "" {
		if rel, err = r.group(s.RelativeTo); err != nil {
			return err
		}
	}
	if rel != nil && loc == layout.LocationNone {
		return rel.AddDockWidget(dw)
	}
	if rel != nil && rel.DropArea() != r.main.DropArea() {
		_, err = rel.DropArea().AddDockWidget(dw, loc, rel)
		return err
	}
	_, err = r.main.AddDockWidget(dw, loc, rel)
	return err
}

// dragStep presses on the widget's title bar or tab, follows the path and
// releases on its last point, or cancels there.
func (r *Runner) dragStep(s Step) (drag.State, error) {
	g, err := r.group(s.Widget)
	if err != nil {
		return drag.StateIdle, err
	}

	var src drag.Draggable
	switch {
	case s.Source == SourceTab:
		src = drag.FromTab(g.TabBar(), tabIndex(g, r.widgets[s.Widget]))
	case g.IsSoleGroupOfFloatingWindow() && g.FloatingWindow().TitleBar().IsVisible():
		src = drag.FromTitleBar(g.FloatingWindow().TitleBar())
	default:
		src = drag.FromTitleBar(g.TitleBar())
	}

	r.outcome = drag.StateIdle
	if err := r.drag.Press(src, src.DragRect().Center(), drag.ButtonLeft); err != nil {
		return drag.StateIdle, err
	}
	for _, p := range s.Path {
		if err := r.drag.Move(p); err != nil {
			return drag.StateIdle, err
		}
	}

	last := s.Path[len(s.Path)-1]
	if s.Cancel {
		r.drag.Cancel()
	} else if err := r.drag.Release(last); err != nil && !errors.Is(err, drag.ErrNotDragging) {
		r.logger.Debug().Err(err).Msg("drop failed")
	}
	return r.outcome, nil
}

func (r *Runner) widget(name string) (*dock.DockWidget, error) {
	dw, ok := r.widgets[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownWidget)
	}
	return dw, nil
}

func (r *Runner) group(name string) (*dock.Group, error) {
	dw, err := r.widget(name)
	if err != nil {
		return nil, err
	}
	g := dw.Group()
	if g == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrNotDocked)
	}
	return g, nil
}

func tabIndex(g *dock.Group, dw *dock.DockWidget) int {
	for i, d := range g.DockWidgets() {
		if d == dw {
			return i
		}
	}
	return -1
}
