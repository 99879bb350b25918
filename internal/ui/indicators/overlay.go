package indicators

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/view"
)

// State is the overlay state published to frontends.
type State struct {
	Hit
	Visible    bool
	RubberBand geom.Rect
}

// Overlay tracks the drop target while a drag hovers the registry's drop
// areas.
type Overlay struct {
	registry *dock.Registry
	kind     Type
	resolver Resolver
	strategy strategy

	state      State
	native     view.Native
	rubberBand view.Native

	logger zerolog.Logger
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithType selects the indicator style.
func WithType(t Type) Option {
	return func(o *Overlay) { o.kind = t }
}

// WithHotBand sets the outer zone width.
func WithHotBand(px int) Option {
	return func(o *Overlay) { o.resolver.HotBand = max(px, 0) }
}

// New creates an overlay over the drop areas of registry.
func New(ctx context.Context, registry *dock.Registry, opts ...Option) *Overlay {
	log := logging.FromContext(ctx)

	o := &Overlay{
		registry: registry,
		kind:     TypeClassic,
		resolver: Resolver{HotBand: DefaultHotBand},
	}
	for _, opt := range opts {
		opt(o)
	}
	o.strategy = strategyFor(o.kind)
	o.logger = log.With().Str("component", "drop-indicators").Str("type", o.kind.String()).Logger()

	factory := registry.Factory()
	o.native = factory.CreateIndicatorOverlay(o, nil)
	o.rubberBand = factory.CreateRubberBand(o.native)
	if o.rubberBand == nil {
		o.logger.Debug().Msg("frontend has no rubber band, placement preview disabled")
	}
	return o
}

func (o *Overlay) Type() view.Type               { return view.TypeDropAreaIndicatorOverlay }
func (o *Overlay) IndicatorType() Type           { return o.kind }
func (o *Overlay) State() State                  { return o.state }
func (o *Overlay) CurrentLocation() DropLocation { return o.state.Location }
func (o *Overlay) Native() view.Native           { return o.native }

// Hover resolves the zone under p for payload and updates the overlay.
func (o *Overlay) Hover(p geom.Point, payload Payload) DropLocation {
	h := o.resolver.Resolve(o.registry.DropAreas(), p, payload)

	prev := o.state
	o.state = State{
		Hit:        h,
		Visible:    h.Area != nil,
		RubberBand: Placement(h, payload),
	}
	if prev.Area != h.Area || prev.Location != h.Location {
		area := ""
		if h.Area != nil {
			area = h.Area.Name()
		}
		o.logger.Debug().Str("drop_area", area).Str("location", h.Location.String()).Msg("drop target changed")
	}
	o.sync()
	return h.Location
}

// Reconfigure applies opts to a live overlay, as after a config reload.
// The current target is cleared.
func (o *Overlay) Reconfigure(opts ...Option) {
	o.Hide()
	for _, opt := range opts {
		opt(o)
	}
	o.strategy = strategyFor(o.kind)
	o.logger.Debug().
		Str("indicator_type", o.kind.String()).
		Int("hot_band", o.resolver.HotBand).
		Msg("overlay reconfigured")
}

// Hide clears the target.
func (o *Overlay) Hide() {
	o.state = State{}
	o.sync()
}

// Affordances returns what the indicator style draws for the current state.
func (o *Overlay) Affordances() []Affordance {
	if !o.state.Visible {
		return nil
	}
	return o.strategy.affordances(o.state.Hit, o.resolver.HotBand)
}

func (o *Overlay) sync() {
	if o.native != nil {
		o.native.SetVisible(o.state.Visible && o.kind != TypeNone)
		if o.state.Area != nil {
			o.native.SetGeometry(o.state.Area.Geometry())
		}
	}
	if o.rubberBand != nil {
		show := !o.state.RubberBand.IsEmpty()
		if show {
			o.rubberBand.SetGeometry(o.state.RubberBand)
		}
		o.rubberBand.SetVisible(show)
	}
}
