package indicators_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

type fakePayload struct {
	affinities []string
	own        *layout.Layout
	group      *dock.Group
}

func (p *fakePayload) Affinities() []string           { return p.affinities }
func (p *fakePayload) Contains(l *layout.Layout) bool { return l != nil && l != p.own }
func (p *fakePayload) MinSize() geom.Size             { return geom.HardcodedMinimumSize }
func (p *fakePayload) MaxSize() geom.Size             { return geom.HardcodedMaximumSize }
func (p *fakePayload) Group() *dock.Group             { return p.group }

type fixture struct {
	registry *dock.Registry
	main     *dock.MainWindow
	group    *dock.Group
}

func newFixture(t *testing.T, affinities ...string) fixture {
	t.Helper()
	r, err := dock.NewRegistry(context.Background(), headless.New(), dock.DefaultOptions())
	require.NoError(t, err)
	var opts []dock.MainWindowOption
	if len(affinities) > 0 {
		opts = append(opts, dock.WithMainWindowAffinities(affinities...))
	}
	m, err := r.NewMainWindow("main", append(opts, dock.WithGeometry(geom.Rect{Width: 600, Height: 400}))...)
	require.NoError(t, err)
	dw, err := r.NewDockWidget("a", "A", dock.WithAffinities(affinities...))
	require.NoError(t, err)
	g, err := m.AddDockWidget(dw, layout.LocationLeft, nil)
	require.NoError(t, err)
	return fixture{registry: r, main: m, group: g}
}

func TestResolver_Zones(t *testing.T) {
	tests := []struct {
		name string
		p    geom.Point
		want indicators.DropLocation
	}{
		{name: "left hot band", p: geom.Point{X: 5, Y: 200}, want: indicators.DropLocationOuterLeft},
		{name: "right hot band", p: geom.Point{X: 595, Y: 200}, want: indicators.DropLocationOuterRight},
		{name: "top hot band", p: geom.Point{X: 300, Y: 2}, want: indicators.DropLocationOuterTop},
		{name: "bottom hot band", p: geom.Point{X: 300, Y: 398}, want: indicators.DropLocationOuterBottom},
		{name: "outer corner prefers left", p: geom.Point{X: 3, Y: 3}, want: indicators.DropLocationOuterLeft},
		{name: "outer corner prefers right over bottom", p: geom.Point{X: 596, Y: 396}, want: indicators.DropLocationOuterRight},
		{name: "center", p: geom.Point{X: 300, Y: 200}, want: indicators.DropLocationCenter},
		{name: "inner left", p: geom.Point{X: 100, Y: 200}, want: indicators.DropLocationLeft},
		{name: "inner top", p: geom.Point{X: 300, Y: 60}, want: indicators.DropLocationTop},
		{name: "inner bottom", p: geom.Point{X: 300, Y: 350}, want: indicators.DropLocationBottom},
		{name: "inner corner prefers left", p: geom.Point{X: 60, Y: 60}, want: indicators.DropLocationLeft},
		{name: "outside", p: geom.Point{X: 700, Y: 200}, want: indicators.DropLocationNone},
	}

	f := newFixture(t)
	r := indicators.Resolver{HotBand: 20}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := r.Resolve(f.registry.DropAreas(), tt.p, &fakePayload{})

			assert.Equal(t, tt.want, h.Location)
			if tt.want != indicators.DropLocationNone && !tt.want.IsOuter() {
				assert.Same(t, f.group, h.Group)
			}
		})
	}
}

func TestResolver_EmptyAreaOnlyOffersCenter(t *testing.T) {
	r, err := dock.NewRegistry(context.Background(), headless.New(), dock.DefaultOptions())
	require.NoError(t, err)
	m, err := r.NewMainWindow("main", dock.WithGeometry(geom.Rect{Width: 600, Height: 400}))
	require.NoError(t, err)

	for _, p := range []geom.Point{{X: 1, Y: 1}, {X: 300, Y: 200}, {X: 599, Y: 10}} {
		h := indicators.Resolver{HotBand: 20}.Resolve(r.DropAreas(), p, &fakePayload{})
		assert.Equal(t, indicators.DropLocationCenter, h.Location)
		assert.Same(t, m.DropArea(), h.Area)
		assert.Nil(t, h.Group)
	}
}

func TestResolver_Affinities(t *testing.T) {
	// The group under the pointer carries {"editor"}; an unrestricted payload
	// may enter the area but not that group's tabs.
	tests := []struct {
		name    string
		payload []string
		want    indicators.DropLocation
	}{
		{name: "matching", payload: []string{"editor"}, want: indicators.DropLocationCenter},
		{name: "unrestricted", payload: nil, want: indicators.DropLocationBottom},
		{name: "foreign", payload: []string{"tool"}, want: indicators.DropLocationNone},
	}

	f := newFixture(t, "editor")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := indicators.Resolver{HotBand: 20}.Resolve(f.registry.DropAreas(), geom.Point{X: 300, Y: 200},
				&fakePayload{affinities: tt.payload})

			assert.Equal(t, tt.want, h.Location)
		})
	}
}

func TestResolver_CenterNeedsGroupAffinities(t *testing.T) {
	f := newFixture(t, "editor", "tool")
	p := geom.Point{X: 300, Y: 200}

	tests := []struct {
		name    string
		payload []string
		want    indicators.DropLocation
	}{
		{name: "same set", payload: []string{"tool", "editor"}, want: indicators.DropLocationCenter},
		{name: "subset", payload: []string{"tool"}, want: indicators.DropLocationBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := indicators.Resolver{HotBand: 20}.Resolve(f.registry.DropAreas(), p,
				&fakePayload{affinities: tt.payload})

			assert.Same(t, f.group, h.Group)
			assert.Equal(t, tt.want, h.Location)
		})
	}
}

func TestResolver_SkipsLayoutMovingWithPayload(t *testing.T) {
	f := newFixture(t)
	fw := f.registry.NewFloatingWindow(geom.Rect{X: 200, Y: 100, Width: 200, Height: 200})
	p := geom.Point{X: 300, Y: 200}

	h := indicators.Resolver{HotBand: 20}.Resolve(f.registry.DropAreas(), p, &fakePayload{own: fw.Layout()})

	assert.Same(t, f.main.DropArea(), h.Area)
	assert.Equal(t, indicators.DropLocationCenter, h.Location)

	h = indicators.Resolver{HotBand: 20}.Resolve(f.registry.DropAreas(), p, &fakePayload{})
	assert.Same(t, fw.DropArea(), h.Area)
}

func TestResolver_NoSelfDrop(t *testing.T) {
	f := newFixture(t)

	h := indicators.Resolver{HotBand: 20}.Resolve(f.registry.DropAreas(), geom.Point{X: 300, Y: 200},
		&fakePayload{group: f.group})

	assert.True(t, h.IsNone())
	assert.Same(t, f.group, h.Group)
}

func TestOverlay_StrategiesShareZones(t *testing.T) {
	points := []geom.Point{
		{X: 5, Y: 200}, {X: 300, Y: 200}, {X: 100, Y: 200}, {X: 300, Y: 350}, {X: 3, Y: 3}, {X: 900, Y: 900},
	}
	types := []indicators.Type{indicators.TypeClassic, indicators.TypeSegmented, indicators.TypeNone}

	f := newFixture(t)
	for _, p := range points {
		var got []indicators.DropLocation
		for _, typ := range types {
			o := indicators.New(context.Background(), f.registry, indicators.WithType(typ), indicators.WithHotBand(20))
			got = append(got, o.Hover(p, &fakePayload{}))
		}
		assert.Equal(t, got[0], got[1], "classic vs segmented at %+v", p)
		assert.Equal(t, got[0], got[2], "classic vs none at %+v", p)
	}
}

func TestOverlay_Affordances(t *testing.T) {
	f := newFixture(t)
	p := geom.Point{X: 300, Y: 200}

	t.Run("classic", func(t *testing.T) {
		o := indicators.New(context.Background(), f.registry, indicators.WithType(indicators.TypeClassic))
		o.Hover(p, &fakePayload{})

		affs := o.Affordances()
		assert.Len(t, affs, 9)
		assert.Equal(t, []indicators.DropLocation{indicators.DropLocationCenter}, active(affs))
	})

	t.Run("segmented", func(t *testing.T) {
		o := indicators.New(context.Background(), f.registry, indicators.WithType(indicators.TypeSegmented))
		o.Hover(p, &fakePayload{})

		affs := o.Affordances()
		require.Equal(t, []indicators.DropLocation{indicators.DropLocationCenter}, active(affs))
		for _, a := range affs {
			if a.Active {
				assert.Equal(t, geom.Rect{X: 150, Y: 100, Width: 300, Height: 200}, a.Rect)
			}
		}
	})

	t.Run("none", func(t *testing.T) {
		o := indicators.New(context.Background(), f.registry, indicators.WithType(indicators.TypeNone))
		o.Hover(p, &fakePayload{})

		assert.Empty(t, o.Affordances())
		assert.True(t, o.State().Visible)
		assert.False(t, o.Native().IsVisible())
	})
}

func TestOverlay_RubberBand(t *testing.T) {
	f := newFixture(t)
	o := indicators.New(context.Background(), f.registry, indicators.WithHotBand(20))

	o.Hover(geom.Point{X: 5, Y: 200}, &fakePayload{})
	assert.Equal(t, geom.Rect{Width: 300, Height: 400}, o.State().RubberBand)

	o.Hover(geom.Point{X: 300, Y: 200}, &fakePayload{})
	assert.Equal(t, f.group.Geometry(), o.State().RubberBand)

	o.Hide()
	assert.False(t, o.State().Visible)
	assert.True(t, o.State().RubberBand.IsEmpty())
}

func TestOverlay_Reconfigure(t *testing.T) {
	f := newFixture(t)
	o := indicators.New(context.Background(), f.registry, indicators.WithType(indicators.TypeClassic))
	o.Hover(geom.Point{X: 300, Y: 200}, &fakePayload{})
	require.Len(t, o.Affordances(), 9)

	o.Reconfigure(indicators.WithType(indicators.TypeNone), indicators.WithHotBand(50))

	assert.Equal(t, indicators.TypeNone, o.IndicatorType())
	assert.False(t, o.State().Visible)
	assert.Equal(t, indicators.DropLocationOuterLeft, o.Hover(geom.Point{X: 40, Y: 200}, &fakePayload{}))
	assert.Empty(t, o.Affordances())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]indicators.Type{
		"classic":   indicators.TypeClassic,
		"Segmented": indicators.TypeSegmented,
		"none":      indicators.TypeNone,
		"":          indicators.TypeClassic,
	} {
		got, err := indicators.ParseType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := indicators.ParseType("fancy")
	assert.ErrorIs(t, err, indicators.ErrUnknownType)
}

func active(affs []indicators.Affordance) []indicators.DropLocation {
	var out []indicators.DropLocation
	for _, a := range affs {
		if a.Active {
			out = append(out, a.Location)
		}
	}
	return out
}
