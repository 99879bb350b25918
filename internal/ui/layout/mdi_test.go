package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/layout"
)

func TestMDILayout_ClampsIntoArea(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})
	g := &fakeGuest{min: geom.Size{Width: 100, Height: 100}}

	it, err := m.Add(g, geom.Rect{X: 450, Y: 350, Width: 200, Height: 200})

	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 300, Y: 200, Width: 200, Height: 200}, it.Geometry())
	assert.Equal(t, it.Geometry(), g.rect)
}

func TestMDILayout_RespectsMinimum(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})

	it, err := m.Add(&fakeGuest{}, geom.Rect{X: 10, Y: 10, Width: 5, Height: 5})

	require.NoError(t, err)
	assert.Equal(t, geom.Size{Width: 80, Height: 90}, it.Geometry().Size())
}

func TestMDILayout_RaiseAndItemAt(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})
	bottom, _ := m.Add(&fakeGuest{}, geom.Rect{Width: 200, Height: 200})
	top, _ := m.Add(&fakeGuest{}, geom.Rect{X: 100, Y: 100, Width: 200, Height: 200})

	hit, ok := m.ItemAt(geom.Point{X: 150, Y: 150})
	require.True(t, ok)
	assert.Same(t, top, hit)

	m.Raise(bottom)

	hit, ok = m.ItemAt(geom.Point{X: 150, Y: 150})
	require.True(t, ok)
	assert.Same(t, bottom, hit)
}

func TestMDILayout_Remove(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})
	it, _ := m.Add(&fakeGuest{}, geom.Rect{Width: 100, Height: 100})

	require.NoError(t, m.Remove(it))
	require.ErrorIs(t, m.Remove(it), layout.ErrItemNotFound)
	assert.Empty(t, m.Items())
}

func TestMDILayout_NilGuest(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})

	_, err := m.Add(nil, geom.Rect{})

	require.ErrorIs(t, err, layout.ErrNilGuest)
}

func TestMDILayout_SetItemGeometry(t *testing.T) {
	m := layout.NewMDI(context.Background(), geom.Rect{Width: 500, Height: 400})
	g := &fakeGuest{}
	it, _ := m.Add(g, geom.Rect{Width: 100, Height: 100})

	require.NoError(t, m.SetItemGeometry(it, geom.Rect{X: -20, Y: 10, Width: 150, Height: 120}))
	assert.Equal(t, geom.Rect{Y: 10, Width: 150, Height: 120}, it.Geometry())
	assert.Equal(t, it.Geometry(), g.rect)

	require.NoError(t, m.Remove(it))
	assert.ErrorIs(t, m.SetItemGeometry(it, geom.Rect{Width: 100, Height: 100}), layout.ErrItemNotFound)
}
