package weakref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/weakref"
)

func TestArena_InsertGet(t *testing.T) {
	arena := weakref.NewArena[string]()

	ref := arena.Insert("floating-1")

	got, ok := ref.Get()
	require.True(t, ok)
	assert.Equal(t, "floating-1", got)
	assert.Equal(t, 1, arena.Len())
}

func TestArena_ReleaseInvalidatesRef(t *testing.T) {
	arena := weakref.NewArena[string]()
	ref := arena.Insert("floating-1")

	require.True(t, arena.Release(ref))

	_, ok := ref.Get()
	assert.False(t, ok)
	assert.False(t, arena.Release(ref), "double release")
	assert.Equal(t, 0, arena.Len())
}

func TestArena_ReusedSlotDoesNotResurrectOldRef(t *testing.T) {
	arena := weakref.NewArena[string]()
	old := arena.Insert("first")
	arena.Release(old)

	fresh := arena.Insert("second")

	_, ok := old.Get()
	assert.False(t, ok)
	got, ok := fresh.Get()
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestRef_ZeroValue(t *testing.T) {
	var ref weakref.Ref[int]

	assert.True(t, ref.IsZero())
	assert.False(t, ref.Valid())
}

func TestArena_Each(t *testing.T) {
	arena := weakref.NewArena[int]()
	a := arena.Insert(1)
	arena.Insert(2)
	arena.Insert(3)
	arena.Release(a)

	var seen []int
	arena.Each(func(_ weakref.Ref[int], v int) { seen = append(seen, v) })

	assert.Equal(t, []int{2, 3}, seen)
}
