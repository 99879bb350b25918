// Package weakref provides generation-counted handles into an arena.
//
// A Ref never dangles: once its slot is released, Get reports false even if
// the slot has been reused for another value.
package weakref

// Arena stores values in reusable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Ref is a weak reference to a value stored in an Arena.
// The zero Ref refers to nothing.
type Ref[T any] struct {
	arena *Arena[T]
	index int
	gen   uint32
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns a reference to it.
func (a *Arena[T]) Insert(v T) Ref[T] {
	var idx int
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = len(a.slots) - 1
	}

	s := &a.slots[idx]
	s.value = v
	s.live = true
	return Ref[T]{arena: a, index: idx, gen: s.gen}
}

// Release frees the slot r points to. Every outstanding Ref to it becomes
// invalid. Returns false if r was already invalid.
func (a *Arena[T]) Release(r Ref[T]) bool {
	if r.arena != a || !r.Valid() {
		return false
	}
	s := &a.slots[r.index]
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	a.free = append(a.free, r.index)
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return len(a.slots) - len(a.free)
}

// Each calls fn for every live value in slot order.
func (a *Arena[T]) Each(fn func(Ref[T], T)) {
	for i := range a.slots {
		s := a.slots[i]
		if s.live {
			fn(Ref[T]{arena: a, index: i, gen: s.gen}, s.value)
		}
	}
}

// Get returns the referenced value, or false when it was released.
func (r Ref[T]) Get() (T, bool) {
	var zero T
	if !r.Valid() {
		return zero, false
	}
	return r.arena.slots[r.index].value, true
}

// Valid reports whether the referenced value is still alive.
func (r Ref[T]) Valid() bool {
	if r.arena == nil || r.index < 0 || r.index >= len(r.arena.slots) {
		return false
	}
	s := r.arena.slots[r.index]
	return s.live && s.gen == r.gen
}

// IsZero reports whether r was never assigned.
func (r Ref[T]) IsZero() bool {
	return r.arena == nil
}
