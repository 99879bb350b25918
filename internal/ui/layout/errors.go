package layout

import "errors"

// ErrNilGuest is returned when a leaf is inserted without content.
var ErrNilGuest = errors.New("layout item requires a guest")

// ErrUnsatisfiableMinimum is returned when a fixed-size layout cannot hold
// the minimum size of its items.
var ErrUnsatisfiableMinimum = errors.New("minimum size exceeds fixed layout size")

// ErrItemNotFound is returned when an item does not belong to the layout.
var ErrItemNotFound = errors.New("item not found in layout")

// ErrItemAttached is returned when inserting an item that still has a parent.
var ErrItemAttached = errors.New("item is still attached to a layout")

// ErrStaleSeparator is returned when a separator no longer sits between
// the two items it was created for.
var ErrStaleSeparator = errors.New("separator no longer matches the layout")
