// Package affinity matches the string tags restricting where dock widgets
// may be dropped.
package affinity

import "slices"

// Set is an unordered collection of affinity names. An empty set means
// "no restriction".
type Set []string

// Normalize returns a sorted copy without duplicates or empty names.
func Normalize(names []string) Set {
	out := make(Set, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Accepts reports whether a target accepting target may receive a payload
// tagged with payload. An unrestricted payload goes anywhere; otherwise the
// sets must intersect or both be empty.
func Accepts(target, payload []string) bool {
	if len(payload) == 0 {
		return true
	}
	return Intersects(target, payload)
}

// Intersects reports whether a and b share at least one name.
func Intersects(a, b []string) bool {
	for _, n := range a {
		if slices.Contains(b, n) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold the same names.
func Equal(a, b []string) bool {
	return slices.Equal(Normalize(a), Normalize(b))
}
