// Package sets provides small generic set helpers shared by the solvers.
package sets

// Set is a generic set of comparable items.
type Set[T comparable] map[T]struct{}

// New creates a set from the given items.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// FromString creates a set of the runes in s.
func FromString(s string) Set[rune] {
	set := make(Set[rune], len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Add inserts an item.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Has reports membership.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items.
func (s Set[T]) Len() int {
	return len(s)
}

// Intersect returns the intersection of s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	result := make(Set[T])
	for item := range small {
		if large.Has(item) {
			result.Add(item)
		}
	}
	return result
}

// Union returns the union of s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := make(Set[T], len(s)+len(other))
	for item := range s {
		result.Add(item)
	}
	for item := range other {
		result.Add(item)
	}
	return result
}

// IntersectAll returns the intersection of all given sets.
// Returns nil for an empty argument list.
func IntersectAll[T comparable](sets ...Set[T]) Set[T] {
	if len(sets) == 0 {
		return nil
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersect(s)
	}
	return result
}

// UnionAll returns the union of all given sets.
// Returns nil for an empty argument list.
func UnionAll[T comparable](sets ...Set[T]) Set[T] {
	if len(sets) == 0 {
		return nil
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Union(s)
	}
	return result
}

// Only returns the single item in a one-element set.
// The second return is false when the set does not have exactly one item.
func (s Set[T]) Only() (T, bool) {
	var zero T
	if len(s) != 1 {
		return zero, false
	}
	for item := range s {
		return item, true
	}
	return zero, false
}
