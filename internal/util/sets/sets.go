// Package sets provides a minimal generic hash set used for keyword
// overlap counting and slug bookkeeping. Kept internal to avoid
// committing to external API stability pre-1.0.
package sets

// Set is a simple generic hash set for comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts value into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has returns true if v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v if present.
func (s Set[T]) Delete(v T) { delete(s, v) }

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// IntersectCount returns the number of members present in both sets.
// Iterates the smaller set.
func (s Set[T]) IntersectCount(other Set[T]) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for v := range small {
		if large.Has(v) {
			n++
		}
	}
	return n
}

// Values returns the members in unspecified order.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
