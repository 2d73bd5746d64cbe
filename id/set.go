package id

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned by Pop when the set has no elements.
var ErrEmptyCollection = errors.New("empty collection")

// Set is an unordered collection of distinct elements. It is not safe for
// concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v from the set if present.
func (s Set[T]) Delete(v T) {
	delete(s, v)
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Pop removes and returns an arbitrary element. The element is whichever the
// map iterates first, which is NOT a uniform random choice; use Pop when any
// element will do, not when a fair draw is needed. It fails with
// ErrEmptyCollection on an empty set.
func (s Set[T]) Pop() (T, error) {
	for v := range s {
		delete(s, v)
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("pop set: %w", ErrEmptyCollection)
}
