package id

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Table maps typed ids to values of V, backed by an integer-keyed hash map
// over the raw id values. It is not safe for concurrent use.
type Table[T Kind, V any] struct {
	items *intmap.Map[uint64, V]
}

// NewTable creates a Table sized for the given number of entries.
func NewTable[T Kind, V any](capacity int) *Table[T, V] {
	return &Table[T, V]{items: intmap.New[uint64, V](capacity)}
}

// Put stores v under id, replacing any previous value.
func (t *Table[T, V]) Put(id Id[T], v V) {
	t.items.Put(id.value, v)
}

// Get returns the value stored under id.
func (t *Table[T, V]) Get(id Id[T]) (V, bool) {
	return t.items.Get(id.value)
}

// Del removes the entry for id, reporting whether one existed.
func (t *Table[T, V]) Del(id Id[T]) bool {
	return t.items.Del(id.value)
}

// Len returns the number of entries.
func (t *Table[T, V]) Len() int {
	return t.items.Len()
}

// All iterates over all entries in unspecified order.
func (t *Table[T, V]) All() iter.Seq2[Id[T], V] {
	return func(yield func(Id[T], V) bool) {
		for k, v := range t.items.All() {
			if !yield(New[T](k), v) {
				return
			}
		}
	}
}
