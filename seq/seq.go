// Package seq provides a growable sequence with explicit capacity
// management: when full, capacity doubles, starting from a base of 16.
package seq

import (
	"seqkit/internal"

	"github.com/samber/mo"
)

// Seq is a contiguous growable sequence of T. The zero value is ready to
// use. An instance is exclusively owned by whoever holds it; concurrent use
// of the same instance requires external synchronization.
type Seq[T any] struct {
	items []T
}

func (s *Seq[T]) Len() int { return len(s.items) }

func (s *Seq[T]) Cap() int { return cap(s.items) }

// At returns the element at index i. Panics when i is out of range.
func (s *Seq[T]) At(i int) T { return s.items[i] }

// Items returns the live backing slice. The view is invalidated by the next
// growing operation.
func (s *Seq[T]) Items() []T { return s.items }

// Append adds v at the end, doubling capacity when full. Amortized O(1).
func (s *Seq[T]) Append(v T) {
	if len(s.items) == cap(s.items) {
		s.items = regrow(s.items, internal.NextCap(cap(s.items)))
	}
	s.items = append(s.items, v)
}

// AppendMany bulk-appends vs, doubling capacity until the result fits.
func (s *Seq[T]) AppendMany(vs ...T) {
	if newCap := internal.BulkCap(cap(s.items), len(s.items), len(vs)); newCap != cap(s.items) {
		s.items = regrow(s.items, newCap)
	}
	s.items = append(s.items, vs...)
}

// Prepend inserts v at index 0, shifting every element one slot to the
// right. O(n), considerably more expensive than Append.
func (s *Seq[T]) Prepend(v T) {
	if len(s.items) == cap(s.items) {
		s.items = regrow(s.items, internal.NextCap(cap(s.items)))
	}
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[1:], s.items[:len(s.items)-1])
	s.items[0] = v
}

// Pop removes and returns the last element.
func (s *Seq[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return mo.Some(v)
}

func (s *Seq[T]) First() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[0])
}

func (s *Seq[T]) Last() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// Reset drops the length to zero, keeping capacity.
func (s *Seq[T]) Reset() { s.items = s.items[:0] }

// Free releases the backing storage. The sequence stays usable and grows
// again from the base capacity.
func (s *Seq[T]) Free() { s.items = nil }

func regrow[T any](items []T, newCap int) []T {
	next := make([]T, len(items), newCap)
	copy(next, items)
	return next
}
