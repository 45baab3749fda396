/*
Package ringlist implements a fixed-size circular singly linked list
built from list elements.
*/
package ringlist

import (
	"fmt"

	"github.com/mgnsk/dumbuno/list"
)

// Ring is a circular singly linked list with a fixed number of elements.
// The last element links back to the front element.
type Ring[V comparable] struct {
	front *list.Element[V]
	len   int
}

// New creates a ring of n zero value elements.
func New[V comparable](n int) (*Ring[V], error) {
	if n < 1 {
		return nil, fmt.Errorf("ringlist: ring size %d: %w", n, list.ErrInvalidArgument)
	}

	var zero V

	front := list.NewElement[V](zero, nil)
	tail := front

	for i := 1; i < n; i++ {
		tail = tail.InsertAfter(zero)
	}

	// Close the loop.
	tail.SetNext(front)

	return &Ring[V]{
		front: front,
		len:   n,
	}, nil
}

// Len returns the number of elements in the ring.
func (r *Ring[V]) Len() int {
	return r.len
}

// Front returns the entry element of the ring.
func (r *Ring[V]) Front() *list.Element[V] {
	return r.front
}

// Do calls function f on each element of the ring, starting at the front.
// If f returns false, Do stops the iteration.
// f must not change the links of the ring.
func (r *Ring[V]) Do(f func(e *list.Element[V]) bool) {
	r.DoFrom(r.front, f)
}

// DoFrom is like Do but starts at start, which must be an element of r.
func (r *Ring[V]) DoFrom(start *list.Element[V], f func(e *list.Element[V]) bool) {
	if start == nil {
		panic("ringlist: invalid element")
	}

	if !f(start) {
		return
	}

	for p := start.Next(); p != start; p = p.Next() {
		if !f(p) {
			return
		}
	}
}

// Values returns the values of the ring in order, starting at the front.
func (r *Ring[V]) Values() []V {
	values := make([]V, 0, r.len)
	r.Do(func(e *list.Element[V]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}
