/*
Package list implements operations on singly linked lists of Elements.

A list is identified by its head element; a nil head is the empty list.
Functions in this package expect open lists. Calling Len, Search, Do, Values
or the copy functions on a circular list does not terminate.
*/
package list

import "fmt"

// Len returns the number of elements reachable from head.
func Len[V comparable](head *Element[V]) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}

// Search returns the first element with value target or nil.
func Search[V comparable](head *Element[V], target V) *Element[V] {
	for e := head; e != nil; e = e.next {
		if e.Value == target {
			return e
		}
	}
	return nil
}

// At returns the element at zero-indexed position or nil if the list is too short.
func At[V comparable](head *Element[V], position int) (*Element[V], error) {
	if position < 0 {
		return nil, fmt.Errorf("position %d is negative: %w", position, ErrInvalidArgument)
	}

	e := head
	for i := 0; i < position && e != nil; i++ {
		e = e.next
	}

	return e, nil
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change the links of the list.
func Do[V comparable](head *Element[V], f func(e *Element[V]) bool) {
	for e := head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

// Values returns the values of the list in forward order.
func Values[V comparable](head *Element[V]) []V {
	var values []V
	Do(head, func(e *Element[V]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

// Copy returns the head of a new list with the values of source.
// No elements are shared between source and the copy.
func Copy[V comparable](source *Element[V]) *Element[V] {
	head, _ := CopyWithTail(source)
	return head
}

// CopyWithTail is like Copy but also returns the last element of the copy.
func CopyWithTail[V comparable](source *Element[V]) (head, tail *Element[V]) {
	if source == nil {
		return nil, nil
	}

	head = NewElement[V](source.Value, nil)
	tail = head

	for e := source.next; e != nil; e = e.next {
		tail = tail.InsertAfter(e.Value)
	}

	return head, tail
}

// CopyRange copies the elements from start to end inclusive into a new list
// and returns its head and tail. end must be reachable from start.
func CopyRange[V comparable](start, end *Element[V]) (head, tail *Element[V], err error) {
	if start == nil {
		return nil, nil, fmt.Errorf("range start: %w", ErrNilElement)
	}

	head = NewElement[V](start.Value, nil)
	tail = head

	for e := start; e != end; {
		if e = e.next; e == nil {
			return nil, nil, fmt.Errorf("range end not found after start: %w", ErrInvalidArgument)
		}
		tail = tail.InsertAfter(e.Value)
	}

	return head, tail, nil
}
