package list

// Element is a singly linked list element.
//
// A nil next pointer terminates an open list. Elements may also be linked
// into a cycle, see ringlist.
type Element[V comparable] struct {
	next  *Element[V]
	Value V
}

// NewElement creates a list element linked to next.
// next may be nil or any existing element, including one that links back
// to the new element later.
func NewElement[V comparable](v V, next *Element[V]) *Element[V] {
	return &Element[V]{
		next:  next,
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// SetNext links e to next. Elements previously after e are no longer
// reachable through e.
func (e *Element[V]) SetNext(next *Element[V]) {
	e.next = next
}

// InsertAfter inserts a new element with value v after e and returns it.
func (e *Element[V]) InsertAfter(v V) *Element[V] {
	e.next = NewElement(v, e.next)
	return e.next
}

// RemoveAfter unlinks the element after e and returns it.
// It must not be called on the last element of an open list.
func (e *Element[V]) RemoveAfter() (*Element[V], error) {
	s := e.next
	if s == nil {
		return nil, ErrNilElement
	}

	e.next = s.next
	s.next = nil

	return s, nil
}
