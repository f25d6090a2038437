package deque

import "iter"

// All returns an iterator over the elements of the deque front to back.
func (d Deque[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s := d.s
		for {
			x, rest, ok := popFrontSpine(s)
			if !ok {
				return
			}
			if !yield(x.(E)) {
				return
			}
			s = rest
		}
	}
}

// Backward returns an iterator over the elements of the deque back to
// front.
func (d Deque[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		s := d.s
		for {
			x, rest, ok := popBackSpine(s)
			if !ok {
				return
			}
			if !yield(x.(E)) {
				return
			}
			s = rest
		}
	}
}
