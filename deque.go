// Package deque provides a persistent double-ended queue.
//
// A Deque is an immutable ordered sequence with amortized constant-time
// access at both ends. Methods which modify the deque return a new value;
// the old value remains valid and the two share structure. Sharing values
// across goroutines is safe without locking.
//
// Pushes, pops, and reads at either end are amortized O(1). Concat is
// O(log n). The take/drop operations remove whole edge buffers one at a
// time, so their cost is linear in the number of elements removed.
// Traversals are O(n). There is no fast random access.
package deque

import (
	"fmt"
	"strings"
)

// Deque is a persistent double-ended queue.
// The zero value is an empty deque ready to use.
type Deque[E any] struct {
	s spine
}

// Len returns the number of elements in the deque.
func (d Deque[E]) Len() int {
	return spineLen(d.s)
}

// IsEmpty reports whether the deque has no elements.
func (d Deque[E]) IsEmpty() bool {
	return d.s == nil
}

// PushFront adds an element to the front of the deque.
func (d Deque[E]) PushFront(x E) Deque[E] {
	return Deque[E]{s: pushFrontSpine(x, d.s)}
}

// PushBack adds an element to the end of the deque.
func (d Deque[E]) PushBack(x E) Deque[E] {
	return Deque[E]{s: pushBackSpine(d.s, x)}
}

// PopFront removes the first element, returning it along with the rest of
// the deque. The third result is false if the deque is empty.
func (d Deque[E]) PopFront() (E, Deque[E], bool) {
	x, s, ok := popFrontSpine(d.s)
	if !ok {
		var zero E
		return zero, Deque[E]{}, false
	}
	return x.(E), Deque[E]{s: s}, true
}

// PopBack removes the last element, returning it along with the rest of
// the deque. The third result is false if the deque is empty.
func (d Deque[E]) PopBack() (E, Deque[E], bool) {
	x, s, ok := popBackSpine(d.s)
	if !ok {
		var zero E
		return zero, Deque[E]{}, false
	}
	return x.(E), Deque[E]{s: s}, true
}

// Front returns the first element. The second result is false if the
// deque is empty.
func (d Deque[E]) Front() (E, bool) {
	x, ok := frontSpine(d.s)
	if !ok {
		var zero E
		return zero, false
	}
	return x.(E), true
}

// Back returns the last element. The second result is false if the deque
// is empty.
func (d Deque[E]) Back() (E, bool) {
	x, ok := backSpine(d.s)
	if !ok {
		var zero E
		return zero, false
	}
	return x.(E), true
}

// Left keeps the first n elements.
// If n <= 0, the result is empty.
// If n is at least the deque's length, there is no change.
func (d Deque[E]) Left(n int) Deque[E] {
	if n <= 0 {
		return Deque[E]{}
	}
	if n >= d.Len() {
		return d
	}
	return Deque[E]{s: dropBackSpine(d.Len()-n, d.s)}
}

// Right keeps the last n elements.
// If n <= 0, the result is empty.
// If n is at least the deque's length, there is no change.
func (d Deque[E]) Right(n int) Deque[E] {
	if n <= 0 {
		return Deque[E]{}
	}
	if n >= d.Len() {
		return d
	}
	return Deque[E]{s: dropFrontSpine(d.Len()-n, d.s)}
}

// DropLeft removes the first n elements.
// If n <= 0, there is no change.
// If n is at least the deque's length, the result is empty.
func (d Deque[E]) DropLeft(n int) Deque[E] {
	return Deque[E]{s: dropFrontSpine(n, d.s)}
}

// DropRight removes the last n elements.
// If n <= 0, there is no change.
// If n is at least the deque's length, the result is empty.
func (d Deque[E]) DropRight(n int) Deque[E] {
	return Deque[E]{s: dropBackSpine(n, d.s)}
}

// Concat returns the concatenation of d and e.
func (d Deque[E]) Concat(e Deque[E]) Deque[E] {
	return Deque[E]{s: appendSpine(d.s, e.s)}
}

// Filter keeps the elements for which keep returns true, in order.
func (d Deque[E]) Filter(keep func(E) bool) Deque[E] {
	var out spine
	foldlSpine(func(x, acc any) any {
		if keep(x.(E)) {
			out = pushBackSpine(out, x)
		}
		return acc
	}, nil, d.s)
	return Deque[E]{s: out}
}

// Partition splits the deque into the elements for which pred returns
// true and those for which it returns false, each in order.
func (d Deque[E]) Partition(pred func(E) bool) (yes, no Deque[E]) {
	var ys, ns spine
	foldlSpine(func(x, acc any) any {
		if pred(x.(E)) {
			ys = pushBackSpine(ys, x)
		} else {
			ns = pushBackSpine(ns, x)
		}
		return acc
	}, nil, d.s)
	return Deque[E]{s: ys}, Deque[E]{s: ns}
}

// Slice returns the elements of the deque as a new slice in order.
// An empty deque yields a nil slice.
func (d Deque[E]) Slice() []E {
	if d.s == nil {
		return nil
	}
	out := make([]E, 0, spineLen(d.s))
	for x := range d.All() {
		out = append(out, x)
	}
	return out
}

// String formats the deque's elements like a slice.
func (d Deque[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for x := range d.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
