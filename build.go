package deque

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Singleton returns a deque holding a single element.
func Singleton[E any](x E) Deque[E] {
	return Deque[E]{s: single{x}}
}

// FromSlice returns a deque holding the elements of s in order.
// The deque does not share memory with s.
func FromSlice[E any](s []E) Deque[E] {
	var sp spine
	for len(s) > 0 {
		k := min(4, len(s))
		b := buffer{n: k}
		for i := 0; i < k; i++ {
			b.el[i] = s[i]
		}
		sp = pushBuffer(sp, b)
		s = s[k:]
	}
	return Deque[E]{s: sp}
}

// Collect returns a deque holding the elements produced by seq in order.
func Collect[E any](seq iter.Seq[E]) Deque[E] {
	var sp spine
	var b buffer
	for x := range seq {
		b.el[b.n] = x
		b.n++
		if b.n == 4 {
			sp = pushBuffer(sp, b)
			b = buffer{}
		}
	}
	if b.n > 0 {
		sp = pushBuffer(sp, b)
	}
	return Deque[E]{s: sp}
}

// Initialize returns a deque of n elements where element i is f(i).
// If n <= 0, the result is empty.
func Initialize[E any](n int, f func(int) E) Deque[E] {
	var sp spine
	for i := 0; i < n; {
		var b buffer
		for ; b.n < 4 && i < n; i++ {
			b.el[b.n] = f(i)
			b.n++
		}
		sp = pushBuffer(sp, b)
	}
	return Deque[E]{s: sp}
}

// Repeat returns a deque of n copies of x.
// If n <= 0, the result is empty.
func Repeat[E any](n int, x E) Deque[E] {
	return Initialize(n, func(int) E { return x })
}

// Range returns the deque of integers from lo through hi inclusive.
// If hi < lo, the result is empty.
func Range[E constraints.Integer](lo, hi E) Deque[E] {
	if hi < lo {
		return Deque[E]{}
	}
	return Initialize(int(hi)-int(lo)+1, func(i int) E { return lo + E(i) })
}
