package deque

// These are package functions rather than methods because Go methods
// cannot introduce type parameters or constraints beyond the receiver's.

// Map returns the deque of f applied to each element of d, in order.
// The result has the same spine shape as d.
func Map[E, F any](d Deque[E], f func(E) F) Deque[F] {
	return Deque[F]{s: mapSpine(func(x any) any { return f(x.(E)) }, d.s)}
}

// FilterMap applies f to each element of d in order and keeps the results
// for which f's second result is true.
func FilterMap[E, F any](d Deque[E], f func(E) (F, bool)) Deque[F] {
	var out spine
	foldlSpine(func(x, acc any) any {
		if y, ok := f(x.(E)); ok {
			out = pushBackSpine(out, y)
		}
		return acc
	}, nil, d.s)
	return Deque[F]{s: out}
}

// Fold folds f over the elements of d front to back, starting from seed.
func Fold[E, A any](d Deque[E], seed A, f func(A, E) A) A {
	acc := seed
	foldlSpine(func(x, _ any) any {
		acc = f(acc, x.(E))
		return nil
	}, nil, d.s)
	return acc
}

// FoldRight folds f over the elements of d back to front, starting from
// seed.
func FoldRight[E, A any](d Deque[E], seed A, f func(A, E) A) A {
	acc := seed
	foldrSpine(func(x, _ any) any {
		acc = f(acc, x.(E))
		return nil
	}, nil, d.s)
	return acc
}

// Contains reports whether x is an element of d.
func Contains[E comparable](d Deque[E], x E) bool {
	for y := range d.All() {
		if y == x {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any element of d satisfies pred.
func ContainsFunc[E any](d Deque[E], pred func(E) bool) bool {
	for y := range d.All() {
		if pred(y) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold equal elements in the same order.
// Two deques holding the same sequence are equal regardless of how they
// were built.
func Equal[E comparable](a, b Deque[E]) bool {
	return EqualFunc(a, b, func(x, y E) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[E, F any](a Deque[E], b Deque[F], eq func(E, F) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	sa, sb := a.s, b.s
	for {
		x, ra, ok := popFrontSpine(sa)
		if !ok {
			return true
		}
		y, rb, _ := popFrontSpine(sb)
		if !eq(x.(E), y.(F)) {
			return false
		}
		sa, sb = ra, rb
	}
}
