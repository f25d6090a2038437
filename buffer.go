package deque

// buffer is a bounded sequence forming one edge of a spine node.
// Stored buffers always hold between one and seven elements; the zero
// buffer stands for "no buffer" in results that may not produce one.
type buffer struct {
	n  int
	el [7]any
}

// bufOf returns a buffer holding the given elements.
func bufOf(xs ...any) buffer {
	b := buffer{n: len(xs)}
	copy(b.el[:], xs)
	return b
}

// pushFront prepends x. The buffer must hold fewer than seven elements.
func (b buffer) pushFront(x any) buffer {
	c := buffer{n: b.n + 1}
	c.el[0] = x
	copy(c.el[1:], b.el[:b.n])
	return c
}

// pushBack appends x. The buffer must hold fewer than seven elements.
func (b buffer) pushBack(x any) buffer {
	c := b
	c.el[c.n] = x
	c.n++
	return c
}

// popFront removes the first element. Popping a one-element buffer
// yields the zero buffer.
func (b buffer) popFront() (any, buffer) {
	x := b.el[0]
	c := buffer{n: b.n - 1}
	copy(c.el[:], b.el[1:b.n])
	return x, c
}

// popBack removes the last element.
func (b buffer) popBack() (any, buffer) {
	c := b
	c.n--
	x := c.el[c.n]
	// Clear the slot so the copy doesn't pin the popped element.
	c.el[c.n] = nil
	return x, c
}

// dropFront removes the first k elements. k must be less than the
// buffer's length.
func (b buffer) dropFront(k int) buffer {
	c := buffer{n: b.n - k}
	copy(c.el[:], b.el[k:b.n])
	return c
}

// dropBack removes the last k elements.
func (b buffer) dropBack(k int) buffer {
	c := b
	for i := b.n - k; i < b.n; i++ {
		c.el[i] = nil
	}
	c.n = b.n - k
	return c
}

// front returns the first element.
func (b buffer) front() any { return b.el[0] }

// back returns the last element.
func (b buffer) back() any { return b.el[b.n-1] }

// foldl folds f over the elements front to back.
func (b buffer) foldl(f func(x, acc any) any, acc any) any {
	for i := 0; i < b.n; i++ {
		acc = f(b.el[i], acc)
	}
	return acc
}

// foldr folds f over the elements back to front.
func (b buffer) foldr(f func(x, acc any) any, acc any) any {
	for i := b.n - 1; i >= 0; i-- {
		acc = f(b.el[i], acc)
	}
	return acc
}

// mapb applies f to each element, keeping the size.
func (b buffer) mapb(f func(any) any) buffer {
	c := buffer{n: b.n}
	for i := 0; i < b.n; i++ {
		c.el[i] = f(b.el[i])
	}
	return c
}
