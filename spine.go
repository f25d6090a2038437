package deque

// A spine is the recursive representation of a deque. A nil spine is the
// empty sequence; a single holds exactly one element; a node holds at least
// two elements split across a prefix buffer, a middle spine, and a suffix
// buffer. The middle's elements are themselves buffers of the elements one
// level up, stored as any, so each level of nesting buffers its elements
// once more. Transformations that look at elements recurse into the middle
// with a function lifted to operate on whole buffers.
type spine interface {
	spine()
}

// single is a spine of exactly one element.
type single struct {
	el any
}

// node is a spine of at least two elements. size counts the node's own
// elements: the prefix, the suffix, and every element of every buffer in
// the middle.
type node struct {
	size int
	pre  buffer
	mid  spine
	suf  buffer
}

func (single) spine() {}
func (*node) spine()  {}

func spineLen(s spine) int {
	switch s := s.(type) {
	case single:
		return 1
	case *node:
		return s.size
	}
	return 0
}

// pushFrontSpine prepends x. When the prefix is full, its last four
// elements migrate into the middle as a buffer, except that a node with an
// empty middle and a one-element suffix rebalances in place instead of
// growing the spine.
func pushFrontSpine(x any, s spine) spine {
	switch s := s.(type) {
	case nil:
		return single{x}
	case single:
		return &node{size: 2, pre: bufOf(x), suf: bufOf(s.el)}
	case *node:
		if s.pre.n < 7 {
			return &node{size: s.size + 1, pre: s.pre.pushFront(x), mid: s.mid, suf: s.suf}
		}
		pre := buffer{n: 4, el: [7]any{x, s.pre.el[0], s.pre.el[1], s.pre.el[2]}}
		mig := buffer{n: 4, el: [7]any{s.pre.el[3], s.pre.el[4], s.pre.el[5], s.pre.el[6]}}
		if s.mid == nil && s.suf.n == 1 {
			return &node{size: s.size + 1, pre: pre, suf: mig.pushBack(s.suf.el[0])}
		}
		return &node{size: s.size + 1, pre: pre, mid: pushFrontSpine(mig, s.mid), suf: s.suf}
	}
	return nil
}

// pushBackSpine appends x, mirroring pushFrontSpine on the suffix.
func pushBackSpine(s spine, x any) spine {
	switch s := s.(type) {
	case nil:
		return single{x}
	case single:
		return &node{size: 2, pre: bufOf(s.el), suf: bufOf(x)}
	case *node:
		if s.suf.n < 7 {
			return &node{size: s.size + 1, pre: s.pre, mid: s.mid, suf: s.suf.pushBack(x)}
		}
		mig := buffer{n: 4, el: [7]any{s.suf.el[0], s.suf.el[1], s.suf.el[2], s.suf.el[3]}}
		suf := buffer{n: 4, el: [7]any{s.suf.el[4], s.suf.el[5], s.suf.el[6], x}}
		if s.mid == nil && s.pre.n == 1 {
			return &node{size: s.size + 1, pre: mig.pushFront(s.pre.el[0]), suf: suf}
		}
		return &node{size: s.size + 1, pre: s.pre, mid: pushBackSpine(s.mid, mig), suf: suf}
	}
	return nil
}

// spineOfSuffix rebuilds a spine from the suffix left behind once the
// prefix and middle are exhausted.
func spineOfSuffix(b buffer) spine {
	switch b.n {
	case 0:
		return nil
	case 1:
		return single{b.el[0]}
	case 4:
		return &node{size: 4, pre: b.dropBack(2), suf: b.dropFront(2)}
	default:
		return &node{size: b.n, pre: bufOf(b.el[0]), suf: b.dropFront(1)}
	}
}

// spineOfPrefix is the mirror of spineOfSuffix for a surviving prefix.
func spineOfPrefix(b buffer) spine {
	switch b.n {
	case 0:
		return nil
	case 1:
		return single{b.el[0]}
	case 4:
		return &node{size: 4, pre: b.dropBack(2), suf: b.dropFront(2)}
	default:
		return &node{size: b.n, pre: b.dropBack(1), suf: bufOf(b.el[b.n-1])}
	}
}

// popFrontSpine removes the first element. The third result is false only
// for the empty spine.
func popFrontSpine(s spine) (any, spine, bool) {
	switch s := s.(type) {
	case nil:
		return nil, nil, false
	case single:
		return s.el, nil, true
	case *node:
		if s.pre.n >= 2 {
			x, pre := s.pre.popFront()
			return x, &node{size: s.size - 1, pre: pre, mid: s.mid, suf: s.suf}, true
		}
		x := s.pre.el[0]
		if s.mid == nil {
			return x, spineOfSuffix(s.suf), true
		}
		b, mid, ok := popFrontSpine(s.mid)
		if !ok {
			// A non-empty middle always yields a buffer. Collapse to the
			// suffix rather than crash if something is seriously wrong.
			return x, spineOfSuffix(s.suf), true
		}
		return x, &node{size: s.size - 1, pre: b.(buffer), mid: mid, suf: s.suf}, true
	}
	return nil, nil, false
}

// popBackSpine removes the last element, mirroring popFrontSpine.
func popBackSpine(s spine) (any, spine, bool) {
	switch s := s.(type) {
	case nil:
		return nil, nil, false
	case single:
		return s.el, nil, true
	case *node:
		if s.suf.n >= 2 {
			x, suf := s.suf.popBack()
			return x, &node{size: s.size - 1, pre: s.pre, mid: s.mid, suf: suf}, true
		}
		x := s.suf.el[0]
		if s.mid == nil {
			return x, spineOfPrefix(s.pre), true
		}
		b, mid, ok := popBackSpine(s.mid)
		if !ok {
			// See popFrontSpine.
			return x, spineOfPrefix(s.pre), true
		}
		return x, &node{size: s.size - 1, pre: s.pre, mid: mid, suf: b.(buffer)}, true
	}
	return nil, nil, false
}

// appendSpine concatenates two spines. Both middles absorb their inner
// edge buffer and the middles concatenate recursively; the recursion
// descends one nesting level per step, so its depth is logarithmic in the
// longer sequence.
func appendSpine(l, r spine) spine {
	switch l := l.(type) {
	case nil:
		return r
	case single:
		return pushFrontSpine(l.el, r)
	case *node:
		switch r := r.(type) {
		case nil:
			return l
		case single:
			return pushBackSpine(l, r.el)
		case *node:
			mid := appendSpine(pushBackSpine(l.mid, l.suf), pushFrontSpine(r.pre, r.mid))
			return &node{size: l.size + r.size, pre: l.pre, mid: mid, suf: r.suf}
		}
	}
	return nil
}

// dropFrontSpine removes the first n elements. Whole prefix buffers are
// chopped by pulling replacements from the middle; the residue inside the
// final buffer is dropped directly.
func dropFrontSpine(n int, s spine) spine {
	if n <= 0 {
		return s
	}
	if n >= spineLen(s) {
		return nil
	}
	nd := s.(*node)
	size, pre, mid, suf := nd.size, nd.pre, nd.mid, nd.suf
	for n >= pre.n {
		n -= pre.n
		size -= pre.n
		b, rest, ok := popFrontSpine(mid)
		if !ok {
			// Only the suffix remains, and n is less than its length.
			s = spineOfSuffix(suf)
			for ; n > 0; n-- {
				_, s, _ = popFrontSpine(s)
			}
			return s
		}
		pre, mid = b.(buffer), rest
	}
	if n > 0 {
		pre = pre.dropFront(n)
		size -= n
	}
	return &node{size: size, pre: pre, mid: mid, suf: suf}
}

// dropBackSpine removes the last n elements, mirroring dropFrontSpine.
func dropBackSpine(n int, s spine) spine {
	if n <= 0 {
		return s
	}
	if n >= spineLen(s) {
		return nil
	}
	nd := s.(*node)
	size, pre, mid, suf := nd.size, nd.pre, nd.mid, nd.suf
	for n >= suf.n {
		n -= suf.n
		size -= suf.n
		b, rest, ok := popBackSpine(mid)
		if !ok {
			s = spineOfPrefix(pre)
			for ; n > 0; n-- {
				_, s, _ = popBackSpine(s)
			}
			return s
		}
		suf, mid = b.(buffer), rest
	}
	if n > 0 {
		suf = suf.dropBack(n)
		size -= n
	}
	return &node{size: size, pre: pre, mid: mid, suf: suf}
}

// foldlSpine folds f over the elements front to back. The recursion into
// the middle lifts f to fold whole buffers, so its depth is the spine
// depth, not the element count.
func foldlSpine(f func(x, acc any) any, acc any, s spine) any {
	switch s := s.(type) {
	case nil:
		return acc
	case single:
		return f(s.el, acc)
	case *node:
		acc = s.pre.foldl(f, acc)
		lifted := func(b, acc any) any { return b.(buffer).foldl(f, acc) }
		acc = foldlSpine(lifted, acc, s.mid)
		return s.suf.foldl(f, acc)
	}
	return acc
}

// foldrSpine folds f over the elements back to front.
func foldrSpine(f func(x, acc any) any, acc any, s spine) any {
	switch s := s.(type) {
	case nil:
		return acc
	case single:
		return f(s.el, acc)
	case *node:
		acc = s.suf.foldr(f, acc)
		lifted := func(b, acc any) any { return b.(buffer).foldr(f, acc) }
		acc = foldrSpine(lifted, acc, s.mid)
		return s.pre.foldr(f, acc)
	}
	return acc
}

// mapSpine applies f to every element, preserving the spine shape.
func mapSpine(f func(any) any, s spine) spine {
	switch s := s.(type) {
	case nil:
		return nil
	case single:
		return single{f(s.el)}
	case *node:
		lifted := func(x any) any { return x.(buffer).mapb(f) }
		return &node{size: s.size, pre: s.pre.mapb(f), mid: mapSpine(lifted, s.mid), suf: s.suf.mapb(f)}
	}
	return nil
}

// pushBuffer adds the elements of a freshly built chunk to the back of a
// spine. Chunks hold between one and four elements. The old suffix
// migrates into the middle and the chunk becomes the new suffix.
func pushBuffer(s spine, b buffer) spine {
	switch s := s.(type) {
	case nil:
		switch b.n {
		case 1:
			return single{b.el[0]}
		case 4:
			return &node{size: 4, pre: b.dropBack(2), suf: b.dropFront(2)}
		default:
			return &node{size: b.n, pre: b.dropBack(1), suf: bufOf(b.el[b.n-1])}
		}
	case single:
		return &node{size: 1 + b.n, pre: bufOf(s.el), suf: b}
	case *node:
		return &node{size: s.size + b.n, pre: s.pre, mid: pushBackSpine(s.mid, s.suf), suf: b}
	}
	return nil
}

// frontSpine reads the first element without removing it.
func frontSpine(s spine) (any, bool) {
	switch s := s.(type) {
	case single:
		return s.el, true
	case *node:
		return s.pre.front(), true
	}
	return nil, false
}

// backSpine reads the last element without removing it.
func backSpine(s spine) (any, bool) {
	switch s := s.(type) {
	case single:
		return s.el, true
	case *node:
		return s.suf.back(), true
	}
	return nil, false
}
