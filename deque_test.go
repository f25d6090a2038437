package deque_test

import (
	"fmt"
	"slices"
	"testing"

	"gitlab.com/zephyrtronium/deque"
)

// iota0 returns the ints from 0 through n-1.
func iota0(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestZeroValue(t *testing.T) {
	var d deque.Deque[int]
	if d.Len() != 0 {
		t.Errorf("zero deque has len %d", d.Len())
	}
	if !d.IsEmpty() {
		t.Error("zero deque is not empty")
	}
	if s := d.Slice(); s != nil {
		t.Errorf("zero deque gives slice %v", s)
	}
	if x, ok := d.Front(); ok {
		t.Errorf("zero deque has front %v", x)
	}
	if x, ok := d.Back(); ok {
		t.Errorf("zero deque has back %v", x)
	}
	if x, _, ok := d.PopFront(); ok {
		t.Errorf("zero deque popped %v from front", x)
	}
	if x, _, ok := d.PopBack(); ok {
		t.Errorf("zero deque popped %v from back", x)
	}
}

func TestPush(t *testing.T) {
	// Push enough elements to force several levels of nesting and check
	// the observed sequence after every step.
	const n = 200
	t.Run("front", func(t *testing.T) {
		var d deque.Deque[int]
		var want []int
		for i := 0; i < n; i++ {
			d = d.PushFront(i)
			want = append([]int{i}, want...)
			if d.Len() != len(want) {
				t.Fatalf("len %d after %d pushes", d.Len(), i+1)
			}
			if !slices.Equal(d.Slice(), want) {
				t.Fatalf("wrong contents after %d front pushes:\nwant %v\ngot  %v", i+1, want, d.Slice())
			}
		}
	})
	t.Run("back", func(t *testing.T) {
		var d deque.Deque[int]
		var want []int
		for i := 0; i < n; i++ {
			d = d.PushBack(i)
			want = append(want, i)
			if d.Len() != len(want) {
				t.Fatalf("len %d after %d pushes", d.Len(), i+1)
			}
			if !slices.Equal(d.Slice(), want) {
				t.Fatalf("wrong contents after %d back pushes:\nwant %v\ngot  %v", i+1, want, d.Slice())
			}
		}
	})
	t.Run("both", func(t *testing.T) {
		var d deque.Deque[int]
		var want []int
		for i := 0; i < n; i++ {
			if i%3 == 0 {
				d = d.PushFront(i)
				want = append([]int{i}, want...)
			} else {
				d = d.PushBack(i)
				want = append(want, i)
			}
		}
		if !slices.Equal(d.Slice(), want) {
			t.Errorf("wrong contents:\nwant %v\ngot  %v", want, d.Slice())
		}
	})
}

func TestPop(t *testing.T) {
	// Exercise every redistribution shape by popping deques of every small
	// size to exhaustion, from both ends.
	for n := 0; n <= 64; n++ {
		t.Run(fmt.Sprintf("front/%d", n), func(t *testing.T) {
			d := deque.FromSlice(iota0(n))
			for i := 0; i < n; i++ {
				x, rest, ok := d.PopFront()
				if !ok {
					t.Fatalf("pop %d reported empty", i)
				}
				if x != i {
					t.Fatalf("pop %d gave %d", i, x)
				}
				if rest.Len() != n-i-1 {
					t.Fatalf("pop %d left len %d", i, rest.Len())
				}
				d = rest
			}
			if !d.IsEmpty() {
				t.Errorf("not empty after popping all: %v", d.Slice())
			}
		})
		t.Run(fmt.Sprintf("back/%d", n), func(t *testing.T) {
			d := deque.FromSlice(iota0(n))
			for i := n - 1; i >= 0; i-- {
				x, rest, ok := d.PopBack()
				if !ok {
					t.Fatalf("pop %d reported empty", i)
				}
				if x != i {
					t.Fatalf("pop %d gave %d", i, x)
				}
				d = rest
			}
			if !d.IsEmpty() {
				t.Errorf("not empty after popping all: %v", d.Slice())
			}
		})
		t.Run(fmt.Sprintf("alternate/%d", n), func(t *testing.T) {
			d := deque.FromSlice(iota0(n))
			lo, hi := 0, n-1
			for lo <= hi {
				if (lo+hi)%2 == 0 {
					x, rest, ok := d.PopFront()
					if !ok || x != lo {
						t.Fatalf("front pop gave %d, %t; want %d", x, ok, lo)
					}
					lo++
					d = rest
				} else {
					x, rest, ok := d.PopBack()
					if !ok || x != hi {
						t.Fatalf("back pop gave %d, %t; want %d", x, ok, hi)
					}
					hi--
					d = rest
				}
			}
			if !d.IsEmpty() {
				t.Errorf("not empty after popping all: %v", d.Slice())
			}
		})
	}
}

func TestFrontBack(t *testing.T) {
	cases := []struct {
		name  string
		el    []int
		front int
		back  int
	}{
		{name: "one", el: []int{7}, front: 7, back: 7},
		{name: "two", el: []int{1, 2}, front: 1, back: 2},
		{name: "many", el: iota0(50), front: 0, back: 49},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := deque.FromSlice(c.el)
			if x, ok := d.Front(); !ok || x != c.front {
				t.Errorf("front gave %d, %t; want %d", x, ok, c.front)
			}
			if x, ok := d.Back(); !ok || x != c.back {
				t.Errorf("back gave %d, %t; want %d", x, ok, c.back)
			}
		})
	}
}

func TestPersistence(t *testing.T) {
	// Updates must not change any older value, including ones that share
	// structure with the result.
	d := deque.FromSlice(iota0(10))
	before := d.Slice()
	mutants := []deque.Deque[int]{
		d.PushFront(-1),
		d.PushBack(10),
		d.Concat(d),
		d.DropLeft(3),
		d.DropRight(3),
		d.Left(5),
		d.Right(5),
		d.Filter(func(x int) bool { return x%2 == 0 }),
	}
	if _, rest, ok := d.PopFront(); ok {
		mutants = append(mutants, rest)
	}
	if _, rest, ok := d.PopBack(); ok {
		mutants = append(mutants, rest)
	}
	for i, m := range mutants {
		if slices.Equal(m.Slice(), before) {
			t.Errorf("mutant %d did not change the sequence", i)
		}
	}
	if !slices.Equal(d.Slice(), before) {
		t.Errorf("original changed:\nwas %v\nnow %v", before, d.Slice())
	}
	// Popping a shared spine must not affect the other sharer.
	e := d.Concat(d)
	for !d.IsEmpty() {
		_, d, _ = d.PopFront()
	}
	if want := append(iota0(10), iota0(10)...); !slices.Equal(e.Slice(), want) {
		t.Errorf("sharer changed:\nwant %v\ngot  %v", want, e.Slice())
	}
}

func TestDeep(t *testing.T) {
	// Ten thousand elements per the contract: building, draining from both
	// ends, folding, and iterating must all complete without unbounded
	// stack growth.
	const n = 10000
	var d deque.Deque[int]
	for i := 0; i < n; i++ {
		d = d.PushBack(i)
	}
	if d.Len() != n {
		t.Fatalf("len %d after %d pushes", d.Len(), n)
	}
	t.Run("popfront", func(t *testing.T) {
		e := d
		for i := 0; i < n; i++ {
			x, rest, ok := e.PopFront()
			if !ok || x != i {
				t.Fatalf("pop %d gave %d, %t", i, x, ok)
			}
			e = rest
		}
	})
	t.Run("popback", func(t *testing.T) {
		e := d
		for i := n - 1; i >= 0; i-- {
			x, rest, ok := e.PopBack()
			if !ok || x != i {
				t.Fatalf("pop %d gave %d, %t", i, x, ok)
			}
			e = rest
		}
	})
	t.Run("fold", func(t *testing.T) {
		sum := deque.Fold(d, 0, func(acc, x int) int { return acc + x })
		if want := n * (n - 1) / 2; sum != want {
			t.Errorf("fold sum gave %d, want %d", sum, want)
		}
	})
	t.Run("foldright", func(t *testing.T) {
		count := deque.FoldRight(d, 0, func(acc, _ int) int { return acc + 1 })
		if count != n {
			t.Errorf("foldright counted %d, want %d", count, n)
		}
	})
	t.Run("iter", func(t *testing.T) {
		i := 0
		for x := range d.All() {
			if x != i {
				t.Fatalf("element %d is %d", i, x)
			}
			i++
		}
		if i != n {
			t.Errorf("iterated %d elements, want %d", i, n)
		}
	})
}

func TestString(t *testing.T) {
	cases := []struct {
		name string
		el   []int
		want string
	}{
		{name: "empty", el: nil, want: "[]"},
		{name: "one", el: []int{1}, want: "[1]"},
		{name: "many", el: []int{1, 2, 3}, want: "[1 2 3]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := deque.FromSlice(c.el).String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestIterBreak(t *testing.T) {
	d := deque.FromSlice(iota0(100))
	var got []int
	for x := range d.All() {
		got = append(got, x)
		if len(got) == 3 {
			break
		}
	}
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("forward break gave %v", got)
	}
	got = got[:0]
	for x := range d.Backward() {
		got = append(got, x)
		if len(got) == 3 {
			break
		}
	}
	if !slices.Equal(got, []int{99, 98, 97}) {
		t.Errorf("backward break gave %v", got)
	}
}
