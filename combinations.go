package aoc

// Combinations is a cursor over the k-combinations of a slice. It yields
// every strictly ascending index tuple i0 < i1 < ... < ik-1 in lexicographic
// order, exactly once, and is not restartable.
//
// The cursor borrows the source slice; it never copies it.
type Combinations[T any] struct {
	src  []T
	idx  []int
	buf  []T
	done bool
}

// NewCombinations returns a cursor over the k-combinations of src.
// If k < 1 or k > len(src) the cursor is empty.
func NewCombinations[T any](src []T, k int) *Combinations[T] {
	c := &Combinations[T]{src: src}
	if k < 1 || k > len(src) {
		c.done = true
		return c
	}
	c.idx = make([]int, k)
	for i := range c.idx {
		c.idx[i] = i
	}
	c.buf = make([]T, k)
	return c
}

// Next returns the next tuple. The returned slice is owned by the cursor
// and is overwritten by the following call to Next.
func (c *Combinations[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	for j, i := range c.idx {
		c.buf[j] = c.src[i]
	}
	c.advance()
	return c.buf, true
}

// advance moves idx to the next combination, or marks the cursor done.
func (c *Combinations[T]) advance() {
	n, k := len(c.src), len(c.idx)
	for j := k - 1; j >= 0; j-- {
		// idx[j] may go up to n-(k-j).
		if c.idx[j] < n-k+j {
			c.idx[j]++
			for m := j + 1; m < k; m++ {
				c.idx[m] = c.idx[m-1] + 1
			}
			return
		}
	}
	c.done = true
}

// Indices returns the index tuple the next call to Next will yield, or nil
// if the cursor is exhausted. The slice is owned by the cursor.
func (c *Combinations[T]) Indices() []int {
	if c.done {
		return nil
	}
	return c.idx
}

// FindMap calls f on each remaining tuple and returns the first result f
// accepts.
func FindMap[T, R any](c *Combinations[T], f func([]T) (R, bool)) (R, bool) {
	for t, ok := c.Next(); ok; t, ok = c.Next() {
		if r, ok := f(t); ok {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Binomial returns n choose k.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}
