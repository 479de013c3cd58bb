package permute

import (
	"iter"
)

// Lockstep zips a set of dimensions positionally instead of taking their
// cross product: dimension i is row i of a table and combination j selects
// position j from every row. It yields one combination per declared row,
// clamped to the shortest row so ragged input never reads out of range.
type Lockstep struct {
	dims Set
	pos  int
	n    int
}

func NewLockstep(dims Set) *Lockstep {
	n := len(dims)
	for _, d := range dims {
		n = min(n, d.Len())
	}

	return &Lockstep{dims: dims, n: n}
}

// Next yields the combination for the current row position and advances;
// reports false once every row has been consumed.
func (t *Lockstep) Next() (Combination, bool) {
	if t.pos >= t.n {
		return Combination{}, false
	}

	values := make([]any, len(t.dims))
	indices := make([]int, len(t.dims))
	for i, d := range t.dims {
		values[i] = d.At(t.pos)
		indices[i] = t.pos
	}

	current := Combination{Values: values, Indices: indices, Pos: t.pos}
	t.pos++

	return current, true
}

// All adapts the remaining combinations into an iterator sequence.
func (t *Lockstep) All() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for current, ok := t.Next(); ok; current, ok = t.Next() {
			if !yield(current) {
				return
			}
		}
	}
}
