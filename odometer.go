package permute

import (
	"iter"
)

// Odometer lazily enumerates the cross product of a set of dimensions in a
// fixed deterministic order: the last dimension varies fastest, the first
// varies slowest. A set with no dimensions, or with any empty dimension,
// enumerates nothing. Single pass; construct a new Odometer to re-enumerate.
type Odometer struct {
	dims    Set
	sizes   []int
	indices []int
	pos     int
	done    bool
}

func NewOdometer(dims Set) *Odometer {
	sizes := dims.sizes()
	done := len(dims) == 0
	for _, size := range sizes {
		done = done || size == 0
	}

	return &Odometer{
		dims:    dims,
		sizes:   sizes,
		indices: make([]int, len(dims)),
		done:    done,
	}
}

// Next yields the current combination and advances the cursor; reports false
// once the product is exhausted. Yielded combinations are copies and remain
// valid past subsequent advances.
func (t *Odometer) Next() (Combination, bool) {
	if t.done || t.indices[0] >= t.sizes[0] {
		return Combination{}, false
	}

	current := t.capture()
	t.advance()
	t.pos++

	return current, true
}

// All adapts the remaining combinations into an iterator sequence.
func (t *Odometer) All() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for current, ok := t.Next(); ok; current, ok = t.Next() {
			if !yield(current) {
				return
			}
		}
	}
}

func (t *Odometer) capture() Combination {
	values := make([]any, len(t.indices))
	indices := make([]int, len(t.indices))
	for i, idx := range t.indices {
		values[i] = t.dims[i].At(idx)
		indices[i] = idx
	}

	return Combination{Values: values, Indices: indices, Pos: t.pos}
}

// advance increments the rightmost column; a column that overflows resets to
// zero and carries left. the leftmost column never resets, leaving the
// exhaustion condition (indices[0] >= sizes[0]) observable.
func (t *Odometer) advance() {
	for col := len(t.sizes) - 1; col > -1; col-- {
		t.indices[col]++
		if t.indices[col] < t.sizes[col] {
			return
		}

		if col != 0 {
			t.indices[col] = 0
		}
	}
}
