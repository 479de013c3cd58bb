package permute

// Dimension is one ordered, possibly empty sequence of candidate values.
// a dimension is optionally named after the subject attribute its values
// bind to; unnamed dimensions bind positionally.
type Dimension struct {
	name   string
	values []any
}

// Values builds a positional dimension from the provided candidates.
func Values(values ...any) Dimension {
	return Dimension{values: clone(values)}
}

// Attr builds a dimension named after the subject attribute it binds to.
func Attr(name string, values ...any) Dimension {
	return Dimension{name: name, values: clone(values)}
}

func (t Dimension) Name() string {
	return t.name
}

func (t Dimension) Len() int {
	return len(t.values)
}

// At returns the candidate value at position i.
func (t Dimension) At(i int) any {
	return t.values[i]
}

// Set is an ordered sequence of dimensions; insertion order defines
// combination order and, for constructor binding, argument order.
type Set []Dimension

// NewSet captures the given dimensions as a set.
func NewSet(dims ...Dimension) Set {
	return Set(clone(dims))
}

// Names returns the attribute name of every dimension when all of them are
// named, nil otherwise.
func (t Set) Names() []string {
	names := make([]string, 0, len(t))
	for _, d := range t {
		if d.name == "" {
			return nil
		}

		names = append(names, d.name)
	}

	return names
}

func (t Set) sizes() []int {
	sizes := make([]int, 0, len(t))
	for _, d := range t {
		sizes = append(sizes, d.Len())
	}

	return sizes
}

// Combination is one selected value from each dimension paired with the
// per-dimension index of each value. Pos is the combination's ordinal within
// the produced sequence.
type Combination struct {
	Values  []any
	Indices []int
	Pos     int
}

func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	dup := make([]T, len(s))
	copy(dup, s)
	return dup
}
