package matrix

import (
	"iter"
	"time"

	"github.com/egdaemon/permute"
)

// generates every combination of provided options by assigning the values to
// their respective fields on T.
// example:
//
//	type Foo struct{
//		Field1 string
//		Field2 bool
//	}
//
// matrix.New(Foo{}).
//
//	Boolean(func(d *Foo, v bool) {d.Field2 = v}).
//	String(func(d*Foo, v string) {d.Field1 = v},)
type Builder[T any] interface {
	Boolean(func(dst *T, v bool)) Builder[T]
	String(m func(dst *T, v string), options ...string) Builder[T]
	Int(m func(dst *T, v int), options ...int) Builder[T]
	Int64(m func(dst *T, v int64), options ...int64) Builder[T]
	Uint64(m func(dst *T, v uint64), options ...uint64) Builder[T]
	Float64(m func(dst *T, v float64), options ...float64) Builder[T]
	Duration(m func(dst *T, v time.Duration), options ...time.Duration) Builder[T]
	Time(m func(dst *T, v time.Time), options ...time.Time) Builder[T]
	Perm() iter.Seq[T]
}

type M[T any] struct {
	mutations [][]func(*T)
}

func New[T any]() *M[T] {
	return &M[T]{}
}

func Assign[T any, V any](m *M[T], fn func(dst *T, v V), options ...V) *M[T] {
	group := make([]func(*T), 0, len(options))
	for _, opt := range options {
		group = append(group, func(dst *T) { fn(dst, opt) })
	}
	m.mutations = append(m.mutations, group)
	return m
}

func (m *M[T]) Boolean(fn func(dst *T, v bool)) Builder[T] {
	return Assign(m, fn, true, false)
}

func (m *M[T]) String(fn func(dst *T, v string), options ...string) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Int(fn func(dst *T, v int), options ...int) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Int64(fn func(dst *T, v int64), options ...int64) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Uint64(fn func(dst *T, v uint64), options ...uint64) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Float64(fn func(dst *T, v float64), options ...float64) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Duration(fn func(dst *T, v time.Duration), options ...time.Duration) Builder[T] {
	return Assign(m, fn, options...)
}

func (m *M[T]) Time(fn func(dst *T, v time.Time), options ...time.Time) Builder[T] {
	return Assign(m, fn, options...)
}

// Perm yields the cartesian product of all mutation groups, the last
// registered group varying fastest.
func (m *M[T]) Perm() iter.Seq[T] {
	return func(yield func(T) bool) {
		dims := make([]permute.Dimension, 0, len(m.mutations))
		for _, group := range m.mutations {
			values := make([]any, 0, len(group))
			for _, fn := range group {
				values = append(values, fn)
			}
			dims = append(dims, permute.Values(values...))
		}

		it := permute.NewOdometer(permute.NewSet(dims...))
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			var result T
			for _, v := range c.Values {
				v.(func(*T))(&result)
			}

			if !yield(result) {
				return
			}
		}
	}
}
