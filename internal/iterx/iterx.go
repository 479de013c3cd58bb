package iterx

import (
	"iter"
)

// Seq is an iterator over values of type T that also carries an error.
// the error is only meaningful once iteration has completed.
type Seq[T any] interface {
	Each() iter.Seq[T]
	Err() error
}

type seq[T any] struct {
	err error
	fn  func(yield func(T) bool) error
}

// New constructs a Seq[T] from a function that drives iteration and returns any
// error that occurred. The error is available via Err() after Each is consumed.
func New[T any](fn func(yield func(T) bool) error) Seq[T] {
	return &seq[T]{fn: fn}
}

func (s *seq[T]) Each() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.err = s.fn(yield)
	}
}

func (s *seq[T]) Err() error {
	return s.err
}

// Error returns a Seq that yields nothing and immediately returns err.
func Error[T any](err error) Seq[T] {
	return New[T](func(yield func(T) bool) error {
		return err
	})
}

// Collect drains the sequence into a slice, returning the carried error.
func Collect[T any](s Seq[T]) ([]T, error) {
	var results []T
	for v := range s.Each() {
		results = append(results, v)
	}

	return results, s.Err()
}
