// Package errorsx provides utility functions for handling errors.
package errorsx

import (
	"log"

	"github.com/pkg/errors"
)

// New returns an error with the supplied message.
func New(message string) error {
	return errors.New(message)
}

// Errorf formats according to a format specifier and returns an error.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Wrap an error with a message, returns nil when err is nil.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf an error with a formatted message, returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace, returns nil when err is nil.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Compact returns the first non nil error.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Zero returns the value discarding the error.
func Zero[T any](v T, err error) T {
	if err != nil {
		log.Println(err)
	}

	var zero T
	if err != nil {
		return zero
	}

	return v
}

// Must returns the value or panics when err is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// Log the error if not nil.
func Log(err error) {
	if err == nil {
		return
	}

	log.Output(2, err.Error())
}

// String returns the error message or the provided fallback when err is nil.
func String(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	return err.Error()
}
