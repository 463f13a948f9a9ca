// Package helpers is imported by code generated by variantgen. It only
// depends on the standard library.
package helpers

import (
	"errors"
	"fmt"
)

// ErrVariantMismatch is matched by every error a generated projection returns
// when the union holds another variant.
var ErrVariantMismatch = errors.New("union holds another variant")

// MismatchError is returned by a projection whose union value holds a
// different variant. Value is the projection's input, unmodified.
type MismatchError[T any] struct {
	// Variant is the variant the projection expected.
	Variant string
	Value   T
}

func (e *MismatchError[T]) Error() string {
	return fmt.Sprintf("%s: expected %s", ErrVariantMismatch, e.Variant)
}

// Is makes errors.Is(err, ErrVariantMismatch) true for every MismatchError.
func (e *MismatchError[T]) Is(target error) bool {
	return target == ErrVariantMismatch
}

// Original returns the union value a failed projection was called with.
func Original[T any](err error) (T, bool) {
	var mismatch *MismatchError[T]
	if errors.As(err, &mismatch) {
		return mismatch.Value, true
	}
	var zero T
	return zero, false
}

// Alloc sets *field to a new zero T and returns it. Lifts use it to fill a
// payload without spelling out its (possibly anonymous) type.
func Alloc[T any](field **T) *T {
	*field = new(T)
	return *field
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
