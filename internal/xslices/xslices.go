// Package xslices provides small generic slice helpers shared across the engine.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// Number is the constraint for numeric slice helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Product multiplies all elements together. An empty slice has product 1,
// which matches the convention that a rank-0 tensor holds one element.
func Product[T Number](values []T) T {
	p := T(1)
	for _, v := range values {
		p *= v
	}
	return p
}

// Copy returns a fresh copy of the slice. A nil or empty slice yields nil.
func Copy[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// Fill sets every element to value.
func Fill[T any](values []T, value T) {
	for i := range values {
		values[i] = value
	}
}

// Map applies fn to every element and returns the results as a new slice.
func Map[In, Out any](values []In, fn func(In) Out) []Out {
	if values == nil {
		return nil
	}
	out := make([]Out, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

// Max returns the largest element. Panics on an empty slice.
func Max[T constraints.Ordered](values []T) T {
	if len(values) == 0 {
		panic("xslices.Max: empty slice")
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
