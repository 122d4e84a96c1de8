// Package graded holds the combinatorial catalogs behind polynomial feature
// construction: mixed-radix digit systems, the graded monomial basis of
// bounded total degree, and multinomial coefficients. Everything here is
// read-only once built and independent of the tensor packages.
package graded

import (
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/xslices"
)

// DigitSystem is a mixed-radix positional number system: position p holds a
// digit in [0, radix[p]), and the last position varies fastest, matching the
// row-major layout of tensor coordinates.
type DigitSystem struct {
	radices []int
	strides []int
	size    int
}

// NewDigitSystem builds a system over the given radices, each at least 1.
func NewDigitSystem(radices ...int) (*DigitSystem, error) {
	for p, r := range radices {
		if r < 1 {
			return nil, errors.Errorf("digit system: radix at position %d must be at least 1, got %d", p, r)
		}
	}
	rs := xslices.Copy(radices)
	strides := make([]int, len(rs))
	stride := 1
	for p := len(rs) - 1; p >= 0; p-- {
		strides[p] = stride
		stride *= rs[p]
	}
	return &DigitSystem{radices: rs, strides: strides, size: xslices.Product(rs)}, nil
}

// Size returns the number of representable values, the product of all
// radices. A system with no positions has size 1, the empty tuple.
func (s *DigitSystem) Size() int {
	return s.size
}

// Radices returns a copy of the per-position radices.
func (s *DigitSystem) Radices() []int {
	return xslices.Copy(s.radices)
}

// Digits decodes a flat value into its digit tuple. Panics when the value is
// out of range.
func (s *DigitSystem) Digits(value int) []int {
	if value < 0 || value >= s.size {
		panic(errors.Errorf("digit system: value %d out of range [0, %d)", value, s.size))
	}
	digits := make([]int, len(s.radices))
	for p, stride := range s.strides {
		digits[p] = value / stride % s.radices[p]
	}
	return digits
}

// Value encodes a digit tuple back into its flat value. Panics on a wrong
// tuple length or an out-of-range digit.
func (s *DigitSystem) Value(digits ...int) int {
	if len(digits) != len(s.radices) {
		panic(errors.Errorf("digit system: got %d digits for %d positions", len(digits), len(s.radices)))
	}
	value := 0
	for p, d := range digits {
		if d < 0 || d >= s.radices[p] {
			panic(errors.Errorf("digit system: digit %d out of range [0, %d) at position %d", d, s.radices[p], p))
		}
		value += d * s.strides[p]
	}
	return value
}

// Each visits every tuple in counting order, passing the flat value and the
// digit tuple. The tuple slice is reused between calls; visitors that retain
// it must copy.
func (s *DigitSystem) Each(visit func(value int, digits []int)) {
	digits := make([]int, len(s.radices))
	for value := 0; ; value++ {
		visit(value, digits)

		// Increment with carry, last position fastest.
		p := len(digits) - 1
		for p >= 0 {
			digits[p]++
			if digits[p] < s.radices[p] {
				break
			}
			digits[p] = 0
			p--
		}
		if p < 0 {
			return
		}
	}
}
