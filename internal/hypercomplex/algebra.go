// Package hypercomplex implements the Cayley-Dickson number tower (real,
// complex, quaternion, octonion, sedenion and beyond) plus tensors whose
// elements live in one of those algebras.
//
// Every level doubles the previous one: a number of dimension 2h is a pair
// (a, b) of dimension-h halves, multiplied by
//
//	(a, b) · (c, d) = (a·c − conj(d)·b,  d·a + b·conj(c))
//
// with conj(a, b) = (conj(a), −b) and ordinary real arithmetic at dimension 1.
// The doubling is exactly where algebraic structure is lost: multiplication
// stops commuting at the quaternions and stops associating at the octonions,
// so operand order in every product is load-bearing.
package hypercomplex

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// Algebra identifies one level of the Cayley-Dickson tower. Its integer value
// is the number of doublings applied to the reals, so the component dimension
// is 1 << Algebra. Levels past Sedenion have no conventional name and print as
// cayley-dickson(dim).
type Algebra int

// The named tower levels.
const (
	Real       Algebra = iota // dimension 1
	Complex                   // dimension 2
	Quaternion                // dimension 4
	Octonion                  // dimension 8
	Sedenion                  // dimension 16
)

// Dimension returns the number of real components at this level.
func (a Algebra) Dimension() int {
	return 1 << a
}

// String returns the conventional name of the level.
func (a Algebra) String() string {
	switch a {
	case Real:
		return "real"
	case Complex:
		return "complex"
	case Quaternion:
		return "quaternion"
	case Octonion:
		return "octonion"
	case Sedenion:
		return "sedenion"
	default:
		return fmt.Sprintf("cayley-dickson(%d)", a.Dimension())
	}
}

// AlgebraForDimension returns the tower level with the given component count.
// The dimension must be a positive power of two.
func AlgebraForDimension(dim int) (Algebra, error) {
	if dim < 1 || bits.OnesCount(uint(dim)) != 1 {
		return 0, errors.Errorf("hypercomplex dimension must be a positive power of two, got %d", dim)
	}
	return Algebra(bits.TrailingZeros(uint(dim))), nil
}
