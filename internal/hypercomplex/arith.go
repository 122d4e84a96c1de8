package hypercomplex

import (
	"math"

	"github.com/pkg/errors"
)

// The slice-level helpers below implement the tower by structural recursion on
// half-dimension component slices. Every tower level, the generic
// arbitrary-dimension case included, goes through the same recursion; there
// are no per-algebra multiplication tables.

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func subVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func negVec(a []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = -a[i]
	}
	return out
}

func scaleVec(a []float64, c float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * c
	}
	return out
}

// conjVec negates every component except the first: conj(a, b) = (conj(a), −b)
// bottoms out at conj(real) = real.
func conjVec(a []float64) []float64 {
	out := make([]float64, len(a))
	out[0] = a[0]
	for i := 1; i < len(a); i++ {
		out[i] = -a[i]
	}
	return out
}

// mulVec multiplies by the Cayley-Dickson doubling rule
//
//	(a, b) · (c, d) = (a·c − conj(d)·b,  d·a + b·conj(c))
//
// recursing on halves until dimension 1, where it is real multiplication.
// The factor order inside each recursive product follows the rule exactly:
// from the quaternions up the halves stop commuting, so reordering any factor
// changes the result.
func mulVec(x, y []float64) []float64 {
	if len(x) == 1 {
		return []float64{x[0] * y[0]}
	}
	h := len(x) / 2
	a, b := x[:h], x[h:]
	c, d := y[:h], y[h:]

	left := subVec(mulVec(a, c), mulVec(conjVec(d), b))
	right := addVec(mulVec(d, a), mulVec(b, conjVec(c)))

	out := make([]float64, len(x))
	copy(out[:h], left)
	copy(out[h:], right)
	return out
}

func normSqVec(a []float64) float64 {
	s := 0.0
	for _, v := range a {
		s += v * v
	}
	return s
}

// sameAlgebra panics unless both numbers live in the same tower level.
// Mixing levels inside one arithmetic chain is a programming error.
func sameAlgebra(op string, a, b Number) {
	if a.Algebra() != b.Algebra() {
		panic(errors.Errorf("%s: algebra mismatch: %s vs %s", op, a.Algebra(), b.Algebra()))
	}
}

// Add returns n + o. Panics if the algebras differ.
func (n Number) Add(o Number) Number {
	sameAlgebra("add", n, o)
	return makeNumber(n.Algebra(), addVec(n.raw(), o.raw()))
}

// Sub returns n − o. Panics if the algebras differ.
func (n Number) Sub(o Number) Number {
	sameAlgebra("sub", n, o)
	return makeNumber(n.Algebra(), subVec(n.raw(), o.raw()))
}

// Neg returns −n.
func (n Number) Neg() Number {
	return makeNumber(n.Algebra(), negVec(n.raw()))
}

// Conjugate returns the conjugate: the first component kept, all others
// negated.
func (n Number) Conjugate() Number {
	return makeNumber(n.Algebra(), conjVec(n.raw()))
}

// Mul returns the product n·o under the algebra's multiplication rule.
// Panics if the algebras differ.
//
// Multiplication is not commutative from Quaternion up and not associative
// from Octonion up; callers must preserve operand order.
func (n Number) Mul(o Number) Number {
	sameAlgebra("mul", n, o)
	return makeNumber(n.Algebra(), mulVec(n.raw(), o.raw()))
}

// Scale multiplies every component by the real scalar c.
func (n Number) Scale(c float64) Number {
	return makeNumber(n.Algebra(), scaleVec(n.raw(), c))
}

// NormSquared returns the sum of squared components.
func (n Number) NormSquared() float64 {
	return normSqVec(n.raw())
}

// Norm returns the Euclidean norm.
func (n Number) Norm() float64 {
	return math.Sqrt(n.NormSquared())
}

// Inverse returns conj(n)/normSquared(n). For a zero-norm number the
// components come out Inf or NaN. From the sedenions up the algebra has zero
// divisors, so n.Mul(x).Div(n) is not guaranteed to recover x even when the
// norm is positive.
func (n Number) Inverse() Number {
	return makeNumber(n.Algebra(), scaleVec(conjVec(n.raw()), 1/normSqVec(n.raw())))
}

// Div returns n · conj(o) / normSquared(o), the right division by o.
// Panics if the algebras differ.
//
// This is a true inverse multiplication only while the algebra is a division
// algebra (through the octonions). For sedenions and beyond a zero divisor o
// has positive norm yet no inverse, and Div silently returns a value that does
// not satisfy result·o == n; a zero-norm o yields Inf/NaN components. Neither
// case is detected here.
func (n Number) Div(o Number) Number {
	sameAlgebra("div", n, o)
	q := mulVec(n.raw(), conjVec(o.raw()))
	return makeNumber(n.Algebra(), scaleVec(q, 1/normSqVec(o.raw())))
}

// InDelta reports whether both numbers share an algebra and all components
// agree within delta.
func (n Number) InDelta(o Number, delta float64) bool {
	if n.Algebra() != o.Algebra() {
		return false
	}
	a, b := n.raw(), o.raw()
	for i := range a {
		if math.Abs(a[i]-b[i]) > delta {
			return false
		}
	}
	return true
}
