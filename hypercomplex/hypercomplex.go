// Copyright 2025 Tenlog. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hypercomplex provides the public API for Tenlog's Cayley-Dickson
// number tower and the tensors built over it.
//
// Every level doubles the previous one: complex numbers over the reals,
// quaternions over the complexes, octonions, sedenions, and on upward. One
// multiplication rule covers the whole tower, so quaternion rotation math
// and octonion non-associativity fall out of the same few lines.
//
// Example:
//
//	i := hypercomplex.Unit(hypercomplex.Quaternion, 1)
//	j := hypercomplex.Unit(hypercomplex.Quaternion, 2)
//	k := i.Mul(j) // e3
//
//	q, err := hypercomplex.FromValues("q", "a", hypercomplex.Quaternion,
//	    tensor.Shape{2}, values)
//	out, err := hypercomplex.Einsum("a,a->", q, q)
package hypercomplex

import (
	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/hypercomplex"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Algebra identifies one level of the Cayley-Dickson tower.
type Algebra = hypercomplex.Algebra

// The named tower levels.
const (
	Real       Algebra = hypercomplex.Real       // dimension 1
	Complex    Algebra = hypercomplex.Complex    // dimension 2
	Quaternion Algebra = hypercomplex.Quaternion // dimension 4
	Octonion   Algebra = hypercomplex.Octonion   // dimension 8
	Sedenion   Algebra = hypercomplex.Sedenion   // dimension 16
)

// Number is an immutable hypercomplex value: a coefficient per basis
// element e0..e(d-1) at some tower level.
type Number = hypercomplex.Number

// Tensor is a dense named-index tensor whose elements are hypercomplex
// numbers sharing one algebra.
type Tensor = hypercomplex.Tensor

// AlgebraForDimension returns the tower level with the given component
// count. The dimension must be a positive power of two.
func AlgebraForDimension(dim int) (Algebra, error) {
	return hypercomplex.AlgebraForDimension(dim)
}

// NewReal wraps a float64 as a dimension-1 number.
func NewReal(x float64) Number {
	return hypercomplex.NewReal(x)
}

// NewComplex builds re + im·e1.
func NewComplex(re, im float64) Number {
	return hypercomplex.NewComplex(re, im)
}

// NewQuaternion builds w + x·e1 + y·e2 + z·e3.
func NewQuaternion(w, x, y, z float64) Number {
	return hypercomplex.NewQuaternion(w, x, y, z)
}

// NewOctonion builds an octonion from exactly eight components.
func NewOctonion(components ...float64) (Number, error) {
	return hypercomplex.NewOctonion(components...)
}

// NewSedenion builds a sedenion from exactly sixteen components.
func NewSedenion(components ...float64) (Number, error) {
	return hypercomplex.NewSedenion(components...)
}

// FromComponents builds a number whose level is inferred from the component
// count, which must be a positive power of two.
func FromComponents(components []float64) (Number, error) {
	return hypercomplex.FromComponents(components)
}

// Zero returns the additive identity at the given level.
func Zero(alg Algebra) Number {
	return hypercomplex.Zero(alg)
}

// One returns the multiplicative identity at the given level.
func One(alg Algebra) Number {
	return hypercomplex.One(alg)
}

// Unit returns the i-th basis element at the given level.
func Unit(alg Algebra, i int) Number {
	return hypercomplex.Unit(alg, i)
}

// New creates a zero-filled hypercomplex tensor.
func New(name, indices string, alg Algebra, shape tensor.Shape) (*Tensor, error) {
	return hypercomplex.New(name, indices, alg, shape)
}

// FromSlice creates a tensor from elements in row-major order. Every
// element must belong to alg.
func FromSlice(name, indices string, alg Algebra, shape tensor.Shape, elements []Number) (*Tensor, error) {
	return hypercomplex.FromSlice(name, indices, alg, shape, elements)
}

// FromValues creates a tensor from a flat float64 buffer holding
// alg.Dimension() components per element.
func FromValues(name, indices string, alg Algebra, shape tensor.Shape, values []float64) (*Tensor, error) {
	return hypercomplex.FromValues(name, indices, alg, shape, values)
}

// Einsum contracts hypercomplex operands, all of which must share one
// algebra. Multiplication order inside each product term follows operand
// order, which matters once the algebra stops commuting.
func Einsum(notation string, operands ...*Tensor) (*Tensor, error) {
	return einsum.Hypercomplex(notation, operands...)
}

// SplitActivation applies f independently to every real component of every
// element.
func SplitActivation(t *Tensor, f func(float64) float64) *Tensor {
	return hypercomplex.SplitActivation(t, f)
}

// ComplexReLU is split max(0, x) over complex tensors.
func ComplexReLU(t *Tensor) *Tensor {
	return hypercomplex.ComplexReLU(t)
}

// QuaternionReLU is split max(0, x) over quaternion tensors.
func QuaternionReLU(t *Tensor) *Tensor {
	return hypercomplex.QuaternionReLU(t)
}

// ModulusActivation rescales each element by f applied to its norm,
// preserving phase. Zero elements stay zero.
func ModulusActivation(t *Tensor, f func(float64) float64) *Tensor {
	return hypercomplex.ModulusActivation(t, f)
}
