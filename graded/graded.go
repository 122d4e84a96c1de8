// Copyright 2025 Tenlog. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graded provides the public API for Tenlog's mixed-radix digit
// systems and graded monomial bases.
//
// A DigitSystem is the positional number system behind the contraction
// engine's index arithmetic, exposed for callers that want the same
// odometer enumeration over their own radices. Monomial bases enumerate
// the exponent tuples of bounded total degree that index polynomial
// feature spaces.
//
// Example:
//
//	sys := must.M1(graded.NewDigitSystem(2, 3, 4))
//	sys.Each(func(value int, digits []int) { ... })
//
//	basis, err := graded.Basis(3, 2) // 10 monomials in x0, x1, x2
package graded

import (
	"github.com/tenlog-ml/tenlog/internal/graded"
)

// DigitSystem is a mixed-radix positional number system with the last
// digit fastest.
type DigitSystem = graded.DigitSystem

// Monomial is an exponent per variable.
type Monomial = graded.Monomial

// NewDigitSystem builds a digit system over the given radices, each of
// which must be at least 1.
func NewDigitSystem(radices ...int) (*DigitSystem, error) {
	return graded.NewDigitSystem(radices...)
}

// Basis enumerates all monomials in vars variables with total degree at
// most maxDegree, in graded order.
func Basis(vars, maxDegree int) ([]Monomial, error) {
	return graded.Basis(vars, maxDegree)
}

// BasisSize returns len(Basis(vars, maxDegree)) without enumerating it.
func BasisSize(vars, maxDegree int) int {
	return graded.BasisSize(vars, maxDegree)
}
