// Copyright 2025 Tenlog. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package semiring provides the public API for Tenlog's pluggable
// contraction algebras.
//
// A semiring swaps the add/multiply pair used by einsum, reinterpreting the
// same contraction: Boolean turns matrix multiplication into graph
// reachability, Counting counts paths, Tropical finds shortest paths,
// Viterbi and Probabilistic score them.
//
// Example:
//
//	reach, err := semiring.Einsum(semiring.Boolean, "ij,jk->ik", adj, adj)
//	cheap, err := semiring.Einsum(semiring.Tropical, "ij,jk->ik", fares, fares)
package semiring

import (
	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/semiring"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Semiring packages the algebraic strategy used by a contraction: the Add
// and Mul operations, their identities, and the conversion to and from the
// float64 tensor storage.
type Semiring[T any] = semiring.Semiring[T]

// The built-in backends.
var (
	// Boolean is OR/AND over bool: relational join and reachability.
	Boolean = semiring.Boolean
	// Counting is ordinary +/× over float64: path counting.
	Counting = semiring.Counting
	// Viterbi is max/+ over log-probabilities: most likely path.
	Viterbi = semiring.Viterbi
	// Probabilistic is clamped +/× over [0, 1].
	Probabilistic = semiring.Probabilistic
	// Tropical is min/+ over costs: shortest path.
	Tropical = semiring.Tropical
)

// Einsum contracts the operands under the given semiring. Operand elements
// pass through sr.FromNumber before the contraction and sr.ToNumber after,
// so the result is an ordinary float64 tensor encoding semiring values.
func Einsum[T any](sr Semiring[T], notation string, operands ...*tensor.Tensor) (*tensor.Tensor, error) {
	return einsum.Semiring(sr, notation, operands...)
}
