// Package semiring defines the pluggable add/multiply algebras that generalize
// einsum's sum-of-products to reachability, counting, best-path and
// shortest-path semantics.
//
// A semiring supplies the two monoids the contraction engine needs: Mul
// combines operand elements into a product term, Add accumulates product terms
// into an output cell. Swapping the semiring reinterprets the same contraction:
// Boolean turns matrix multiplication into relational join/reachability,
// Tropical turns it into shortest path.
//
// The catalog entries below are process-wide read-only values; they are never
// mutated after package initialization.
package semiring

import "math"

// Semiring packages the algebraic strategy used by a contraction.
//
// Zero must be the identity for Add, and One the identity for Mul.
// FromNumber and ToNumber bridge to the float64 tensor storage: they must
// round-trip for every value a tensor actually stores under this semiring.
type Semiring[T any] struct {
	Name string

	Zero T
	One  T

	Add func(a, b T) T
	Mul func(a, b T) T

	FromNumber func(v float64) T
	ToNumber   func(v T) float64
}

// Boolean is the OR/AND semiring over bool. A contraction under Boolean reads
// as relational join: the output entry is true iff some assignment of the
// contracted indices satisfies every operand, which is graph reachability and
// Datalog rule application.
var Boolean = Semiring[bool]{
	Name: "boolean",
	Zero: false,
	One:  true,
	Add:  func(a, b bool) bool { return a || b },
	Mul:  func(a, b bool) bool { return a && b },
	FromNumber: func(v float64) bool {
		return v > 0.5
	},
	ToNumber: func(v bool) float64 {
		if v {
			return 1
		}
		return 0
	},
}

// Counting is the ordinary +/× semiring. Contracting adjacency matrices under
// Counting yields the number of distinct paths witnessing each output entry.
var Counting = Semiring[float64]{
	Name:       "counting",
	Zero:       0,
	One:        1,
	Add:        func(a, b float64) float64 { return a + b },
	Mul:        func(a, b float64) float64 { return a * b },
	FromNumber: func(v float64) float64 { return v },
	ToNumber:   func(v float64) float64 { return v },
}

// Viterbi is the max/+ semiring over log-domain scores: Mul adds log
// probabilities along a path, Add keeps the best path. Tensor entries are
// expected to hold log probabilities already.
var Viterbi = Semiring[float64]{
	Name:       "viterbi",
	Zero:       math.Inf(-1),
	One:        0,
	Add:        math.Max,
	Mul:        func(a, b float64) float64 { return a + b },
	FromNumber: func(v float64) float64 { return v },
	ToNumber:   func(v float64) float64 { return v },
}

// Probabilistic is +/× with results clamped to [0, 1], for working directly
// with probabilities rather than log scores. FromNumber clamps out-of-range
// storage into [0, 1]; in-range values round-trip unchanged.
var Probabilistic = Semiring[float64]{
	Name: "probabilistic",
	Zero: 0,
	One:  1,
	Add: func(a, b float64) float64 {
		return math.Min(1, a+b)
	},
	Mul: func(a, b float64) float64 { return a * b },
	FromNumber: func(v float64) float64 {
		return math.Min(1, math.Max(0, v))
	},
	ToNumber: func(v float64) float64 { return v },
}

// Tropical is the min/+ semiring: Mul accumulates edge weights along a path,
// Add keeps the minimum. Contracting a weight matrix under Tropical computes
// shortest paths; Zero is +Inf ("no path").
var Tropical = Semiring[float64]{
	Name:       "tropical",
	Zero:       math.Inf(1),
	One:        0,
	Add:        math.Min,
	Mul:        func(a, b float64) float64 { return a + b },
	FromNumber: func(v float64) float64 { return v },
	ToNumber:   func(v float64) float64 { return v },
}
