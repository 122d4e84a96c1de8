// Copyright 2025 Tenlog. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Tenlog's named-index tensors.
//
// A tensor carries a name, one index symbol per dimension, a shape and a
// dense float64 buffer in row-major order. Index symbols are labels for
// the dimensions; einsum notation binds to operand dimensions by position,
// so the symbols mainly serve readable printing and self-describing code.
//
// Example:
//
//	parent := must.M1(tensor.FromMatrix("parent", "ij", [][]float64{
//	    {0, 1, 0, 0},
//	    {0, 0, 1, 1},
//	    {0, 0, 0, 0},
//	    {0, 0, 0, 0},
//	}))
//	grandparent, err := tensor.Einsum("ij,jk->ik", parent, parent)
package tensor

import (
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Shape lists the extent of each tensor dimension.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense named-index tensor over float64.
type Tensor = tensor.Tensor

// New creates a zero-filled tensor. The indices string must contain exactly
// one symbol per dimension.
//
// Example:
//
//	w := must.M1(tensor.New("weights", "io", tensor.Shape{3, 4}))
func New(name, indices string, shape Shape) (*Tensor, error) {
	return tensor.New(name, indices, shape)
}

// Ones creates a tensor filled with ones.
func Ones(name, indices string, shape Shape) (*Tensor, error) {
	return tensor.Ones(name, indices, shape)
}

// Random creates a tensor filled with uniform values in [-1, 1].
func Random(name, indices string, shape Shape) (*Tensor, error) {
	return tensor.Random(name, indices, shape)
}

// FromSlice creates a tensor from a flat row-major buffer. The buffer is
// copied.
func FromSlice(name, indices string, shape Shape, data []float64) (*Tensor, error) {
	return tensor.FromSlice(name, indices, shape, data)
}

// FromMatrix creates a rank-2 tensor from rows. All rows must have the
// same length.
func FromMatrix(name, indices string, rows [][]float64) (*Tensor, error) {
	return tensor.FromMatrix(name, indices, rows)
}

// FromVector creates a rank-1 tensor from values.
func FromVector(name string, index rune, values []float64) (*Tensor, error) {
	return tensor.FromVector(name, index, values)
}

// Identity creates the n×n identity matrix.
func Identity(name, indices string, n int) (*Tensor, error) {
	return tensor.Identity(name, indices, n)
}

// ParseIndices validates an index string against a shape and returns the
// symbols, one rune per dimension.
func ParseIndices(indices string, shape Shape) ([]rune, error) {
	return tensor.ParseIndices(indices, shape)
}

// Threshold maps every element to 1 if it is greater than 0.5, else 0.
// Composing with a Counting contraction recovers Boolean reachability.
func Threshold(t *Tensor) *Tensor {
	return tensor.Threshold(t)
}

// Sigmoid applies the logistic function elementwise.
func Sigmoid(t *Tensor) *Tensor {
	return tensor.Sigmoid(t)
}

// ReLU applies max(0, x) elementwise.
func ReLU(t *Tensor) *Tensor {
	return tensor.ReLU(t)
}

// Softmax normalizes each row of a rank-2 tensor to a probability
// distribution.
func Softmax(t *Tensor) *Tensor {
	return tensor.Softmax(t)
}
