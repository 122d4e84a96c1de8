// Copyright 2025 Tenlog. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tenlog-ml/tenlog/internal/einsum"
)

// Einsum contracts the operands under standard sum-of-products arithmetic,
// driven by einsum notation such as "ij,jk->ik". Each input segment binds
// positionally to the dimensions of the matching operand; symbols missing
// from the output segment are summed out.
//
// Example:
//
//	c, err := tensor.Einsum("ij,jk->ik", a, b)  // matrix multiplication
//	s, err := tensor.Einsum("i,i->", x, y)      // dot product
func Einsum(notation string, operands ...*Tensor) (*Tensor, error) {
	return einsum.Einsum(notation, operands...)
}
