package tensor

import (
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/parallel"
	"github.com/tenlog-ml/tenlog/internal/xslices"
)

// elementwise schedules the per-element loops below. Small tensors stay on
// the calling goroutine.
var elementwise = parallel.DefaultConfig()

// Add performs element-wise addition. Both tensors must have identical shapes;
// index symbols and name are taken from the receiver.
// Panics on a shape mismatch.
//
// Example:
//
//	c := a.Add(b)
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.zipWith("add", other, func(a, b float64) float64 { return a + b })
}

// Sub performs element-wise subtraction. Panics on a shape mismatch.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.zipWith("sub", other, func(a, b float64) float64 { return a - b })
}

// Mul performs element-wise (Hadamard) multiplication.
// Panics on a shape mismatch. For contracting products use einsum.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.zipWith("mul", other, func(a, b float64) float64 { return a * b })
}

func (t *Tensor) zipWith(op string, other *Tensor, fn func(a, b float64) float64) *Tensor {
	if !t.shape.Equal(other.shape) {
		panic(errors.Errorf("%s: shape mismatch %v vs %v", op, t.shape, other.shape))
	}
	out := t.Clone()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = fn(t.data[i], other.data[i])
	}, elementwise)
	return out
}

// Scale multiplies every element by the scalar c.
func (t *Tensor) Scale(c float64) *Tensor {
	return t.Apply(func(v float64) float64 { return v * c })
}

// Apply returns a copy with fn applied to every element. fn must be safe to
// call from multiple goroutines.
func (t *Tensor) Apply(fn func(float64) float64) *Tensor {
	out := t.Clone()
	parallel.For(len(out.data), func(i int) {
		out.data[i] = fn(out.data[i])
	}, elementwise)
	return out
}

// Transpose swaps the two dimensions of a rank-2 tensor, reordering both the
// data and the index symbols: transposing "ij" yields "ji", so transposing
// twice restores the original tensor exactly.
// Panics if the tensor is not rank 2.
func (t *Tensor) Transpose() *Tensor {
	if len(t.shape) != 2 {
		panic(errors.Errorf("transpose: only rank-2 tensors supported, got rank %d", len(t.shape)))
	}
	rows, cols := t.shape[0], t.shape[1]
	out := newTensor(t.Name,
		[]rune{t.indices[1], t.indices[0]},
		Shape{cols, rows},
		make([]float64, len(t.data)))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	s := 0.0
	for _, v := range t.data {
		s += v
	}
	return s
}

// MaxAbs returns the largest absolute element value.
func (t *Tensor) MaxAbs() float64 {
	return xslices.Max(xslices.Map(t.data, func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}))
}
