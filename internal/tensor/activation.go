package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// Threshold maps every element to 1 if it is greater than 0.5 and to 0
// otherwise, turning accumulated counts or scores back into Boolean 0/1
// signals. The cutoff sits between the 0 and 1 of clean Boolean tensors, so
// any positive contraction count is kept and exact zeros are dropped.
func Threshold(t *Tensor) *Tensor {
	return t.Apply(func(v float64) float64 {
		if v > 0.5 {
			return 1
		}
		return 0
	})
}

// Sigmoid applies the logistic function 1/(1+exp(-x)) element-wise.
func Sigmoid(t *Tensor) *Tensor {
	return t.Apply(func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// ReLU applies max(0, x) element-wise.
func ReLU(t *Tensor) *Tensor {
	return t.Apply(func(v float64) float64 {
		return math.Max(0, v)
	})
}

// Softmax normalizes a rank-1 tensor into a probability distribution, or each
// row of a rank-2 tensor independently. Higher ranks are not supported.
// Panics on rank > 2.
//
// The implementation subtracts the row maximum before exponentiating for
// numerical stability.
func Softmax(t *Tensor) *Tensor {
	switch len(t.shape) {
	case 1:
		out := t.Clone()
		softmaxRow(out.data)
		return out
	case 2:
		out := t.Clone()
		cols := t.shape[1]
		for r := 0; r < t.shape[0]; r++ {
			softmaxRow(out.data[r*cols : (r+1)*cols])
		}
		return out
	default:
		panic(errors.Errorf("softmax: only rank-1 and rank-2 tensors supported, got rank %d", len(t.shape)))
	}
}

// softmaxRow normalizes one contiguous row in place.
func softmaxRow(row []float64) {
	maxVal := math.Inf(-1)
	for _, v := range row {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range row {
		e := math.Exp(v - maxVal)
		row[i] = e
		sum += e
	}

	for i := range row {
		row[i] /= sum
	}
}
