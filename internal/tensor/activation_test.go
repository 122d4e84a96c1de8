package tensor

import (
	"math"
	"testing"
)

func TestThreshold(t *testing.T) {
	x, _ := FromSlice("X", "i", Shape{5}, []float64{-1, 0, 0.4, 0.6, 3})
	y := Threshold(x)

	for i, want := range []float64{0, 0, 0, 1, 1} {
		assertEqualFloat(t, want, y.Data()[i], "Threshold")
	}
	// Original is unchanged.
	assertEqualFloat(t, -1, x.Data()[0], "Threshold input intact")
}

func TestSigmoid(t *testing.T) {
	x, _ := FromSlice("X", "i", Shape{3}, []float64{0, 2, -2})
	y := Sigmoid(x)

	assertEqualFloat(t, 0.5, y.Data()[0], "Sigmoid(0)")
	assertEqualFloat(t, 1.0/(1.0+math.Exp(-2)), y.Data()[1], "Sigmoid(2)")
	assertEqualFloat(t, 1.0/(1.0+math.Exp(2)), y.Data()[2], "Sigmoid(-2)")
}

func TestReLU(t *testing.T) {
	x, _ := FromSlice("X", "i", Shape{4}, []float64{-2, -0.5, 0, 3})
	y := ReLU(x)

	for i, want := range []float64{0, 0, 0, 3} {
		assertEqualFloat(t, want, y.Data()[i], "ReLU")
	}
}

func TestSoftmaxVector(t *testing.T) {
	x, _ := FromSlice("X", "i", Shape{3}, []float64{1, 2, 3})
	y := Softmax(x)

	sum := 0.0
	for _, v := range y.Data() {
		sum += v
	}
	assertEqualFloat(t, 1, sum, "softmax sums to one")
	if !(y.Data()[2] > y.Data()[1] && y.Data()[1] > y.Data()[0]) {
		t.Error("softmax should preserve ordering")
	}
}

func TestSoftmaxRows(t *testing.T) {
	x, _ := FromSlice("X", "ij", Shape{2, 2}, []float64{0, 0, 1, 3})
	y := Softmax(x)

	assertEqualFloat(t, 0.5, y.At(0, 0), "uniform row")
	assertEqualFloat(t, 0.5, y.At(0, 1), "uniform row")
	assertEqualFloat(t, 1, y.At(1, 0)+y.At(1, 1), "second row sums to one")
	if y.At(1, 1) <= y.At(1, 0) {
		t.Error("larger logit should get larger probability")
	}
}

func TestSoftmaxNumericalStability(t *testing.T) {
	// Without max subtraction exp(1000) overflows to +Inf.
	x, _ := FromSlice("X", "i", Shape{2}, []float64{1000, 1001})
	y := Softmax(x)

	for _, v := range y.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("softmax produced %v on large inputs", v)
		}
	}
	assertEqualFloat(t, 1, y.Data()[0]+y.Data()[1], "softmax sums to one")
}

func TestSoftmaxPanicsOnRank3(t *testing.T) {
	x, _ := New("X", "ijk", Shape{2, 2, 2})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for rank-3 softmax")
		}
	}()
	Softmax(x)
}
