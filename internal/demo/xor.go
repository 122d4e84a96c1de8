package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"

	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// XOR trains a two-layer perceptron on the XOR truth table. The engine has no
// autodiff; every gradient entry is a central finite difference, two forward
// passes per weight. Slow and exact enough, like the rest of the engine.
func XOR(w io.Writer) error {
	const (
		epochs = 4000
		lr     = 0.8
		eps    = 1e-4
	)

	// The third input column is a constant 1 so the bias is a plain weight.
	inputs := must.M1(tensor.FromMatrix("X", "bi", [][]float64{
		{0, 0, 1},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}))
	targets := must.M1(tensor.FromMatrix("Y", "bo", [][]float64{
		{0}, {1}, {1}, {0},
	}))

	hiddenW := must.M1(tensor.FromMatrix("W1", "ih", [][]float64{
		{0.6, -0.7, 0.5, 0.3},
		{0.7, 0.6, -0.4, -0.5},
		{-0.3, 0.2, 0.1, -0.2},
	}))
	outW := must.M1(tensor.FromMatrix("W2", "ho", [][]float64{
		{0.5}, {-0.6}, {0.4}, {0.3}, {-0.1},
	}))

	forward := func() (*tensor.Tensor, error) {
		hidden, err := einsum.Einsum("bi,ih->bh", inputs, hiddenW)
		if err != nil {
			return nil, err
		}
		out, err := einsum.Einsum("bh,ho->bo", withBiasColumn(tensor.Sigmoid(hidden)), outW)
		if err != nil {
			return nil, err
		}
		return tensor.Sigmoid(out), nil
	}
	loss := func() (float64, error) {
		pred, err := forward()
		if err != nil {
			return 0, err
		}
		diff := pred.Sub(targets)
		return diff.Mul(diff).Sum() / float64(diff.NumElements()), nil
	}

	heading(w, "XOR by finite differences")
	initial, err := loss()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(epochs,
		progressbar.OptionSetDescription("training: "),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("epochs"),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetWriter(w),
	)
	params := []*tensor.Tensor{hiddenW, outW}
	for epoch := 0; epoch < epochs; epoch++ {
		grads := make([][]float64, len(params))
		for pi, p := range params {
			data := p.Data()
			grads[pi] = make([]float64, len(data))
			for i := range data {
				orig := data[i]
				data[i] = orig + eps
				plus, err := loss()
				if err != nil {
					return err
				}
				data[i] = orig - eps
				minus, err := loss()
				if err != nil {
					return err
				}
				data[i] = orig
				grads[pi][i] = (plus - minus) / (2 * eps)
			}
		}
		for pi, p := range params {
			data := p.Data()
			for i := range data {
				data[i] -= lr * grads[pi][i]
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(w)

	final, err := loss()
	if err != nil {
		return err
	}
	pred, err := forward()
	if err != nil {
		return err
	}
	for b := 0; b < 4; b++ {
		fmt.Fprintf(w, "%.0f xor %.0f -> %.2f (want %.0f)\n",
			inputs.At(b, 0), inputs.At(b, 1), pred.At(b, 0), targets.At(b, 0))
	}
	fmt.Fprintf(w, "mean squared error %.4f -> %.4f over %s epochs\n",
		initial, final, humanize.Comma(int64(epochs)))
	return nil
}

// withBiasColumn widens a rank-2 tensor by one trailing column of ones.
func withBiasColumn(t *tensor.Tensor) *tensor.Tensor {
	shape := t.Shape()
	out := must.M1(tensor.Ones(t.Name, t.IndexString(), tensor.Shape{shape[0], shape[1] + 1}))
	for r := 0; r < shape[0]; r++ {
		for c := 0; c < shape[1]; c++ {
			out.Set(t.At(r, c), r, c)
		}
	}
	return out
}
