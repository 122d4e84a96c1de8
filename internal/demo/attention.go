package demo

import (
	"fmt"
	"io"
	"math"

	"github.com/janpfeifer/must"

	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Attention runs single-head scaled dot-product attention on three tokens:
// scores from one contraction, a row softmax, and a second contraction mixing
// the value vectors.
func Attention(w io.Writer) error {
	tokens := []string{"the", "cat", "sat"}
	dims := []string{"d0", "d1"}

	queries := must.M1(tensor.FromMatrix("Q", "td", [][]float64{
		{1.0, 0.2},
		{0.1, 1.1},
		{0.9, 0.8},
	}))
	keys := must.M1(tensor.FromMatrix("K", "sd", [][]float64{
		{1.1, 0.1},
		{0.0, 1.0},
		{0.8, 0.9},
	}))
	values := must.M1(tensor.FromMatrix("V", "sd", [][]float64{
		{0.5, -0.5},
		{-0.4, 0.6},
		{1.0, 1.0},
	}))

	heading(w, "Scaled dot-product attention as two contractions")

	scores, err := einsum.Einsum("td,sd->ts", queries, keys)
	if err != nil {
		return err
	}
	weights := tensor.Softmax(scores.Scale(1 / math.Sqrt(2)))
	fmt.Fprintln(w, "attention weights (rows sum to 1):")
	fmt.Fprintln(w, matrixTable(weights, tokens, tokens))

	context, err := einsum.Einsum("ts,sd->td", weights, values)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "context vectors:")
	fmt.Fprintln(w, matrixTable(context, tokens, dims))

	note(w, "einsum(\"td,sd->ts\") scores, softmax, einsum(\"ts,sd->td\") mixes")
	return nil
}
