package demo

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"

	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/semiring"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Ancestry derives the ancestor relation from a parent relation by fixpoint:
// each sweep contracts the current relation against Parent to find one-step
// extensions, thresholds the counts back to 0/1, and merges them in. The
// Boolean semiring then reproduces one sweep in a single contraction.
func Ancestry(w io.Writer) error {
	people := []string{"ada", "bea", "cid", "dee"}
	parent := must.M1(tensor.FromMatrix("Parent", "xy", [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	heading(w, "Ancestor closure by einsum fixpoint")
	fmt.Fprintln(w, "parent relation (row is parent of column):")
	fmt.Fprintln(w, matrixTable(parent, people, people))

	plan := must.M1(einsum.Compile("xy,yz->xz", []tensor.Shape{parent.Shape(), parent.Shape()}))
	note(w, "each sweep visits %s joint index states", humanize.Comma(int64(plan.JointSize())))

	ancestor := parent
	for sweep := 1; ; sweep++ {
		paths, err := einsum.Einsum("xy,yz->xz", ancestor, parent)
		if err != nil {
			return err
		}
		next := tensor.Threshold(ancestor.Add(tensor.Threshold(paths)))
		if next.Equal(ancestor) {
			fmt.Fprintf(w, "fixpoint after %d sweeps\n", sweep)
			break
		}
		ancestor = next
		fmt.Fprintf(w, "after sweep %d:\n%s\n", sweep, matrixTable(ancestor, people, people))
	}

	boolean, err := einsum.Semiring(semiring.Boolean, "xy,yz->xz", parent, parent)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "grandparents in one Boolean contraction:")
	fmt.Fprintln(w, matrixTable(boolean, people, people))

	twoStep, err := einsum.Einsum("xy,yz->xz", parent, parent)
	if err != nil {
		return err
	}
	if boolean.Equal(tensor.Threshold(twoStep)) {
		note(w, "thresholded counting and the Boolean semiring agree")
	}
	return nil
}
