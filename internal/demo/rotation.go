package demo

import (
	"fmt"
	"io"
	"math"

	"github.com/janpfeifer/must"

	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/hypercomplex"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Rotation rotates a 3-D frame with a quaternion sandwich product, checks the
// frame's self-product under hypercomplex einsum, and shows the octonion
// associator breaking.
func Rotation(w io.Writer) error {
	heading(w, "Quaternion rotation")

	// Quarter turn about the z axis.
	angle := math.Pi / 2
	q := must.M1(hypercomplex.FromComponents([]float64{
		math.Cos(angle / 2), 0, 0, math.Sin(angle / 2),
	}))
	qInv := q.Inverse()

	axes := []string{"x", "y", "z"}
	frame := must.M1(hypercomplex.FromSlice("frame", "a", hypercomplex.Quaternion, tensor.Shape{3},
		[]hypercomplex.Number{
			hypercomplex.Unit(hypercomplex.Quaternion, 1),
			hypercomplex.Unit(hypercomplex.Quaternion, 2),
			hypercomplex.Unit(hypercomplex.Quaternion, 3),
		}))
	rotated := frame.Apply(func(v hypercomplex.Number) hypercomplex.Number {
		return q.Mul(v).Mul(qInv)
	})

	fmt.Fprintf(w, "q = %s rotates the frame a quarter turn about z:\n", q)
	for i, axis := range axes {
		fmt.Fprintf(w, "  %s-axis -> %s\n", axis, tidy(rotated.At(i)))
	}

	selfProduct, err := einsum.Hypercomplex("a,a->", rotated, rotated)
	if err != nil {
		return err
	}
	note(w, "frame self-product sum v·v stays %s after rotation", tidy(selfProduct.At()))

	heading(w, "Octonion associator")
	e1 := hypercomplex.Unit(hypercomplex.Octonion, 1)
	e2 := hypercomplex.Unit(hypercomplex.Octonion, 2)
	e4 := hypercomplex.Unit(hypercomplex.Octonion, 4)

	left := e1.Mul(e2).Mul(e4)
	right := e1.Mul(e2.Mul(e4))
	fmt.Fprintf(w, "(e1*e2)*e4 = %s\n", left)
	fmt.Fprintf(w, "e1*(e2*e4) = %s\n", right)
	fmt.Fprintf(w, "associator norm |(AB)C - A(BC)| = %g\n", left.Sub(right).Norm())
	note(w, "octonion products depend on grouping; the engine folds strictly left-to-right")
	return nil
}

// tidy rounds components to nine decimals so exact geometric results print
// without float noise.
func tidy(n hypercomplex.Number) hypercomplex.Number {
	comps := n.Components()
	for i, v := range comps {
		r := math.Round(v*1e9) / 1e9
		if r == 0 {
			r = 0 // normalize -0
		}
		comps[i] = r
	}
	return must.M1(hypercomplex.FromComponents(comps))
}
