package demo

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/tenlog-ml/tenlog/internal/graded"
)

// BasisCatalog prints the graded monomial basis for three variables up to
// degree three, with each monomial's multinomial weight, and checks the count
// against the enclosing digit system.
func BasisCatalog(w io.Writer) error {
	const vars, maxDegree = 3, 3

	basis, err := graded.Basis(vars, maxDegree)
	if err != nil {
		return err
	}

	heading(w, "Graded monomial basis")
	tbl := newTable()
	tbl.Headers("monomial", "degree", "orderings")
	for _, m := range basis {
		tbl.Row(m.String(), fmt.Sprint(m.Degree()), fmt.Sprint(m.Coefficient()))
	}
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintf(w, "%d monomials of degree <= %d in %d variables\n", len(basis), maxDegree, vars)

	// The exponent tuples live inside the digit system with radix
	// maxDegree+1 per variable; the basis keeps the low-degree corner.
	system, err := graded.NewDigitSystem(maxDegree+1, maxDegree+1, maxDegree+1)
	if err != nil {
		return err
	}
	lowDegree := 0
	system.Each(func(_ int, digits []int) {
		if graded.Monomial(digits).Degree() <= maxDegree {
			lowDegree++
		}
	})
	note(w, "digit system holds %s tuples, %d of them at degree <= %d",
		humanize.Comma(int64(system.Size())), lowDegree, maxDegree)

	big := graded.BasisSize(6, 8)
	note(w, "degree <= 8 in 6 variables already spans %s monomials", humanize.Comma(int64(big)))
	return nil
}
