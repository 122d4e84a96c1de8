package graded

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Monomial is an exponent tuple over a fixed variable set: Monomial{2, 0, 1}
// is x0²·x2.
type Monomial []int

// Degree returns the total degree, the sum of all exponents.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

// String renders the monomial in the usual power-product form, "1" for the
// constant.
func (m Monomial) String() string {
	var parts []string
	for v, e := range m {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, fmt.Sprintf("x%d", v))
		default:
			parts = append(parts, fmt.Sprintf("x%d^%d", v, e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "*")
}

// Coefficient returns the multinomial coefficient degree! / (e0!·e1!·…),
// the number of distinct orderings of the monomial's variable occurrences.
// Computed as a product of binomials over exponent prefix sums, so no
// factorial is ever materialized.
func (m Monomial) Coefficient() int {
	coeff := 1
	sum := 0
	for _, e := range m {
		if e < 0 {
			panic(errors.Errorf("monomial %v: negative exponent", []int(m)))
		}
		sum += e
		coeff *= combin.Binomial(sum, e)
	}
	return coeff
}

// BasisSize returns the number of monomials in vars variables with total
// degree at most maxDegree: C(vars+maxDegree, vars).
func BasisSize(vars, maxDegree int) int {
	return combin.Binomial(vars+maxDegree, vars)
}

// Basis enumerates every monomial in vars variables of total degree at most
// maxDegree in graded lexicographic order: by degree first, then
// lexicographically on exponents with the lowest-numbered variable dominant.
// Basis(2, 2) is 1, x0, x1, x0², x0·x1, x1².
func Basis(vars, maxDegree int) ([]Monomial, error) {
	if vars < 1 {
		return nil, errors.Errorf("graded basis needs at least one variable, got %d", vars)
	}
	if maxDegree < 0 {
		return nil, errors.Errorf("graded basis degree must not be negative, got %d", maxDegree)
	}
	basis := make([]Monomial, 0, BasisSize(vars, maxDegree))
	scratch := make(Monomial, vars)
	for degree := 0; degree <= maxDegree; degree++ {
		basis = appendDegree(basis, scratch, 0, degree)
	}
	return basis, nil
}

// appendDegree emits every way to spend exactly remaining degree on the
// variables from position v on, highest exponent for the current variable
// first.
func appendDegree(basis []Monomial, scratch Monomial, v, remaining int) []Monomial {
	if v == len(scratch)-1 {
		scratch[v] = remaining
		basis = append(basis, append(Monomial(nil), scratch...))
		return basis
	}
	for e := remaining; e >= 0; e-- {
		scratch[v] = e
		basis = appendDegree(basis, scratch, v+1, remaining-e)
	}
	return basis
}
