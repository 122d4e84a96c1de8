package demo

import (
	"fmt"
	"io"
	"math"

	"github.com/janpfeifer/must"

	"github.com/tenlog-ml/tenlog/internal/einsum"
	"github.com/tenlog-ml/tenlog/internal/semiring"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Paths reads one two-hop route question under three semirings: counting
// enumerates the routes, tropical prices the cheapest one, Viterbi scores the
// most reliable one. The notation never changes; only the algebra does.
func Paths(w io.Writer) error {
	cities := []string{"lis", "mad", "par", "ber"}

	heading(w, "One notation, three semirings")

	// lis flies to mad and par; both fly to ber.
	hops := must.M1(tensor.FromMatrix("Hops", "xy", [][]float64{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}))
	counts, err := einsum.Semiring(semiring.Counting, "xy,yz->xz", hops, hops)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "two-hop route counts:")
	fmt.Fprintln(w, matrixTable(counts, cities, cities))

	inf := math.Inf(1)
	fares := must.M1(tensor.FromMatrix("Fares", "xy", [][]float64{
		{inf, 3, 1, inf},
		{inf, inf, inf, 4},
		{inf, inf, inf, 9},
		{inf, inf, inf, inf},
	}))
	cheapest, err := einsum.Semiring(semiring.Tropical, "xy,yz->xz", fares, fares)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "cheapest two-hop fare (tropical min/+):")
	fmt.Fprintln(w, matrixTable(cheapest, cities, cities))
	fmt.Fprintf(w, "lis to ber: %g via mad (3+4), not %g via par (1+9)\n",
		cheapest.At(0, 3), fares.At(0, 2)+fares.At(2, 3))

	ninf := math.Inf(-1)
	logOnTime := must.M1(tensor.FromMatrix("LogOnTime", "xy", [][]float64{
		{ninf, math.Log(0.5), math.Log(0.4), ninf},
		{ninf, ninf, ninf, math.Log(0.9)},
		{ninf, ninf, ninf, math.Log(0.2)},
		{ninf, ninf, ninf, ninf},
	}))
	best, err := einsum.Semiring(semiring.Viterbi, "xy,yz->xz", logOnTime, logOnTime)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "most reliable two-hop route (Viterbi max/+ in log domain):")
	fmt.Fprintln(w, matrixTable(best, cities, cities))
	fmt.Fprintf(w, "lis to ber on time with probability %.2f\n", math.Exp(best.At(0, 3)))

	note(w, "counting, tropical and Viterbi all reuse \"xy,yz->xz\"")
	return nil
}
