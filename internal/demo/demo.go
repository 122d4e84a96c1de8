// Package demo holds runnable walkthroughs of the contraction engine: each
// demo writes a worked example to the given writer and doubles as an
// end-to-end exercise of one part of the numeric core.
package demo

import "io"

// Demo is one named walkthrough.
type Demo struct {
	Name    string
	Summary string
	Run     func(w io.Writer) error
}

// Catalog lists every demo in presentation order.
var Catalog = []Demo{
	{"ancestry", "ancestor closure by einsum fixpoint and Boolean semiring", Ancestry},
	{"paths", "one route matrix read under counting, tropical and Viterbi semirings", Paths},
	{"attention", "scaled dot-product attention as two contractions", Attention},
	{"rotation", "quaternion rotation and the octonion associator", Rotation},
	{"basis", "graded monomial basis with multinomial weights", BasisCatalog},
	{"xor", "two-layer perceptron trained on XOR by finite differences", XOR},
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range Catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
