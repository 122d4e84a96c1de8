package hypercomplex

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/xslices"
)

// Number is an immutable hypercomplex value: a fixed power-of-two count of
// real components plus the algebra tag selecting the multiplication rule.
// The zero Number is the real number 0.
//
// Numbers are value types; no operation mutates its operands.
type Number struct {
	algebra    Algebra
	components []float64
}

// makeNumber builds a Number taking ownership of components (len must
// already equal the algebra dimension).
func makeNumber(alg Algebra, components []float64) Number {
	return Number{algebra: alg, components: components}
}

// NewReal wraps a real number as the dimension-1 algebra.
func NewReal(x float64) Number {
	return makeNumber(Real, []float64{x})
}

// NewComplex builds a complex number from its real and imaginary parts.
func NewComplex(re, im float64) Number {
	return makeNumber(Complex, []float64{re, im})
}

// NewQuaternion builds a quaternion w + x·i + y·j + z·k.
func NewQuaternion(w, x, y, z float64) Number {
	return makeNumber(Quaternion, []float64{w, x, y, z})
}

// NewOctonion builds an octonion from exactly 8 components.
func NewOctonion(components ...float64) (Number, error) {
	if len(components) != Octonion.Dimension() {
		return Number{}, errors.Errorf("octonion needs exactly %d components, got %d", Octonion.Dimension(), len(components))
	}
	return makeNumber(Octonion, xslices.Copy(components)), nil
}

// NewSedenion builds a sedenion from exactly 16 components.
func NewSedenion(components ...float64) (Number, error) {
	if len(components) != Sedenion.Dimension() {
		return Number{}, errors.Errorf("sedenion needs exactly %d components, got %d", Sedenion.Dimension(), len(components))
	}
	return makeNumber(Sedenion, xslices.Copy(components)), nil
}

// FromComponents builds a number of arbitrary tower level from its flat
// component slice. The length must be a positive power of two; the slice is
// copied.
func FromComponents(components []float64) (Number, error) {
	alg, err := AlgebraForDimension(len(components))
	if err != nil {
		return Number{}, err
	}
	return makeNumber(alg, xslices.Copy(components)), nil
}

// Zero returns the additive identity of the given algebra.
func Zero(alg Algebra) Number {
	return makeNumber(alg, make([]float64, alg.Dimension()))
}

// One returns the multiplicative identity of the given algebra.
func One(alg Algebra) Number {
	c := make([]float64, alg.Dimension())
	c[0] = 1
	return makeNumber(alg, c)
}

// Unit returns the i-th basis element e_i of the given algebra (e_0 is the
// identity). Panics if i is out of range.
func Unit(alg Algebra, i int) Number {
	if i < 0 || i >= alg.Dimension() {
		panic(errors.Errorf("basis index %d out of range for %s (dimension %d)", i, alg, alg.Dimension()))
	}
	c := make([]float64, alg.Dimension())
	c[i] = 1
	return makeNumber(alg, c)
}

// Algebra returns the tower level of this number.
func (n Number) Algebra() Algebra {
	if n.components == nil {
		return Real
	}
	return n.algebra
}

// Dimension returns the component count.
func (n Number) Dimension() int {
	return n.Algebra().Dimension()
}

// Component returns the i-th real component.
func (n Number) Component(i int) float64 {
	if n.components == nil {
		if i == 0 {
			return 0
		}
		panic(errors.Errorf("component %d out of range for zero real", i))
	}
	return n.components[i]
}

// Components returns a copy of the flat component slice.
func (n Number) Components() []float64 {
	if n.components == nil {
		return []float64{0}
	}
	return xslices.Copy(n.components)
}

// raw returns the component backing without copying, normalizing the zero
// Number to a one-element slice. Callers must not mutate the result.
func (n Number) raw() []float64 {
	if n.components == nil {
		return []float64{0}
	}
	return n.components
}

// String renders the number as a sum of basis terms, e.g. "1 - 2e1 + 0.5e3".
// The zero value of any algebra prints as "0".
func (n Number) String() string {
	comps := n.raw()
	var b strings.Builder
	for i, v := range comps {
		if v == 0 {
			continue
		}
		sign := " + "
		if v < 0 {
			sign = " - "
			v = -v
		}
		if b.Len() == 0 {
			if sign == " - " {
				b.WriteString("-")
			}
		} else {
			b.WriteString(sign)
		}
		if i == 0 {
			fmt.Fprintf(&b, "%g", v)
		} else if v == 1 {
			fmt.Fprintf(&b, "e%d", i)
		} else {
			fmt.Fprintf(&b, "%ge%d", v, i)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
