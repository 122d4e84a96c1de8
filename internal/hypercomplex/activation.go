package hypercomplex

import "math"

// SplitActivation applies the real function f to every component of every
// element independently. The element's algebra is unchanged.
func SplitActivation(t *Tensor, f func(float64) float64) *Tensor {
	return t.Apply(func(n Number) Number {
		comps := n.Components()
		for i, v := range comps {
			comps[i] = f(v)
		}
		return makeNumber(n.Algebra(), comps)
	})
}

// ComplexReLU applies max(0, x) to the real and imaginary parts
// independently. Defined for any algebra; the name records its origin in
// split-activation complex networks.
func ComplexReLU(t *Tensor) *Tensor {
	return SplitActivation(t, func(v float64) float64 {
		return math.Max(0, v)
	})
}

// QuaternionReLU applies max(0, x) to all four quaternion components
// independently.
func QuaternionReLU(t *Tensor) *Tensor {
	return SplitActivation(t, func(v float64) float64 {
		return math.Max(0, v)
	})
}

// ModulusActivation rescales every element x to x·f(|x|)/|x|, applying the
// real activation f to the modulus while preserving the element's phase
// direction. A zero element stays zero.
func ModulusActivation(t *Tensor, f func(float64) float64) *Tensor {
	return t.Apply(func(n Number) Number {
		norm := n.Norm()
		if norm == 0 {
			return n
		}
		return n.Scale(f(norm) / norm)
	})
}
