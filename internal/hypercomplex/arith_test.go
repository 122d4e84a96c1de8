package hypercomplex

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-12

func randomNumber(rng *rand.Rand, alg Algebra) Number {
	comps := make([]float64, alg.Dimension())
	for i := range comps {
		comps[i] = rng.Float64()*2 - 1
	}
	n, err := FromComponents(comps)
	if err != nil {
		panic(err)
	}
	return n
}

func TestComplexMatchesCmplx128(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		x := randomNumber(rng, Complex)
		y := randomNumber(rng, Complex)
		xc := complex(x.Component(0), x.Component(1))
		yc := complex(y.Component(0), y.Component(1))

		prod := x.Mul(y)
		want := xc * yc
		assert.InDelta(t, real(want), prod.Component(0), delta)
		assert.InDelta(t, imag(want), prod.Component(1), delta)

		quot := x.Div(y)
		wantQ := xc / yc
		assert.InDelta(t, real(wantQ), quot.Component(0), 1e-9)
		assert.InDelta(t, imag(wantQ), quot.Component(1), 1e-9)
	}
}

func TestQuaternionBasisProducts(t *testing.T) {
	one := One(Quaternion)
	i := Unit(Quaternion, 1)
	j := Unit(Quaternion, 2)
	k := Unit(Quaternion, 3)

	// Hamilton's relations: i² = j² = k² = ijk = −1.
	for _, u := range []Number{i, j, k} {
		assert.True(t, u.Mul(u).InDelta(one.Neg(), delta))
	}
	assert.True(t, i.Mul(j).Mul(k).InDelta(one.Neg(), delta))

	assert.True(t, i.Mul(j).InDelta(k, delta))
	assert.True(t, j.Mul(k).InDelta(i, delta))
	assert.True(t, k.Mul(i).InDelta(j, delta))

	// Reversed order flips sign: the quaternions are not commutative.
	assert.True(t, j.Mul(i).InDelta(k.Neg(), delta))
	assert.True(t, k.Mul(j).InDelta(i.Neg(), delta))
	assert.True(t, i.Mul(k).InDelta(j.Neg(), delta))
}

func TestQuaternionsAssociate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		a := randomNumber(rng, Quaternion)
		b := randomNumber(rng, Quaternion)
		c := randomNumber(rng, Quaternion)
		assert.True(t, a.Mul(b).Mul(c).InDelta(a.Mul(b.Mul(c)), 1e-9))
	}
}

func TestOctonionNonAssociativity(t *testing.T) {
	e1 := Unit(Octonion, 1)
	e2 := Unit(Octonion, 2)
	e4 := Unit(Octonion, 4)
	e7 := Unit(Octonion, 7)

	// (e1·e2)·e4 = e3·e4 = e7, but e1·(e2·e4) = e1·e6 = −e7.
	left := e1.Mul(e2).Mul(e4)
	right := e1.Mul(e2.Mul(e4))
	assert.True(t, left.InDelta(e7, delta))
	assert.True(t, right.InDelta(e7.Neg(), delta))
	assert.False(t, left.InDelta(right, delta))
}

func TestOctonionBasisLadder(t *testing.T) {
	e := func(i int) Number { return Unit(Octonion, i) }
	for _, tc := range []struct {
		a, b, want int
		negate     bool
	}{
		{1, 2, 3, false},
		{2, 4, 6, false},
		{3, 4, 7, false},
		{1, 6, 7, true},
		{3, 6, 5, false},
		{7, 2, 5, false},
	} {
		got := e(tc.a).Mul(e(tc.b))
		want := e(tc.want)
		if tc.negate {
			want = want.Neg()
		}
		assert.True(t, got.InDelta(want, delta), "e%d·e%d", tc.a, tc.b)
	}
}

func TestConjugate(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	conj := q.Conjugate()
	assert.Equal(t, []float64{1, -2, -3, -4}, conj.Components())
	assert.True(t, conj.Conjugate().InDelta(q, delta))

	// q·conj(q) is real and equals the squared norm.
	prod := q.Mul(conj)
	assert.InDelta(t, q.NormSquared(), prod.Component(0), delta)
	for i := 1; i < 4; i++ {
		assert.InDelta(t, 0, prod.Component(i), delta)
	}
}

func TestNormMultiplicativeThroughOctonions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, alg := range []Algebra{Complex, Quaternion, Octonion} {
		for trial := 0; trial < 10; trial++ {
			x := randomNumber(rng, alg)
			y := randomNumber(rng, alg)
			assert.InDelta(t, x.Norm()*y.Norm(), x.Mul(y).Norm(), 1e-9, "algebra %s", alg)
		}
	}
}

func TestDoublingConsistency(t *testing.T) {
	// A product in dimension 2N must equal the doubling formula evaluated on
	// the dimension-N halves: (a,b)·(c,d) = (a·c − conj(d)·b, d·a + b·conj(c)).
	split := func(n Number) (Number, Number) {
		comps := n.Components()
		h := len(comps) / 2
		lo, err := FromComponents(comps[:h])
		require.NoError(t, err)
		hi, err := FromComponents(comps[h:])
		require.NoError(t, err)
		return lo, hi
	}

	rng := rand.New(rand.NewSource(5))
	for _, dim := range []int{2, 4, 8, 16, 32} {
		alg, err := AlgebraForDimension(dim)
		require.NoError(t, err)
		x := randomNumber(rng, alg)
		y := randomNumber(rng, alg)

		a, b := split(x)
		c, d := split(y)
		lo := a.Mul(c).Sub(d.Conjugate().Mul(b))
		hi := d.Mul(a).Add(b.Mul(c.Conjugate()))

		got := x.Mul(y)
		gotLo, gotHi := split(got)
		assert.True(t, gotLo.InDelta(lo, 1e-9), "dimension %d low half", dim)
		assert.True(t, gotHi.InDelta(hi, 1e-9), "dimension %d high half", dim)
	}
}

func TestSedenionZeroDivisors(t *testing.T) {
	x := Unit(Sedenion, 3).Add(Unit(Sedenion, 10))
	y := Unit(Sedenion, 6).Sub(Unit(Sedenion, 15))

	assert.InDelta(t, 2, x.NormSquared(), delta)
	assert.InDelta(t, 2, y.NormSquared(), delta)

	prod := x.Mul(y)
	assert.True(t, prod.InDelta(Zero(Sedenion), delta), "got %s", prod)
}

func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, alg := range []Algebra{Complex, Quaternion, Octonion} {
		x := randomNumber(rng, alg)
		prod := x.Mul(x.Inverse())
		assert.True(t, prod.InDelta(One(alg), 1e-9), "algebra %s", alg)
	}
}

func TestDivRecoversFactor(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, alg := range []Algebra{Complex, Quaternion} {
		x := randomNumber(rng, alg)
		y := randomNumber(rng, alg)
		assert.True(t, x.Mul(y).Div(y).InDelta(x, 1e-9), "algebra %s", alg)
	}
}

func TestDivByZeroYieldsNonFinite(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4).Div(Zero(Quaternion))
	finite := true
	for _, v := range q.Components() {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			finite = false
		}
	}
	assert.False(t, finite)
}

func TestArithmeticBasics(t *testing.T) {
	a := NewComplex(1, 2)
	b := NewComplex(3, -1)

	assert.Equal(t, []float64{4, 1}, a.Add(b).Components())
	assert.Equal(t, []float64{-2, 3}, a.Sub(b).Components())
	assert.Equal(t, []float64{-1, -2}, a.Neg().Components())
	assert.Equal(t, []float64{2.5, 5}, a.Scale(2.5).Components())
	assert.InDelta(t, 5, a.NormSquared(), delta)
	assert.InDelta(t, math.Sqrt(5), a.Norm(), delta)
}

func TestAlgebraMismatchPanics(t *testing.T) {
	c := NewComplex(1, 2)
	q := NewQuaternion(1, 0, 0, 0)

	assert.Panics(t, func() { c.Add(q) })
	assert.Panics(t, func() { c.Sub(q) })
	assert.Panics(t, func() { c.Mul(q) })
	assert.Panics(t, func() { c.Div(q) })
}

func TestScaleCommutesWithMul(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	x := randomNumber(rng, Octonion)
	y := randomNumber(rng, Octonion)
	assert.True(t, x.Scale(3).Mul(y).InDelta(x.Mul(y).Scale(3), 1e-9))
}
