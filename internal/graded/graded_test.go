package graded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestNewDigitSystem(t *testing.T) {
	s, err := NewDigitSystem(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, []int{2, 3, 4}, s.Radices())

	_, err = NewDigitSystem(2, 0)
	assert.Error(t, err)
}

func TestDigitSystemRoundTrip(t *testing.T) {
	s, err := NewDigitSystem(2, 3, 4)
	require.NoError(t, err)

	for v := 0; v < s.Size(); v++ {
		digits := s.Digits(v)
		assert.Equal(t, v, s.Value(digits...), "digits %v", digits)
	}

	// Last position varies fastest.
	assert.Equal(t, []int{0, 0, 1}, s.Digits(1))
	assert.Equal(t, []int{0, 1, 0}, s.Digits(4))
	assert.Equal(t, []int{1, 0, 0}, s.Digits(12))
	assert.Equal(t, []int{1, 2, 3}, s.Digits(23))
}

func TestDigitSystemBounds(t *testing.T) {
	s, err := NewDigitSystem(2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { s.Digits(4) })
	assert.Panics(t, func() { s.Digits(-1) })
	assert.Panics(t, func() { s.Value(1) }, "wrong arity")
	assert.Panics(t, func() { s.Value(1, 2) }, "digit out of range")
}

func TestDigitSystemEachCountsInOrder(t *testing.T) {
	s, err := NewDigitSystem(2, 1, 3)
	require.NoError(t, err)

	var visited [][]int
	s.Each(func(value int, digits []int) {
		assert.Equal(t, len(visited), value)
		visited = append(visited, append([]int(nil), digits...))
	})

	require.Len(t, visited, 6)
	assert.Equal(t, []int{0, 0, 0}, visited[0])
	assert.Equal(t, []int{0, 0, 2}, visited[2])
	assert.Equal(t, []int{1, 0, 0}, visited[3])
	assert.Equal(t, []int{1, 0, 2}, visited[5])
	for v, digits := range visited {
		assert.Equal(t, s.Digits(v), digits)
	}
}

func TestDigitSystemEmpty(t *testing.T) {
	s, err := NewDigitSystem()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Size())

	calls := 0
	s.Each(func(value int, digits []int) {
		calls++
		assert.Empty(t, digits)
	})
	assert.Equal(t, 1, calls)
}

func TestBasisGradedLexOrder(t *testing.T) {
	basis, err := Basis(2, 2)
	require.NoError(t, err)

	want := []Monomial{
		{0, 0},
		{1, 0}, {0, 1},
		{2, 0}, {1, 1}, {0, 2},
	}
	assert.Equal(t, want, basis)
}

func TestBasisSizeMatchesEnumeration(t *testing.T) {
	for _, tc := range []struct{ vars, degree int }{
		{1, 0}, {1, 5}, {2, 3}, {3, 3}, {4, 2},
	} {
		basis, err := Basis(tc.vars, tc.degree)
		require.NoError(t, err)
		assert.Len(t, basis, BasisSize(tc.vars, tc.degree), "vars=%d degree=%d", tc.vars, tc.degree)
		assert.Equal(t, combin.Binomial(tc.vars+tc.degree, tc.vars), len(basis))

		// Degrees never decrease along the catalog.
		for i := 1; i < len(basis); i++ {
			assert.GreaterOrEqual(t, basis[i].Degree(), basis[i-1].Degree())
		}
	}
}

func TestBasisRejectsBadArguments(t *testing.T) {
	_, err := Basis(0, 2)
	assert.Error(t, err)
	_, err = Basis(2, -1)
	assert.Error(t, err)
}

func TestMonomialCoefficient(t *testing.T) {
	for _, tc := range []struct {
		m    Monomial
		want int
	}{
		{Monomial{}, 1},
		{Monomial{3}, 1},
		{Monomial{1, 1}, 2},
		{Monomial{2, 1}, 3},
		{Monomial{1, 1, 1}, 6},
		{Monomial{3, 2}, 10},
		{Monomial{2, 2}, 6},
	} {
		assert.Equal(t, tc.want, tc.m.Coefficient(), "monomial %v", tc.m)
	}
	assert.Panics(t, func() { Monomial{1, -1}.Coefficient() })
}

func TestMonomialString(t *testing.T) {
	assert.Equal(t, "1", Monomial{0, 0}.String())
	assert.Equal(t, "x1", Monomial{0, 1}.String())
	assert.Equal(t, "x0^2*x2", Monomial{2, 0, 1}.String())
}

func TestMonomialDegree(t *testing.T) {
	assert.Equal(t, 0, Monomial{}.Degree())
	assert.Equal(t, 5, Monomial{2, 0, 3}.Degree())
}
