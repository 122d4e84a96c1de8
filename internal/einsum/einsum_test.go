package einsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenlog-ml/tenlog/internal/tensor"
)

func mustMatrix(t testing.TB, name, indices string, rows [][]float64) *tensor.Tensor {
	t.Helper()
	m, err := tensor.FromMatrix(name, indices, rows)
	require.NoError(t, err)
	return m
}

func TestEinsumMatchesMatrixMultiply(t *testing.T) {
	a := mustMatrix(t, "A", "ij", [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMatrix(t, "B", "jk", [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := Einsum("ij,jk->ik", a, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, "ik", c.IndexString())
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			want := 0.0
			for j := 0; j < 3; j++ {
				want += a.At(i, j) * b.At(j, k)
			}
			assert.InDelta(t, want, c.At(i, k), 1e-12)
		}
	}
}

func TestEinsumIdentityIsNeutral(t *testing.T) {
	a, err := tensor.Random("A", "ij", tensor.Shape{4, 4})
	require.NoError(t, err)
	id, err := tensor.Identity("I", "jk", 4)
	require.NoError(t, err)

	c, err := Einsum("ij,jk->ik", a, id)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, a.At(i, j), c.At(i, j), 1e-12)
		}
	}
}

func TestEinsumDotProduct(t *testing.T) {
	x, err := tensor.FromVector("x", 'i', []float64{1, 2, 3})
	require.NoError(t, err)
	y, err := tensor.FromVector("y", 'i', []float64{4, 5, 6})
	require.NoError(t, err)

	s, err := Einsum("i,i->", x, y)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.NumElements())
	assert.InDelta(t, 32, s.At(), 1e-12)
}

func TestEinsumOuterProduct(t *testing.T) {
	x, err := tensor.FromVector("x", 'i', []float64{1, 2})
	require.NoError(t, err)
	y, err := tensor.FromVector("y", 'j', []float64{3, 4, 5})
	require.NoError(t, err)

	outer, err := Einsum("i,j->ij", x, y)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, outer.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, x.At(i)*y.At(j), outer.At(i, j), 1e-12)
		}
	}
}

func TestEinsumPermutationMatchesTranspose(t *testing.T) {
	a := mustMatrix(t, "A", "ij", [][]float64{{1, 2, 3}, {4, 5, 6}})

	swapped, err := Einsum("ij->ji", a)
	require.NoError(t, err)
	assert.True(t, swapped.Equal(a.Transpose()))
}

func TestEinsumRowSumIsExplicitSummation(t *testing.T) {
	a := mustMatrix(t, "A", "ij", [][]float64{{1, 2, 3}, {4, 5, 6}})

	rows, err := Einsum("ij->i", a)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, rows.Shape())
	for i := 0; i < 2; i++ {
		want := 0.0
		for j := 0; j < 3; j++ {
			want += a.At(i, j)
		}
		assert.InDelta(t, want, rows.At(i), 1e-12)
	}
}

func TestEinsumThreeOperandChain(t *testing.T) {
	a, err := tensor.Random("A", "ij", tensor.Shape{3, 4})
	require.NoError(t, err)
	b, err := tensor.Random("B", "jk", tensor.Shape{4, 5})
	require.NoError(t, err)
	c, err := tensor.Random("C", "kl", tensor.Shape{5, 2})
	require.NoError(t, err)

	direct, err := Einsum("ij,jk,kl->il", a, b, c)
	require.NoError(t, err)

	ab, err := Einsum("ij,jk->ik", a, b)
	require.NoError(t, err)
	staged, err := Einsum("ik,kl->il", ab, c)
	require.NoError(t, err)

	assert.True(t, direct.InDelta(staged, 1e-9))
	assert.Less(t, direct.Sub(staged).MaxAbs(), 1e-9)
}

func TestEinsumScalarOperandScales(t *testing.T) {
	s, err := tensor.FromSlice("s", "", tensor.Shape{}, []float64{2.5})
	require.NoError(t, err)
	a := mustMatrix(t, "A", "ij", [][]float64{{1, 2}, {3, 4}})

	scaled, err := Einsum(",ij->ij", s, a)
	require.NoError(t, err)
	assert.True(t, scaled.InDelta(a.Scale(2.5), 1e-12))
}

func TestEinsumRank3Contraction(t *testing.T) {
	cube, err := tensor.Random("T", "ijk", tensor.Shape{2, 3, 4})
	require.NoError(t, err)
	v, err := tensor.FromVector("v", 'k', []float64{1, -1, 2, 0.5})
	require.NoError(t, err)

	got, err := Einsum("ijk,k->ij", cube, v)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			for k := 0; k < 4; k++ {
				want += cube.At(i, j, k) * v.At(k)
			}
			assert.InDelta(t, want, got.At(i, j), 1e-12)
		}
	}
}

func TestEinsumNoOperands(t *testing.T) {
	_, err := Einsum("->")
	assert.Error(t, err)
}

// The Datalog-flavored ancestor closure: adding one-step parents to the
// matmul-derived two-step paths and thresholding reaches the transitive
// closure, and one further sweep confirms the fixpoint.
func TestAncestorFixpoint(t *testing.T) {
	parent := mustMatrix(t, "Parent", "xy", [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	closure := mustMatrix(t, "Closure", "xy", [][]float64{
		{0, 1, 1, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	step := func(ancestor *tensor.Tensor) *tensor.Tensor {
		paths, err := Einsum("xy,yz->xz", ancestor, parent)
		require.NoError(t, err)
		return tensor.Threshold(ancestor.Add(tensor.Threshold(paths)))
	}

	first := step(parent)
	assert.False(t, first.Equal(parent), "first sweep adds grandparent edges")
	assert.True(t, first.Equal(closure))

	second := step(first)
	assert.True(t, second.Equal(first), "second sweep changes nothing")
}

func BenchmarkEinsumMatMul(b *testing.B) {
	lhs, err := tensor.Random("A", "ij", tensor.Shape{32, 32})
	if err != nil {
		b.Fatal(err)
	}
	rhs, err := tensor.Random("B", "jk", tensor.Shape{32, 32})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Einsum("ij,jk->ik", lhs, rhs); err != nil {
			b.Fatal(err)
		}
	}
}
