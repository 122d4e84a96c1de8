package tensor

import (
	"math/rand"

	"github.com/pkg/errors"
)

// New creates a zero-filled tensor with the given index symbols and shape.
// The indices string must contain exactly one rune per dimension.
//
// Example:
//
//	w, err := tensor.New("W", "ij", tensor.Shape{3, 4})
func New(name, indices string, shape Shape) (*Tensor, error) {
	symbols, err := ParseIndices(indices, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "tensor %q", name)
	}
	return newTensor(name, symbols, shape.Clone(), make([]float64, shape.NumElements())), nil
}

// Ones creates a tensor filled with ones.
func Ones(name, indices string, shape Shape) (*Tensor, error) {
	t, err := New(name, indices, shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = 1
	}
	return t, nil
}

// Random creates a tensor with elements drawn uniformly from [-1, 1],
// using the shared math/rand source.
func Random(name, indices string, shape Shape) (*Tensor, error) {
	t, err := New(name, indices, shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = rand.Float64()*2 - 1 //nolint:gosec // G404: statistical fill, not cryptographic
	}
	return t, nil
}

// FromSlice creates a tensor from an existing flat row-major buffer.
// The buffer length must equal the shape's element count exactly; the data is
// copied, not retained.
//
// Example:
//
//	x, err := tensor.FromSlice("X", "ij", tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
func FromSlice(name, indices string, shape Shape, data []float64) (*Tensor, error) {
	symbols, err := ParseIndices(indices, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "tensor %q", name)
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("tensor %q: shape %v requires %d elements, but got %d",
			name, shape, shape.NumElements(), len(data))
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return newTensor(name, symbols, shape.Clone(), buf), nil
}

// FromMatrix creates a rank-2 tensor from a row-oriented 2D slice.
// The indices string names the row and column dimensions, e.g. "ij".
// All rows must have equal length.
func FromMatrix(name, indices string, rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, errors.Errorf("tensor %q: matrix needs at least one row", name)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("tensor %q: row %d has %d columns, expected %d", name, i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return FromSlice(name, indices, Shape{len(rows), cols}, flat)
}

// FromVector creates a rank-1 tensor over a single index symbol.
func FromVector(name string, index rune, values []float64) (*Tensor, error) {
	return FromSlice(name, string(index), Shape{len(values)}, values)
}

// Identity creates the n×n identity matrix over the given pair of indices.
//
// Example:
//
//	eye, err := tensor.Identity("I", "jk", 4)
func Identity(name, indices string, n int) (*Tensor, error) {
	t, err := New(name, indices, Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}
