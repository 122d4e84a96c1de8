// Package tensor provides the named-index dense tensor that the whole engine
// contracts over.
//
// Every dimension of a Tensor carries a single-rune index symbol. The symbols
// name dimensions for printing and self-describing code; a contraction
// notation such as "ij,jk->ik" carries its own symbols and binds them to
// operand dimensions by position. Data is stored row-major in a flat float64
// buffer: the last index varies fastest.
package tensor

import (
	"math"

	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/xslices"
)

// Tensor is a dense multi-dimensional array with named dimensions.
//
// The Name and the index symbols are labels for debugging and display; an
// einsum call aligns axes through its notation string, not through the
// symbols stored here.
//
// Tensors are immutable by convention: every producing operation allocates a
// fresh buffer and the caller owns the result exclusively. Set is the only
// sanctioned in-place mutation and is the caller's responsibility.
type Tensor struct {
	Name    string
	indices []rune
	shape   Shape
	strides []int
	data    []float64
}

// newTensor assembles a tensor around an existing buffer. The caller
// guarantees the invariants; constructors validate before getting here.
func newTensor(name string, indices []rune, shape Shape, data []float64) *Tensor {
	return &Tensor{
		Name:    name,
		indices: indices,
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    data,
	}
}

// ParseIndices validates an indices/shape pair and returns the index symbols,
// one rune per dimension.
func ParseIndices(indices string, shape Shape) ([]rune, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	symbols := []rune(indices)
	if len(symbols) != len(shape) {
		return nil, errors.Errorf("tensor needs one index symbol per dimension: got %d symbols %q for %d dimensions",
			len(symbols), indices, len(shape))
	}
	return symbols, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Indices returns a copy of the tensor's index symbols, one per dimension.
func (t *Tensor) Indices() []rune {
	return xslices.Copy(t.indices)
}

// IndexString returns the index symbols as a string, e.g. "ij".
func (t *Tensor) IndexString() string {
	return string(t.indices)
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the tensor's flat row-major buffer.
// The slice is a live view: modifications write through to the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// offset translates coordinates to a flat buffer position.
func (t *Tensor) offset(coords []int) int {
	if len(coords) != len(t.shape) {
		panic(errors.Errorf("%s: expected %d coordinates, got %d", t.Name, len(t.shape), len(coords)))
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			panic(errors.Errorf("%s: coordinate %d out of bounds for dimension %d (size %d)", t.Name, c, i, t.shape[i]))
		}
		off += c * t.strides[i]
	}
	return off
}

// At returns the element at the given coordinates.
// Panics if the coordinates are out of bounds.
func (t *Tensor) At(coords ...int) float64 {
	return t.data[t.offset(coords)]
}

// Set writes the element at the given coordinates in place.
// Panics if the coordinates are out of bounds.
func (t *Tensor) Set(value float64, coords ...int) {
	t.data[t.offset(coords)] = value
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return newTensor(t.Name, xslices.Copy(t.indices), t.shape.Clone(), xslices.Copy(t.data))
}

// WithIndices returns a copy of the tensor relabeled with new index symbols.
// The symbol count must match the rank.
func (t *Tensor) WithIndices(indices string) (*Tensor, error) {
	symbols := []rune(indices)
	if len(symbols) != len(t.shape) {
		return nil, errors.Errorf("relabel %s: got %d symbols %q for rank %d", t.Name, len(symbols), indices, len(t.shape))
	}
	out := t.Clone()
	out.indices = symbols
	return out, nil
}

// Equal reports whether two tensors share indices, shape and exactly equal data.
// Names are labels and do not participate.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.equalFn(other, func(a, b float64) bool { return a == b })
}

// InDelta reports whether two tensors share indices, shape, and elementwise
// agree within delta.
func (t *Tensor) InDelta(other *Tensor, delta float64) bool {
	return t.equalFn(other, func(a, b float64) bool { return math.Abs(a-b) <= delta })
}

func (t *Tensor) equalFn(other *Tensor, eq func(a, b float64) bool) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	if string(t.indices) != string(other.indices) {
		return false
	}
	for i := range t.data {
		if !eq(t.data[i], other.data[i]) {
			return false
		}
	}
	return true
}
