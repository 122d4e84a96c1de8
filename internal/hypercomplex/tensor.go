package hypercomplex

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Tensor is a dense named-index tensor whose elements are hypercomplex
// numbers. All elements share one algebra tag; the tag is fixed at
// construction and every Set is checked against it.
//
// The index model matches the real-valued tensor package: one symbol per
// dimension, row-major layout, strides derived from the shape.
type Tensor struct {
	Name    string
	algebra Algebra
	indices []rune
	shape   tensor.Shape
	strides []int
	data    []Number
}

func newHCTensor(name string, alg Algebra, indices []rune, shape tensor.Shape, data []Number) *Tensor {
	return &Tensor{
		Name:    name,
		algebra: alg,
		indices: indices,
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    data,
	}
}

// New creates a tensor filled with the algebra's additive identity.
func New(name, indices string, alg Algebra, shape tensor.Shape) (*Tensor, error) {
	symbols, err := tensor.ParseIndices(indices, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "new hypercomplex tensor %q", name)
	}
	data := make([]Number, shape.NumElements())
	for i := range data {
		data[i] = Zero(alg)
	}
	return newHCTensor(name, alg, symbols, shape.Clone(), data), nil
}

// FromSlice creates a tensor from row-major elements. Every element must
// carry the given algebra tag.
func FromSlice(name, indices string, alg Algebra, shape tensor.Shape, elements []Number) (*Tensor, error) {
	symbols, err := tensor.ParseIndices(indices, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "hypercomplex tensor %q from slice", name)
	}
	if len(elements) != shape.NumElements() {
		return nil, errors.Errorf("hypercomplex tensor %q from slice: shape %v needs %d elements, got %d",
			name, shape, shape.NumElements(), len(elements))
	}
	data := make([]Number, len(elements))
	for i, e := range elements {
		if e.Algebra() != alg {
			return nil, errors.Errorf("hypercomplex tensor %q from slice: element %d is %s, want %s",
				name, i, e.Algebra(), alg)
		}
		data[i] = e
	}
	return newHCTensor(name, alg, symbols, shape.Clone(), data), nil
}

// FromValues creates a tensor from a flat real buffer: consecutive groups of
// alg.Dimension() values form one element, elements in row-major order.
func FromValues(name, indices string, alg Algebra, shape tensor.Shape, values []float64) (*Tensor, error) {
	symbols, err := tensor.ParseIndices(indices, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "hypercomplex tensor %q from values", name)
	}
	dim := alg.Dimension()
	want := shape.NumElements() * dim
	if len(values) != want {
		return nil, errors.Errorf("hypercomplex tensor %q from values: shape %v × dimension %d needs %d values, got %d",
			name, shape, dim, want, len(values))
	}
	data := make([]Number, shape.NumElements())
	for i := range data {
		comps := make([]float64, dim)
		copy(comps, values[i*dim:(i+1)*dim])
		data[i] = makeNumber(alg, comps)
	}
	return newHCTensor(name, alg, symbols, shape.Clone(), data), nil
}

// Algebra returns the tensor's element algebra.
func (t *Tensor) Algebra() Algebra {
	return t.algebra
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.shape.Clone()
}

// Indices returns a copy of the tensor's index symbols, one per dimension.
func (t *Tensor) Indices() []rune {
	out := make([]rune, len(t.indices))
	copy(out, t.indices)
	return out
}

// IndexString returns the index symbols as a string, e.g. "ij".
func (t *Tensor) IndexString() string {
	return string(t.indices)
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total element count.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying element buffer as a live view, row-major.
func (t *Tensor) Data() []Number {
	return t.data
}

func (t *Tensor) offset(coords []int) int {
	if len(coords) != len(t.shape) {
		panic(errors.Errorf("tensor %s: got %d coordinates for rank %d", t.Name, len(coords), len(t.shape)))
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			panic(errors.Errorf("tensor %s: coordinate %d out of range [0, %d) on dimension %d", t.Name, c, t.shape[i], i))
		}
		off += c * t.strides[i]
	}
	return off
}

// At returns the element at the given coordinates. Panics when the
// coordinates are out of range or the wrong count.
func (t *Tensor) At(coords ...int) Number {
	return t.data[t.offset(coords)]
}

// Set stores value at the given coordinates. Panics when the coordinates are
// invalid or the value's algebra differs from the tensor's.
func (t *Tensor) Set(value Number, coords ...int) {
	if value.Algebra() != t.algebra {
		panic(errors.Errorf("tensor %s: cannot store %s element in %s tensor", t.Name, value.Algebra(), t.algebra))
	}
	t.data[t.offset(coords)] = value
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]Number, len(t.data))
	copy(data, t.data)
	indices := make([]rune, len(t.indices))
	copy(indices, t.indices)
	return newHCTensor(t.Name, t.algebra, indices, t.shape.Clone(), data)
}

// Add returns the elementwise sum. Panics when shapes or algebras differ.
func (t *Tensor) Add(other *Tensor) *Tensor {
	if t.algebra != other.algebra {
		panic(errors.Errorf("add: algebra mismatch: %s vs %s", t.algebra, other.algebra))
	}
	if !t.shape.Equal(other.shape) {
		panic(errors.Errorf("add: shape mismatch: %s is %v, %s is %v", t.Name, t.shape, other.Name, other.shape))
	}
	out := t.Clone()
	for i := range out.data {
		out.data[i] = out.data[i].Add(other.data[i])
	}
	return out
}

// Scale returns the tensor with every element scaled by the real scalar c.
func (t *Tensor) Scale(c float64) *Tensor {
	out := t.Clone()
	for i := range out.data {
		out.data[i] = out.data[i].Scale(c)
	}
	return out
}

// Apply returns the tensor with fn applied to every element. The result must
// stay in the tensor's algebra.
func (t *Tensor) Apply(fn func(Number) Number) *Tensor {
	out := t.Clone()
	for i := range out.data {
		v := fn(out.data[i])
		if v.Algebra() != t.algebra {
			panic(errors.Errorf("apply: fn returned %s element for %s tensor", v.Algebra(), t.algebra))
		}
		out.data[i] = v
	}
	return out
}

// InDelta reports whether both tensors share algebra, indices and shape, with
// every component pair within delta. Names are labels and do not participate.
func (t *Tensor) InDelta(other *Tensor, delta float64) bool {
	if t.algebra != other.algebra || string(t.indices) != string(other.indices) || !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if !t.data[i].InDelta(other.data[i], delta) {
			return false
		}
	}
	return true
}

// maxInlineElements bounds how many elements String renders in full.
const maxInlineElements = 16

// String returns a human-readable representation: name, index symbols, shape
// and algebra, plus the full data for small tensors.
//
// Example output:
//
//	v[i](3) quaternion: [(e1) (0) (0)]
func (t *Tensor) String() string {
	name := t.Name
	if name == "" {
		name = "tensor"
	}
	dims := make([]string, len(t.shape))
	for i, d := range t.shape {
		dims[i] = fmt.Sprint(d)
	}
	head := fmt.Sprintf("%s[%s](%s) %s", name, string(t.indices), strings.Join(dims, "×"), t.algebra)

	if len(t.data) > maxInlineElements {
		return fmt.Sprintf("%s: %s elements", head, humanize.Comma(int64(len(t.data))))
	}
	parts := make([]string, len(t.data))
	for i, n := range t.data {
		parts[i] = "(" + n.String() + ")"
	}
	return head + ": [" + strings.Join(parts, " ") + "]"
}
