package einsum

import (
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/tensor"
)

func realShapes(operands []*tensor.Tensor) []tensor.Shape {
	shapes := make([]tensor.Shape, len(operands))
	for i, op := range operands {
		shapes[i] = op.Shape()
	}
	return shapes
}

// Einsum contracts real-valued tensors: combine is multiplication, accumulate
// is addition, and the output starts at zero. The notation's segments bind
// positionally to the operands; the result carries the output segment as its
// index symbols.
//
//	C, err := einsum.Einsum("ij,jk->ik", A, B)   // matrix multiply
//	s, err := einsum.Einsum("i,i->", x, y)       // dot product
func Einsum(notation string, operands ...*tensor.Tensor) (*tensor.Tensor, error) {
	if len(operands) == 0 {
		return nil, errors.New("einsum needs at least one operand")
	}
	plan, err := Compile(notation, realShapes(operands))
	if err != nil {
		return nil, err
	}

	out, err := tensor.New("einsum", plan.OutputIndices(), plan.OutputShape())
	if err != nil {
		return nil, errors.Wrap(err, "einsum output")
	}

	inputs := make([][]float64, len(operands))
	for i, op := range operands {
		inputs[i] = op.Data()
	}
	contract(plan, inputs, out.Data(), mulFloat, addFloat)
	return out, nil
}

func mulFloat(a, b float64) float64 { return a * b }
func addFloat(a, b float64) float64 { return a + b }
