package einsum

import (
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/hypercomplex"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Hypercomplex contracts hypercomplex-valued tensors: combine is the shared
// algebra's multiplication, accumulate its addition, and the output starts at
// the algebra's additive identity. All operands must carry the same algebra
// tag; mixing tags is an error.
//
// The fold over operands runs left-to-right in notation order and is seeded
// from operand 0's element rather than a multiplicative identity. Operand
// order is load-bearing: quaternion products anticommute and octonion
// products do not associate.
func Hypercomplex(notation string, operands ...*hypercomplex.Tensor) (*hypercomplex.Tensor, error) {
	if len(operands) == 0 {
		return nil, errors.New("hypercomplex einsum needs at least one operand")
	}
	alg := operands[0].Algebra()
	shapes := make([]tensor.Shape, len(operands))
	for i, op := range operands {
		if op.Algebra() != alg {
			return nil, errors.Errorf("hypercomplex einsum: operand %d is %s, operand 0 is %s; one contraction uses one algebra",
				i, op.Algebra(), alg)
		}
		shapes[i] = op.Shape()
	}

	plan, err := Compile(notation, shapes)
	if err != nil {
		return nil, err
	}

	out, err := hypercomplex.New("einsum:"+alg.String(), plan.OutputIndices(), alg, plan.OutputShape())
	if err != nil {
		return nil, errors.Wrap(err, "hypercomplex einsum output")
	}

	inputs := make([][]hypercomplex.Number, len(operands))
	for i, op := range operands {
		inputs[i] = op.Data()
	}
	contract(plan, inputs, out.Data(), hypercomplex.Number.Mul, hypercomplex.Number.Add)
	return out, nil
}
