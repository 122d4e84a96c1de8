package einsum

import (
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/semiring"
	"github.com/tenlog-ml/tenlog/internal/tensor"
)

// Semiring contracts real-valued tensors under an arbitrary semiring: combine
// is sr.Mul, accumulate is sr.Add, and the output starts at sr.Zero. Operand
// elements are converted into the semiring's domain with sr.FromNumber before
// iteration and the accumulated result is converted back with sr.ToNumber.
//
//	R, err := einsum.Semiring(semiring.Boolean, "xy,yz->xz", Adj, Adj)
//
// reads as reachability; the Tropical semiring turns the same notation into
// shortest-path relaxation.
func Semiring[T any](sr semiring.Semiring[T], notation string, operands ...*tensor.Tensor) (*tensor.Tensor, error) {
	if len(operands) == 0 {
		return nil, errors.Errorf("%s einsum needs at least one operand", sr.Name)
	}
	plan, err := Compile(notation, realShapes(operands))
	if err != nil {
		return nil, err
	}

	inputs := make([][]T, len(operands))
	for i, op := range operands {
		data := op.Data()
		converted := make([]T, len(data))
		for j, v := range data {
			converted[j] = sr.FromNumber(v)
		}
		inputs[i] = converted
	}

	buf := make([]T, plan.OutputShape().NumElements())
	for i := range buf {
		buf[i] = sr.Zero
	}
	contract(plan, inputs, buf, sr.Mul, sr.Add)

	out, err := tensor.New("einsum:"+sr.Name, plan.OutputIndices(), plan.OutputShape())
	if err != nil {
		return nil, errors.Wrapf(err, "%s einsum output", sr.Name)
	}
	data := out.Data()
	for i, v := range buf {
		data[i] = sr.ToNumber(v)
	}
	return out, nil
}
