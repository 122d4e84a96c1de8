package einsum

// contract walks the plan's full joint index space once and accumulates into
// out. For every assignment of the joint counter it fetches one element per
// operand, folds them left-to-right with mul seeded from operand 0's element,
// and adds the product into the output cell selected by the assignment's
// output symbols. Assignments that differ only in contracted symbols land in
// the same cell, which is the summation semantics.
//
// Operand order in the fold is part of the semantics: hypercomplex backends
// are not commutative, and from the octonions up not associative either.
//
// The walk is an explicit odometer: counter[g] runs through plan.sizes[g]
// with the last position varying fastest, and every operand offset plus the
// output offset is maintained incrementally from the per-position strides. No
// recursion and no map lookups; the common increment path moves each offset
// by a single stride addition, and only a rollover rewinds one.
//
// out must be initialized to the backend's additive identity and sized to the
// plan's output shape. Operand buffers are only read.
func contract[E any](plan *Plan, inputs [][]E, out []E, mul, add func(a, b E) E) {
	n := len(plan.symbols)
	counter := make([]int, n)
	inOffs := make([]int, len(inputs))
	outOff := 0

	for {
		prod := inputs[0][inOffs[0]]
		for i := 1; i < len(inputs); i++ {
			prod = mul(prod, inputs[i][inOffs[i]])
		}
		out[outOff] = add(out[outOff], prod)

		// Increment with carry, sliding every offset along as digits move.
		pos := n - 1
		for pos >= 0 {
			counter[pos]++
			if counter[pos] < plan.sizes[pos] {
				for i, strides := range plan.opStrides {
					inOffs[i] += strides[pos]
				}
				outOff += plan.outStride[pos]
				break
			}
			counter[pos] = 0
			rewind := plan.sizes[pos] - 1
			for i, strides := range plan.opStrides {
				inOffs[i] -= rewind * strides[pos]
			}
			outOff -= rewind * plan.outStride[pos]
			pos--
		}
		if pos < 0 {
			return
		}
	}
}
