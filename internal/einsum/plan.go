package einsum

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/tenlog-ml/tenlog/internal/tensor"
	"github.com/tenlog-ml/tenlog/internal/xslices"
)

// warnJointElements is the joint index-space size above which Compile logs a
// warning. The contraction still runs; the cost is exponential in the number
// of distinct indices, so a blowup is usually a notation mistake.
const warnJointElements = 1 << 27

// Plan is a compiled contraction: the resolved size of every index symbol and
// flat-buffer strides for each operand and the output, all laid out per
// position in one global symbol ordering so the iteration loop does array
// indexing only.
//
// The global ordering places the output's symbols first, in output order,
// followed by the contracted symbols in first-appearance order. The counter
// in the iteration core spins its last position fastest, so all contracted
// positions of one output cell are visited consecutively.
type Plan struct {
	notation  Notation
	symbols   []rune
	sizes     []int
	opStrides [][]int // [operand][global position], 0 when absent
	outStride []int   // [global position], 0 for contracted symbols
	outShape  tensor.Shape
	joint     int
}

// Compile parses the notation and resolves it against the operand shapes.
// Segment count must equal the operand count and each segment's length its
// operand's rank. Every index symbol takes its size from the first dimension
// it names; later occurrences must agree. Repeating a symbol within one
// segment is rejected.
func Compile(notation string, shapes []tensor.Shape) (*Plan, error) {
	parsed, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return resolve(parsed, shapes)
}

func resolve(parsed Notation, shapes []tensor.Shape) (*Plan, error) {
	if len(parsed.Inputs) != len(shapes) {
		return nil, errors.Errorf("notation %q has %d operand segments, got %d operands",
			parsed, len(parsed.Inputs), len(shapes))
	}

	// Size per symbol, first occurrence wins and later ones must agree.
	sizeOf := make(map[rune]int)
	var appearance []rune
	for i, seg := range parsed.Inputs {
		if len(seg) != len(shapes[i]) {
			return nil, errors.Errorf("operand %d: segment %q names %d indices but the tensor has rank %d",
				i, string(seg), len(seg), len(shapes[i]))
		}
		if dup := repeatedSymbol(seg); dup != 0 {
			return nil, errors.Errorf("operand %d: segment %q repeats index %q; diagonal views are not supported",
				i, string(seg), dup)
		}
		for d, sym := range seg {
			if prev, ok := sizeOf[sym]; ok {
				if prev != shapes[i][d] {
					return nil, errors.Errorf("inconsistent size for index %q: %d vs %d (operand %d dimension %d)",
						sym, prev, shapes[i][d], i, d)
				}
				continue
			}
			sizeOf[sym] = shapes[i][d]
			appearance = append(appearance, sym)
		}
	}

	if dup := repeatedSymbol(parsed.Output); dup != 0 {
		return nil, errors.Errorf("output segment %q repeats index %q", string(parsed.Output), dup)
	}
	inOutput := make(map[rune]bool, len(parsed.Output))
	for _, sym := range parsed.Output {
		if _, ok := sizeOf[sym]; !ok {
			return nil, errors.Errorf("output index %q does not appear in any operand", sym)
		}
		inOutput[sym] = true
	}

	// Global ordering: output symbols first, then the contracted remainder.
	symbols := make([]rune, 0, len(sizeOf))
	symbols = append(symbols, parsed.Output...)
	for _, sym := range appearance {
		if !inOutput[sym] {
			symbols = append(symbols, sym)
		}
	}

	sizes := make([]int, len(symbols))
	position := make(map[rune]int, len(symbols))
	for g, sym := range symbols {
		sizes[g] = sizeOf[sym]
		position[sym] = g
	}

	opStrides := make([][]int, len(parsed.Inputs))
	for i, seg := range parsed.Inputs {
		own := shapes[i].ComputeStrides()
		strides := make([]int, len(symbols))
		for d, sym := range seg {
			strides[position[sym]] = own[d]
		}
		opStrides[i] = strides
	}

	outShape := make(tensor.Shape, len(parsed.Output))
	for d, sym := range parsed.Output {
		outShape[d] = sizeOf[sym]
	}
	outStride := make([]int, len(symbols))
	for d, stride := range outShape.ComputeStrides() {
		// Output symbols occupy the first global positions in output order.
		outStride[d] = stride
	}

	p := &Plan{
		notation:  parsed,
		symbols:   symbols,
		sizes:     sizes,
		opStrides: opStrides,
		outStride: outStride,
		outShape:  outShape,
		joint:     xslices.Product(sizes),
	}
	klog.V(2).Infof("einsum %q: %d symbols, joint space %d, output shape %v", parsed, len(symbols), p.joint, outShape)
	if p.joint > warnJointElements {
		klog.Warningf("einsum %q iterates a joint index space of %s steps; expect it to be slow",
			parsed, humanize.Comma(int64(p.joint)))
	}
	return p, nil
}

func repeatedSymbol(seg []rune) rune {
	seen := make(map[rune]bool, len(seg))
	for _, sym := range seg {
		if seen[sym] {
			return sym
		}
		seen[sym] = true
	}
	return 0
}

// OutputShape returns a copy of the result shape the plan produces.
func (p *Plan) OutputShape() tensor.Shape {
	return p.outShape.Clone()
}

// OutputIndices returns the output index symbols as a string.
func (p *Plan) OutputIndices() string {
	return string(p.notation.Output)
}

// JointSize returns the number of iteration steps the contraction performs:
// the product of all distinct index sizes.
func (p *Plan) JointSize() int {
	return p.joint
}
