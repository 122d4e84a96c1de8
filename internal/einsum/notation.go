// Package einsum contracts named-index tensors driven by Einstein summation
// notation such as "ij,jk->ik". Indices shared between operands but absent
// from the output are summed over. Three backends share one iteration core:
// real arithmetic, caller-supplied semirings, and hypercomplex algebras.
package einsum

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Notation is the parsed form of a subscript string: one index-symbol
// sequence per operand plus the output sequence. Symbols bind positionally to
// operand dimensions; an empty segment denotes a rank-0 scalar.
type Notation struct {
	Inputs [][]rune
	Output []rune
}

// ParseNotation splits a subscript string into per-operand segments and the
// output segment. The grammar is comma-separated input segments, "->", then
// the output segment (possibly empty for a scalar result). Index symbols are
// single letters; spaces are ignored.
//
// The parser checks only the string's structure. Matching segments against
// operand ranks and resolving index sizes is Compile's job.
func ParseNotation(notation string) (Notation, error) {
	compact := strings.ReplaceAll(notation, " ", "")
	if strings.Count(compact, "->") != 1 {
		return Notation{}, errors.Errorf("notation %q needs exactly one \"->\"", notation)
	}
	parts := strings.SplitN(compact, "->", 2)

	segments := strings.Split(parts[0], ",")
	inputs := make([][]rune, len(segments))
	for i, seg := range segments {
		symbols, err := parseSegment(seg)
		if err != nil {
			return Notation{}, errors.Wrapf(err, "notation %q operand %d", notation, i)
		}
		inputs[i] = symbols
	}

	output, err := parseSegment(parts[1])
	if err != nil {
		return Notation{}, errors.Wrapf(err, "notation %q output", notation)
	}
	return Notation{Inputs: inputs, Output: output}, nil
}

func parseSegment(seg string) ([]rune, error) {
	symbols := []rune(seg)
	for _, r := range symbols {
		if !unicode.IsLetter(r) {
			return nil, errors.Errorf("index symbols must be letters, got %q", r)
		}
	}
	return symbols, nil
}

// String reassembles the canonical subscript form.
func (n Notation) String() string {
	segments := make([]string, len(n.Inputs))
	for i, seg := range n.Inputs {
		segments[i] = string(seg)
	}
	return strings.Join(segments, ",") + "->" + string(n.Output)
}
