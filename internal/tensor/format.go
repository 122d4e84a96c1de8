package tensor

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxInlineElements bounds how many elements String renders in full.
const maxInlineElements = 64

// String returns a human-readable representation: the name, index symbols and
// shape, plus the full data for small tensors. Large buffers are summarized.
//
// Example output:
//
//	Parent[xy](4×4): [[0 1 0 0] [0 0 1 1] [0 0 0 0] [0 0 0 0]]
func (t *Tensor) String() string {
	name := t.Name
	if name == "" {
		name = "tensor"
	}
	dims := make([]string, len(t.shape))
	for i, d := range t.shape {
		dims[i] = fmt.Sprint(d)
	}
	head := fmt.Sprintf("%s[%s](%s)", name, string(t.indices), strings.Join(dims, "×"))

	if len(t.data) > maxInlineElements {
		return fmt.Sprintf("%s: %s elements", head, humanize.Comma(int64(len(t.data))))
	}
	return head + ": " + t.formatData()
}

func (t *Tensor) formatData() string {
	if len(t.shape) == 2 {
		cols := t.shape[1]
		rows := make([]string, t.shape[0])
		for r := range rows {
			rows[r] = formatRow(t.data[r*cols : (r+1)*cols])
		}
		return "[" + strings.Join(rows, " ") + "]"
	}
	return formatRow(t.data)
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = trimFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// trimFloat renders v compactly: integers without a decimal point, everything
// else with up to four digits.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4g", v)
}
