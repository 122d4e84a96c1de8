package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/tenlog-ml/tenlog/internal/tensor"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	noteStyle   = lipgloss.NewStyle().Faint(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func note(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf(format, args...)))
}

func newTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})
}

// matrixTable renders a rank-2 tensor with row and column labels.
func matrixTable(t *tensor.Tensor, rowLabels, colLabels []string) string {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(errors.Errorf("matrix table needs a rank-2 tensor, got rank %d", len(shape)))
	}
	tbl := newTable()
	tbl.Headers(append([]string{""}, colLabels...)...)
	for r := 0; r < shape[0]; r++ {
		row := make([]string, shape[1]+1)
		row[0] = rowLabels[r]
		for c := 0; c < shape[1]; c++ {
			row[c+1] = fmt.Sprintf("%.4g", t.At(r, c))
		}
		tbl.Row(row...)
	}
	return tbl.String()
}
