package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/born-ml/pinn/internal/pinn"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	oddRowStyle  = lipgloss.NewStyle().Padding(0, 1)
	evenRowStyle = oddRowStyle.Faint(true)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row%2 == 0 {
				s = evenRowStyle
			} else {
				s = oddRowStyle
			}
			if col == 0 {
				return s.Align(lipgloss.Right)
			}
			return s.Align(lipgloss.Left)
		})
}

// Summary renders the end-of-run table.
func Summary(res *pinn.Result) string {
	final := res.FinalLoss()
	table := newPlainTable()
	table.Row("run", res.RunID)
	table.Row("backend", res.Backend)
	table.Row("# parameters", humanize.Comma(int64(res.NumParameters)))
	table.Row("# collocation points", humanize.Comma(int64(res.Config.NumCollocation)))
	table.Row("epochs", humanize.Comma(int64(len(res.History))))
	table.Row("duration", res.Duration.Round(time.Millisecond).String())
	table.Row("final loss", fmt.Sprintf("%.5e", final.Total))
	table.Row("pde loss", fmt.Sprintf("%.5e", final.PDE))
	table.Row("boundary loss", fmt.Sprintf("%.5e", final.Boundary()))
	table.Row("max abs error", fmt.Sprintf("%.5e", res.Evaluation.MaxAbsError))
	table.Row("relative L2 error", fmt.Sprintf("%.5e", res.Evaluation.RelL2Error))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(table.Render())
	b.WriteString("\n")
	return b.String()
}
