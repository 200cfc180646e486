package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// tableStyles returns the header and cell styles for rendered tables.
func tableStyles() (header, cell lipgloss.Style) {
	header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell = lipgloss.NewStyle().Padding(0, 1)
	return header, cell
}

// Table renders rows of tabular data at normal verbosity. Tables wider
// than the terminal are capped to the terminal width when a terminal is
// open; otherwise the natural width is used.
func (c *Console) Table(headers []string, rows [][]string) {
	headerStyle, cellStyle := tableStyles()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Faint(true)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if c.term != nil {
		if w, _, err := c.term.Size(); err == nil && lipgloss.Width(t.Render()) > w {
			t = t.Width(w)
		}
	}

	c.out.WriteLine(VerbosityNormal, t.Render())
}
