package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/strongspace/cli/internal/ui/style"
)

var cellStyle = lipgloss.NewStyle().PaddingRight(2)

// Table renders rows as aligned columns without borders. The header row is
// styled as a header when styling is enabled.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow && style.Enabled() {
				return cellStyle.Bold(true)
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render() + "\n"
}
