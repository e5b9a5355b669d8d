package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/leafco2/internal/stomata"
)

// Titles shown by the form and the result panel.
const (
	FormTitle       = "🌿 잎의 CO₂ 흡수량 계산기 (사람 기준)"
	FormDescription = "입력한 잎 개수와 크기로, 선택한 사람 수의 하루 CO₂ 배출량을 흡수하려면 몇 장의 잎이 필요한지 계산합니다."
	ResultTitle     = "계산 결과"
)

// RenderResult renders every result field as a "key: value" line inside a box.
// notComputable labels a leaves-needed value that has no count.
func RenderResult(result stomata.Result, notComputable string, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(ResultTitle))

	for _, f := range result.Record().Fields(notComputable) {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(f.Key + ": "))
		content.WriteString(ValueStyle.Render(f.Value))
	}

	return boxed(content.String(), width)
}

// RenderFailure renders a validation failure reason.
func RenderFailure(reason string, width int) string {
	content := HeaderStyle.Render(ResultTitle) + "\n" + ErrorStyle.Render(reason)
	return boxed(content, width)
}

func boxed(content string, width int) string {
	if width > borderPadding {
		return BoxStyle.Width(width - borderPadding).Render(content)
	}
	return BoxStyle.Render(content)
}

// borderPadding accounts for the left and right border characters.
const borderPadding = 2

// RenderResultTable renders a result as a two-column field/value table for
// non-interactive output.
func RenderResultTable(result stomata.Result, notComputable string) string {
	fields := result.Record().Fields(notComputable)
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Key, f.Value}
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

// RenderSpeciesTable lists leaf types with their density and correction.
func RenderSpeciesTable(species []stomata.Species) string {
	rows := make([][]string, len(species))
	for i, s := range species {
		rows[i] = []string{
			s.Name,
			stomata.FormatFloat(s.Density, 1),
			"×" + strconv.FormatFloat(s.Correction, 'f', -1, 64),
		}
	}
	return renderTable([]string{"Leaf type", "Stomata / cm²", "Correction"}, rows)
}

// RenderUnitsTable lists unit labels with their conversion factor.
func RenderUnitsTable(kind string, units []stomata.Unit) string {
	rows := make([][]string, len(units))
	for i, u := range units {
		rows[i] = []string{kind, u.Label, strconv.FormatFloat(u.Factor, 'g', -1, 64)}
	}
	return renderTable([]string{"Kind", "Unit", "Factor"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	return t.Render()
}
