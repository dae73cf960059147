package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/soopatree/balloon/internal/cli"
	"github.com/soopatree/balloon/internal/common"
)

var (
	tableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor)
	statusStyle = cli.SubtleStyle
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "후원 순위"
	if m.view == ViewOutcomes {
		title = "룰렛 결과 통계"
	}
	b.WriteString(cli.FormatTitle(title))
	b.WriteString("\n")

	status := m.status()
	if m.loading {
		status += " …"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.lastError != nil {
		b.WriteString(cli.FormatError(common.UserMessage(m.lastError)))
		b.WriteString("\n")
	}

	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))

	return b.String()
}
