package tui

import (
	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/notify"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	sidebarStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("239")).Padding(0, 1)

	severityStyles = map[notify.Severity]lipgloss.Style{
		notify.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		notify.SeveritySuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		notify.SeverityInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
)

func severityStyle(s notify.Severity) lipgloss.Style {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return mutedStyle
}
