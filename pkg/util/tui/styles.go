package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().MarginLeft(2).Bold(true).Foreground(lipgloss.Color("69"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Foreground(lipgloss.Color("#04B575"))
	mutedStyle   = cellStyle.Foreground(lipgloss.Color("8"))
	branchStyle  = cellStyle.Foreground(lipgloss.Color("170"))
	refStyle     = cellStyle.Foreground(lipgloss.Color("69"))
	dimStyle     = cellStyle.Faint(true)
	updatedStyle = cellStyle.Foreground(lipgloss.Color("8"))
)
