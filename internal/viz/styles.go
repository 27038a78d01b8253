package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
