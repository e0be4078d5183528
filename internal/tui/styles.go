package tui

import "github.com/charmbracelet/lipgloss"

type uiStyles struct {
	Section      lipgloss.Style
	Title        lipgloss.Style
	Primary      lipgloss.Style
	Muted        lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	SelectedLine lipgloss.Style
	DotActive    lipgloss.Style
	Dot          lipgloss.Style
	Button       lipgloss.Style
	Separator    lipgloss.Style
}

var styles = uiStyles{
	Section:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	Primary:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
	Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	SelectedLine: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	DotActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	Dot:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("233")).Background(lipgloss.Color("250")).Bold(true).Padding(0, 2),
	Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
}
