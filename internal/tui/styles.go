package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/wellwatch/internal/well"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// severityStyle colors a severity consistently across the wellbore, the
// directory, and the modal.
func severityStyle(level well.Severity) lipgloss.Style {
	switch well.Classify(level).Rank {
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	}
}

// bandStyle colors a risk band using the same palette as severities.
func bandStyle(band well.RiskBand) lipgloss.Style {
	switch band {
	case well.RiskHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case well.RiskMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	}
}
