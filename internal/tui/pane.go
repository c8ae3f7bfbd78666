package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWellboreWidth = 30
	minKpiWidth      = 28
)

// splitPaneWidths divides the window between the wellbore and KPI panes.
// Each pane adds 2 columns of border, so the content widths sum to the
// window width minus 4.
func splitPaneWidths(total int) (int, int) {
	available := total - 4
	if available <= 0 {
		return 0, 0
	}
	left := available / 2
	if left < minWellboreWidth {
		left = minWellboreWidth
	}
	if available-left < minKpiWidth {
		left = available - minKpiWidth
		if left < minWellboreWidth {
			left = available / 2
		}
	}
	right := available - left
	if right < 0 {
		right = 0
	}
	return left, right
}

func paneColors(active bool) (lipgloss.Color, lipgloss.Color) {
	if active {
		return lipgloss.Color("69"), lipgloss.Color("69")
	}
	return lipgloss.Color("240"), lipgloss.Color("240")
}

func renderPane(content string, width int, height int, title string, active bool) string {
	borderColor, titleColor := paneColors(active)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		Padding(0, 1).
		Render(content)

	if title == "" {
		return box
	}
	return overlayPaneTitle(box, title, borderColor, titleColor)
}

// overlayPaneTitle replaces the box's top border with one carrying the
// pane title. The line is rebuilt from scratch; splicing the title into
// the styled border corrupts its ANSI sequences.
func overlayPaneTitle(box, title string, borderColor, titleColor lipgloss.Color) string {
	lines := strings.SplitN(box, "\n", 2)
	if len(lines) < 2 {
		return box
	}
	target := lipgloss.Width(lines[0])

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	build := func(fill int) string {
		return borderStyle.Render("╭ ") +
			titleStyle.Render(" "+title+" ") +
			borderStyle.Render(strings.Repeat("─", fill)+"╮")
	}

	fill := target - 7 - lipgloss.Width(title)
	if fill < 0 {
		fill = 0
	}
	top := build(fill)
	if w := lipgloss.Width(top); w < target {
		top = build(fill + target - w)
	}
	return top + "\n" + lines[1]
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
