package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/wellwatch/internal/dashboard"
)

func RenderBottomBar(model Model) string {
	left := strings.Join(actionHints(model), " ")
	if model.notice != "" {
		left = left + " | " + model.notice
	}

	right := statusText(model)
	contentWidth := model.windowWidth
	padding := 1
	if contentWidth > 0 {
		contentWidth = contentWidth - padding*2
		if contentWidth < 0 {
			contentWidth = 0
		}
	}
	bar := layoutBar(left, right, contentWidth)

	style := lipgloss.NewStyle().Reverse(true).Padding(0, padding)
	return style.Render(bar)
}

func actionHints(model Model) []string {
	if model.selection.Open() {
		if model.selection.ActiveView() == dashboard.ViewExplanation {
			return []string{"[b]ack", "[esc] close", "[q]uit"}
		}
		hints := []string{"[esc] close", "[q]uit"}
		if seg := model.selection.Segment(); seg != nil && seg.Explanation != nil {
			hints = append([]string{"[x] explain"}, hints...)
		}
		return hints
	}

	switch model.viewMode {
	case ViewModeDashboard:
		return []string{"[enter] details", "[m]aintenance", "[w]ells", "[q]uit"}
	case ViewModeMaintenance:
		return []string{"[d]ashboard", "[q]uit"}
	default:
		if model.searchFocused {
			return []string{"[enter] apply", "[esc] clear"}
		}
		return []string{"[enter] open", "[/] search", "[q]uit"}
	}
}

func statusText(model Model) string {
	switch model.viewMode {
	case ViewModeDashboard, ViewModeMaintenance:
		if model.loadingWell {
			return "loading " + model.viewedWellID
		}
		return model.viewedWellID
	default:
		if model.loadingDirectory {
			return "loading wells"
		}
		n := len(model.filteredDirectory())
		if n == 1 {
			return "1 well"
		}
		return fmt.Sprintf("%d wells", n)
	}
}

func layoutBar(left string, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth
	if gap < 1 {
		availableLeft := width - rightWidth - 1
		if availableLeft < 0 {
			return truncate(right, width)
		}
		left = truncate(left, availableLeft)
		leftWidth = lipgloss.Width(left)
		gap = width - leftWidth - rightWidth
		if gap < 1 {
			gap = 1
		}
	}
	bar := left + strings.Repeat(" ", gap) + right
	return truncate(bar, width)
}
