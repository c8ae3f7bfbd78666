package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// applyViewport renders content through a viewport sized to the pane's
// content area. The offset is clamped so scrolling never runs past the
// last full page.
func applyViewport(content string, offset, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	view := viewport.New(width, height)
	view.SetContent(content)
	if offset < 0 {
		offset = 0
	}
	totalLines := len(strings.Split(content, "\n"))
	maxOffset := totalLines - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	view.YOffset = offset
	return view.View()
}
