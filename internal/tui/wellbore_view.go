package tui

import (
	"fmt"
	"strings"

	"github.com/jbonatakis/wellwatch/internal/well"
)

// RenderWellboreView renders the depth-ordered segment list for the left
// pane. Each line is one depth segment, colored by severity.
func RenderWellboreView(model Model) string {
	if model.loadingWell {
		return mutedStyle.Render(fmt.Sprintf("Loading %s...", model.viewedWellID))
	}
	if model.loadErr != "" {
		return errorStyle.Render(model.loadErr) + "\n" + mutedStyle.Render("Press r to retry, esc for the directory.")
	}
	if model.snapshot == nil {
		return mutedStyle.Render("No well loaded.")
	}
	snap := model.snapshot

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Drilling Dashboard: %s", snap.WellID)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Depth-based drilling events (0-%.0fm)", snap.Kpis.DepthMax)))
	b.WriteString("\n\n")

	if len(snap.Segments) == 0 {
		b.WriteString(mutedStyle.Render("No depth segments recorded for this well."))
		return b.String()
	}

	for i, s := range snap.Segments {
		b.WriteString(renderSegmentLine(model, s, i == model.segmentCursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press enter on a flagged segment for event details."))
	return strings.TrimRight(b.String(), "\n")
}

func renderSegmentLine(model Model, s well.Segment, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	c := well.Classify(s.Level)
	bar := severityStyle(s.Level).Render(strings.Repeat("█", barWidth(model, s)))
	marker := ""
	if s.HasEvent() {
		marker = " •"
		if s.Explanation != nil {
			marker = " ◆"
		}
	}
	line := fmt.Sprintf("%s%6.0f-%-6.0fm %s %s%s",
		cursor, s.From, s.To, bar, severityStyle(s.Level).Render(c.Label), marker)
	if selected {
		return labelStyle.Render(line)
	}
	return line
}

// barWidth scales a segment's span to the pane so longer intervals read
// longer, with a floor of one cell.
func barWidth(model Model, s well.Segment) int {
	depthMax := float64(0)
	if model.snapshot != nil {
		depthMax = model.snapshot.Kpis.DepthMax
	}
	maxCells := model.windowWidth - 32
	if maxCells < 4 {
		maxCells = 4
	}
	if maxCells > 24 {
		maxCells = 24
	}
	if depthMax <= 0 {
		return 1
	}
	cells := int((s.To - s.From) / depthMax * float64(maxCells))
	if cells < 1 {
		cells = 1
	}
	return cells
}
