package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jbonatakis/wellwatch/internal/dashboard"
	"github.com/jbonatakis/wellwatch/internal/well"
)

const notAvailable = "N/A"

// RenderSegmentModal renders the active face of the segment modal: event
// details, or the detailed explanation when the machine is in that view.
func RenderSegmentModal(model Model) string {
	seg := model.selection.Segment()
	if seg == nil {
		return ""
	}

	var content string
	var title string
	if model.selection.ActiveView() == dashboard.ViewExplanation {
		title = "Detailed Explanation"
		content = renderExplanation(model, *seg)
	} else {
		title = "Depth Segment Details"
		content = renderSegmentDetails(model, *seg)
	}

	height := model.windowHeight - 5
	if height < 1 {
		height = 1
	}
	content = applyViewport(content, model.modalOffset, paneWidth(model), height)
	return renderPane(content, paneWidth(model), height, title, true)
}

func renderSegmentDetails(model Model, seg well.Segment) string {
	var b strings.Builder
	c := well.Classify(seg.Level)

	b.WriteString(headerStyle.Render(fmt.Sprintf("%.0fm to %.0fm", seg.From, seg.To)))
	b.WriteString("\n\n")
	writeField(&b, "Event Type", orNA(seg.EventType))
	writeField(&b, "NPT Hours", nptText(seg.NPTHours))
	writeField(&b, "Operation Type", orNA(seg.OperationType))
	b.WriteString(labelStyle.Render("Severity: "))
	b.WriteString(severityStyle(seg.Level).Render(c.Label))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Equipment Involved"))
	b.WriteString("\n")
	if len(seg.Equipment) == 0 {
		b.WriteString(mutedStyle.Render("No equipment recorded") + "\n\n")
	} else {
		b.WriteString(strings.Join(seg.Equipment, ", "))
		b.WriteString("\n\n")
	}

	b.WriteString(headerStyle.Render("Actions Taken"))
	b.WriteString("\n")
	if len(seg.ActionsTaken) == 0 {
		b.WriteString(mutedStyle.Render("No actions recorded") + "\n\n")
	} else {
		for _, a := range seg.ActionsTaken {
			b.WriteString("- " + a + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render("Why This Matters"))
	b.WriteString("\n")
	b.WriteString(orNA(strings.TrimSpace(seg.WhyItMatters)))
	b.WriteString("\n\n")

	b.WriteString(mutedStyle.Render("Event recorded: " + recordedText(seg.RecordedAt)))
	b.WriteString("\n\n")
	if model.notice != "" {
		b.WriteString(noticeStyle.Render(model.notice))
		b.WriteString("\n")
	}
	b.WriteString(explanationHint(seg))
	return strings.TrimRight(b.String(), "\n")
}

func renderExplanation(model Model, seg well.Segment) string {
	ex := seg.Explanation
	if ex == nil {
		// The selection machine refuses this transition, so this only
		// shows if the segment loses its explanation mid-session.
		return mutedStyle.Render("No detailed explanation is available for this segment.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(ex.Title))
	b.WriteString("\n\n")
	writeField(&b, "Why it was flagged", ex.FlaggedReason)

	b.WriteString(headerStyle.Render("Contributing Factors"))
	b.WriteString("\n")
	if len(ex.ContributingFactors) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n")
	}
	for _, f := range ex.ContributingFactors {
		tag := well.Classify(f.SeverityTag)
		b.WriteString(fmt.Sprintf("- %s [%s]\n  %s\n",
			labelStyle.Render(f.Heading),
			severityStyle(f.SeverityTag).Render(tag.Label),
			f.Text))
	}
	b.WriteString("\n")

	writeList(&b, "Technical Factors", ex.TechnicalFactors)
	writeList(&b, "Prevention Measures", ex.PreventionMeasures)

	b.WriteString(headerStyle.Render("Methodology"))
	b.WriteString("\n")
	b.WriteString(orNA(strings.TrimSpace(ex.Methodology)))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("[b] back to details  [esc] close"))
	return strings.TrimRight(b.String(), "\n")
}

func explanationHint(seg well.Segment) string {
	if seg.Explanation != nil {
		return mutedStyle.Render("[x] detailed explanation  [esc] close")
	}
	return mutedStyle.Render("No detailed explanation available  [esc] close")
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n\n")
		return
	}
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}

func orNA(v string) string {
	if v == "" {
		return mutedStyle.Render(notAvailable)
	}
	return v
}

func nptText(hours *float64) string {
	if hours == nil {
		return mutedStyle.Render(notAvailable)
	}
	return fmt.Sprintf("%.1f hours", *hours)
}

func recordedText(t *time.Time) string {
	if t == nil {
		return notAvailable
	}
	return t.UTC().Format("2006-01-02")
}
