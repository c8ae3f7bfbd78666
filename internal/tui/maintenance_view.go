package tui

import (
	"fmt"
	"strings"

	"github.com/jbonatakis/wellwatch/internal/maintenance"
)

// RenderMaintenanceView renders the equipment risk board.
func RenderMaintenanceView(model Model, availableHeight int) string {
	if model.snapshot == nil {
		return renderPane(mutedStyle.Render("No well loaded."), paneWidth(model), availableHeight, "Predictive Maintenance", true)
	}
	snap := model.snapshot

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Predictive Maintenance: %s", snap.WellID)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Equipment health monitoring and risk assessment"))
	b.WriteString("\n\n")

	s := snap.Board
	b.WriteString(fmt.Sprintf("%s %d%%   %s %d   %s %d   %s %d\n\n",
		labelStyle.Render("Overall Risk:"), s.OverallRisk,
		labelStyle.Render("High:"), s.HighRisk,
		labelStyle.Render("Medium:"), s.MediumRisk,
		labelStyle.Render("Total:"), s.Total))

	if len(snap.Equipment) == 0 {
		b.WriteString(mutedStyle.Render("No equipment records for this well."))
		return renderPane(b.String(), paneWidth(model), availableHeight, "Predictive Maintenance", true)
	}

	for _, eq := range snap.Equipment {
		writeEquipmentCard(&b, model, eq)
	}
	b.WriteString(mutedStyle.Render("Risk scores combine operating hours with exposure to high-stress drilling events."))

	content := applyViewport(strings.TrimRight(b.String(), "\n"), model.boardOffset, paneWidth(model), availableHeight)
	return renderPane(content, paneWidth(model), availableHeight, "Predictive Maintenance", true)
}

func writeEquipmentCard(b *strings.Builder, model Model, eq maintenance.Record) {
	band := bandStyle(eq.RiskBand).Bold(true).Render(strings.ToUpper(string(eq.RiskBand)) + " RISK")
	b.WriteString(fmt.Sprintf("%s %s  %s  %s %.0f%%\n",
		labelStyle.Render(eq.Name),
		mutedStyle.Render("["+eq.Tag+"]"),
		band,
		labelStyle.Render("score"), eq.RiskScore))

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		usageBar(model, eq.UsagePercent),
		fmt.Sprintf("%.0f / %.0f hrs", eq.HoursUsed, eq.HoursMax),
		mutedStyle.Render(fmt.Sprintf("next maintenance in %.0f hrs", eq.NextHours))))

	b.WriteString(fmt.Sprintf("  Action: %s\n", labelStyle.Render(string(eq.Action))))
	if eq.Note != "" {
		b.WriteString("  " + mutedStyle.Render(truncate(eq.Note, maxInt(paneWidth(model)-4, 16))) + "\n")
	}
	b.WriteString("\n")
}

// usageBar renders the operating-hours gauge. The percentage is already
// clamped to [0,100] upstream.
func usageBar(model Model, pct float64) string {
	cells := 16
	filled := int(pct / 100 * float64(cells))
	if filled > cells {
		filled = cells
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", cells-filled) + "]"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
