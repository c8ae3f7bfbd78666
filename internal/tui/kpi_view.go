package tui

import (
	"fmt"
	"strings"
)

// RenderKpiView renders the summary cards for the right dashboard pane.
func RenderKpiView(model Model) string {
	if model.snapshot == nil {
		return mutedStyle.Render("No data.")
	}
	k := model.snapshot.Kpis

	var b strings.Builder
	writeKpi(&b, "Non-Productive Time", fmt.Sprintf("%.1f hrs", k.NPTHours), "Total across all events")
	writeKpi(&b, "Event Count", fmt.Sprintf("%d", k.EventCount),
		fmt.Sprintf("%d critical events", k.CriticalEvents))
	writeKpi(&b, "High-Risk Zones", fmt.Sprintf("%d", k.HighRiskZones), "Depth segments flagged")

	b.WriteString(headerStyle.Render("Maintenance Risk"))
	b.WriteString("\n")
	b.WriteString(bandStyle(k.RiskBand).Bold(true).Render(string(k.RiskBand)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Based on recorded operational stress"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Press m for predictive maintenance."))
	return strings.TrimRight(b.String(), "\n")
}

func writeKpi(b *strings.Builder, title, value, subtitle string) {
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(value))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(subtitle))
	b.WriteString("\n\n")
}
