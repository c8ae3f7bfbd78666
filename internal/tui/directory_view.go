package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/wellwatch/internal/well"
)

func RenderDirectoryView(model Model, availableHeight int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Wells"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Choose a well to open its dashboard."))
	b.WriteString("\n\n")
	b.WriteString(model.search.View())
	b.WriteString("\n\n")

	if model.loadingDirectory {
		b.WriteString(mutedStyle.Render("Loading wells..."))
		return renderPane(b.String(), paneWidth(model), availableHeight, "Directory", true)
	}
	if model.directoryErr != "" {
		b.WriteString(errorStyle.Render(model.directoryErr))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to retry."))
		return renderPane(b.String(), paneWidth(model), availableHeight, "Directory", true)
	}

	filtered := model.filteredDirectory()
	if len(filtered) == 0 {
		b.WriteString(mutedStyle.Render("No matching wells."))
		return renderPane(b.String(), paneWidth(model), availableHeight, "Directory", true)
	}

	for i, w := range filtered {
		b.WriteString(renderDirectoryLine(model, w, i == model.directoryCursor))
		b.WriteString("\n")
	}
	return renderPane(strings.TrimRight(b.String(), "\n"), paneWidth(model), availableHeight, "Directory", true)
}

func renderDirectoryLine(model Model, w well.Summary, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	status := well.Classify(w.Status)
	location := w.Location
	if location == "" {
		location = "N/A"
	}
	line := fmt.Sprintf("%s%-9s %-22s %-16s %s",
		cursor, w.ID, truncate(w.Name, 22), truncate(location, 16),
		severityStyle(w.Status).Render(status.Label))
	if selected {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func paneWidth(model Model) int {
	width := model.windowWidth - 4
	if width < 0 {
		width = 0
	}
	return width
}
