package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jbonatakis/wellwatch/internal/dashboard"
)

// Start runs the terminal client against the given repository. When
// startWell is non-empty the client opens that well's dashboard directly
// instead of the directory.
func Start(repo dashboard.Repository, startWell string) error {
	program := tea.NewProgram(NewModel(repo, startWell), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
