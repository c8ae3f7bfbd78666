package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jbonatakis/wellwatch/internal/dashboard"
	"github.com/jbonatakis/wellwatch/internal/well"
)

const loadTimeout = 15 * time.Second

type DirectoryLoaded struct {
	Wells []well.Summary
	Err   error
}

// SnapshotLoaded carries one assembled well dashboard. Gen ties the result
// to the navigation that requested it; the model drops stale generations.
type SnapshotLoaded struct {
	Gen      int
	Snapshot dashboard.Snapshot
	Err      error
}

func (m Model) LoadDirectory() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		wells, err := repo.Directory(ctx)
		return DirectoryLoaded{Wells: wells, Err: err}
	}
}

func (m Model) LoadSnapshot(wellID string, gen int) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		payload, err := repo.Dashboard(ctx, wellID)
		if err != nil {
			return SnapshotLoaded{Gen: gen, Err: err}
		}
		snap := dashboard.Assemble(payload.WellID, payload.Segments, payload.Equipment, payload.DepthMax)
		return SnapshotLoaded{Gen: gen, Snapshot: snap}
	}
}
