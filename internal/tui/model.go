package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/wellwatch/internal/dashboard"
	"github.com/jbonatakis/wellwatch/internal/well"
)

type ViewMode int

const (
	ViewModeDirectory ViewMode = iota
	ViewModeDashboard
	ViewModeMaintenance
)

type Model struct {
	repo dashboard.Repository

	viewMode ViewMode

	directory        []well.Summary
	directoryErr     string
	loadingDirectory bool
	search           textinput.Model
	searchFocused    bool
	directoryCursor  int

	snapshot     *dashboard.Snapshot
	viewedWellID string
	loadGen      int
	loadingWell  bool
	loadErr      string

	selection     dashboard.Selection
	segmentCursor int
	notice        string
	modalOffset   int
	boardOffset   int

	windowWidth  int
	windowHeight int

	startWell string
}

func NewModel(repo dashboard.Repository, startWell string) Model {
	search := textinput.New()
	search.Placeholder = "search wells"
	search.Prompt = "/ "
	search.CharLimit = 64
	m := Model{
		repo:      repo,
		viewMode:  ViewModeDirectory,
		search:    search,
		selection: dashboard.NewSelection(),
		startWell: startWell,
	}
	if startWell != "" {
		m.viewMode = ViewModeDashboard
		m.viewedWellID = startWell
		m.loadingWell = true
		m.loadGen = 1
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.LoadDirectory()}
	if m.startWell != "" {
		cmds = append(cmds, m.LoadSnapshot(m.startWell, m.loadGen))
	}
	return tea.Batch(cmds...)
}

// filteredDirectory applies the live search query. Filtering is derived at
// render/navigation time so the master list never mutates.
func (m Model) filteredDirectory() []well.Summary {
	return well.FilterSummaries(m.directory, m.search.Value())
}

// openWell starts a dashboard load for the well. The generation counter
// makes the latest navigation win: any in-flight result with a stale
// generation is discarded on arrival.
func (m Model) openWell(wellID string) (Model, tea.Cmd) {
	m.loadGen++
	m.viewedWellID = wellID
	m.viewMode = ViewModeDashboard
	m.snapshot = nil
	m.loadingWell = true
	m.loadErr = ""
	m.notice = ""
	m.segmentCursor = 0
	m.boardOffset = 0
	m.selection = m.selection.Reset()
	return m, m.LoadSnapshot(wellID, m.loadGen)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.search.Width = clampInt(typed.Width-8, 10, 48)
		return m, nil

	case DirectoryLoaded:
		m.loadingDirectory = false
		if typed.Err != nil {
			m.directoryErr = fmt.Sprintf("Failed to load wells: %v", typed.Err)
			return m, nil
		}
		m.directoryErr = ""
		m.directory = typed.Wells
		if m.directoryCursor >= len(m.directory) {
			m.directoryCursor = 0
		}
		return m, nil

	case SnapshotLoaded:
		if typed.Gen != m.loadGen {
			// Stale response for a well the user already navigated away
			// from; latest selection wins.
			return m, nil
		}
		m.loadingWell = false
		if typed.Err != nil {
			m.loadErr = fmt.Sprintf("Failed to load %s: %v", m.viewedWellID, typed.Err)
			return m, nil
		}
		snap := typed.Snapshot
		m.snapshot = &snap
		m.loadErr = ""
		if m.segmentCursor >= len(snap.Segments) {
			m.segmentCursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.viewMode == ViewModeDirectory && m.searchFocused {
		return m.handleSearchKey(key)
	}

	m.notice = ""
	switch m.viewMode {
	case ViewModeDirectory:
		return m.handleDirectoryKey(key.String())
	case ViewModeDashboard:
		return m.handleDashboardKey(key.String())
	case ViewModeMaintenance:
		return m.handleMaintenanceKey(key.String())
	}
	return m, nil
}

func (m Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.searchFocused = false
		m.search.Blur()
		m.search.SetValue("")
		m.directoryCursor = 0
		return m, nil
	case "enter":
		m.searchFocused = false
		m.search.Blur()
		m.directoryCursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	m.directoryCursor = 0
	return m, cmd
}

func (m Model) handleDirectoryKey(key string) (tea.Model, tea.Cmd) {
	filtered := m.filteredDirectory()
	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		return m, m.search.Focus()
	case "up", "k":
		if m.directoryCursor > 0 {
			m.directoryCursor--
		}
		return m, nil
	case "down", "j":
		if m.directoryCursor < len(filtered)-1 {
			m.directoryCursor++
		}
		return m, nil
	case "enter":
		if m.directoryCursor < len(filtered) {
			return m.openWell(filtered[m.directoryCursor].ID)
		}
		return m, nil
	case "r":
		if m.directoryErr != "" {
			m.loadingDirectory = true
			return m, m.LoadDirectory()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	if m.selection.Open() {
		return m.handleModalKey(key)
	}
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "w":
		m.viewMode = ViewModeDirectory
		m.snapshot = nil
		m.selection = m.selection.Reset()
		return m, nil
	case "m":
		if m.snapshot != nil {
			m.viewMode = ViewModeMaintenance
		}
		return m, nil
	case "r":
		if m.loadErr != "" {
			return m.openWell(m.viewedWellID)
		}
		return m, nil
	case "up", "k":
		if m.segmentCursor > 0 {
			m.segmentCursor--
		}
		return m, nil
	case "down", "j":
		if m.snapshot != nil && m.segmentCursor < len(m.snapshot.Segments)-1 {
			m.segmentCursor++
		}
		return m, nil
	case "enter", " ":
		if m.snapshot != nil && m.segmentCursor < len(m.snapshot.Segments) {
			m.selection = m.selection.Select(m.snapshot.Segments[m.segmentCursor])
			m.modalOffset = 0
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleModalKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		m.selection = m.selection.Close()
		m.modalOffset = 0
		return m, nil
	case "x":
		next, ok := m.selection.RequestExplanation()
		m.selection = next
		if !ok {
			m.notice = "No detailed explanation is available for this segment."
			return m, nil
		}
		m.modalOffset = 0
		return m, nil
	case "b", "left":
		if m.selection.ActiveView() == dashboard.ViewExplanation {
			m.selection = m.selection.Back()
			m.modalOffset = 0
		}
		return m, nil
	case "up", "k":
		if m.modalOffset > 0 {
			m.modalOffset--
		}
		return m, nil
	case "down", "j":
		m.modalOffset++
		return m, nil
	}
	return m, nil
}

func (m Model) handleMaintenanceKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "d":
		m.viewMode = ViewModeDashboard
		return m, nil
	case "up", "k":
		if m.boardOffset > 0 {
			m.boardOffset--
		}
		return m, nil
	case "down", "j":
		m.boardOffset++
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	// Reserve one line for the bottom bar plus one spacer, matching the
	// pane math in renderPane.
	availableHeight := m.windowHeight - 5
	if availableHeight < 0 {
		availableHeight = 0
	}
	if availableHeight == 0 {
		return RenderBottomBar(m)
	}

	var content string
	switch m.viewMode {
	case ViewModeDirectory:
		content = RenderDirectoryView(m, availableHeight)
	case ViewModeMaintenance:
		content = RenderMaintenanceView(m, availableHeight)
	default:
		content = m.renderDashboard(availableHeight)
	}

	if m.selection.Open() {
		if modal := RenderSegmentModal(m); modal != "" {
			content = modal
		}
	}

	if m.windowHeight > 1 {
		return content + "\n" + RenderBottomBar(m)
	}
	return content
}

func (m Model) renderDashboard(availableHeight int) string {
	if m.windowWidth <= 0 {
		return RenderWellboreView(m) + "\n\n" + RenderKpiView(m)
	}

	leftWidth, rightWidth := splitPaneWidths(m.windowWidth)
	left := m
	left.windowWidth = leftWidth
	left.windowHeight = availableHeight
	right := m
	right.windowWidth = rightWidth
	right.windowHeight = availableHeight

	wellbore := renderPane(RenderWellboreView(left), leftWidth, availableHeight, "Wellbore", true)
	kpis := renderPane(RenderKpiView(right), rightWidth, availableHeight, "KPIs", false)
	return lipgloss.JoinHorizontal(lipgloss.Top, wellbore, kpis)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
