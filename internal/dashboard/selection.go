package dashboard

import "github.com/jbonatakis/wellwatch/internal/well"

// View is the active face of the segment modal.
type View int

const (
	ViewDetails View = iota
	ViewExplanation
)

// Selection is the segment-selection state machine: Closed, or one of two
// views over a selected segment. It is mutated only by the UI goroutine in
// response to discrete user actions, so it needs no locking. It never
// touches the snapshot it indexes into.
type Selection struct {
	segment *well.Segment
	view    View
}

// NewSelection returns the machine in its initial Closed state.
func NewSelection() Selection {
	return Selection{}
}

// Open reports whether a segment is selected.
func (s Selection) Open() bool {
	return s.segment != nil
}

// Segment returns the selected segment, nil when closed.
func (s Selection) Segment() *well.Segment {
	return s.segment
}

// ActiveView returns the current face; meaningful only while Open.
func (s Selection) ActiveView() View {
	return s.view
}

// Select enters Details for the given segment. Selecting while a modal is
// already open re-enters at Details, discarding any explanation sub-state.
func (s Selection) Select(segment well.Segment) Selection {
	copied := segment
	return Selection{segment: &copied, view: ViewDetails}
}

// RequestExplanation switches to the explanation view. The second return
// reports whether the switch happened; it is refused (state unchanged) when
// nothing is selected or the segment carries no explanation, so the caller
// can tell the user why instead of silently swallowing the action.
func (s Selection) RequestExplanation() (Selection, bool) {
	if s.segment == nil || s.segment.Explanation == nil {
		return s, false
	}
	s.view = ViewExplanation
	return s, true
}

// Back returns from the explanation view to details. A no-op elsewhere.
func (s Selection) Back() Selection {
	if s.segment != nil {
		s.view = ViewDetails
	}
	return s
}

// Close dismisses the modal from either view.
func (s Selection) Close() Selection {
	return Selection{}
}

// Reset tears the machine down to Closed. Called when the viewed well
// changes; identical to Close but named for the lifecycle site.
func (s Selection) Reset() Selection {
	return Selection{}
}
