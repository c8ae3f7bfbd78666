package dashboard

import (
	"testing"

	"github.com/jbonatakis/wellwatch/internal/well"
)

func plainSegment(from, to float64) well.Segment {
	return well.Segment{From: from, To: to, Level: well.SeverityWarning, EventType: "Tight Hole"}
}

func explainedSegment(from, to float64) well.Segment {
	s := plainSegment(from, to)
	s.Level = well.SeverityCritical
	s.Explanation = &well.Explanation{Title: "Stuck pipe", FlaggedReason: "High NPT"}
	return s
}

func TestSelectionStartsClosed(t *testing.T) {
	s := NewSelection()
	if s.Open() {
		t.Fatalf("expected initial state Closed")
	}
	if s.Segment() != nil {
		t.Fatalf("expected nil segment while closed")
	}
}

func TestSelectEntersDetails(t *testing.T) {
	s := NewSelection().Select(plainSegment(0, 200))
	if !s.Open() {
		t.Fatalf("expected Open after select")
	}
	if s.ActiveView() != ViewDetails {
		t.Fatalf("expected Details view after select, got %v", s.ActiveView())
	}
	if s.Segment() == nil || s.Segment().From != 0 {
		t.Fatalf("expected selected segment to be retained")
	}
}

func TestRequestExplanationWithoutExplanationIsRefused(t *testing.T) {
	s := NewSelection().Select(plainSegment(0, 200))
	next, ok := s.RequestExplanation()
	if ok {
		t.Fatalf("expected refusal for segment without explanation")
	}
	if next.ActiveView() != ViewDetails {
		t.Fatalf("refused request must leave state unchanged, got view %v", next.ActiveView())
	}
	if next.Segment() == nil || next.Segment().From != s.Segment().From {
		t.Fatalf("refused request must keep the selected segment")
	}
}

func TestRequestExplanationWhileClosedIsRefused(t *testing.T) {
	next, ok := NewSelection().RequestExplanation()
	if ok || next.Open() {
		t.Fatalf("expected refusal while closed")
	}
}

func TestExplanationRoundTrip(t *testing.T) {
	s := NewSelection().Select(explainedSegment(200, 400))
	s, ok := s.RequestExplanation()
	if !ok || s.ActiveView() != ViewExplanation {
		t.Fatalf("expected Explanation view, ok=%v view=%v", ok, s.ActiveView())
	}
	s = s.Back()
	if s.ActiveView() != ViewDetails {
		t.Fatalf("expected Back to return to Details, got %v", s.ActiveView())
	}
	if !s.Open() {
		t.Fatalf("Back must not close the modal")
	}
}

func TestReselectFromExplanationResetsToDetails(t *testing.T) {
	s := NewSelection().Select(explainedSegment(200, 400))
	s, _ = s.RequestExplanation()

	other := explainedSegment(400, 600)
	s = s.Select(other)
	if s.ActiveView() != ViewDetails {
		t.Fatalf("selecting a new segment must re-enter at Details, got %v", s.ActiveView())
	}
	if s.Segment() == nil || s.Segment().From != 400 {
		t.Fatalf("expected newly selected segment, got %+v", s.Segment())
	}
}

func TestCloseFromEitherView(t *testing.T) {
	s := NewSelection().Select(explainedSegment(0, 100))
	if closed := s.Close(); closed.Open() {
		t.Fatalf("Close from Details must yield Closed")
	}
	s, _ = s.RequestExplanation()
	if closed := s.Close(); closed.Open() {
		t.Fatalf("Close from Explanation must yield Closed")
	}
}

func TestResetTearsDown(t *testing.T) {
	s := NewSelection().Select(plainSegment(0, 100))
	if reset := s.Reset(); reset.Open() {
		t.Fatalf("Reset must return to Closed")
	}
}

func TestSelectionDoesNotAliasCallerSegment(t *testing.T) {
	seg := plainSegment(0, 100)
	s := NewSelection().Select(seg)
	seg.From = 999
	if s.Segment().From != 0 {
		t.Fatalf("selection must copy the segment, got From=%v", s.Segment().From)
	}
}
