// Package dashboard assembles per-well snapshots and owns the segment
// selection state machine consumed by the terminal views.
package dashboard

import (
	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/well"
)

// Snapshot is the fully-derived, immutable view of one well. It is rebuilt
// wholesale when the viewed well changes, never patched in place.
type Snapshot struct {
	WellID    string
	Kpis      well.Kpis
	Segments  []well.Segment
	Equipment []maintenance.Record
	Board     maintenance.BoardSummary
}

// Assemble builds a snapshot from raw backend data. Total: any input,
// including an empty segment list, yields a structurally valid snapshot
// (zero-event wells come out with all-zero KPIs and a Low band). Calling
// it twice on the same input yields structurally equal output.
func Assemble(wellID string, rawSegments []well.Segment, rawEquipment []maintenance.RawRecord, depthMax float64) Snapshot {
	segments := well.NormalizeSegments(rawSegments)
	if depthMax <= 0 {
		depthMax = well.DeepestEnd(segments)
	}
	equipment := maintenance.NormalizeAll(rawEquipment, nil)
	return Snapshot{
		WellID:    wellID,
		Kpis:      well.Aggregate(segments, depthMax),
		Segments:  segments,
		Equipment: equipment,
		Board:     maintenance.Summarize(equipment),
	}
}
