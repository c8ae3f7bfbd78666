package dashboard

import (
	"reflect"
	"testing"

	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/well"
)

func npt(v float64) *float64 { return &v }

func TestAssembleEmptyWell(t *testing.T) {
	snap := Assemble("WELL-09", nil, nil, 0)
	if snap.WellID != "WELL-09" {
		t.Fatalf("wellID = %q", snap.WellID)
	}
	k := snap.Kpis
	if k.EventCount != 0 || k.CriticalEvents != 0 || k.HighRiskZones != 0 || k.NPTHours != 0 {
		t.Fatalf("expected zero KPIs for empty well, got %+v", k)
	}
	if k.RiskBand != well.RiskLow {
		t.Fatalf("expected Low band for empty well, got %q", k.RiskBand)
	}
	if snap.Board.Total != 0 {
		t.Fatalf("expected empty board, got %+v", snap.Board)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	segments := []well.Segment{
		{From: 0, To: 200, Level: well.SeverityNormal},
		{From: 200, To: 400, Level: well.SeverityCritical, NPTHours: npt(1)},
	}
	equipment := []maintenance.RawRecord{
		{ID: "eq-a", Name: "Drill Bit", RiskScore: npt(78), HoursUsed: 245, HoursMax: 300},
	}
	first := Assemble("WELL-02", segments, equipment, 400)
	second := Assemble("WELL-02", segments, equipment, 400)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Assemble not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAssembleDepthMaxFallback(t *testing.T) {
	segments := []well.Segment{{From: 0, To: 1200, Level: well.SeverityNormal}}
	snap := Assemble("WELL-01", segments, nil, 0)
	if snap.Kpis.DepthMax != 1200 {
		t.Fatalf("depthMax fallback = %v, want deepest segment end 1200", snap.Kpis.DepthMax)
	}
}

func TestAssembleSkipsMalformedSegmentOnly(t *testing.T) {
	segments := []well.Segment{
		{From: 500, To: 100, Level: well.SeverityCritical},
		{From: 0, To: 200, Level: well.SeverityWarning},
	}
	snap := Assemble("WELL-01", segments, nil, 2000)
	if len(snap.Segments) != 1 {
		t.Fatalf("expected 1 surviving segment, got %d", len(snap.Segments))
	}
	if snap.Kpis.HighRiskZones != 1 || snap.Kpis.CriticalEvents != 0 {
		t.Fatalf("malformed record must not feed KPIs, got %+v", snap.Kpis)
	}
}

func TestAssembleEndToEnd(t *testing.T) {
	segments := []well.Segment{
		{From: 0, To: 200, Level: well.SeverityNormal},
		{From: 200, To: 400, Level: well.SeverityCritical, NPTHours: npt(1.0)},
	}
	snap := Assemble("WELL-02", segments, nil, 400)
	k := snap.Kpis
	if k.NPTHours != 1.0 || k.EventCount != 1 || k.CriticalEvents != 1 || k.HighRiskZones != 1 {
		t.Fatalf("unexpected KPIs %+v", k)
	}
	if k.RiskBand != well.RiskHigh {
		t.Fatalf("band = %q, want High", k.RiskBand)
	}
}

func TestAssembleDerivesEquipmentBoard(t *testing.T) {
	equipment := []maintenance.RawRecord{
		{ID: "a", RiskScore: npt(82)},
		{ID: "b", RiskScore: npt(30)},
	}
	snap := Assemble("WELL-03", nil, equipment, 2000)
	if len(snap.Equipment) != 2 {
		t.Fatalf("expected 2 equipment records, got %d", len(snap.Equipment))
	}
	if snap.Equipment[0].RiskBand != well.RiskHigh {
		t.Fatalf("band = %q, want High", snap.Equipment[0].RiskBand)
	}
	if snap.Board.Total != 2 || snap.Board.HighRisk != 1 || snap.Board.LowRisk != 1 {
		t.Fatalf("unexpected board %+v", snap.Board)
	}
}
