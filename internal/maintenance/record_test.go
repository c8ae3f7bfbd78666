package maintenance

import (
	"testing"

	"github.com/jbonatakis/wellwatch/internal/well"
)

func scorePtr(v float64) *float64 { return &v }

func TestNormalizeUpstreamScoreWins(t *testing.T) {
	raw := RawRecord{
		ID:        "eq-drillbit",
		Name:      "Drill Bit",
		RiskScore: scorePtr(82),
		HoursUsed: 245,
		HoursMax:  300,
	}
	rec := Normalize(raw, func(_, _ float64, _ int) float64 { return 5 })
	if rec.RiskScore != 82 {
		t.Fatalf("riskScore = %v, want upstream 82", rec.RiskScore)
	}
	if rec.RiskBand != well.RiskHigh {
		t.Fatalf("riskBand = %q, want High", rec.RiskBand)
	}
}

func TestNormalizeComputesScoreWhenAbsent(t *testing.T) {
	raw := RawRecord{ID: "eq-motor", HoursUsed: 50, HoursMax: 100, StressEvents: 2}
	rec := Normalize(raw, nil)
	want := DefaultScore(50, 100, 2)
	if rec.RiskScore != want {
		t.Fatalf("riskScore = %v, want %v from default scorer", rec.RiskScore, want)
	}
	if rec.RiskBand != BandForScore(want) {
		t.Fatalf("riskBand = %q, want %q", rec.RiskBand, BandForScore(want))
	}
}

func TestNormalizeBandAlwaysDerivedFromScore(t *testing.T) {
	// The prototype carried bands that disagreed with their own scores;
	// the derived band is the single source of truth.
	raw := RawRecord{ID: "eq-bha", RiskScore: scorePtr(70)}
	rec := Normalize(raw, nil)
	if rec.RiskBand != well.RiskHigh {
		t.Fatalf("score 70 band = %q, want High", rec.RiskBand)
	}
}

func TestNormalizeActionOverride(t *testing.T) {
	derived := Normalize(RawRecord{ID: "a", RiskScore: scorePtr(90)}, nil)
	if derived.Action != ActionInspect {
		t.Fatalf("high-risk derived action = %q, want Inspect", derived.Action)
	}

	overridden := Normalize(RawRecord{ID: "b", RiskScore: scorePtr(90), Action: "Monitor"}, nil)
	if overridden.Action != ActionMonitor {
		t.Fatalf("explicit action must win, got %q", overridden.Action)
	}

	junk := Normalize(RawRecord{ID: "c", RiskScore: scorePtr(90), Action: "Replace"}, nil)
	if junk.Action != ActionInspect {
		t.Fatalf("unknown upstream action should fall back to derived, got %q", junk.Action)
	}
}

func TestNormalizeClampsNegativeHours(t *testing.T) {
	rec := Normalize(RawRecord{ID: "d", HoursUsed: -10, NextHours: -5, HoursMax: 100}, nil)
	if rec.HoursUsed != 0 || rec.NextHours != 0 {
		t.Fatalf("negative hours should clamp to 0, got used=%v next=%v", rec.HoursUsed, rec.NextHours)
	}
}

func TestNormalizeOverUsageIsDisplayable(t *testing.T) {
	rec := Normalize(RawRecord{ID: "e", HoursUsed: 450, HoursMax: 300}, nil)
	if rec.HoursUsed != 450 || rec.HoursMax != 300 {
		t.Fatalf("raw hours must pass through unclamped, got %v/%v", rec.HoursUsed, rec.HoursMax)
	}
	if rec.UsagePercent != 100 {
		t.Fatalf("usage percent = %v, want clamped 100", rec.UsagePercent)
	}
}

func TestNormalizeScoreOutOfRangeClamped(t *testing.T) {
	rec := Normalize(RawRecord{ID: "f", RiskScore: scorePtr(140)}, nil)
	if rec.RiskScore != 100 {
		t.Fatalf("riskScore = %v, want clamped 100", rec.RiskScore)
	}
}

func TestSummarize(t *testing.T) {
	records := NormalizeAll([]RawRecord{
		{ID: "a", RiskScore: scorePtr(82)},
		{ID: "b", RiskScore: scorePtr(61)},
		{ID: "c", RiskScore: scorePtr(28)},
		{ID: "d", RiskScore: scorePtr(54)},
	}, nil)
	s := Summarize(records)
	if s.Total != 4 {
		t.Fatalf("total = %d, want 4", s.Total)
	}
	if s.HighRisk != 1 || s.MediumRisk != 2 || s.LowRisk != 1 {
		t.Fatalf("band counts = %d/%d/%d, want 1/2/1", s.HighRisk, s.MediumRisk, s.LowRisk)
	}
	if s.OverallRisk != 56 {
		t.Fatalf("overallRisk = %d, want 56 (mean of 82,61,28,54 rounded)", s.OverallRisk)
	}
}

func TestSummarizeEmptyBoard(t *testing.T) {
	s := Summarize(nil)
	if s != (BoardSummary{}) {
		t.Fatalf("empty board summary = %+v, want zeros", s)
	}
}
