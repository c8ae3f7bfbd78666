package maintenance

import (
	"math"
	"testing"

	"github.com/jbonatakis/wellwatch/internal/well"
)

func TestBandForScoreThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  well.RiskBand
	}{
		{0, well.RiskLow},
		{39.9, well.RiskLow},
		{40, well.RiskMedium},
		{69.9, well.RiskMedium},
		{70, well.RiskHigh},
		{100, well.RiskHigh},
	}
	for _, tc := range cases {
		if got := BandForScore(tc.score); got != tc.want {
			t.Fatalf("BandForScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestBandForScoreIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if BandForScore(65) != well.RiskMedium {
			t.Fatalf("re-scoring the same value changed the band")
		}
	}
}

func TestClampPercentBounds(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{250, 100},
		{math.NaN(), 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, tc := range cases {
		got := ClampPercent(tc.in)
		if got != tc.want {
			t.Fatalf("ClampPercent(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("ClampPercent(%v) = %v outside [0,100]", tc.in, got)
		}
	}
}

func TestUsagePercent(t *testing.T) {
	if got := UsagePercent(245, 300); math.Abs(got-81.666) > 0.01 {
		t.Fatalf("UsagePercent(245, 300) = %v, want ~81.67", got)
	}
	if got := UsagePercent(450, 300); got != 100 {
		t.Fatalf("over-usage should clamp to 100, got %v", got)
	}
	if got := UsagePercent(100, 0); got != 0 {
		t.Fatalf("hoursMax 0 should degrade to 0, got %v", got)
	}
	if got := UsagePercent(100, -50); got != 0 {
		t.Fatalf("negative hoursMax should degrade to 0, got %v", got)
	}
}

func TestDefaultScoreStaysInRange(t *testing.T) {
	cases := []struct {
		used, max float64
		stress    int
	}{
		{0, 0, 0},
		{100, 200, 0},
		{5000, 100, 50},
		{-10, 100, -3},
	}
	for _, tc := range cases {
		got := DefaultScore(tc.used, tc.max, tc.stress)
		if got < 0 || got > 100 {
			t.Fatalf("DefaultScore(%v, %v, %d) = %v outside [0,100]", tc.used, tc.max, tc.stress, got)
		}
	}
}

func TestActionForBand(t *testing.T) {
	if got := ActionForBand(well.RiskHigh); got != ActionInspect {
		t.Fatalf("High band action = %q, want Inspect", got)
	}
	if got := ActionForBand(well.RiskMedium); got != ActionMonitor {
		t.Fatalf("Medium band action = %q, want Monitor", got)
	}
	if got := ActionForBand(well.RiskLow); got != ActionMonitor {
		t.Fatalf("Low band action = %q, want Monitor", got)
	}
}
