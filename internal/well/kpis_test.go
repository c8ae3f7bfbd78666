package well

import "testing"

func hoursPtr(v float64) *float64 { return &v }

func TestAggregateEmptyList(t *testing.T) {
	k := Aggregate(nil, 2000)
	if k.NPTHours != 0 || k.EventCount != 0 || k.CriticalEvents != 0 || k.HighRiskZones != 0 {
		t.Fatalf("expected all-zero KPIs for empty list, got %+v", k)
	}
	if k.RiskBand != RiskLow {
		t.Fatalf("expected Low band for empty list, got %q", k.RiskBand)
	}
	if k.DepthMax != 2000 {
		t.Fatalf("expected depthMax to pass through, got %v", k.DepthMax)
	}
}

func TestAggregateEndToEndExample(t *testing.T) {
	segments := []Segment{
		{From: 0, To: 200, Level: SeverityNormal},
		{From: 200, To: 400, Level: SeverityCritical, NPTHours: hoursPtr(1.0)},
	}
	k := Aggregate(segments, 400)
	if k.NPTHours != 1.0 {
		t.Fatalf("nptHours = %v, want 1.0", k.NPTHours)
	}
	if k.EventCount != 1 {
		t.Fatalf("eventCount = %d, want 1", k.EventCount)
	}
	if k.CriticalEvents != 1 {
		t.Fatalf("criticalEvents = %d, want 1", k.CriticalEvents)
	}
	if k.HighRiskZones != 1 {
		t.Fatalf("highRiskZones = %d, want 1", k.HighRiskZones)
	}
	if k.RiskBand != RiskHigh {
		t.Fatalf("riskBand = %q, want High", k.RiskBand)
	}
}

func TestAggregateNPTSum(t *testing.T) {
	segments := []Segment{
		{From: 0, To: 100, Level: SeverityWarning, NPTHours: hoursPtr(1.5)},
		{From: 100, To: 200, Level: SeverityNormal},
		{From: 200, To: 300, Level: SeverityWarning, NPTHours: hoursPtr(2.25)},
	}
	k := Aggregate(segments, 300)
	if k.NPTHours != 3.75 {
		t.Fatalf("nptHours = %v, want 3.75", k.NPTHours)
	}
}

func TestAggregateCountInvariants(t *testing.T) {
	segments := []Segment{
		{From: 0, To: 100, Level: SeverityCritical},
		{From: 100, To: 200, Level: SeverityWarning, EventType: "Reaming"},
		{From: 200, To: 300, Level: SeverityNormal, NPTHours: hoursPtr(0.5)},
		{From: 300, To: 400, Level: SeverityNormal},
	}
	k := Aggregate(segments, 400)
	if k.CriticalEvents > k.EventCount {
		t.Fatalf("criticalEvents %d > eventCount %d", k.CriticalEvents, k.EventCount)
	}
	if k.HighRiskZones < k.CriticalEvents {
		t.Fatalf("highRiskZones %d < criticalEvents %d", k.HighRiskZones, k.CriticalEvents)
	}
	if k.EventCount != 3 {
		t.Fatalf("eventCount = %d, want 3 (critical span, warning event, normal npt event)", k.EventCount)
	}
}

func TestAggregateRiskBandThresholds(t *testing.T) {
	warning := func(n int) []Segment {
		var out []Segment
		for i := 0; i < n; i++ {
			out = append(out, Segment{From: float64(i * 100), To: float64(i*100 + 100), Level: SeverityWarning})
		}
		return out
	}

	if k := Aggregate(warning(1), 100); k.RiskBand != RiskMedium {
		t.Fatalf("one warning zone: band = %q, want Medium", k.RiskBand)
	}
	if k := Aggregate(warning(2), 200); k.RiskBand != RiskMedium {
		t.Fatalf("two warning zones: band = %q, want Medium", k.RiskBand)
	}
	if k := Aggregate(warning(3), 300); k.RiskBand != RiskHigh {
		t.Fatalf("three warning zones: band = %q, want High", k.RiskBand)
	}
}

func TestAggregateCriticalAlwaysHigh(t *testing.T) {
	// Monotonicity: any critical event forces the High band regardless of
	// the rest of the well.
	segments := []Segment{
		{From: 0, To: 100, Level: SeverityCritical},
	}
	for i := 0; i < 5; i++ {
		if k := Aggregate(segments, 100); k.RiskBand != RiskHigh {
			t.Fatalf("band = %q, want High", k.RiskBand)
		}
		segments = append(segments, Segment{From: float64(100 + i*100), To: float64(200 + i*100), Level: SeverityNormal})
	}
}

func TestAggregateIgnoresNegativeNPT(t *testing.T) {
	segments := []Segment{
		{From: 0, To: 100, Level: SeverityNormal, NPTHours: hoursPtr(-3)},
		{From: 100, To: 200, Level: SeverityNormal, NPTHours: hoursPtr(2)},
	}
	k := Aggregate(segments, 200)
	if k.NPTHours != 2 {
		t.Fatalf("nptHours = %v, want 2 (negative value ignored)", k.NPTHours)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	segments := []Segment{
		{From: 0, To: 100, Level: SeverityWarning, NPTHours: hoursPtr(1)},
		{From: 100, To: 200, Level: SeverityCritical, NPTHours: hoursPtr(2)},
	}
	first := Aggregate(segments, 200)
	second := Aggregate(segments, 200)
	if first != second {
		t.Fatalf("Aggregate not deterministic: %+v vs %+v", first, second)
	}
}
