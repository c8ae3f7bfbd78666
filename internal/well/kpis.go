package well

// Risk band thresholds for a whole well: any critical event makes the well
// High, as does a cluster of flagged zones; a single flagged zone is Medium.
const (
	highRiskZoneClusterSize = 3
)

// Aggregate reduces one well's segment list to dashboard KPIs. It is total
// and deterministic: the same list always yields the same KPIs, and an
// empty list yields all-zero counts with a Low band.
func Aggregate(segments []Segment, depthMax float64) Kpis {
	k := Kpis{DepthMax: depthMax, RiskBand: RiskLow}
	for _, s := range segments {
		if s.NPTHours != nil && *s.NPTHours > 0 {
			k.NPTHours += *s.NPTHours
		}
		rank := Classify(s.Level).Rank
		// A flagged span is an event even when the backend attached no
		// detail record; a plain normal span is not.
		if s.HasEvent() || rank > 0 {
			k.EventCount++
		}
		switch rank {
		case 2:
			k.CriticalEvents++
			k.HighRiskZones++
		case 1:
			k.HighRiskZones++
		}
	}
	k.RiskBand = wellRiskBand(k.CriticalEvents, k.HighRiskZones)
	return k
}

func wellRiskBand(criticalEvents, highRiskZones int) RiskBand {
	if criticalEvents >= 1 || highRiskZones >= highRiskZoneClusterSize {
		return RiskHigh
	}
	if highRiskZones >= 1 {
		return RiskMedium
	}
	return RiskLow
}
