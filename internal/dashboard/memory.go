package dashboard

import (
	"context"
	"time"

	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/well"
)

// DefaultWellID is the fallback for unknown well ids.
const DefaultWellID = "WELL-01"

// MemoryRepository serves deterministic in-memory fixtures. It backs demo
// mode and lets the derivation pipeline be exercised without a transport.
type MemoryRepository struct {
	directory []well.Summary
	payloads  map[string]Payload
}

// NewMemoryRepository builds the repository over the bundled sample wells.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		directory: sampleDirectory(),
		payloads:  samplePayloads(),
	}
}

func (r *MemoryRepository) Directory(_ context.Context) ([]well.Summary, error) {
	out := make([]well.Summary, len(r.directory))
	copy(out, r.directory)
	return out, nil
}

// Dashboard returns the payload for the well, falling back to the default
// well when the id is unknown. It never fails.
func (r *MemoryRepository) Dashboard(_ context.Context, wellID string) (Payload, error) {
	if p, ok := r.payloads[wellID]; ok {
		return p, nil
	}
	return r.payloads[DefaultWellID], nil
}

func sampleDirectory() []well.Summary {
	return []well.Summary{
		{ID: "WELL-01", Name: "Obigbo North 7", Location: "Niger Delta", Status: well.SeverityWarning},
		{ID: "WELL-02", Name: "Umuechem 12", Location: "Niger Delta", Status: well.SeverityWarning},
		{ID: "WELL-03", Name: "Korokoro 4", Location: "Ogoni Field", Status: well.SeverityCritical},
	}
}

func hoursOf(v float64) *float64 { return &v }

func timeOf(v string) *time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

func samplePayloads() map[string]Payload {
	stuckPipe := &well.Explanation{
		Title:         "Stuck pipe while reaming",
		FlaggedReason: "Over two hours of non-productive time recorded against a single depth interval.",
		ContributingFactors: []well.Factor{
			{Heading: "Wellbore instability", Text: "Reactive shale section swelled after prolonged exposure to water-based mud.", SeverityTag: well.SeverityCritical},
			{Heading: "Insufficient hole cleaning", Text: "Cuttings accumulation in the deviated section increased torque and drag.", SeverityTag: well.SeverityWarning},
		},
		TechnicalFactors: []string{
			"Mud weight below the stability window for the shale interval",
			"Rotary speed reduced during the connection preceding the event",
		},
		PreventionMeasures: []string{
			"Raise mud weight before re-entering the interval",
			"Schedule wiper trips through the reactive section",
			"Monitor torque trend against the drag model",
		},
		Methodology: "Flagging combines recorded NPT, operation keywords, and duration thresholds over the daily report stream.",
	}

	return map[string]Payload{
		"WELL-01": {
			WellID:   "WELL-01",
			DepthMax: 2000,
			Segments: []well.Segment{
				{From: 0, To: 200, Level: well.SeverityNormal},
				{From: 200, To: 400, Level: well.SeverityNormal},
				{From: 400, To: 600, Level: well.SeverityNormal},
				{From: 600, To: 800, Level: well.SeverityWarning,
					EventType:     "Tight Hole",
					OperationType: "Reaming",
					NPTHours:      hoursOf(2.1),
					Equipment:     []string{"Drill String", "Top Drive"},
					ActionsTaken:  []string{"Backreamed the interval", "Circulated bottoms-up"},
					WhyItMatters:  "Repeated tight hole on connections signals developing wellbore instability.",
					RecordedAt:    timeOf("2024-02-11")},
				{From: 800, To: 1000, Level: well.SeverityNormal},
			},
			Equipment: []maintenance.RawRecord{
				{ID: "eq-mudpumps", Name: "Mud Pumps", Tag: "Surface", RiskScore: hoursOf(28),
					HoursUsed: 920, HoursMax: 3000, NextHours: 580,
					Note: "Operating efficiently. Routine maintenance schedule on track."},
				{ID: "eq-topdrive", Name: "Top Drive", Tag: "Surface", RiskScore: hoursOf(18),
					HoursUsed: 400, HoursMax: 2400, NextHours: 900,
					Note: "Excellent condition. Recent inspection completed with no issues identified."},
			},
		},
		"WELL-02": {
			WellID:   "WELL-02",
			DepthMax: 2000,
			Segments: []well.Segment{
				{From: 0, To: 200, Level: well.SeverityNormal},
				{From: 200, To: 400, Level: well.SeverityNormal},
				{From: 400, To: 600, Level: well.SeverityWarning,
					EventType:     "Mud Losses",
					OperationType: "Drilling",
					NPTHours:      hoursOf(1.2),
					Equipment:     []string{"Mud Pumps"},
					ActionsTaken:  []string{"Pumped LCM pill"},
					WhyItMatters:  "Seepage losses into a fractured zone raise the cost of the mud program.",
					RecordedAt:    timeOf("2024-03-02")},
				{From: 600, To: 800, Level: well.SeverityNormal},
				{From: 800, To: 1000, Level: well.SeverityWarning,
					EventType:     "High Torque",
					OperationType: "Drilling",
					NPTHours:      hoursOf(1.0),
					Equipment:     []string{"Drill String", "Drilling Motor"},
					ActionsTaken:  []string{"Reduced WOB", "Adjusted rotary speed"},
					WhyItMatters:  "Sustained torque above the drag model accelerates string fatigue.",
					RecordedAt:    timeOf("2024-03-05")},
				{From: 1000, To: 1200, Level: well.SeverityCritical,
					EventType:     "Stuck Pipe",
					OperationType: "Tripping",
					NPTHours:      hoursOf(3.2),
					Equipment:     []string{"Drill String", "Drill Bit"},
					ActionsTaken:  []string{"Worked the string free", "Spotted freeing pill"},
					WhyItMatters:  "Stuck pipe is the costliest recurring NPT source on this well.",
					RecordedAt:    timeOf("2024-03-06"),
					Explanation:   stuckPipe},
			},
			Equipment: []maintenance.RawRecord{
				{ID: "eq-drillbit", Name: "Drill Bit", Tag: "Primary", RiskScore: hoursOf(78),
					HoursUsed: 245, HoursMax: 300, NextHours: 55,
					Note: "Approaching recommended replacement threshold. Reaming has accelerated wear."},
				{ID: "eq-drillstring", Name: "Drill String", Tag: "Primary", RiskScore: hoursOf(61),
					HoursUsed: 1600, HoursMax: 2500, NextHours: 420,
					Note: "Operating within normal parameters. Recent stuck pipe event requires monitoring."},
				{ID: "eq-motor", Name: "Drilling Motor", Tag: "Downhole", RiskScore: hoursOf(54),
					HoursUsed: 310, HoursMax: 600, NextHours: 250,
					Note: "Performance indicators within acceptable range. No immediate action required."},
			},
		},
		"WELL-03": {
			WellID:   "WELL-03",
			DepthMax: 2000,
			Segments: []well.Segment{
				{From: 0, To: 200, Level: well.SeverityNormal},
				{From: 200, To: 400, Level: well.SeverityNormal},
				{From: 400, To: 600, Level: well.SeverityWarning,
					EventType:     "Tight Hole",
					OperationType: "Reaming",
					NPTHours:      hoursOf(1.8),
					Equipment:     []string{"Drill String"},
					ActionsTaken:  []string{"Backreamed to shoe"},
					WhyItMatters:  "Recurring tight hole in the same interval points at a swelling formation.",
					RecordedAt:    timeOf("2024-04-14")},
				{From: 600, To: 800, Level: well.SeverityNormal},
				{From: 800, To: 1000, Level: well.SeverityWarning,
					EventType:     "Mud Losses",
					OperationType: "Drilling",
					NPTHours:      hoursOf(1.5),
					Equipment:     []string{"Mud Pumps"},
					ActionsTaken:  []string{"Pumped LCM pill", "Reduced ECD"},
					WhyItMatters:  "Losses climbing toward total-loss territory for this formation.",
					RecordedAt:    timeOf("2024-04-16")},
				{From: 1000, To: 1200, Level: well.SeverityCritical,
					EventType:     "Stuck Pipe",
					OperationType: "Tripping",
					NPTHours:      hoursOf(3.5),
					Equipment:     []string{"Drill String", "Bottom Hole Assembly"},
					ActionsTaken:  []string{"Jarred down", "Spotted freeing pill", "Worked string free"},
					WhyItMatters:  "Second stuck-pipe event in this section; risk of losing the BHA.",
					RecordedAt:    timeOf("2024-04-18"),
					Explanation:   stuckPipe},
				{From: 1200, To: 1400, Level: well.SeverityNormal},
				{From: 1400, To: 1600, Level: well.SeverityWarning,
					EventType:     "High Torque",
					OperationType: "Drilling",
					NPTHours:      hoursOf(1.5),
					Equipment:     []string{"Drilling Motor"},
					ActionsTaken:  []string{"Adjusted drilling parameters"},
					WhyItMatters:  "Torque trending up after the stuck-pipe interval.",
					RecordedAt:    timeOf("2024-04-21")},
			},
			Equipment: []maintenance.RawRecord{
				{ID: "eq-drillstring", Name: "Drill String", Tag: "Primary", RiskScore: hoursOf(65),
					HoursUsed: 1850, HoursMax: 2500, NextHours: 500,
					Note: "Operating within normal parameters. Recent stuck pipe event requires continued monitoring."},
				{ID: "eq-drillbit", Name: "Drill Bit", Tag: "Primary", RiskScore: hoursOf(82),
					HoursUsed: 245, HoursMax: 300, NextHours: 55,
					Note: "Approaching recommended replacement threshold. Multiple reaming operations have accelerated wear."},
				{ID: "eq-motor", Name: "Drilling Motor", Tag: "Downhole", RiskScore: hoursOf(58),
					HoursUsed: 380, HoursMax: 600, NextHours: 220,
					Note: "Performance indicators within acceptable range. No immediate action required."},
				{ID: "eq-topdrive", Name: "Top Drive", Tag: "Surface", RiskScore: hoursOf(28),
					HoursUsed: 620, HoursMax: 2800, NextHours: 950,
					Note: "Excellent condition. Recent inspection completed with no issues identified."},
				{ID: "eq-mudpumps", Name: "Mud Pumps", Tag: "Surface", RiskScore: hoursOf(35),
					HoursUsed: 920, HoursMax: 3000, NextHours: 580,
					Note: "Operating efficiently. Routine maintenance schedule on track."},
				{ID: "eq-bha", Name: "Bottom Hole Assembly", Tag: "Downhole", RiskScore: hoursOf(70),
					HoursUsed: 280, HoursMax: 400, NextHours: 120,
					Note: "Exposure to high-stress events. Recommend inspection at next trip."},
			},
		},
	}
}
