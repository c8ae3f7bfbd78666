package maintenance

import "github.com/jbonatakis/wellwatch/internal/well"

// RawRecord is the equipment shape as supplied by the data source. Score
// and action are optional; band is derived, never trusted from upstream.
type RawRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Tag          string   `json:"tag"`
	RiskScore    *float64 `json:"riskScore,omitempty"`
	HoursUsed    float64  `json:"hoursUsed"`
	HoursMax     float64  `json:"hoursMax"`
	StressEvents int      `json:"stressEvents"`
	Action       string   `json:"action,omitempty"`
	NextHours    float64  `json:"nextMaintenanceHours"`
	Note         string   `json:"note"`
}

// Record is the fully-derived equipment row handed to presentation.
type Record struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Tag          string        `json:"tag"`
	RiskScore    float64       `json:"riskScore"`
	RiskBand     well.RiskBand `json:"riskBand"`
	HoursUsed    float64       `json:"hoursUsed"`
	HoursMax     float64       `json:"hoursMax"`
	UsagePercent float64       `json:"usagePercent"`
	Action       Action        `json:"recommendedAction"`
	NextHours    float64       `json:"nextMaintenanceHours"`
	Note         string        `json:"note"`
}

// Normalize derives the displayable record from a raw row. An upstream
// score wins when present; otherwise score computes it. The band is always
// re-derived from the score. An explicit upstream action wins over the
// band-derived default. Negative hour fields clamp to 0.
func Normalize(raw RawRecord, score ScoreFunc) Record {
	if score == nil {
		score = DefaultScore
	}
	if raw.HoursUsed < 0 {
		raw.HoursUsed = 0
	}
	if raw.NextHours < 0 {
		raw.NextHours = 0
	}

	var riskScore float64
	if raw.RiskScore != nil {
		riskScore = ClampPercent(*raw.RiskScore)
	} else {
		riskScore = ClampPercent(score(raw.HoursUsed, raw.HoursMax, raw.StressEvents))
	}
	band := BandForScore(riskScore)

	action := ActionForBand(band)
	switch Action(raw.Action) {
	case ActionMonitor, ActionInspect:
		action = Action(raw.Action)
	}

	return Record{
		ID:           raw.ID,
		Name:         raw.Name,
		Tag:          raw.Tag,
		RiskScore:    riskScore,
		RiskBand:     band,
		HoursUsed:    raw.HoursUsed,
		HoursMax:     raw.HoursMax,
		UsagePercent: UsagePercent(raw.HoursUsed, raw.HoursMax),
		Action:       action,
		NextHours:    raw.NextHours,
		Note:         raw.Note,
	}
}

// NormalizeAll derives every row with the same scorer.
func NormalizeAll(raw []RawRecord, score ScoreFunc) []Record {
	out := make([]Record, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r, score))
	}
	return out
}
