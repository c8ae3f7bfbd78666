package well

import "time"

// Severity is the per-segment event level reported by the backend.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// RiskBand is the coarse maintenance classification derived from finer
// per-well or per-equipment signals.
type RiskBand string

const (
	RiskLow    RiskBand = "Low"
	RiskMedium RiskBand = "Medium"
	RiskHigh   RiskBand = "High"
)

// Summary is one entry in the well directory. Immutable once listed.
type Summary struct {
	ID       string   `json:"well_id"`
	Name     string   `json:"well_name"`
	Location string   `json:"location"`
	Status   Severity `json:"status"`
}

// Factor is one contributing factor inside an Explanation.
type Factor struct {
	Heading     string   `json:"heading"`
	Text        string   `json:"text"`
	SeverityTag Severity `json:"severityTag"`
}

// Explanation is the optional "why was this flagged" record attached to a
// segment. Absent unless the backend supplies one.
type Explanation struct {
	Title               string   `json:"title"`
	FlaggedReason       string   `json:"flaggedReason"`
	ContributingFactors []Factor `json:"contributingFactors"`
	TechnicalFactors    []string `json:"technicalFactors"`
	PreventionMeasures  []string `json:"preventionMeasures"`
	Methodology         string   `json:"methodology"`
}

// Segment is a contiguous depth interval of the wellbore. The event fields
// are optional; a segment without them is a plain severity span.
type Segment struct {
	From          float64      `json:"from"`
	To            float64      `json:"to"`
	Level         Severity     `json:"level"`
	EventType     string       `json:"eventType,omitempty"`
	NPTHours      *float64     `json:"nptHours,omitempty"`
	OperationType string       `json:"operationType,omitempty"`
	Equipment     []string     `json:"equipment,omitempty"`
	ActionsTaken  []string     `json:"actionsTaken,omitempty"`
	WhyItMatters  string       `json:"whyItMatters,omitempty"`
	RecordedAt    *time.Time   `json:"recordedAt,omitempty"`
	Explanation   *Explanation `json:"explanation,omitempty"`
}

// HasEvent reports whether the segment carries an event detail record, as
// opposed to being a plain contiguous span. Only event-carrying segments
// count toward the dashboard's event KPIs.
func (s Segment) HasEvent() bool {
	return s.EventType != "" ||
		s.NPTHours != nil ||
		s.OperationType != "" ||
		len(s.Equipment) > 0 ||
		len(s.ActionsTaken) > 0 ||
		s.WhyItMatters != "" ||
		s.RecordedAt != nil ||
		s.Explanation != nil
}

// Kpis is the derived per-well summary. Never hand-edited; recomputed
// wholesale from the segment list.
type Kpis struct {
	DepthMax       float64  `json:"depthMax"`
	NPTHours       float64  `json:"nptHours"`
	EventCount     int      `json:"eventCount"`
	CriticalEvents int      `json:"criticalEvents"`
	HighRiskZones  int      `json:"highRiskZones"`
	RiskBand       RiskBand `json:"maintenanceRiskBand"`
}
