package well

import "strings"

// Classification is the ordered rendering of a severity level. Rank orders
// critical > warning > normal; Label is the human form.
type Classification struct {
	Rank  int
	Label string
}

// Classify maps a raw severity level to its rank and label. Unknown or
// missing levels fail closed to Normal so a bad record never blocks
// rendering.
func Classify(level Severity) Classification {
	switch Severity(strings.ToLower(strings.TrimSpace(string(level)))) {
	case SeverityCritical:
		return Classification{Rank: 2, Label: "Critical"}
	case SeverityWarning:
		return Classification{Rank: 1, Label: "Warning"}
	default:
		return Classification{Rank: 0, Label: "Normal"}
	}
}

// ClassifyOperation derives a severity level from a raw operation row.
// Thresholds: recorded NPT of two hours or more, or a description flagging
// non-productive time or a stuck pipe, is critical; a long-running
// operation is a warning; everything else is normal.
func ClassifyOperation(description string, durationHours, nptHours *float64) Severity {
	if nptHours != nil && *nptHours >= 2 {
		return SeverityCritical
	}
	desc := strings.ToUpper(description)
	if strings.Contains(desc, "NPT") || strings.Contains(desc, "NO SUCCESS") || strings.Contains(desc, "STUCK") {
		return SeverityCritical
	}
	if durationHours != nil && *durationHours >= 4 {
		return SeverityWarning
	}
	return SeverityNormal
}

// WorstSeverity returns the highest-ranked level across segments, Normal
// for an empty list.
func WorstSeverity(segments []Segment) Severity {
	worst := SeverityNormal
	worstRank := 0
	for _, s := range segments {
		if c := Classify(s.Level); c.Rank > worstRank {
			worstRank = c.Rank
			worst = Severity(strings.ToLower(c.Label))
		}
	}
	return worst
}
