package well

import "sort"

// NormalizeSegments applies ingestion-time defaulting so downstream
// derivation and rendering never have to guard individual records. A
// malformed depth range (negative, or from >= to) drops only that record;
// the rest of the well still renders. Negative NPT is treated as absent.
// The result is ordered by From.
func NormalizeSegments(raw []Segment) []Segment {
	out := make([]Segment, 0, len(raw))
	for _, s := range raw {
		if s.From < 0 || s.To <= s.From {
			continue
		}
		if s.NPTHours != nil && *s.NPTHours < 0 {
			s.NPTHours = nil
		}
		// Re-key the level through the classifier so unknown values
		// settle on normal once, not at every render site.
		switch Classify(s.Level).Rank {
		case 2:
			s.Level = SeverityCritical
		case 1:
			s.Level = SeverityWarning
		default:
			s.Level = SeverityNormal
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// DeepestEnd returns the largest segment end depth, 0 for an empty list.
// Used as the depth axis fallback when the backend omits depthMax.
func DeepestEnd(segments []Segment) float64 {
	var max float64
	for _, s := range segments {
		if s.To > max {
			max = s.To
		}
	}
	return max
}
