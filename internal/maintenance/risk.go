// Package maintenance converts raw equipment usage and stress exposure into
// the risk bands and forecasts shown on the predictive-maintenance board.
package maintenance

import (
	"math"

	"github.com/jbonatakis/wellwatch/internal/well"
)

// Banding thresholds on the 0-100 risk score. Enforced here and nowhere
// else; display code must never re-derive bands.
const (
	highScoreThreshold   = 70
	mediumScoreThreshold = 40
)

// Action is the recommended operator response for a piece of equipment.
type Action string

const (
	ActionMonitor Action = "Monitor"
	ActionInspect Action = "Inspect"
)

// BandForScore maps a 0-100 risk score to its band. Pure and
// order-independent: identical scores always yield identical bands.
func BandForScore(score float64) well.RiskBand {
	switch {
	case score >= highScoreThreshold:
		return well.RiskHigh
	case score >= mediumScoreThreshold:
		return well.RiskMedium
	default:
		return well.RiskLow
	}
}

// ActionForBand returns the derived recommendation when the upstream source
// supplies none.
func ActionForBand(band well.RiskBand) Action {
	if band == well.RiskHigh {
		return ActionInspect
	}
	return ActionMonitor
}

// ClampPercent bounds a percentage to [0, 100]. Total over all inputs,
// including NaN, which degrades to 0.
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// UsagePercent is the display percentage for operating hours. An invalid
// hoursMax (non-positive) degrades to 0 rather than failing; over-usage
// clamps to 100 while the underlying hours remain displayable as-is.
func UsagePercent(hoursUsed, hoursMax float64) float64 {
	if hoursMax <= 0 {
		return 0
	}
	return ClampPercent(hoursUsed / hoursMax * 100)
}

// ScoreFunc computes a 0-100 risk score from usage and stress exposure.
// The formula is pluggable; only the banding contract above is fixed.
type ScoreFunc func(hoursUsed, hoursMax float64, stressEvents int) float64

// DefaultScore blends usage with exposure to high-stress drilling events.
// Usage contributes up to 70 points, each stress event 10 more.
func DefaultScore(hoursUsed, hoursMax float64, stressEvents int) float64 {
	score := UsagePercent(hoursUsed, hoursMax) * 0.7
	score += float64(stressEvents) * 10
	return ClampPercent(score)
}
