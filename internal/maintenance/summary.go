package maintenance

import (
	"math"

	"github.com/jbonatakis/wellwatch/internal/well"
)

// BoardSummary is the card row above the equipment board.
type BoardSummary struct {
	OverallRisk int `json:"overallRisk"`
	HighRisk    int `json:"highRiskCount"`
	MediumRisk  int `json:"mediumRiskCount"`
	LowRisk     int `json:"lowRiskCount"`
	Total       int `json:"totalEquipment"`
}

// Summarize rolls the equipment board into its summary cards. OverallRisk
// is the mean risk score rounded to the nearest whole percent; an empty
// board summarizes to all zeros.
func Summarize(records []Record) BoardSummary {
	s := BoardSummary{Total: len(records)}
	if len(records) == 0 {
		return s
	}
	var sum float64
	for _, r := range records {
		sum += r.RiskScore
		switch BandForScore(r.RiskScore) {
		case well.RiskHigh:
			s.HighRisk++
		case well.RiskMedium:
			s.MediumRisk++
		default:
			s.LowRisk++
		}
	}
	s.OverallRisk = int(math.Round(sum / float64(len(records))))
	return s
}
