package scoring

import "fmt"

// Compliance tier labels, highest first.
const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierSatisfactory     = "Satisfactory"
	TierNeedsImprovement = "Needs Improvement"
	TierPoor             = "Poor"
)

// Classification pairs a star rating with its compliance tier label.
type Classification struct {
	Stars int
	Tier  string
}

// Classify maps a total score to its star rating and compliance tier.
// Thresholds are inclusive lower bounds evaluated highest-first. Scores
// outside [0,100] cannot occur when the score came from summing section
// sub-scores; such input is a contract violation.
func Classify(total int) (Classification, error) {
	if total < 0 || total > 100 {
		return Classification{}, fmt.Errorf("scoring: total %d out of range [0,100]", total)
	}

	switch {
	case total >= 90:
		return Classification{Stars: 5, Tier: TierExcellent}, nil
	case total >= 80:
		return Classification{Stars: 4, Tier: TierGood}, nil
	case total >= 70:
		return Classification{Stars: 3, Tier: TierSatisfactory}, nil
	case total >= 60:
		return Classification{Stars: 2, Tier: TierNeedsImprovement}, nil
	default:
		return Classification{Stars: 1, Tier: TierPoor}, nil
	}
}

// Compliant reports whether a total score meets the compliance cut-off used
// in the SMS summary (satisfactory or better).
func Compliant(total int) bool {
	return total >= 70
}
