package domain

// Category is the three-tier strength label derived from the numeric score.
type Category string

const (
	CategoryWeak   Category = "Weak"
	CategoryOkay   Category = "Okay"
	CategoryStrong Category = "Strong"
)

// CategoryForScore maps a final score onto its strength tier.
func CategoryForScore(score int) Category {
	switch {
	case score <= 3:
		return CategoryWeak
	case score <= 5:
		return CategoryOkay
	default:
		return CategoryStrong
	}
}

// EvaluationResult is the triple produced by a single password evaluation.
// Feedback ordering reflects check order and is reproducible across calls.
type EvaluationResult struct {
	Score    int
	Category Category
	Feedback []string
}

// PatternPenalty aggregates the deductions found by the pattern detector.
type PatternPenalty struct {
	Count    int
	Warnings []string
}
