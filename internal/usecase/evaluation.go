package usecase

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/arklim/passmeter/internal/core/domain"
	"github.com/arklim/passmeter/internal/core/port"
	"github.com/arklim/passmeter/internal/strength"
)

// Feedback messages, appended in the order the corresponding checks run.
const (
	FeedbackEmpty       = "Password cannot be empty."
	FeedbackTooShort    = "Password is too short — use at least 6 characters."
	FeedbackBlacklisted = "This password is commonly used. Choose a different one."
	FeedbackLength      = "Use 12+ characters — longer is stronger."
	FeedbackUppercase   = "Add an uppercase letter."
	FeedbackLowercase   = "Add a lowercase letter."
	FeedbackDigit       = "Add a number."
	FeedbackSymbol      = "Add a symbol (like ! or #)."
	FeedbackOkay16      = "Using 16+ characters would make this stronger."
	FeedbackOkay20      = "You can try using a password with 20+ characters to reach strong."
)

const minPasswordLength = 6

// symbolSet is the fixed set of characters counted as symbols.
const symbolSet = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// EvaluationService scores password strength against the blacklist and the
// structural pattern checks. It holds no per-call state: evaluation reads only
// the immutable blacklist and the input string, so concurrent use is safe.
type EvaluationService struct {
	blacklist port.Blacklist
	logger    *zap.Logger
}

// NewEvaluationService constructs the scorer over the provided blacklist.
func NewEvaluationService(blacklist port.Blacklist, logger *zap.Logger) *EvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{
		blacklist: blacklist,
		logger:    logger,
	}
}

// Evaluate produces the score, category, and ordered feedback for a password.
// It accepts any string and never fails: empty, short, and blacklisted inputs
// are well-defined outcomes, not errors.
//
// Scoring: up to +3 for length (12/16/20 thresholds) plus +1 per character
// class (upper, lower, digit, symbol), minus pattern penalties, floored at 0.
// The final score is always within [0, 7].
func (s *EvaluationService) Evaluate(password string) domain.EvaluationResult {
	feedback := make([]string, 0, 4)

	if password == "" {
		return domain.EvaluationResult{
			Score:    0,
			Category: domain.CategoryWeak,
			Feedback: append(feedback, FeedbackEmpty),
		}
	}

	length := len([]rune(password))
	if length < minPasswordLength {
		return domain.EvaluationResult{
			Score:    0,
			Category: domain.CategoryWeak,
			Feedback: append(feedback, FeedbackTooShort),
		}
	}

	// The blacklist is matched on the raw lowercase form, not the
	// leet-normalized form from strength.Normalize. Known gap: obfuscated
	// variants of blacklisted passwords are not caught here.
	if s.blacklist != nil && s.blacklist.Contains(password) {
		return domain.EvaluationResult{
			Score:    0,
			Category: domain.CategoryWeak,
			Feedback: append(feedback, FeedbackBlacklisted),
		}
	}

	score := 0

	switch {
	case length >= 20:
		score += 3
	case length >= 16:
		score += 2
	case length >= 12:
		score++
	default:
		feedback = append(feedback, FeedbackLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(symbolSet, r) {
			hasSymbol = true
		}
	}

	if hasUpper {
		score++
	} else {
		feedback = append(feedback, FeedbackUppercase)
	}
	if hasLower {
		score++
	} else {
		feedback = append(feedback, FeedbackLowercase)
	}
	if hasDigit {
		score++
	} else {
		feedback = append(feedback, FeedbackDigit)
	}
	if hasSymbol {
		score++
	} else {
		feedback = append(feedback, FeedbackSymbol)
	}

	penalty := strength.DetectPatterns(password)
	score -= penalty.Count
	if score < 0 {
		score = 0
	}
	feedback = append(feedback, penalty.Warnings...)

	category := domain.CategoryForScore(score)
	if category == domain.CategoryOkay {
		if length < 16 {
			feedback = append(feedback, FeedbackOkay16)
		} else if length < 20 {
			feedback = append(feedback, FeedbackOkay20)
		}
	}

	return domain.EvaluationResult{
		Score:    score,
		Category: category,
		Feedback: feedback,
	}
}
