package strength

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arklim/passmeter/internal/core/domain"
)

const (
	// WarnRepeatedRun is emitted when three identical characters appear in a row.
	WarnRepeatedRun = "Avoid using repeated characters (e.g., 'aaa' / '111')."
	// WarnTrailingDigits is emitted when a password of six or more characters ends with two or more digits.
	WarnTrailingDigits = "Avoid ending with multiple digits (common predictable pattern)."

	trailingDigitsMinLength = 6
	trailingDigitsMinRun    = 2
)

// commonSequences is checked in order; the first match wins.
var commonSequences = []string{
	"0123", "1234", "2345", "3456", "4567", "5678", "6789",
	"abcd", "bcde", "cdef", "defg", "efgh", "fghi", "ghij",
	"qwerty", "asdf", "zxcv",
}

// WarnSequence names the matched common sequence.
func WarnSequence(seq string) string {
	return fmt.Sprintf("Avoid using a common sequence ('%s').", seq)
}

// DetectPatterns scans a password for structurally weak patterns. Each of the
// three checks contributes at most one penalty point and stops at its first
// match, so the total count is in {0,1,2,3}. Warnings are appended in check
// order: repetition, trailing digits, then sequence.
func DetectPatterns(password string) domain.PatternPenalty {
	var penalty domain.PatternPenalty

	chars := []rune(password)

	for i := 0; i+2 < len(chars); i++ {
		if chars[i] == chars[i+1] && chars[i+1] == chars[i+2] {
			penalty.Count++
			penalty.Warnings = append(penalty.Warnings, WarnRepeatedRun)
			break
		}
	}

	if len(chars) >= trailingDigitsMinLength {
		run := 0
		for i := len(chars) - 1; i >= 0; i-- {
			if !unicode.IsDigit(chars[i]) {
				break
			}
			run++
		}
		if run >= trailingDigitsMinRun {
			penalty.Count++
			penalty.Warnings = append(penalty.Warnings, WarnTrailingDigits)
		}
	}

	lower := strings.ToLower(password)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			penalty.Count++
			penalty.Warnings = append(penalty.Warnings, WarnSequence(seq))
			break
		}
	}

	return penalty
}
