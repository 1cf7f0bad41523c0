// Package strength implements the password analysis primitives: leetspeak
// canonicalization and structural pattern detection.
package strength

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes nonspacing marks, reducing
// accented characters to their ASCII base (e.g. "é" -> "e").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// leetTable folds common leetspeak substitutions back to letters.
// Substitution is single-pass: a substituted rune is never re-substituted.
var leetTable = map[rune]rune{
	'@': 'a', '4': 'a',
	'3': 'e',
	'1': 'i', '!': 'i',
	'0': 'o',
	'5': 's', '$': 's',
	'7': 't', '+': 't',
	'8': 'b',
	'6': 'g',
	'9': 'g',
}

// Normalize converts text into its canonical comparison form: accents
// stripped, lowercased, and leetspeak folded to plain letters.
func Normalize(text string) string {
	ascii, _, err := transform.String(stripMarks, text)
	if err != nil {
		ascii = text
	}

	lower := strings.ToLower(ascii)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if mapped, ok := leetTable[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
