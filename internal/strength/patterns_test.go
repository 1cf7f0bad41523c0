package strength

import (
	"reflect"
	"testing"
)

func TestDetectPatternsRepeatedRun(t *testing.T) {
	penalty := DetectPatterns("aaabc")
	if penalty.Count != 1 {
		t.Fatalf("expected 1 penalty, got %d", penalty.Count)
	}
	if !reflect.DeepEqual(penalty.Warnings, []string{WarnRepeatedRun}) {
		t.Fatalf("unexpected warnings: %v", penalty.Warnings)
	}

	// Multiple runs still count once.
	penalty = DetectPatterns("aaa bbb")
	if penalty.Count != 1 {
		t.Fatalf("expected repeated run to cap at 1, got %d", penalty.Count)
	}

	if p := DetectPatterns("aabbc"); p.Count != 0 {
		t.Fatalf("two in a row is not a run, got %d", p.Count)
	}
}

func TestDetectPatternsTrailingDigits(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     int
	}{
		{name: "two trailing digits", password: "summer24", want: 1},
		{name: "long digit tail", password: "summer2024", want: 1},
		{name: "single trailing digit", password: "summer4", want: 0},
		{name: "digits not at end", password: "24summer", want: 0},
		{name: "short passwords exempt", password: "ab12", want: 0},
		{name: "exactly six with tail", password: "abcx12", want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectPatterns(tc.password)
			digitWarnings := 0
			for _, w := range got.Warnings {
				if w == WarnTrailingDigits {
					digitWarnings++
				}
			}
			if digitWarnings != tc.want {
				t.Fatalf("DetectPatterns(%q) trailing digit warnings = %d, want %d", tc.password, digitWarnings, tc.want)
			}
		})
	}
}

func TestDetectPatternsSequenceFirstMatchWins(t *testing.T) {
	// "1234" precedes "2345" in the table; only the first match is reported.
	penalty := DetectPatterns("x12345x")
	if penalty.Count != 1 {
		t.Fatalf("expected 1 penalty, got %d", penalty.Count)
	}
	if want := WarnSequence("1234"); penalty.Warnings[0] != want {
		t.Fatalf("expected %q, got %q", want, penalty.Warnings[0])
	}

	// Sequence matching is case-insensitive.
	penalty = DetectPatterns("myQWERTYkey")
	if penalty.Count != 1 || penalty.Warnings[0] != WarnSequence("qwerty") {
		t.Fatalf("expected qwerty match, got %v", penalty.Warnings)
	}
}

func TestDetectPatternsAllThreeCategories(t *testing.T) {
	// Repeated run, trailing digits, and a sequence: penalties cap at 3 and
	// warnings appear in check order.
	penalty := DetectPatterns("aaaqwerty12")
	if penalty.Count != 3 {
		t.Fatalf("expected 3 penalties, got %d", penalty.Count)
	}

	want := []string{WarnRepeatedRun, WarnTrailingDigits, WarnSequence("qwerty")}
	if !reflect.DeepEqual(penalty.Warnings, want) {
		t.Fatalf("warnings out of order:\n got %v\nwant %v", penalty.Warnings, want)
	}
}

func TestDetectPatternsClean(t *testing.T) {
	penalty := DetectPatterns("Tr0ub&dorMagWenKip")
	if penalty.Count != 0 || len(penalty.Warnings) != 0 {
		t.Fatalf("expected no penalties, got %+v", penalty)
	}
}

func TestDetectPatternsUnicode(t *testing.T) {
	// Rune-based scanning: a multi-byte rune tripled is still a run.
	penalty := DetectPatterns("帕帕帕word")
	if penalty.Count != 1 || penalty.Warnings[0] != WarnRepeatedRun {
		t.Fatalf("expected repeated run on multi-byte runes, got %+v", penalty)
	}
}
