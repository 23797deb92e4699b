// samples.go generates in-language sample strings and bounded test-string
// batches for each pattern, plus the per-pattern pumping-length defaults
// and complexity notes used by the presentation layer.

package language

import "strings"

// Samples returns up to count strings that belong to the language of p,
// ordered short to long. For patterns with infinite regular structure the
// samples are generated; for the repetition languages (WW, WWReverse,
// EvenAs) a fixed representative set is used, as generating "interesting"
// members mechanically tends to produce degenerate ones.
//
// An unknown pattern falls back to a small generic set so callers always
// have something to show.
func Samples(p Pattern, count int) []string {
	if count <= 0 {
		return nil
	}
	var samples []string
	switch p {
	case AnBn:
		for n := 1; n <= count; n++ {
			samples = append(samples, strings.Repeat("a", n)+strings.Repeat("b", n))
		}
	case AnBm:
		for n := 1; n <= count; n++ {
			samples = append(samples, strings.Repeat("a", n)+strings.Repeat("b", n))
			if n < count {
				samples = append(samples, strings.Repeat("a", n)+strings.Repeat("b", n+1))
			}
		}
	case AStarBStar:
		samples = []string{"", "a", "b", "aa", "bb", "aaa", "bbb", "aab", "abb"}
	case ABStar:
		for n := 0; n <= count; n++ {
			samples = append(samples, strings.Repeat("ab", n))
		}
	case AnBnCn:
		limit := count
		if limit > 4 {
			limit = 4 // cubes grow fast; keep demo strings short
		}
		for n := 1; n <= limit; n++ {
			samples = append(samples,
				strings.Repeat("a", n)+strings.Repeat("b", n)+strings.Repeat("c", n))
		}
	case WW:
		samples = []string{"aa", "abab", "aabaab", "abcabc"}
	case WWReverse:
		samples = []string{"aa", "abba", "aabbaa", "abaaba"}
	case EvenAs:
		samples = []string{"", "aa", "baab", "abab", "baba", "bb", "aabb", "bbaa", "abba"}
	}
	if len(samples) > count {
		samples = samples[:count]
	}
	if len(samples) == 0 {
		fallback := []string{"a", "aa", "b", "bb", "ab", "aab", "abb"}
		if count < len(fallback) {
			fallback = fallback[:count]
		}
		return fallback
	}
	return samples
}

// TestStrings returns in-language strings with lengths roughly in
// [minLen, maxLen], suitable as the input batch for property analysis.
// Patterns with fixed sample sets are filtered by length; generated
// patterns enumerate their parameter up to maxLen.
func TestStrings(p Pattern, minLen, maxLen int) []string {
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		return nil
	}
	var out []string
	switch p {
	case AnBn:
		for n := max(minLen, 1); n <= maxLen; n++ {
			out = append(out, strings.Repeat("a", n)+strings.Repeat("b", n))
		}
	case AnBm, AStarBStar:
		for n := max(minLen, 1); n <= maxLen; n++ {
			for m := max(minLen, 1); m <= maxLen; m++ {
				out = append(out, strings.Repeat("a", n)+strings.Repeat("b", m))
			}
		}
	case ABStar:
		for n := max(minLen, 1); n <= maxLen; n++ {
			out = append(out, strings.Repeat("ab", n))
		}
	case AnBnCn:
		limit := maxLen
		if limit > 4 {
			limit = 4
		}
		for n := max(minLen, 1); n <= limit; n++ {
			out = append(out, strings.Repeat("a", n)+strings.Repeat("b", n)+strings.Repeat("c", n))
		}
	case WW:
		out = filterByLength([]string{"aa", "abab", "aabaab", "abcabc"}, minLen, maxLen)
	case WWReverse:
		out = filterByLength([]string{"aa", "abba", "abaaba", "aabbaa"}, minLen, maxLen)
	case EvenAs:
		out = filterByLength([]string{"", "aa", "baab", "abab", "baba", "bb", "aabb", "bbaa", "abba"}, minLen, maxLen)
	}
	if len(out) == 0 {
		generic := []string{"a", "aa", "aaa", "b", "bb", "bbb", "ab", "aab", "abb"}
		if maxLen < len(generic) {
			generic = generic[:maxLen]
		}
		return generic
	}
	return out
}

func filterByLength(candidates []string, minLen, maxLen int) []string {
	var out []string
	for _, s := range candidates {
		if len(s) >= minLen && len(s) <= maxLen {
			out = append(out, s)
		}
	}
	return out
}

// RecommendedPumpingLength returns the demonstration default for p under
// the given lemma classification. These are presentation heuristics, not
// the languages' true pumping constants: aⁿbⁿ gets 3 rather than the
// minimal 2 because the extra slack produces more instructive candidate
// decompositions.
func RecommendedPumpingLength(class Class, p Pattern) int {
	switch class {
	case Regular:
		switch p {
		case AnBn:
			return 3
		case AStarBStar, AnBm:
			return 1
		default:
			return 2
		}
	case ContextFree:
		if p == AnBnCn {
			return 5 // window must be able to straddle all three blocks
		}
		return 3
	}
	return 2
}

// Complexity describes where a pattern sits in the Chomsky hierarchy and
// what machinery recognizes it.
type Complexity struct {
	Level     string // Chomsky level label
	Automaton string // smallest recognizing automaton
	Grammar   string // grammar sketch, or a note that none exists
}

var complexityTable = map[Pattern]Complexity{
	AnBn:       {"Context-Free", "PDA required", "S → aSb | ε"},
	AnBm:       {"Regular", "DFA sufficient", "S → aS | bB | ε, B → bB | ε"},
	AStarBStar: {"Regular", "Simple DFA", "S → aS | bB | ε, B → bB | ε"},
	ABStar:     {"Regular", "DFA with 2 states", "S → abS | ε"},
	AnBnCn:     {"Context-Sensitive", "LBA required", "Non-context-free"},
	WW:         {"Context-Sensitive", "LBA required", "Non-context-free"},
	WWReverse:  {"Context-Free", "PDA sufficient", "S → aSa | bSb | ε"},
	EvenAs:     {"Regular", "DFA with 2 states (parity of a's)", "S → bS | aT, T → bT | aS"},
}

// ComplexityOf returns the complexity notes for p. The second return is
// false for unknown patterns.
func ComplexityOf(p Pattern) (Complexity, bool) {
	c, ok := complexityTable[p]
	return c, ok
}
