// member.go holds the per-pattern membership predicates.
//
// Each predicate is a pure, total function of its input string. Shape
// constraints (a's before b's, alphabet restrictions) are checked with
// fixed regexes compiled once at package load; ordering violations are
// detected with small Aho-Corasick automata over the forbidden adjacent
// pairs, the same primitive the coregex meta engine uses for literal sets.

package language

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coregex"
)

// Fixed shape regexes. The pattern set is closed and known at build time,
// so a compile failure here is a programming error and MustCompile is
// appropriate.
var (
	reAStarBStar = coregex.MustCompile(`^a*b*$`)
	reABStar     = coregex.MustCompile(`^(ab)*$`)
	reABAlphabet = coregex.MustCompile(`^[ab]*$`)
)

// Forbidden-pair automata. A hit anywhere in the string means the letters
// are out of order.
var (
	// "ba" breaks the a-block-then-b-block shape.
	acOutOfOrderAB = mustAutomaton("ba")

	// "ba", "ca", "cb" break the a-block b-block c-block shape.
	acOutOfOrderABC = mustAutomaton("ba", "ca", "cb")
)

func mustAutomaton(patterns ...string) *ahocorasick.Automaton {
	b := ahocorasick.NewBuilder()
	for _, p := range patterns {
		b.AddPattern([]byte(p))
	}
	auto, err := b.Build()
	if err != nil {
		panic("language: building forbidden-pair automaton: " + err.Error())
	}
	return auto
}

// containsAny reports whether any of the automaton's patterns occurs in s.
func containsAny(auto *ahocorasick.Automaton, s string) bool {
	_, found := auto.Find([]byte(s), 0)
	return found
}

// memberAnBn accepts a^n b^n for n >= 1.
//
// The first-letter and last-letter checks reject the empty string, so n=0
// is not in the language. That excludes a string the usual mathematical
// definition would admit; the asymmetry is intentional and must not be
// "fixed" without revisiting every caller that documents it.
//
// The rule never constrains the alphabet, so a string like "acb" is
// accepted: leading 'a', trailing 'b', equal a/b counts, no "ba". Another
// preserved quirk of the original predicate.
func memberAnBn(s string) bool {
	return strings.HasPrefix(s, "a") &&
		strings.HasSuffix(s, "b") &&
		strings.Count(s, "a") == strings.Count(s, "b") &&
		!containsAny(acOutOfOrderAB, s)
}

// memberAStarBStar accepts any block of a's followed by any block of b's,
// both possibly empty. Serves both the AnBm and AStarBStar patterns.
func memberAStarBStar(s string) bool {
	return reAStarBStar.MatchString(s)
}

// memberABStar accepts zero or more repetitions of the literal block "ab".
func memberABStar(s string) bool {
	return reABStar.MatchString(s)
}

// memberAnBnCn accepts a^n b^n c^n for n >= 1.
//
// With no out-of-order adjacent pair present, the letters appear in
// non-decreasing a < b < c order, so equal nonzero counts over the {a,b,c}
// alphabet pin the string to exactly a^n b^n c^n. At least one of each
// letter is required, so the empty string is rejected (same deliberate
// asymmetry as memberAnBn).
func memberAnBnCn(s string) bool {
	if containsAny(acOutOfOrderABC, s) {
		return false
	}
	na := strings.Count(s, "a")
	nb := strings.Count(s, "b")
	nc := strings.Count(s, "c")
	if na == 0 || na != nb || na != nc {
		return false
	}
	// Rejects strings with letters outside {a,b,c}.
	return na+nb+nc == len(s)
}

// memberWW accepts strings whose first half literally equals the second.
func memberWW(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	half := len(s) / 2
	return s[:half] == s[half:]
}

// memberWWReverse accepts even-length palindromes: the first half equals
// the reverse of the second half.
func memberWWReverse(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// memberEvenAs accepts strings over {a,b} with an even number of a's,
// including the empty string.
func memberEvenAs(s string) bool {
	return reABAlphabet.MatchString(s) && strings.Count(s, "a")%2 == 0
}
