// Package language defines the fixed catalogue of formal languages the
// analyzer knows about and the membership oracle that decides, for each of
// them, whether a given string belongs to the language.
//
// The pattern set is closed: every Pattern maps to exactly one membership
// predicate and one Class. Membership is decided by pattern-specific
// predicates (fixed shape regexes plus counting), never by interpreting an
// arbitrary grammar.
//
// Basic usage:
//
//	if language.Member("aabb", language.AnBn) {
//	    println("in the language")
//	}
package language

// Pattern identifies one of the predefined formal languages.
//
// The zero value is not a valid pattern. Pattern values double as the
// canonical textual form accepted by Parse, e.g. "a^n b^n".
type Pattern string

// The closed set of supported language patterns.
const (
	// AnBn is { a^n b^n | n >= 1 }. The membership rule requires the string
	// to start with 'a' and end with 'b', so the empty string is rejected
	// even though n=0 would satisfy the usual mathematical reading. That
	// asymmetry is deliberate and preserved (see the predicate docs).
	AnBn Pattern = "a^n b^n"

	// AnBm is { a^n b^m | n, m >= 0 }.
	AnBm Pattern = "a^n b^m"

	// AStarBStar is a*b*, the same language as AnBm under a different name.
	AStarBStar Pattern = "a*b*"

	// ABStar is { (ab)^n | n >= 0 }.
	ABStar Pattern = "(ab)*"

	// AnBnCn is { a^n b^n c^n | n >= 1 }. As with AnBn, n=0 is excluded.
	AnBnCn Pattern = "a^n b^n c^n"

	// WW is { ww | w in Sigma* }, strings that are a word repeated twice.
	WW Pattern = "ww"

	// WWReverse is { w w^R | w in Sigma* }, even-length palindromes.
	WWReverse Pattern = "w w_reverse"

	// EvenAs is (b*ab*ab*)*, strings over {a,b} with an even number of a's.
	EvenAs Pattern = "(b*ab*ab*)*"
)

// Class is the coarse classification attached to a pattern. It drives the
// default lemma kind and the pumping-length heuristic, nothing else.
type Class string

// Pattern classifications.
const (
	Regular     Class = "regular"
	NonRegular  Class = "non_regular"
	ContextFree Class = "context_free"
)

// info bundles everything the package knows about one pattern.
type info struct {
	member      func(s string) bool
	class       Class
	description string
}

// registry is the closed pattern table. Adding a new language means adding
// a predicate in member.go and one entry here; the generators and the
// engine are pattern-agnostic and need no change.
var registry = map[Pattern]info{
	AnBn:       {memberAnBn, NonRegular, "aⁿbⁿ | n ≥ 1"},
	AnBm:       {memberAStarBStar, Regular, "aⁿbᵐ | n, m ≥ 0"},
	AStarBStar: {memberAStarBStar, Regular, "a*b*"},
	ABStar:     {memberABStar, Regular, "(ab)ⁿ | n ≥ 0"},
	AnBnCn:     {memberAnBnCn, NonRegular, "aⁿbⁿcⁿ | n ≥ 1"},
	WW:         {memberWW, NonRegular, "ww | w ∈ {a,b}*"},
	WWReverse:  {memberWWReverse, ContextFree, "wwᴿ | w ∈ {a,b}*"},
	EvenAs:     {memberEvenAs, Regular, "strings with an even number of a's"},
}

// patternOrder fixes the iteration order for Patterns. Maps do not have a
// stable order, and callers (catalog rendering, the TUI picker) need one.
var patternOrder = []Pattern{
	AnBn, AnBm, AStarBStar, ABStar, AnBnCn, WW, WWReverse, EvenAs,
}

// Known reports whether p is one of the supported patterns.
func Known(p Pattern) bool {
	_, ok := registry[p]
	return ok
}

// Patterns returns the supported patterns in a stable, documented order.
// The returned slice is a copy and may be modified by the caller.
func Patterns() []Pattern {
	out := make([]Pattern, len(patternOrder))
	copy(out, patternOrder)
	return out
}

// ClassOf returns the classification of p, or the empty Class for an
// unknown pattern.
func ClassOf(p Pattern) Class {
	return registry[p].class
}

// Describe returns a short human-readable description of p, or the empty
// string for an unknown pattern.
func Describe(p Pattern) string {
	return registry[p].description
}

// Member reports whether s belongs to the language identified by p.
//
// Member is total: it returns a result for every string, including the
// empty string, and never panics. An unknown pattern classifies every
// string as a non-member ("no match found" means "not in the language").
// That silent-false policy is a documented sharp edge of the oracle, kept
// for compatibility with catalog entries that name a language without a
// predicate.
func Member(s string, p Pattern) bool {
	in, ok := registry[p]
	if !ok {
		return false
	}
	return in.member(s)
}
