// parse.go maps free-form user input ("a^nb^n", "(ab)*", "w w_r", ...) to
// a canonical Pattern. Recognition uses fixed regexes over the lowercased,
// space-stripped input, tried in a fixed order so overlapping notations
// resolve deterministically.

package language

import (
	"errors"
	"strings"

	"github.com/coregx/coregex"
)

// ErrUnknownPattern is returned by Parse when the input matches none of
// the supported language notations.
var ErrUnknownPattern = errors.New("unsupported language pattern")

// parseRule pairs a recognition regex with the canonical pattern it maps to.
type parseRule struct {
	re        *coregex.Regex
	canonical Pattern
}

// parseRules is ordered: earlier rules win. "ww" must come before
// WWReverse's rule only because both start with w; the anchors make each
// rule a full match so the order is mostly documentation.
var parseRules = []parseRule{
	{coregex.MustCompile(`^a\^?nb\^?n$`), AnBn},
	{coregex.MustCompile(`^a\^?nb\^?m$`), AnBm},
	{coregex.MustCompile(`^a\*b\*$`), AStarBStar},
	{coregex.MustCompile(`^\(ab\)\*$`), ABStar},
	{coregex.MustCompile(`^a\^?nb\^?nc\^?n$`), AnBnCn},
	{coregex.MustCompile(`^ww$`), WW},
	{coregex.MustCompile(`^ww_r(everse)?$`), WWReverse},
	{coregex.MustCompile(`^ww\^?r$`), WWReverse},
	{coregex.MustCompile(`^\(b\*ab\*ab\*\)\*$`), EvenAs},
}

// Parse normalizes a user-supplied language definition to its canonical
// Pattern. Matching ignores case and whitespace, so "A^n B^n", "a^nb^n"
// and "anbn" all resolve to AnBn. Returns ErrUnknownPattern for input that
// matches no supported notation.
func Parse(definition string) (Pattern, error) {
	normalized := strings.ToLower(definition)
	normalized = strings.Join(strings.Fields(normalized), "")
	if normalized == "" {
		return "", ErrUnknownPattern
	}
	for _, rule := range parseRules {
		if rule.re.MatchString(normalized) {
			return rule.canonical, nil
		}
	}
	return "", ErrUnknownPattern
}
