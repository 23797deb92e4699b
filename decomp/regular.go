// Package decomp enumerates candidate decompositions of a string for the
// two pumping-lemma variants: xyz splits for the regular lemma and uvwxy
// splits for the context-free lemma.
//
// Both generators are deterministic: given the same (s, p) they produce
// the same candidates in the same order, and that order is part of the
// contract: the engine reports the first failing or first succeeding
// candidate, so reordering here changes user-visible verdicts.
//
// Candidate lists are small (O(p²) regular, capped for CFL) and consumed
// in a single bounded pass, so they are materialized as slices rather
// than streamed.
package decomp

import (
	"fmt"
	"strings"
)

// XYZ is one candidate decomposition s = x + y + z for the regular
// pumping lemma, with |y| > 0 and |xy| <= p.
type XYZ struct {
	X, Y, Z string
}

// Pump returns x + y^i + z, the string obtained by repeating y i times.
func (d XYZ) Pump(i int) string {
	return d.X + strings.Repeat(d.Y, i) + d.Z
}

// Segments returns the named segments as a map, the serialized form used
// in verdicts.
func (d XYZ) Segments() map[string]string {
	return map[string]string{
		"x": d.X,
		"y": d.Y,
		"z": d.Z,
	}
}

// Info returns a human-readable note about the split sizes, carried
// through to rendered verdicts.
func (d XYZ) Info() string {
	return fmt.Sprintf("|xy| = %d, |y| = %d", len(d.X)+len(d.Y), len(d.Y))
}

// Join reassembles the original string.
func (d XYZ) Join() string { return d.X + d.Y + d.Z }

// Regular enumerates every xyz split of s admissible under the regular
// pumping lemma conditions |xy| <= p and |y| > 0.
//
// Order is the outer loop over the split point (end of y) ascending from
// 1 to min(p, len(s)), inner loop over the y length ascending from 1 to
// the split point. The admissibility filter is implied by the loop bounds
// and re-checked only for robustness.
//
// Returns no candidates when p <= 0 or s is empty; callers must tolerate
// an empty list.
func Regular(s string, p int) []XYZ {
	n := len(s)
	limit := p
	if n < limit {
		limit = n
	}
	var out []XYZ
	for splitPoint := 1; splitPoint <= limit; splitPoint++ {
		for yLen := 1; yLen <= splitPoint; yLen++ {
			x := s[:splitPoint-yLen]
			y := s[splitPoint-yLen : splitPoint]
			z := s[splitPoint:]
			if len(y) == 0 || len(x)+len(y) > p {
				continue
			}
			out = append(out, XYZ{X: x, Y: y, Z: z})
		}
	}
	return out
}
