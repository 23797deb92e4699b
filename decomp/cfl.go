package decomp

import (
	"fmt"
	"strings"
)

// DefaultCFLLimit is the canonical cap on the number of uvwxy candidates
// the CFL generator returns. The uncapped enumeration is cubic in the
// window size; ten candidates keep the search interactive while still
// exercising several distinct windows. The cap trades completeness for
// latency: a decomposition that appears only after the cap in canonical
// order is never discovered.
const DefaultCFLLimit = 10

// UVWXY is one candidate decomposition s = u + v + w + x + y for the
// context-free pumping lemma, with |vx| > 0 and |vwx| <= p.
type UVWXY struct {
	U, V, W, X, Y string
}

// Pump returns u + v^i + w + x^i + y. Both repeatable segments are pumped
// with the same repetition count, as the lemma requires.
func (d UVWXY) Pump(i int) string {
	return d.U + strings.Repeat(d.V, i) + d.W + strings.Repeat(d.X, i) + d.Y
}

// Segments returns the named segments as a map, the serialized form used
// in verdicts.
func (d UVWXY) Segments() map[string]string {
	return map[string]string{
		"u": d.U,
		"v": d.V,
		"w": d.W,
		"x": d.X,
		"y": d.Y,
	}
}

// Info returns a human-readable note about the split sizes, carried
// through to rendered verdicts.
func (d UVWXY) Info() string {
	return fmt.Sprintf("|vwx| = %d, |vx| = %d",
		len(d.V)+len(d.W)+len(d.X), len(d.V)+len(d.X))
}

// Join reassembles the original string.
func (d UVWXY) Join() string { return d.U + d.V + d.W + d.X + d.Y }

// CFL enumerates uvwxy splits of s admissible under the context-free
// pumping lemma conditions |vwx| <= p and |vx| > 0, truncated to the
// first limit candidates.
//
// Order is ascending window start, ascending window end (window length
// at most p), then ascending v boundary and ascending x boundary within
// the window. Truncation keeps a prefix of that canonical order, never an
// arbitrary subset, so the first candidates are stable regardless of the
// limit. The boundary loops give v and x at least one character each, so
// |vx| > 0 holds by construction and is re-checked only for robustness.
//
// A limit <= 0 means DefaultCFLLimit.
func CFL(s string, p int, limit int) []UVWXY {
	if limit <= 0 {
		limit = DefaultCFLLimit
	}
	n := len(s)
	var out []UVWXY
	for start := 0; start < n; start++ {
		maxEnd := start + p
		if maxEnd > n {
			maxEnd = n
		}
		for end := start + 1; end <= maxEnd; end++ {
			window := s[start:end]
			for vEnd := 1; vEnd < len(window); vEnd++ {
				for xStart := vEnd; xStart < len(window); xStart++ {
					v := window[:vEnd]
					w := window[vEnd:xStart]
					x := window[xStart:]
					if len(v)+len(x) == 0 {
						continue
					}
					out = append(out, UVWXY{
						U: s[:start],
						V: v,
						W: w,
						X: x,
						Y: s[end:],
					})
					if len(out) == limit {
						return out
					}
				}
			}
		}
	}
	return out
}
