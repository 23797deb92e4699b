// Package engine drives the pumping-lemma search: it enumerates candidate
// decompositions, pumps each one at a fixed set of repetition counts,
// consults the membership oracle, and aggregates the outcomes into a
// Verdict.
//
// The engine is deterministic and side-effect-free with respect to its
// inputs: identical (pattern, string, p, kind) calls produce identical
// Verdicts. The only mutable engine state is the statistics counters,
// which never influence results.
package engine

import (
	"errors"
	"fmt"

	"github.com/coregx/pumplemma/decomp"
)

// ErrInvalidConfig indicates an out-of-range configuration value.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Config controls engine bounds.
//
// Example:
//
//	cfg := engine.DefaultConfig()
//	cfg.MaxCFLCandidates = 25 // widen the CFL search
//	eng, err := engine.NewWithConfig(cfg)
type Config struct {
	// MaxCFLCandidates caps the number of uvwxy decompositions the CFL
	// search examines. The cap bounds worst-case work per call; raising it
	// widens the search at the cost of latency. It does not affect the
	// regular search, which is naturally bounded by O(p²) candidates.
	// Default: decomp.DefaultCFLLimit (10).
	MaxCFLCandidates int

	// MaxPumpingLength is the largest pumping length the interactive
	// front ends accept. The engine itself evaluates any p; the bound
	// exists so a typo at a prompt cannot request a quadratic candidate
	// enumeration over a huge p. Default: DefaultMaxPumpingLength.
	MaxPumpingLength int
}

// DefaultMaxPumpingLength bounds the pumping length accepted at
// interactive boundaries. Demonstration instances use single-digit p;
// 1000 is far beyond anything instructive while still keeping the
// regular search's O(p²) candidate count interactive.
const DefaultMaxPumpingLength = 1000

// DefaultConfig returns the canonical configuration. The defaults match
// the documented search bounds, so verdicts produced under DefaultConfig
// are the reference behavior.
func DefaultConfig() Config {
	return Config{
		MaxCFLCandidates: decomp.DefaultCFLLimit,
		MaxPumpingLength: DefaultMaxPumpingLength,
	}
}

// Validate checks that every configuration value is in range.
//
// Valid ranges:
//   - MaxCFLCandidates: 1 to 10000
//   - MaxPumpingLength: 1 to 1000000
func (c Config) Validate() error {
	if c.MaxCFLCandidates < 1 || c.MaxCFLCandidates > 10000 {
		return fmt.Errorf("%w: MaxCFLCandidates must be 1..10000, got %d",
			ErrInvalidConfig, c.MaxCFLCandidates)
	}
	if c.MaxPumpingLength < 1 || c.MaxPumpingLength > 1000000 {
		return fmt.Errorf("%w: MaxPumpingLength must be 1..1000000, got %d",
			ErrInvalidConfig, c.MaxPumpingLength)
	}
	return nil
}
