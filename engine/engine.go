package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/coregx/pumplemma/decomp"
	"github.com/coregx/pumplemma/language"
)

// Kind selects which pumping lemma variant to apply.
type Kind int

const (
	// RegularLemma searches xyz decompositions with |xy| <= p, |y| > 0,
	// pumping y at repetition counts {0,1,2,3,5}.
	RegularLemma Kind = iota

	// ContextFreeLemma searches uvwxy decompositions with |vwx| <= p,
	// |vx| > 0, pumping v and x together at repetition counts {0,1,2,3}.
	ContextFreeLemma
)

// String returns the kind's selector name as used at the CLI boundary.
func (k Kind) String() string {
	switch k {
	case RegularLemma:
		return "regular"
	case ContextFreeLemma:
		return "cfl"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// The fixed repetition-count test sets. These are part of the verdict
// contract and deliberately not configurable per call.
var (
	regularRepetitions = []int{0, 1, 2, 3, 5}
	cflRepetitions     = []int{0, 1, 2, 3}
)

// candidate is the engine's view of one decomposition: enough to pump it
// and to echo its structure into the verdict. Both decomp.XYZ and
// decomp.UVWXY satisfy it.
type candidate interface {
	Pump(i int) string
	Segments() map[string]string
	Info() string
}

// Engine evaluates pumping-lemma instances.
//
// An Engine is safe for concurrent use: evaluation allocates only
// call-local data, and the statistics counters are updated atomically.
//
// Example:
//
//	eng := engine.New()
//	v := eng.Evaluate(language.ABStar, "abab", 2, engine.RegularLemma)
//	if v.LemmaHolds {
//	    fmt.Println(v.LanguageType) // "Possibly Regular"
//	}
type Engine struct {
	// stats MUST be the first field for 8-byte alignment of its uint64
	// counters on 32-bit platforms.
	stats Stats

	config Config
}

// New returns an engine with the default configuration.
func New() *Engine {
	e, _ := NewWithConfig(DefaultConfig())
	return e
}

// NewWithConfig returns an engine with a custom configuration, or
// ErrInvalidConfig if the configuration is out of range.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{config: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.config }

// Evaluate applies the selected pumping lemma to (pattern, s, p) and
// returns a structured Verdict.
//
// All abnormal conditions are encoded in the Verdict rather than raised:
// a string shorter than p sets Verdict.Err; an empty candidate list
// yields empty iterations with language type "Unknown"; an unknown
// pattern makes every membership query false, so the first candidate is
// reported as a counterexample. Evaluate never panics for any input.
func (e *Engine) Evaluate(pattern language.Pattern, s string, p int, kind Kind) Verdict {
	switch kind {
	case RegularLemma:
		return e.EvaluateRegular(pattern, s, p)
	case ContextFreeLemma:
		return e.EvaluateCFL(pattern, s, p)
	}
	v := newVerdict(s, p)
	v.Err = fmt.Sprintf("unknown lemma kind %d", int(kind))
	return v
}

// EvaluateRegular applies the regular pumping lemma.
func (e *Engine) EvaluateRegular(pattern language.Pattern, s string, p int) Verdict {
	defer atomic.AddUint64(&e.stats.Evaluations, 1)

	v := newVerdict(s, p)
	if e.shortString(&v) {
		return v
	}
	xyzs := decomp.Regular(s, p)
	cands := make([]candidate, len(xyzs))
	for i, d := range xyzs {
		cands[i] = d
	}
	e.search(&v, pattern, cands, regularRepetitions,
		TypePossiblyRegular, TypeNotRegular, RegularLemma)
	return v
}

// EvaluateCFL applies the context-free pumping lemma. The candidate list
// is pre-truncated to the configured cap, so a decomposition that would
// satisfy the lemma but appears only beyond the cap is never discovered;
// that is a deliberate latency bound, not a defect.
func (e *Engine) EvaluateCFL(pattern language.Pattern, s string, p int) Verdict {
	defer atomic.AddUint64(&e.stats.Evaluations, 1)

	v := newVerdict(s, p)
	if e.shortString(&v) {
		return v
	}
	uvwxys := decomp.CFL(s, p, e.config.MaxCFLCandidates)
	cands := make([]candidate, len(uvwxys))
	for i, d := range uvwxys {
		cands[i] = d
	}
	e.search(&v, pattern, cands, cflRepetitions,
		TypePossiblyContextFree, TypeNotContextFree, ContextFreeLemma)
	return v
}

func newVerdict(s string, p int) Verdict {
	return Verdict{
		Input:         s,
		PumpingLength: p,
		Decomposition: map[string]string{},
		LanguageType:  TypeUnknown,
	}
}

// shortString checks the |s| >= p precondition, recording a structured
// error on the verdict when it fails.
func (e *Engine) shortString(v *Verdict) bool {
	if len(v.Input) < v.PumpingLength {
		v.Err = fmt.Sprintf("string length (%d) is less than pumping length (%d)",
			len(v.Input), v.PumpingLength)
		return true
	}
	return false
}

// search walks the candidate list in generator order. It stops at the
// first candidate for which every tested repetition stays in the language
// (early exit on success). The first failing candidate is memoized as the
// fallback verdict, but the walk continues past it looking for a success;
// the memo is only ever written once, so a failing verdict always reports
// the first candidate examined.
func (e *Engine) search(v *Verdict, pattern language.Pattern, cands []candidate,
	repetitions []int, passLabel, failLabel string, kind Kind) {
	for _, cand := range cands {
		atomic.AddUint64(&e.stats.CandidatesExamined, 1)

		iters := make([]Iteration, 0, len(repetitions))
		allPass := true
		for _, i := range repetitions {
			pumped := cand.Pump(i)
			atomic.AddUint64(&e.stats.PumpedStrings, 1)
			in := language.Member(pumped, pattern)
			atomic.AddUint64(&e.stats.OracleQueries, 1)
			iters = append(iters, Iteration{
				I:          i,
				Pumped:     pumped,
				InLanguage: in,
				Parts:      iterationParts(cand, kind, i),
			})
			if !in {
				allPass = false
			}
		}

		if allPass {
			v.Decomposition = decompositionMap(cand)
			v.Iterations = iters
			v.LemmaHolds = true
			v.LanguageType = passLabel
			return
		}
		if len(v.Iterations) == 0 {
			v.Decomposition = decompositionMap(cand)
			v.Iterations = iters
			v.LemmaHolds = false
			v.LanguageType = failLabel
		}
	}
}

// decompositionMap serializes a candidate as the verdict's named-segment
// mapping, including the split-size note.
func decompositionMap(cand candidate) map[string]string {
	m := cand.Segments()
	m["split_info"] = cand.Info()
	return m
}

// iterationParts echoes the candidate's segments plus the repetition
// counts applied in this iteration.
func iterationParts(cand candidate, kind Kind, i int) map[string]any {
	segs := cand.Segments()
	parts := make(map[string]any, len(segs)+2)
	for k, s := range segs {
		parts[k] = s
	}
	switch kind {
	case RegularLemma:
		parts["y_repetitions"] = i
	case ContextFreeLemma:
		parts["v_repetitions"] = i
		parts["x_repetitions"] = i
	}
	return parts
}
