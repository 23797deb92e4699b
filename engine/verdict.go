package engine

// Language-type labels carried by verdicts. "Possibly" labels reflect that
// bounded-i testing is empirical evidence, not proof: every tested
// repetition staying in the language is consistent with the lemma holding,
// while a single failing repetition is a definitive counterexample for
// that decomposition.
const (
	TypeUnknown             = "Unknown"
	TypePossiblyRegular     = "Possibly Regular"
	TypeNotRegular          = "Not Regular"
	TypePossiblyContextFree = "Possibly Context-Free"
	TypeNotContextFree      = "Not Context-Free"
)

// Iteration records one pumping test: the repetition count, the pumped
// string it produced, the oracle's verdict on it, and an echo of the
// structural parts (segments plus the applied repetition counts).
type Iteration struct {
	I          int            `json:"i"`
	Pumped     string         `json:"pumped_string"`
	InLanguage bool           `json:"in_language"`
	Parts      map[string]any `json:"parts"`
}

// Verdict is the structured result of one lemma evaluation.
//
// Invariants:
//   - LemmaHolds is true iff every Iteration has InLanguage true.
//   - A failing Verdict always carries the first decomposition the
//     generator produced, never a later one.
//   - Err is non-empty only for the string-shorter-than-p precondition;
//     in that case Iterations is empty and Decomposition has no segments.
//
// A Verdict with empty Iterations and LanguageType "Unknown" (and no Err)
// means the generator produced no candidates at all; callers must treat
// it as inconclusive.
type Verdict struct {
	Input         string            `json:"string"`
	PumpingLength int               `json:"pumping_length"`
	Decomposition map[string]string `json:"decomposition"`
	Iterations    []Iteration       `json:"iterations"`
	LemmaHolds    bool              `json:"lemma_holds"`
	LanguageType  string            `json:"language_type"`
	Err           string            `json:"error,omitempty"`
}

// HasError reports whether the verdict carries a precondition error.
// Decomposition and Iterations are meaningless when it does.
func (v Verdict) HasError() bool { return v.Err != "" }

// Inconclusive reports whether the evaluation produced no evidence either
// way: a precondition error, or an empty candidate list.
func (v Verdict) Inconclusive() bool {
	return v.HasError() || len(v.Iterations) == 0
}

// FirstFailure returns the first iteration whose pumped string fell out
// of the language, or nil when every tested repetition stayed in.
func (v Verdict) FirstFailure() *Iteration {
	for i := range v.Iterations {
		if !v.Iterations[i].InLanguage {
			return &v.Iterations[i]
		}
	}
	return nil
}
