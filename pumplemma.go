// Package pumplemma explores whether candidate decompositions of a test
// string satisfy the pumping lemma, for a fixed catalogue of formal
// languages.
//
// Given a language pattern, a string and a pumping length p, the analyzer
// enumerates decompositions in a deterministic order, pumps each one at a
// fixed set of repetition counts, checks membership of every pumped
// string, and reports either the first decomposition for which all tested
// repetitions stay in the language or the first counterexample found.
//
// Basic usage:
//
//	a := pumplemma.New()
//	v := a.Regular(language.ABStar, "abab", 2)
//	if v.LemmaHolds {
//	    fmt.Println(v.LanguageType) // "Possibly Regular"
//	}
//
// The results are empirical: a holding verdict is bounded-i evidence
// consistent with regularity (or context-freeness), not a proof, while a
// failing verdict is a definitive counterexample for that single
// decomposition. Membership is decided by a closed set of pattern
// predicates (see the language package); this module is not a general
// regex engine, grammar interpreter or proof assistant.
package pumplemma

import (
	"github.com/coregx/pumplemma/engine"
	"github.com/coregx/pumplemma/language"
)

// Analyzer is the top-level entry point, wrapping the lemma engine with
// its configuration. An Analyzer is safe for concurrent use.
type Analyzer struct {
	engine *engine.Engine
}

// New returns an analyzer with the default configuration.
func New() *Analyzer {
	return &Analyzer{engine: engine.New()}
}

// NewWithConfig returns an analyzer with a custom engine configuration.
// Returns engine.ErrInvalidConfig if the configuration is out of range.
func NewWithConfig(cfg engine.Config) (*Analyzer, error) {
	e, err := engine.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Analyzer{engine: e}, nil
}

// Regular applies the regular pumping lemma to (pattern, s, p).
func (a *Analyzer) Regular(pattern language.Pattern, s string, p int) engine.Verdict {
	return a.engine.EvaluateRegular(pattern, s, p)
}

// ContextFree applies the context-free pumping lemma to (pattern, s, p).
func (a *Analyzer) ContextFree(pattern language.Pattern, s string, p int) engine.Verdict {
	return a.engine.EvaluateCFL(pattern, s, p)
}

// Evaluate applies the selected lemma variant.
func (a *Analyzer) Evaluate(pattern language.Pattern, s string, p int, kind engine.Kind) engine.Verdict {
	return a.engine.Evaluate(pattern, s, p, kind)
}

// AnalyzeProperties batches the membership oracle over test strings and
// summarizes the accepted ones.
func (a *Analyzer) AnalyzeProperties(pattern language.Pattern, testStrings []string) engine.PropertyReport {
	return a.engine.AnalyzeProperties(pattern, testStrings)
}

// Stats returns a snapshot of the underlying engine's counters.
func (a *Analyzer) Stats() engine.Stats { return a.engine.Stats() }

// ResetStats zeroes the underlying engine's counters.
func (a *Analyzer) ResetStats() { a.engine.ResetStats() }

// defaultAnalyzer backs the package-level convenience functions.
var defaultAnalyzer = New()

// Regular applies the regular pumping lemma using a shared default
// analyzer. Convenient for one-off checks; create an Analyzer to control
// configuration or isolate statistics.
func Regular(pattern language.Pattern, s string, p int) engine.Verdict {
	return defaultAnalyzer.Regular(pattern, s, p)
}

// ContextFree applies the context-free pumping lemma using a shared
// default analyzer.
func ContextFree(pattern language.Pattern, s string, p int) engine.Verdict {
	return defaultAnalyzer.ContextFree(pattern, s, p)
}
