package engine

import (
	"sync/atomic"

	"github.com/coregx/pumplemma/language"
)

// Property analysis batches the membership oracle over a set of test
// strings and summarizes what the accepted ones look like. It is the
// coarse companion to lemma evaluation: cheap empirical evidence about a
// language's shape, not proof.

// StringResult is the oracle's verdict on one test string.
type StringResult struct {
	Input      string `json:"string"`
	InLanguage bool   `json:"in_language"`
	Length     int    `json:"length"`
}

// Properties summarizes the strings the oracle accepted.
type Properties struct {
	CanBeEmpty      bool `json:"can_be_empty"`
	MinLength       int  `json:"min_length"`
	MaxLengthTested int  `json:"max_length_tested"`
	SampleCount     int  `json:"sample_count"`
}

// PropertyReport is the result of AnalyzeProperties. Properties is nil
// when no test string was accepted.
type PropertyReport struct {
	Pattern    language.Pattern `json:"pattern"`
	Results    []StringResult   `json:"test_results"`
	Properties *Properties      `json:"properties,omitempty"`
}

// AnalyzeProperties runs every test string through the membership oracle
// for pattern and derives summary properties from the accepted ones.
// Results preserve the input order.
func (e *Engine) AnalyzeProperties(pattern language.Pattern, testStrings []string) PropertyReport {
	report := PropertyReport{
		Pattern: pattern,
		Results: make([]StringResult, 0, len(testStrings)),
	}
	for _, s := range testStrings {
		in := language.Member(s, pattern)
		atomic.AddUint64(&e.stats.OracleQueries, 1)
		report.Results = append(report.Results, StringResult{
			Input:      s,
			InLanguage: in,
			Length:     len(s),
		})
	}

	var props *Properties
	for _, r := range report.Results {
		if !r.InLanguage {
			continue
		}
		if props == nil {
			props = &Properties{MinLength: r.Length, MaxLengthTested: r.Length}
		}
		if r.Input == "" {
			props.CanBeEmpty = true
		}
		if r.Length < props.MinLength {
			props.MinLength = r.Length
		}
		if r.Length > props.MaxLengthTested {
			props.MaxLengthTested = r.Length
		}
		props.SampleCount++
	}
	report.Properties = props
	return report
}
