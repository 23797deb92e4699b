package engine

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/pumplemma/language"
)

// TestRegularFirstCandidateFails walks the documented a^n b^n example:
// with s="aabb", p=3 the first candidate is x="", y="a", z="abb", whose
// i=0 pump "abb" is out of the language. No later candidate survives all
// repetitions, so the verdict reports that first candidate.
func TestRegularFirstCandidateFails(t *testing.T) {
	v := New().EvaluateRegular(language.AnBn, "aabb", 3)

	if v.HasError() {
		t.Fatalf("unexpected error: %s", v.Err)
	}
	if v.LemmaHolds {
		t.Fatal("lemma unexpectedly holds for a^n b^n")
	}
	if v.LanguageType != TypeNotRegular {
		t.Errorf("language type = %q, want %q", v.LanguageType, TypeNotRegular)
	}

	want := map[string]string{"x": "", "y": "a", "z": "abb", "split_info": "|xy| = 1, |y| = 1"}
	if !reflect.DeepEqual(v.Decomposition, want) {
		t.Errorf("decomposition = %v, want first candidate %v", v.Decomposition, want)
	}

	if len(v.Iterations) != 5 {
		t.Fatalf("got %d iterations, want 5", len(v.Iterations))
	}
	first := v.Iterations[0]
	if first.I != 0 || first.Pumped != "abb" || first.InLanguage {
		t.Errorf("iteration 0 = {i:%d pumped:%q in:%v}, want {0, \"abb\", false}",
			first.I, first.Pumped, first.InLanguage)
	}
	if v.FirstFailure() == nil {
		t.Error("FirstFailure() = nil for a failing verdict")
	}
}

// TestRegularHolds walks the documented (ab)* example: s="abab", p=2
// succeeds at the third candidate x="", y="ab", z="ab".
func TestRegularHolds(t *testing.T) {
	v := New().EvaluateRegular(language.ABStar, "abab", 2)

	if !v.LemmaHolds {
		t.Fatal("lemma does not hold for (ab)*")
	}
	if v.LanguageType != TypePossiblyRegular {
		t.Errorf("language type = %q, want %q", v.LanguageType, TypePossiblyRegular)
	}
	if v.Decomposition["y"] != "ab" || v.Decomposition["x"] != "" || v.Decomposition["z"] != "ab" {
		t.Errorf("decomposition = %v, want x=\"\" y=\"ab\" z=\"ab\"", v.Decomposition)
	}

	wantPumped := map[int]string{0: "ab", 1: "abab", 2: "ababab", 3: "abababab", 5: "abababababab"}
	for _, it := range v.Iterations {
		if !it.InLanguage {
			t.Errorf("iteration i=%d not in language", it.I)
		}
		if want := wantPumped[it.I]; it.Pumped != want {
			t.Errorf("iteration i=%d pumped %q, want %q", it.I, it.Pumped, want)
		}
		if it.Parts["y_repetitions"] != it.I {
			t.Errorf("iteration i=%d parts echo %v", it.I, it.Parts["y_repetitions"])
		}
	}
}

// TestCFLNotContextFree: a^n b^n c^n with s="aabbcc", p=5. Every one of
// the first ten uvwxy candidates pumps a's or b's without touching the
// c-block, so each fails at some repetition and the verdict reports the
// first candidate.
func TestCFLNotContextFree(t *testing.T) {
	v := New().EvaluateCFL(language.AnBnCn, "aabbcc", 5)

	if v.LemmaHolds {
		t.Fatal("lemma unexpectedly holds")
	}
	if v.LanguageType != TypeNotContextFree {
		t.Errorf("language type = %q, want %q", v.LanguageType, TypeNotContextFree)
	}
	// First candidate: window "aa", v="a", w="", x="a".
	if v.Decomposition["v"] != "a" || v.Decomposition["x"] != "a" || v.Decomposition["u"] != "" {
		t.Errorf("decomposition = %v, want first candidate u=\"\" v=\"a\" x=\"a\"", v.Decomposition)
	}
	if len(v.Iterations) != 4 {
		t.Fatalf("got %d iterations, want 4", len(v.Iterations))
	}
	if fail := v.FirstFailure(); fail == nil || fail.I != 0 || fail.Pumped != "bbcc" {
		t.Errorf("first failure = %+v, want i=0 pumped \"bbcc\"", fail)
	}
}

// TestCFLHolds: wwR with s="abba", p=4 succeeds at the candidate whose
// window straddles the center, v="a", w="bb", x="a".
func TestCFLHolds(t *testing.T) {
	v := New().EvaluateCFL(language.WWReverse, "abba", 4)

	if !v.LemmaHolds {
		t.Fatal("lemma does not hold for wwR on \"abba\"")
	}
	if v.LanguageType != TypePossiblyContextFree {
		t.Errorf("language type = %q, want %q", v.LanguageType, TypePossiblyContextFree)
	}
	if v.Decomposition["v"] != "a" || v.Decomposition["w"] != "bb" || v.Decomposition["x"] != "a" {
		t.Errorf("decomposition = %v, want v=\"a\" w=\"bb\" x=\"a\"", v.Decomposition)
	}
	for _, it := range v.Iterations {
		if !it.InLanguage {
			t.Errorf("iteration i=%d not in language (pumped %q)", it.I, it.Pumped)
		}
		if it.Parts["v_repetitions"] != it.I || it.Parts["x_repetitions"] != it.I {
			t.Errorf("iteration i=%d parts echo wrong repetitions", it.I)
		}
	}
}

func TestPrecondition(t *testing.T) {
	for _, kind := range []Kind{RegularLemma, ContextFreeLemma} {
		v := New().Evaluate(language.AnBn, "ab", 5, kind)
		if !v.HasError() {
			t.Fatalf("%v: no error for |s| < p", kind)
		}
		if !strings.Contains(v.Err, "less than pumping length") {
			t.Errorf("%v: error = %q", kind, v.Err)
		}
		if v.LemmaHolds {
			t.Errorf("%v: lemma_holds true on a precondition error", kind)
		}
		if len(v.Iterations) != 0 {
			t.Errorf("%v: %d iterations on a precondition error", kind, len(v.Iterations))
		}
		if !v.Inconclusive() {
			t.Errorf("%v: precondition verdict not inconclusive", kind)
		}
	}
}

// TestDegenerateNoCandidates: the empty string with p=0 passes the
// precondition but produces no candidates; the verdict stays "Unknown"
// with no iterations and must not be treated as a crash.
func TestDegenerateNoCandidates(t *testing.T) {
	v := New().EvaluateRegular(language.AnBn, "", 0)
	if v.HasError() {
		t.Fatalf("unexpected error: %s", v.Err)
	}
	if len(v.Iterations) != 0 || v.LanguageType != TypeUnknown || v.LemmaHolds {
		t.Errorf("verdict = {iters:%d type:%q holds:%v}, want empty/Unknown/false",
			len(v.Iterations), v.LanguageType, v.LemmaHolds)
	}
	if !v.Inconclusive() {
		t.Error("degenerate verdict not inconclusive")
	}
}

// TestDegenerateEmptyStringPositiveP: |""| < p trips the precondition,
// which also leaves the type "Unknown" with no iterations.
func TestDegenerateEmptyStringPositiveP(t *testing.T) {
	v := New().EvaluateRegular(language.AnBn, "", 1)
	if !v.HasError() {
		t.Fatal("no precondition error for empty string with p=1")
	}
	if len(v.Iterations) != 0 || v.LanguageType != TypeUnknown {
		t.Errorf("verdict = {iters:%d type:%q}", len(v.Iterations), v.LanguageType)
	}
}

// TestUnknownPatternDegradesToCounterexample: an unrecognized pattern
// makes every membership query false, so the search degrades to
// reporting the first candidate as a counterexample rather than failing.
func TestUnknownPatternDegradesToCounterexample(t *testing.T) {
	v := New().EvaluateRegular(language.Pattern("balanced_parentheses"), "(())", 2)
	if v.HasError() {
		t.Fatalf("unexpected error: %s", v.Err)
	}
	if v.LemmaHolds || v.LanguageType != TypeNotRegular {
		t.Errorf("verdict = {holds:%v type:%q}, want failing Not Regular", v.LemmaHolds, v.LanguageType)
	}
	if v.Decomposition["y"] != "(" {
		t.Errorf("decomposition = %v, want first candidate y=\"(\"", v.Decomposition)
	}
}

// TestIdempotence: identical inputs produce identical verdicts; there is
// no hidden randomness or state leakage between calls.
func TestIdempotence(t *testing.T) {
	e := New()
	inputs := []struct {
		pattern language.Pattern
		s       string
		p       int
		kind    Kind
	}{
		{language.AnBn, "aabb", 3, RegularLemma},
		{language.ABStar, "abab", 2, RegularLemma},
		{language.AnBnCn, "aabbcc", 5, ContextFreeLemma},
		{language.WWReverse, "abba", 4, ContextFreeLemma},
		{language.EvenAs, "baab", 2, RegularLemma},
	}
	for _, in := range inputs {
		first := e.Evaluate(in.pattern, in.s, in.p, in.kind)
		second := e.Evaluate(in.pattern, in.s, in.p, in.kind)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Evaluate(%q, %q, %d, %v) not idempotent", in.pattern, in.s, in.p, in.kind)
		}
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	v := New().Evaluate(language.AnBn, "aabb", 3, Kind(42))
	if !v.HasError() {
		t.Error("no error for an unknown lemma kind")
	}
}

func TestVerdictJSONShape(t *testing.T) {
	v := New().EvaluateRegular(language.ABStar, "abab", 2)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"string", "pumping_length", "decomposition", "iterations", "lemma_holds", "language_type"} {
		if _, ok := m[key]; !ok {
			t.Errorf("serialized verdict missing %q", key)
		}
	}
	if _, ok := m["error"]; ok {
		t.Error("error key present on a verdict without an error")
	}
}

func TestStatsCounting(t *testing.T) {
	e := New()
	v := e.EvaluateRegular(language.AnBn, "aabb", 3)
	if v.HasError() {
		t.Fatal(v.Err)
	}

	stats := e.Stats()
	if stats.Evaluations != 1 {
		t.Errorf("Evaluations = %d, want 1", stats.Evaluations)
	}
	// 6 candidates, 5 repetitions each, no early exit.
	if stats.CandidatesExamined != 6 {
		t.Errorf("CandidatesExamined = %d, want 6", stats.CandidatesExamined)
	}
	if stats.OracleQueries != 30 || stats.PumpedStrings != 30 {
		t.Errorf("OracleQueries/PumpedStrings = %d/%d, want 30/30",
			stats.OracleQueries, stats.PumpedStrings)
	}

	e.ResetStats()
	if s := e.Stats(); s.Evaluations != 0 || s.OracleQueries != 0 {
		t.Errorf("stats not zeroed after reset: %+v", s)
	}
}

func TestKindString(t *testing.T) {
	if RegularLemma.String() != "regular" || ContextFreeLemma.String() != "cfl" {
		t.Errorf("Kind strings = %q, %q", RegularLemma, ContextFreeLemma)
	}
}
