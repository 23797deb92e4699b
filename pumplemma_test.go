package pumplemma

import (
	"reflect"
	"testing"

	"github.com/coregx/pumplemma/engine"
	"github.com/coregx/pumplemma/language"
)

func TestAnalyzerRegular(t *testing.T) {
	a := New()
	v := a.Regular(language.ABStar, "abab", 2)
	if !v.LemmaHolds || v.LanguageType != engine.TypePossiblyRegular {
		t.Errorf("verdict = {holds:%v type:%q}", v.LemmaHolds, v.LanguageType)
	}
	if s := a.Stats(); s.Evaluations != 1 {
		t.Errorf("Evaluations = %d, want 1", s.Evaluations)
	}
}

func TestAnalyzerContextFree(t *testing.T) {
	v := New().ContextFree(language.AnBnCn, "aabbcc", 5)
	if v.LemmaHolds || v.LanguageType != engine.TypeNotContextFree {
		t.Errorf("verdict = {holds:%v type:%q}", v.LemmaHolds, v.LanguageType)
	}
}

func TestAnalyzerEvaluateMatchesDirectCalls(t *testing.T) {
	a := New()
	direct := a.Regular(language.AnBn, "aabb", 3)
	viaKind := a.Evaluate(language.AnBn, "aabb", 3, engine.RegularLemma)
	if !reflect.DeepEqual(direct, viaKind) {
		t.Error("Evaluate(RegularLemma) differs from Regular()")
	}
}

func TestNewWithConfig(t *testing.T) {
	bad := engine.DefaultConfig()
	bad.MaxCFLCandidates = -1
	if _, err := NewWithConfig(bad); err == nil {
		t.Error("NewWithConfig accepted an invalid config")
	}
	cfg := engine.DefaultConfig()
	cfg.MaxCFLCandidates = 5
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a == nil {
		t.Fatal("nil analyzer")
	}
}

func TestPackageLevelConvenience(t *testing.T) {
	v := Regular(language.AStarBStar, "aabb", 1)
	if !v.LemmaHolds {
		t.Error("a*b* should pump trivially at p=1")
	}
	cf := ContextFree(language.WWReverse, "abba", 4)
	if !cf.LemmaHolds {
		t.Error("wwR on \"abba\" should admit a passing uvwxy split")
	}
}

func TestAnalyzerPropertyAnalysis(t *testing.T) {
	report := New().AnalyzeProperties(language.WW, []string{"abab", "aba"})
	if report.Properties == nil || report.Properties.SampleCount != 1 {
		t.Errorf("report = %+v, want one accepted string", report.Properties)
	}
}
