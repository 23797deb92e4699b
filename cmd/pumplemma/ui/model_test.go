package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coregx/pumplemma/engine"
	"github.com/coregx/pumplemma/language"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(language.DefaultCatalog())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewInitialState(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Pumping Lemma Explorer", "Language", "String", "Pumping length", "press enter to analyze"} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view missing %q", want)
		}
	}
	// All catalog entries are listed.
	for _, id := range []string{"L1", "L5", "L9"} {
		if !strings.Contains(view, id) {
			t.Errorf("initial view missing catalog entry %s", id)
		}
	}
}

func TestCursorNavigation(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyRune('j'))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	next, _ = m.Update(keyRune('k'))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}

	// Cursor clamps at the top.
	next, _ = m.Update(keyRune('k'))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}
}

func TestKindToggle(t *testing.T) {
	m := newTestModel(t)
	if m.kind != engine.RegularLemma {
		t.Fatalf("initial kind = %v", m.kind)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = next.(Model)
	if m.kind != engine.ContextFreeLemma {
		t.Errorf("kind after toggle = %v, want ContextFreeLemma", m.kind)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = next.(Model)
	if m.kind != engine.RegularLemma {
		t.Errorf("kind after second toggle = %v, want RegularLemma", m.kind)
	}
}

func TestRunAnalysisFillsViewport(t *testing.T) {
	m := newTestModel(t)
	m.stringInput.SetValue("aabb")
	m.pInput.SetValue("3")

	// L1 is a^n b^m; "aabb" pumps trivially.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.hasVerdict {
		t.Fatal("no verdict after enter")
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	view := m.View()
	if !strings.Contains(view, "LEMMA HOLDS") {
		t.Errorf("view missing verdict banner after analysis")
	}
}

func TestRunAnalysisBadPumpingLength(t *testing.T) {
	m := newTestModel(t)
	m.stringInput.SetValue("aabb")
	m.pInput.SetValue("three")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.errMsg == "" {
		t.Error("no error message for a non-numeric pumping length")
	}
	if m.hasVerdict {
		t.Error("verdict produced despite invalid input")
	}
}

// TestRunAnalysisPumpingLengthOverLimit: the bound comes from the
// engine's configuration, so an out-of-range p is rejected before any
// candidates are enumerated.
func TestRunAnalysisPumpingLengthOverLimit(t *testing.T) {
	m := newTestModel(t)
	m.stringInput.SetValue("aabb")
	m.pInput.SetValue("9999")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !strings.Contains(m.errMsg, "exceeds the maximum") {
		t.Errorf("errMsg = %q, want a maximum-exceeded message", m.errMsg)
	}
	if m.hasVerdict {
		t.Error("verdict produced despite out-of-range pumping length")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.viewport.Width != 98 {
		t.Errorf("viewport width = %d, want 98", m.viewport.Width)
	}
	if m.viewport.Height < 4 {
		t.Errorf("viewport height = %d, want >= 4", m.viewport.Height)
	}
}
