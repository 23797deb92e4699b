// Package ui implements the interactive pumping-lemma explorer: a
// language picker, string and pumping-length inputs, a lemma-kind toggle,
// and a scrollable verdict view.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/coregx/pumplemma/engine"
	"github.com/coregx/pumplemma/language"
	"github.com/coregx/pumplemma/render"
)

// focusArea identifies which widget receives key input.
type focusArea int

const (
	focusLanguage focusArea = iota
	focusString
	focusP
	focusResult
)

// Model is the explorer's bubbletea model.
type Model struct {
	catalog []language.CatalogEntry
	cursor  int
	kind    engine.Kind

	stringInput textinput.Model
	pInput      textinput.Model
	viewport    viewport.Model

	engine   *engine.Engine
	renderer *render.Renderer
	styles   Styles

	focus      focusArea
	hasVerdict bool
	errMsg     string
	width      int
	height     int
}

// New builds the explorer model over a language catalog.
func New(catalog *language.Catalog) Model {
	si := textinput.New()
	si.Placeholder = "test string, e.g. aabb"
	si.CharLimit = 64
	si.Width = 30

	pi := textinput.New()
	pi.Placeholder = "pumping length (empty = recommended)"
	pi.CharLimit = 4
	pi.Width = 30

	vp := viewport.New(80, 16)

	return Model{
		catalog:     catalog.Entries(),
		stringInput: si,
		pInput:      pi,
		viewport:    vp,
		engine:      engine.New(),
		renderer:    render.New(),
		styles:      DefaultStyles(),
		focus:       focusLanguage,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 14
		if m.viewport.Height < 4 {
			m.viewport.Height = 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus(m.nextFocus(1))
			return m, nil
		case "shift+tab":
			m.setFocus(m.nextFocus(-1))
			return m, nil
		case "ctrl+k":
			if m.kind == engine.RegularLemma {
				m.kind = engine.ContextFreeLemma
			} else {
				m.kind = engine.RegularLemma
			}
			return m, nil
		case "enter":
			m.runAnalysis()
			return m, nil
		}

		switch m.focus {
		case focusLanguage:
			switch msg.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.catalog)-1 {
					m.cursor++
				}
			case "q":
				return m, tea.Quit
			}
			return m, nil
		case focusString:
			var cmd tea.Cmd
			m.stringInput, cmd = m.stringInput.Update(msg)
			return m, cmd
		case focusP:
			var cmd tea.Cmd
			m.pInput, cmd = m.pInput.Update(msg)
			return m, cmd
		case focusResult:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// nextFocus cycles the focus ring in either direction.
func (m Model) nextFocus(dir int) focusArea {
	order := []focusArea{focusLanguage, focusString, focusP, focusResult}
	for i, f := range order {
		if f == m.focus {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	return focusLanguage
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.stringInput.Blur()
	m.pInput.Blur()
	switch f {
	case focusString:
		m.stringInput.Focus()
	case focusP:
		m.pInput.Focus()
	}
}

// runAnalysis evaluates the current selection and fills the viewport.
func (m *Model) runAnalysis() {
	m.errMsg = ""
	if len(m.catalog) == 0 {
		m.errMsg = "catalog is empty"
		return
	}
	entry := m.catalog[m.cursor]

	p := 0
	if raw := strings.TrimSpace(m.pInput.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = fmt.Sprintf("pumping length %q is not a number", raw)
			return
		}
		p = n
	}
	if limit := m.engine.Config().MaxPumpingLength; p > limit {
		m.errMsg = fmt.Sprintf("pumping length %d exceeds the maximum %d", p, limit)
		return
	}
	if p <= 0 {
		p = language.RecommendedPumpingLength(entry.Class, entry.Pattern)
	}

	verdict := m.engine.Evaluate(entry.Pattern, m.stringInput.Value(), p, m.kind)
	m.viewport.SetContent(m.renderer.Verdict(verdict))
	m.viewport.GotoTop()
	m.hasVerdict = true
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Pumping Lemma Explorer"))
	sb.WriteString("\n\n")

	sb.WriteString(m.sectionLabel("Language", focusLanguage))
	sb.WriteString("\n")
	for i, entry := range m.catalog {
		line := fmt.Sprintf("%-4s %-16s %s", entry.ID, entry.Pattern, entry.Description)
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.sectionLabel("String", focusString))
	sb.WriteString(" ")
	sb.WriteString(m.stringInput.View())
	sb.WriteString("\n")

	sb.WriteString(m.sectionLabel("Pumping length", focusP))
	sb.WriteString(" ")
	sb.WriteString(m.pInput.View())
	sb.WriteString("\n")

	sb.WriteString(m.styles.Label.Render("Lemma"))
	sb.WriteString(" ")
	sb.WriteString(m.styles.Kind.Render(m.kind.String()))
	sb.WriteString(m.styles.Help.Render("  (ctrl+k toggles)"))
	sb.WriteString("\n\n")

	if m.errMsg != "" {
		sb.WriteString(m.styles.Error.Render(m.errMsg))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.sectionLabel("Result", focusResult))
	sb.WriteString("\n")
	if m.hasVerdict {
		sb.WriteString(m.viewport.View())
	} else {
		sb.WriteString(m.styles.Help.Render("press enter to analyze"))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Help.Render("tab: next field • enter: analyze • ctrl+k: lemma kind • esc: quit"))
	return sb.String()
}

func (m Model) sectionLabel(name string, area focusArea) string {
	if m.focus == area {
		return m.styles.FocusedLabel.Render(name)
	}
	return m.styles.Label.Render(name)
}
