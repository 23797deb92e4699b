package render

import (
	"fmt"
	"strings"

	"github.com/coregx/pumplemma/engine"
)

// Segment display orders for the two lemma variants.
var (
	regularOrder = []string{"x", "y", "z"}
	cflOrder     = []string{"u", "v", "w", "x", "y"}
)

// Renderer formats verdicts for the terminal.
type Renderer struct {
	styles Styles
}

// New returns a renderer with the default styles.
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// NewWithStyles returns a renderer with custom styles.
func NewWithStyles(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Verdict renders a full verdict: banner, decomposition strip and
// iteration table.
func (r *Renderer) Verdict(v engine.Verdict) string {
	var sb strings.Builder

	sb.WriteString(r.Banner(v))
	sb.WriteString("\n\n")

	if v.HasError() {
		sb.WriteString(r.styles.Fail.Render("error: " + v.Err))
		sb.WriteString("\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s %q\n", r.styles.Label.Render("string:"), v.Input)
	fmt.Fprintf(&sb, "%s %d\n", r.styles.Label.Render("pumping length:"), v.PumpingLength)

	if len(v.Iterations) == 0 {
		sb.WriteString(r.styles.Muted.Render("no candidate decompositions: inconclusive"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(r.styles.Header.Render("Decomposition"))
	sb.WriteString("\n")
	sb.WriteString(r.DecompositionStrip(v))
	sb.WriteString("\n")
	if info, ok := v.Decomposition["split_info"]; ok {
		sb.WriteString(r.styles.Muted.Render(info))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(r.styles.Header.Render("Pumping iterations"))
	sb.WriteString("\n")
	sb.WriteString(r.IterationTable(v))
	return sb.String()
}

// Banner renders the one-line pass/fail/inconclusive summary.
func (r *Renderer) Banner(v engine.Verdict) string {
	switch {
	case v.HasError():
		return r.styles.BannerFail.Render("PRECONDITION FAILED: " + v.LanguageType)
	case len(v.Iterations) == 0:
		return r.styles.BannerFail.Render("INCONCLUSIVE: " + v.LanguageType)
	case v.LemmaHolds:
		return r.styles.Banner.Render("LEMMA HOLDS: " + v.LanguageType)
	default:
		return r.styles.BannerFail.Render("LEMMA FAILS: " + v.LanguageType)
	}
}

// DecompositionStrip renders the named segments side by side, each in its
// segment color, with empty segments shown as ε.
func (r *Renderer) DecompositionStrip(v engine.Verdict) string {
	order, cfl := segmentOrder(v)
	parts := make([]string, 0, len(order))
	for _, name := range order {
		seg, ok := v.Decomposition[name]
		if !ok {
			continue
		}
		display := seg
		if display == "" {
			display = "ε"
		}
		parts = append(parts,
			fmt.Sprintf("%s=%s", r.styles.Label.Render(name), segmentStyle(name, cfl).Render(display)))
	}
	return strings.Join(parts, "  ")
}

// IterationTable renders one row per tested repetition count.
func (r *Renderer) IterationTable(v engine.Verdict) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s | %-30s | %s\n", "i", "pumped string", "in language")
	sb.WriteString(strings.Repeat("-", 52))
	sb.WriteString("\n")
	for _, it := range v.Iterations {
		pumped := it.Pumped
		if pumped == "" {
			pumped = "ε"
		}
		if len(pumped) > 30 {
			pumped = pumped[:27] + "..."
		}
		mark := r.styles.Pass.Render("yes")
		if !it.InLanguage {
			mark = r.styles.Fail.Render("NO")
		}
		fmt.Fprintf(&sb, "%-4d | %-30s | %s\n", it.I, pumped, mark)
	}
	return sb.String()
}

// Properties renders a property-analysis report.
func (r *Renderer) Properties(report engine.PropertyReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n\n", r.styles.Label.Render("pattern:"), string(report.Pattern))
	fmt.Fprintf(&sb, "%-20s | %-6s | %s\n", "string", "length", "in language")
	sb.WriteString(strings.Repeat("-", 44))
	sb.WriteString("\n")
	for _, res := range report.Results {
		in := r.styles.Pass.Render("yes")
		if !res.InLanguage {
			in = r.styles.Fail.Render("no")
		}
		display := res.Input
		if display == "" {
			display = "ε"
		}
		fmt.Fprintf(&sb, "%-20s | %-6d | %s\n", display, res.Length, in)
	}
	if p := report.Properties; p != nil {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "accepted: %d  min length: %d  max length tested: %d  accepts empty: %v\n",
			p.SampleCount, p.MinLength, p.MaxLengthTested, p.CanBeEmpty)
	}
	return sb.String()
}

// segmentOrder picks the display order from the segments present in the
// verdict: a "u" segment means the uvwxy naming scheme.
func segmentOrder(v engine.Verdict) (order []string, cfl bool) {
	if _, ok := v.Decomposition["u"]; ok {
		return cflOrder, true
	}
	return regularOrder, false
}
