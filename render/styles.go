// Package render turns engine verdicts into styled terminal output: a
// pass/fail banner, a colored decomposition strip, and the iteration
// table. It is presentation glue over the core packages and holds no
// logic of its own; the core stays fully consumable without it.
package render

import "github.com/charmbracelet/lipgloss"

// Segment colors. One fixed color per named segment so a segment keeps
// its color across the strip, the table and the TUI.
var segmentColors = map[string]lipgloss.Color{
	"x": lipgloss.Color("#1f77b4"), // blue
	"y": lipgloss.Color("#ff7f0e"), // orange
	"z": lipgloss.Color("#2ca02c"), // green
	"u": lipgloss.Color("#d62728"), // red
	"v": lipgloss.Color("#9467bd"), // purple
	"w": lipgloss.Color("#8c564b"), // brown
}

// cflOverrides recolor the x and y segments in uvwxy context, where x and
// y name different parts than in the regular xyz split.
var cflOverrides = map[string]lipgloss.Color{
	"x": lipgloss.Color("#e377c2"), // pink
	"y": lipgloss.Color("#7f7f7f"), // gray
}

// Styles bundles the lipgloss styles used by the renderer.
type Styles struct {
	Banner     lipgloss.Style
	BannerFail lipgloss.Style
	Header     lipgloss.Style
	Label      lipgloss.Style
	Pass       lipgloss.Style
	Fail       lipgloss.Style
	Muted      lipgloss.Style
	Empty      lipgloss.Style
}

// DefaultStyles returns the renderer's default styles.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2ca02c")).
			Padding(0, 1),
		BannerFail: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#d62728")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:  lipgloss.NewStyle().Bold(true),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2ca02c")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d62728")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7f7f")),
		Empty:  lipgloss.NewStyle().Faint(true),
	}
}

// segmentStyle returns the style for a named segment under the given
// naming scheme (regular xyz or context-free uvwxy).
func segmentStyle(name string, cfl bool) lipgloss.Style {
	color, ok := segmentColors[name]
	if cfl {
		if c, override := cflOverrides[name]; override {
			color, ok = c, true
		}
	}
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
