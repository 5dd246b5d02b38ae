package pane

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alek3y/exa/config"
)

// Style controls the pane's rendering.
type Style struct {
	Gutter lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

// NewStyle builds the pane style from the line number settings. A nil
// renderer uses lipgloss's default.
func NewStyle(r *lipgloss.Renderer, ln config.LineNumbersConfig) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	gutter := r.NewStyle()
	if ln.Foreground != "" {
		gutter = gutter.Foreground(lipgloss.Color(ln.Foreground))
	}
	if ln.Background != "" {
		gutter = gutter.Background(lipgloss.Color(ln.Background))
	}
	return Style{
		Gutter: gutter,
		Text:   r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),
		Status: r.NewStyle().Faint(true),
	}
}
