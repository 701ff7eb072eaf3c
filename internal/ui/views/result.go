package views

import (
	"github.com/charmbracelet/lipgloss"
)

const swatchGlyph = "●●"

// ResultRenderer handles rendering of result entries
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{
		styles: styles,
	}
}

// RenderEntry renders a swatch followed by the name and color label
func (r *ResultRenderer) RenderEntry(entry ResultEntry) string {
	swatch := SwatchStyle(entry.Color).Render(swatchGlyph)
	text := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.EntryName.Render(entry.Name),
		r.styles.EntryDetail.Render(entry.Label),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Center, swatch, "  ", text)
	return r.styles.Entry.Render(row)
}
