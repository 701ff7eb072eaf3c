package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/colornames"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	Button      lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Entry       lipgloss.Style
	EntryName   lipgloss.Style
	EntryDetail lipgloss.Style
	StatusError lipgloss.Style
	Loading     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 2).
			MarginLeft(1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Entry: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2),
		EntryName:   lipgloss.NewStyle().Bold(true),
		EntryDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}

// SwatchStyle colors a swatch with the record's color value
func SwatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ResolveColor(color)))
}

// ResolveColor turns a CSS color name into its hex code. Any other value is
// returned unchanged and left for lipgloss to interpret.
func ResolveColor(value string) string {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return value
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
