package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed copy of the search form
const (
	AppTitle      = "colorsearch"
	FormLabel     = "Search by First Name"
	ButtonLabel   = "Search"
	LoadingText   = "Searching..."
	InitialPrompt = "Enter a name and click Search to find favorite colors"
)

// ResultEntry is one rendered match
type ResultEntry struct {
	Key   string // firstName-index; identifies the row across renders, not drawn
	Name  string
	Color string // raw favorite color, used as the swatch color
	Label string // "Favorite color: ..."
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	TextInput    string
	Loading      bool
	Spinner      string
	ErrorMessage string
	Entries      []ResultEntry
	EmptyMessage string
	Prompt       string
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewResultRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(AppTitle))
	content.WriteString("\n")
	content.WriteString(r.renderForm(state))
	content.WriteString("\n\n")
	content.WriteString(r.RenderResults(state))

	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		helpLines := lipgloss.Height(state.HelpView)

		// Account for container padding (1 top, 1 bottom)
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}

		if paddingNeeded := availableLines - currentLines - helpLines; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderForm(state ViewState) string {
	label := r.styles.Label.Render(FormLabel)
	input := r.styles.Input.Render(state.TextInput)
	button := r.styles.Button.Render(ButtonLabel)
	row := lipgloss.JoinHorizontal(lipgloss.Center, input, button)
	return lipgloss.JoinVertical(lipgloss.Left, label, row)
}

// RenderResults renders the panel below the form: the loading indicator, or
// the error line followed by entries, the empty message or the prompt
func (r *Renderer) RenderResults(state ViewState) string {
	if state.Loading {
		text := LoadingText
		if state.Spinner != "" {
			text = state.Spinner + " " + text
		}
		return r.styles.Loading.Render(text)
	}

	var blocks []string
	if state.ErrorMessage != "" {
		blocks = append(blocks, r.styles.StatusError.Render(state.ErrorMessage))
	}
	for _, entry := range state.Entries {
		blocks = append(blocks, r.entryRender.RenderEntry(entry))
	}
	if state.EmptyMessage != "" {
		blocks = append(blocks, r.styles.Dim.Render(state.EmptyMessage))
	}
	if state.Prompt != "" {
		blocks = append(blocks, r.styles.Dim.Render(state.Prompt))
	}
	return strings.Join(blocks, "\n")
}
