package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"colorsearch/internal/ui/input/types"
)

// Placeholder shown in the empty search field
const Placeholder = "Enter first name..."

// Handler turns key presses into actions. The search field is always
// focused; keys that are not bound to an action edit it.
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, nil
	case key.Matches(msg, h.keys.Submit):
		return []types.Action{types.SubmitAction{Text: h.textInput.Value()}}, nil
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, nil
	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, nil
	case key.Matches(msg, h.keys.Clear):
		h.textInput.Reset()
		return []types.Action{
			types.ClearTextAction{},
			types.UpdateTextAction{Text: ""},
		}, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// TextInput returns the shared search field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetValue replaces the field's content
func (h *Handler) SetValue(v string) {
	h.textInput.SetValue(v)
}

// SetWidth resizes the field to fit the terminal
func (h *Handler) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	h.textInput.Width = width
}

// Update handles non-keyboard messages for text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
