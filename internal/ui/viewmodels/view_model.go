package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"colorsearch/internal/ui/input"
	"colorsearch/internal/ui/state"
	"colorsearch/internal/ui/views"
)

// ViewModel transforms search state into view-ready data
type ViewModel struct {
	state     *state.SearchState
	width     int
	height    int
	help      help.Model
	keys      input.KeyMap
	showHelp  bool
	spinner   string
	textInput textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(searchState *state.SearchState, keys input.KeyMap, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:     searchState,
		help:      help.New(),
		keys:      keys,
		showHelp:  true,
		textInput: textInput,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetShowHelp enables the key help footer
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// ToggleFullHelp switches the footer between short and full key help
func (vm *ViewModel) ToggleFullHelp() {
	vm.help.ShowAll = !vm.help.ShowAll
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := BuildResultPanel(vm.state)
	vs.Width = vm.width
	vs.Height = vm.height
	vs.TextInput = vm.textInput.View()
	if vs.Loading {
		vs.Spinner = vm.spinner
	}
	if vm.showHelp {
		vs.HelpView = vm.help.View(vm.keys)
	}
	return vs
}

// BuildResultPanel applies the rendering rules to s. While a request is in
// flight only the loading flag is set.
func BuildResultPanel(s *state.SearchState) views.ViewState {
	if s.Status() == state.StatusLoading {
		return views.ViewState{Loading: true}
	}

	var vs views.ViewState
	if msg, failed := s.ErrorMessage(); failed {
		vs.ErrorMessage = msg
	}

	results := s.Results()
	for i, r := range results {
		vs.Entries = append(vs.Entries, views.ResultEntry{
			Key:   r.DisplayKey(i),
			Name:  r.FirstName,
			Color: r.FavoriteColor,
			Label: "Favorite color: " + r.FavoriteColor,
		})
	}

	switch {
	case len(results) == 0 && s.HasSearched():
		vs.EmptyMessage = fmt.Sprintf("No results found for \"%s\"", s.Query())
	case !s.HasSearched():
		vs.Prompt = views.InitialPrompt
	}
	return vs
}
