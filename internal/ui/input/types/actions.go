package types

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitAction struct {
	Text string
}

func (a SubmitAction) Type() string { return "submit" }

type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// View actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Application actions
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
