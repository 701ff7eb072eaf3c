package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"colorsearch/internal/config"
	"colorsearch/internal/eventbus"
	"colorsearch/internal/lookup"
	"colorsearch/internal/ui/input"
	inputtypes "colorsearch/internal/ui/input/types"
	"colorsearch/internal/ui/state"
	"colorsearch/internal/ui/viewmodels"
	"colorsearch/internal/ui/views"
)

// Options wires a Model to its collaborators
type Options struct {
	Config  *config.Config
	Lookup  lookup.Service
	Bus     eventbus.EventBus // optional
	Logger  *zap.Logger       // optional
	Context context.Context   // parent of every lookup; optional
}

// Model is the search form. It owns the SearchState for its whole lifetime.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	lookup lookup.Service
	state  *state.SearchState

	width   int
	height  int
	spinner spinner.Model

	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer

	// Cancel-and-replace: a new submission cancels the request in flight and
	// responses for older request ids are dropped by the state.
	ctx           context.Context
	lastRequestID uint64
	cancelLookup  context.CancelFunc
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	searchState := state.NewSearchState()
	inputHandler := input.New()

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		logger:       logger.Named("ui"),
		lookup:       opts.Lookup,
		state:        searchState,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		inputHandler: inputHandler,
		renderer:     views.NewRenderer(),
		ctx:          ctx,
	}

	m.viewModel = viewmodels.NewViewModel(searchState, inputHandler.Keys(), *inputHandler.TextInput())
	m.viewModel.SetShowHelp(cfg.UISettings.ShowHelp)

	return m
}

// State exposes the search state for inspection
func (m *Model) State() *state.SearchState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputHandler.SetWidth(msg.Width - 24)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchResultMsg:
		return m, m.handleSearchResult(msg)

	case spinner.TickMsg:
		// Keep ticking only while a request is in flight
		if m.state.Status() != state.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerExitMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.SetQuery(a.Text)
	case inputtypes.ClearTextAction:
		m.logger.Debug("input cleared")
	case inputtypes.SubmitAction:
		m.state.SetQuery(a.Text)
		return m.submit()
	case inputtypes.ToggleHelpAction:
		m.viewModel.ToggleFullHelp()
	case inputtypes.OpenPagerAction:
		return m.pageResults()
	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// submit starts a lookup for the current query. Blank queries are ignored.
func (m *Model) submit() tea.Cmd {
	id := m.lastRequestID + 1
	query, ok := m.state.Begin(id)
	if !ok {
		return nil
	}
	m.lastRequestID = id

	if m.cancelLookup != nil {
		m.logger.Debug("replacing in-flight lookup", zap.Uint64("request_id", id-1))
		m.cancelLookup()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelLookup = cancel

	m.logger.Info("search submitted", zap.Uint64("request_id", id), zap.String("query", query))
	m.publish(eventbus.SearchSubmittedEvent{RequestID: id, Query: query})

	return tea.Batch(m.runLookup(ctx, id, query), m.spinner.Tick)
}

// runLookup returns a command that calls the lookup service
func (m *Model) runLookup(ctx context.Context, id uint64, query string) tea.Cmd {
	svc := m.lookup
	return func() tea.Msg {
		start := time.Now()
		if svc == nil {
			return searchResultMsg{requestID: id, query: query, err: &lookup.LookupError{}, elapsed: time.Since(start)}
		}
		resp, err := svc.Search(ctx, query)
		return searchResultMsg{
			requestID: id,
			query:     query,
			records:   resp.Data,
			err:       err,
			elapsed:   time.Since(start),
		}
	}
}

func (m *Model) handleSearchResult(msg searchResultMsg) tea.Cmd {
	log := m.logger.With(
		zap.Uint64("request_id", msg.requestID),
		zap.String("query", msg.query),
		zap.Duration("elapsed", msg.elapsed),
	)

	if msg.err != nil {
		message := lookup.Message(msg.err)
		if !m.state.Fail(msg.requestID, message) {
			m.discard(msg, log)
			return nil
		}
		log.Warn("search failed", zap.Error(msg.err))
		m.publish(eventbus.SearchFailedEvent{
			RequestID: msg.requestID,
			Query:     msg.query,
			Message:   message,
			Elapsed:   msg.elapsed,
		})
	} else {
		if !m.state.Resolve(msg.requestID, msg.records) {
			m.discard(msg, log)
			return nil
		}
		log.Info("search completed", zap.Int("count", len(msg.records)))
		m.publish(eventbus.SearchCompletedEvent{
			RequestID: msg.requestID,
			Query:     msg.query,
			Count:     len(msg.records),
			Elapsed:   msg.elapsed,
		})
	}

	if m.cancelLookup != nil {
		m.cancelLookup()
		m.cancelLookup = nil
	}
	return nil
}

func (m *Model) discard(msg searchResultMsg, log *zap.Logger) {
	log.Debug("discarding stale search response")
	m.publish(eventbus.SearchDiscardedEvent{RequestID: msg.requestID, Query: msg.query})
}

// pageResults opens the current result list in the pager
func (m *Model) pageResults() tea.Cmd {
	if len(m.state.Results()) == 0 {
		return nil
	}
	panel := viewmodels.BuildResultPanel(m.state)
	return openPager(m.renderer.RenderResults(panel))
}

// Close cancels any lookup still in flight
func (m *Model) Close() {
	if m.cancelLookup != nil {
		m.cancelLookup()
		m.cancelLookup = nil
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
