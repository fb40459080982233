package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"rickdex/internal/config"
	"rickdex/internal/eventbus"
	"rickdex/internal/ui/handlers"
	"rickdex/internal/ui/input"
	inputtypes "rickdex/internal/ui/input/types"
	"rickdex/internal/ui/logic"
	"rickdex/internal/ui/state"
	"rickdex/internal/ui/viewmodels"
	"rickdex/internal/ui/views"
)

// Lines around the card grid: padding, title, search, category bar, page
// bar, help and the blank lines between them
const reservedLines = 14

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	width   int
	height  int
	help    help.Model
	keys    keyMap
	spinner spinner.Model

	// card cursor, reset whenever a new page is applied
	selectedIndex  int
	viewportOffset int
	lastPageGen    uint64

	events       *handlers.EventHandler
	inputHandler *input.Handler
	navigator    *logic.Navigator
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer

	// Program reference for terminal management
	pager *Pager
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	return &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		events:       handlers.NewEventHandler(state.New(), bus, logger),
		inputHandler: input.New(),
		navigator:    logic.NewNavigator(),
		viewModel:    viewmodels.NewViewModel(cfg.UI.PageWindow),
		renderer:     views.NewRenderer(),
	}
}

// SetProgram sets the program reference used by the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// State returns the current snapshot
func (m *Model) State() state.State {
	return m.events.State()
}

// Init requests the first page and the filter options
func (m *Model) Init() tea.Cmd {
	m.events.Start()
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncNavigator()
		return m, nil

	case EventMsg:
		m.apply(msg.Event)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerDoneMsg:
		if msg.err != nil {
			m.logger.Error("pager failed", zap.Error(msg.err))
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

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

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.apply(state.QueryChanged{Text: a.Text})

	case inputtypes.HighlightAction:
		m.apply(state.HighlightMoved{Delta: a.Delta})

	case inputtypes.CommitSuggestionAction:
		m.apply(state.EnterPressed{})

	case inputtypes.GoToPageAction:
		page := a.Page
		if total := m.State().Search.TotalPages; page > total {
			page = total
		}
		m.apply(state.PageChanged{Page: page})

	case inputtypes.ApplyCategoryAction:
		m.apply(state.CategorySelected{Category: a.Category, Value: a.Value})

	case inputtypes.NavigateAction:
		m.syncNavigator()
		m.selectedIndex, m.viewportOffset = m.navigator.Navigate(a.Direction)

	case inputtypes.OpenDetailAction:
		cards := m.State().Visible()
		if m.selectedIndex < 0 || m.selectedIndex >= len(cards) {
			return nil
		}
		return m.pager.showCmd(m.renderer.Cards().RenderDetail(cards[m.selectedIndex]))

	case inputtypes.ToggleHelpAction:
		return m.pager.showCmd(renderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// apply runs an event through the state transition and keeps the search box
// and the card cursor consistent with the new snapshot
func (m *Model) apply(event eventbus.DomainEvent) {
	m.events.HandleEvent(event)

	s := m.State()
	m.inputHandler.SetText(s.Search.Query)

	if s.Search.PageGeneration != m.lastPageGen || len(s.Visible()) == 0 {
		m.lastPageGen = s.Search.PageGeneration
		m.selectedIndex = 0
		m.viewportOffset = 0
	}
	m.syncNavigator()
}

// handleMouse commits a clicked suggestion
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	s := m.State()
	if !s.SuggestionsVisible() {
		return
	}
	i := msg.Y - views.SuggestionsTop
	if i < 0 || i >= len(s.Search.Suggestions) {
		return
	}
	m.apply(state.SuggestionCommitted{Name: s.Search.Suggestions[i]})
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:      m.State(),
		WindowSize: m.config.UI.PageWindow,
	}
}

// gridGeometry returns the columns and rows available to the card grid
func (m *Model) gridGeometry() (columns, rows int) {
	width, height := m.width, m.height
	if width == 0 {
		width, height = 80, 24
	}
	reserved := reservedLines
	s := m.State()
	if s.SuggestionsVisible() {
		reserved += len(s.Search.Suggestions)
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeCategory {
		reserved++
	}
	return views.GridColumns(width - 4), views.GridRows(height - reserved)
}

func (m *Model) syncNavigator() {
	columns, rows := m.gridGeometry()
	m.navigator.UpdateState(m.selectedIndex, m.viewportOffset, rows, columns, len(m.State().Visible()))
	m.selectedIndex = m.navigator.SelectedIndex()
	m.viewportOffset = m.navigator.ViewportOffset()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	m.keys.mode = mode
	m.syncNavigator()
	categoryIndex, valueIndex := m.inputHandler.CategoryCursor()

	m.viewModel.SetState(m.State())
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInput(mode.String(), m.inputHandler.TextInput().View())
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.help.View(m.keys))
	m.viewModel.SetStatusMessage(m.events.StatusMessage())
	m.viewModel.SetGrid(m.navigator)
	m.viewModel.SetCategoryCursor(categoryIndex, valueIndex)

	return m.renderer.Render(m.viewModel.BuildViewState())
}
