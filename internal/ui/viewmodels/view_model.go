package viewmodels

import (
	"rickdex/internal/domain"
	"rickdex/internal/ui/logic"
	"rickdex/internal/ui/state"
	"rickdex/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state         state.State
	width         int
	height        int
	windowSize    int
	mode          string
	inputView     string
	spinnerView   string
	helpView      string
	statusMessage string

	selectedIndex  int
	viewportOffset int
	columns        int
	rows           int
	visibleStart   int
	visibleEnd     int

	categoryCursor int
	valueCursor    int
}

// NewViewModel creates a new view model; windowSize is the page window length
func NewViewModel(windowSize int) *ViewModel {
	return &ViewModel{windowSize: windowSize, columns: 1, rows: 1}
}

// SetState sets the snapshot to render
func (vm *ViewModel) SetState(s state.State) {
	vm.state = s
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInput sets the input mode name and the rendered search box
func (vm *ViewModel) SetInput(mode, inputView string) {
	vm.mode = mode
	vm.inputView = inputView
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(view string) {
	vm.spinnerView = view
}

// SetHelp sets the rendered help bar
func (vm *ViewModel) SetHelp(view string) {
	vm.helpView = view
}

// SetStatusMessage sets a transient message shown next to the title
func (vm *ViewModel) SetStatusMessage(msg string) {
	vm.statusMessage = msg
}

// SetGrid copies the card cursor and the visible grid from nav
func (vm *ViewModel) SetGrid(nav *logic.Navigator) {
	vm.selectedIndex = nav.SelectedIndex()
	vm.viewportOffset = nav.ViewportOffset()
	vm.columns = nav.Columns()
	vm.rows = nav.Rows()
	vm.visibleStart, vm.visibleEnd = nav.VisibleRange()
}

// SetCategoryCursor sets the category mode cursor
func (vm *ViewModel) SetCategoryCursor(categoryIndex, valueIndex int) {
	vm.categoryCursor = categoryIndex
	vm.valueCursor = valueIndex
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state

	var cursorOptions []string
	if vm.categoryCursor >= 0 && vm.categoryCursor < len(domain.Categories) {
		cursorOptions = s.Filter.Options.For(domain.Categories[vm.categoryCursor])
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Mode:             vm.mode,
		InputView:        vm.inputView,
		Suggestions:      s.Search.Suggestions,
		ShowSuggestions:  s.SuggestionsVisible(),
		HighlightedIndex: s.Search.HighlightedIndex,
		Loading:          s.Search.Loading,
		SpinnerView:      vm.spinnerView,
		ErrorMessage:     s.Search.ErrorMessage,
		FilterError:      s.Filter.ErrorMessage,
		Cards:            s.Visible(),
		SelectedIndex:    vm.selectedIndex,
		ViewportOffset:   vm.viewportOffset,
		Columns:          vm.columns,
		Rows:             vm.rows,
		VisibleStart:     vm.visibleStart,
		VisibleEnd:       vm.visibleEnd,
		Page:             s.Search.Page,
		TotalPages:       s.Search.TotalPages,
		Window:           logic.PageWindow(s.Search.Page, s.Search.TotalPages, vm.windowSize),
		Categories:       domain.Categories,
		ActiveCategory:   s.Filter.ActiveCategory,
		ActiveValue:      s.Filter.ActiveValue,
		OptionsLoaded:    s.Filter.OptionsLoaded,
		CategoryCursor:   vm.categoryCursor,
		ValueCursor:      vm.valueCursor,
		CursorOptions:    cursorOptions,
		StatusMessage:    vm.statusMessage,
		HelpView:         vm.helpView,
	}
}
