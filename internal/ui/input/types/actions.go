package types

import "rickdex/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Suggestion actions
type HighlightAction struct {
	Delta int // +1 down, -1 up
}

func (a HighlightAction) Type() string { return "highlight" }

type CommitSuggestionAction struct{}

func (a CommitSuggestionAction) Type() string { return "commit_suggestion" }

// Pagination actions
type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "go_to_page" }

// Category actions
type ApplyCategoryAction struct {
	Category domain.Category
	Value    string // "" means all
}

func (a ApplyCategoryAction) Type() string { return "apply_category" }

// Command actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
