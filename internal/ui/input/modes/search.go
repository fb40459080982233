package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rickdex/internal/ui/input/types"
)

// SearchMode edits the query and drives the suggestion panel
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up", "ctrl+p":
		if ctx.SuggestionCount() == 0 {
			return nil, true
		}
		return []types.Action{types.HighlightAction{Delta: -1}}, true

	case "down", "ctrl+n":
		if ctx.SuggestionCount() == 0 {
			return nil, true
		}
		return []types.Action{types.HighlightAction{Delta: 1}}, true

	case "enter":
		return []types.Action{types.CommitSuggestionAction{}}, true

	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
