package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rickdex/internal/ui/input/types"
	"rickdex/internal/ui/logic"
)

// BrowseMode moves the card cursor and flips pages
type BrowseMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()

	// Any key other than g cancels the gg prefix
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "left", "[", "pgup":
		if p := logic.PrevPage(ctx.Page()); p != ctx.Page() {
			return []types.Action{types.GoToPageAction{Page: p}}, true
		}
		return nil, true

	case "right", "]", "pgdown":
		if p := logic.NextPage(ctx.Page(), ctx.TotalPages()); p != ctx.Page() {
			return []types.Action{types.GoToPageAction{Page: p}}, true
		}
		return nil, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Digits pick a slot of the visible page window
		slot := int(key[0] - '1')
		window := ctx.PageWindow()
		if slot < len(window) {
			return []types.Action{types.GoToPageAction{Page: window[slot]}}, true
		}
		return nil, true

	case "enter", " ":
		if ctx.CardCount() > 0 {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, true

	case "/", "s", "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "c", "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCategory}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "esc":
		return nil, true
	}

	return nil, false
}
