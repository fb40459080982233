package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"rickdex/internal/domain"
	"rickdex/internal/ui/input/types"
)

// CategoryMode picks a category and one of its values. Every move applies
// the filter immediately; esc restores the filter active on entry.
type CategoryMode struct {
	categoryIndex int
	valueIndex    int // 0 is "All"

	originalCategory domain.Category
	originalValue    string
}

func NewCategoryMode() *CategoryMode {
	return &CategoryMode{}
}

func (m *CategoryMode) Name() string {
	return "category"
}

func (m *CategoryMode) Enter(ctx types.Context) []types.Action {
	m.originalCategory = ctx.ActiveCategory()
	m.originalValue = ctx.ActiveValue()
	m.categoryIndex = 0
	m.valueIndex = 0

	for i, c := range domain.Categories {
		if c == m.originalCategory {
			m.categoryIndex = i
			break
		}
	}
	for i, v := range ctx.CategoryOptions(m.category()) {
		if v == m.originalValue {
			m.valueIndex = i + 1
			break
		}
	}

	return nil
}

func (m *CategoryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for category selection
func (m *CategoryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.ApplyCategoryAction{Category: m.originalCategory, Value: m.originalValue},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	case "left", "h", "shift+tab":
		m.categoryIndex = (m.categoryIndex + len(domain.Categories) - 1) % len(domain.Categories)
		m.valueIndex = 0
		return m.apply(ctx), true

	case "right", "l", "tab":
		m.categoryIndex = (m.categoryIndex + 1) % len(domain.Categories)
		m.valueIndex = 0
		return m.apply(ctx), true

	case "up", "k":
		n := len(ctx.CategoryOptions(m.category())) + 1
		m.valueIndex = (m.valueIndex + n - 1) % n
		return m.apply(ctx), true

	case "down", "j":
		n := len(ctx.CategoryOptions(m.category())) + 1
		m.valueIndex = (m.valueIndex + 1) % n
		return m.apply(ctx), true
	}

	return nil, false
}

// CurrentCategory returns the category under the cursor
func (m *CategoryMode) CurrentCategory() domain.Category {
	return m.category()
}

// CurrentValueIndex returns the value cursor; 0 is "All"
func (m *CategoryMode) CurrentValueIndex() int {
	return m.valueIndex
}

func (m *CategoryMode) category() domain.Category {
	return domain.Categories[m.categoryIndex]
}

func (m *CategoryMode) apply(ctx types.Context) []types.Action {
	value := ""
	if m.valueIndex > 0 {
		opts := ctx.CategoryOptions(m.category())
		if m.valueIndex-1 < len(opts) {
			value = opts[m.valueIndex-1]
		}
	}
	return []types.Action{types.ApplyCategoryAction{Category: m.category(), Value: value}}
}
