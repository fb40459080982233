package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	inputtypes "rickdex/internal/ui/input/types"
)

// keyMap describes the bindings shown in the help bar. Key handling itself
// lives in the input modes.
type keyMap struct {
	mode inputtypes.Mode

	Highlight key.Binding
	Commit    key.Binding
	Browse    key.Binding
	Cursor    key.Binding
	Page      key.Binding
	Slot      key.Binding
	Detail    key.Binding
	Search    key.Binding
	Category  key.Binding
	Cycle     key.Binding
	Value     key.Binding
	Apply     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Highlight: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "suggestion")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Browse:    key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "browse")),
		Cursor:    key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "move")),
		Page:      key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "page")),
		Slot:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "go to page")),
		Detail:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "filter")),
		Cycle:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "category")),
		Value:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "value")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case inputtypes.ModeSearch:
		return []key.Binding{k.Highlight, k.Commit, k.Browse}
	case inputtypes.ModeCategory:
		return []key.Binding{k.Cycle, k.Value, k.Apply, k.Cancel}
	default:
		return []key.Binding{k.Cursor, k.Page, k.Slot, k.Detail, k.Search, k.Category, k.Help, k.Quit}
	}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Highlight, k.Commit, k.Browse},
		{k.Cursor, k.Page, k.Slot, k.Detail},
		{k.Search, k.Category, k.Cycle, k.Value, k.Apply, k.Cancel},
		{k.Help, k.Quit},
	}
}

// renderHelpContent generates the help sheet shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Search", [][2]string{
			{"type", "Search characters by name"},
			{"↑/↓", "Move the suggestion highlight"},
			{"Enter", "Use the highlighted suggestion"},
			{"click", "Use a suggestion"},
			{"Tab/Esc", "Leave the search box"},
		}},
		{"Browse", [][2]string{
			{"h/j/k/l", "Move between cards"},
			{"gg/G", "First/last card"},
			{"←/→", "Previous/next page"},
			{"1-4", "Jump to a page of the page bar"},
			{"Enter", "Show character details"},
			{"/", "Back to the search box"},
		}},
		{"Filter", [][2]string{
			{"c", "Open the category filter"},
			{"←/→", "Choose Type, Gender, Status or Location"},
			{"↑/↓", "Choose a value (All shows every card)"},
			{"Enter", "Keep the filter"},
			{"Esc", "Restore the previous filter"},
		}},
		{"Other", [][2]string{
			{"?", "Show this help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("rickdex Help"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, row := range s.rows {
			fmt.Fprintf(&b, "  %s %s\n", keyStyle.Render(fmt.Sprintf("%-9s", row[0])), descStyle.Render(row[1]))
		}
	}
	return b.String()
}
