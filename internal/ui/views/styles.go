package views

import (
	"github.com/charmbracelet/lipgloss"

	"rickdex/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title               lipgloss.Style
	Dim                 lipgloss.Style
	Prompt              lipgloss.Style
	Help                lipgloss.Style
	Main                lipgloss.Style
	Suggestion          lipgloss.Style
	SuggestionHighlight lipgloss.Style
	Error               lipgloss.Style
	Warning             lipgloss.Style
	Loading             lipgloss.Style
	Card                lipgloss.Style
	CardSelected        lipgloss.Style
	CardName            lipgloss.Style
	Label               lipgloss.Style
	PageButton          lipgloss.Style
	PageCurrent         lipgloss.Style
	PageDisabled        lipgloss.Style
	Category            lipgloss.Style
	CategoryActive      lipgloss.Style
	CategoryCursor      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:               lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:                 lipgloss.NewStyle().Faint(true),
		Prompt:              lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Help:                lipgloss.NewStyle().Faint(true),
		Main:                lipgloss.NewStyle().Padding(1, 2),
		Suggestion:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		SuggestionHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).PaddingLeft(2),
		Error:               lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Warning:             lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Loading:             lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		CardName:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PageButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		PageCurrent:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")).Bold(true).Padding(0, 1),
		PageDisabled:   lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Category:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CategoryActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		CategoryCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")),
	}
}

// StatusColor returns the badge color for a character status
func StatusColor(status domain.Status) string {
	switch status {
	case domain.StatusAlive:
		return "78" // green
	case domain.StatusDead:
		return "203" // red
	default:
		return "241" // gray
	}
}

// StatusBadge renders the coloured "● Status" badge of a card
func (s *Styles) StatusBadge(status domain.Status) string {
	label := string(status)
	if label == "" {
		label = string(domain.StatusUnknown)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(status))).Render("● " + label)
}
