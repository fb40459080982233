package logic

import (
	"strings"

	"golang.org/x/text/cases"

	"rickdex/internal/domain"
)

// FilterByCategory narrows chars to those whose category value equals value
// exactly. An empty value means "no filter" and returns chars unchanged.
// Characters without a location never match a location filter.
func FilterByCategory(chars []domain.Character, category domain.Category, value string) []domain.Character {
	if value == "" {
		return chars
	}

	filtered := make([]domain.Character, 0, len(chars))
	for _, c := range chars {
		if v, ok := c.Value(category); ok && v == value {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// MatchesName checks if a character name contains query, ignoring case
func MatchesName(c domain.Character, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(c.Name), fold.String(query))
}

// FilterByName keeps characters whose name contains query, ignoring case.
// Matching uses Unicode case folding, so "STRASSE" finds "Straße".
func FilterByName(chars []domain.Character, query string) []domain.Character {
	if query == "" {
		return chars
	}

	fold := cases.Fold()
	q := fold.String(query)
	filtered := make([]domain.Character, 0, len(chars))
	for _, c := range chars {
		if strings.Contains(fold.String(c.Name), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
