package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	inputtypes "rickdex/internal/ui/input/types"
)

func helpLabels(bindings []key.Binding) map[string]string {
	labels := make(map[string]string, len(bindings))
	for _, b := range bindings {
		labels[b.Help().Key] = b.Help().Desc
	}
	return labels
}

func TestShortHelpPerMode(t *testing.T) {
	k := newKeyMap()

	k.mode = inputtypes.ModeBrowse
	assert.Equal(t, "page", helpLabels(k.ShortHelp())["←/→"])

	k.mode = inputtypes.ModeCategory
	labels := helpLabels(k.ShortHelp())
	assert.Equal(t, "category", labels["←/→"], "arrows cycle categories here")
	assert.Equal(t, "value", labels["↑/↓"])

	k.mode = inputtypes.ModeSearch
	assert.Equal(t, "suggestion", helpLabels(k.ShortHelp())["↑/↓"])
}
