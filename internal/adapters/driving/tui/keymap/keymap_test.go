package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"next tab", km.NextTab, []string{"tab"}},
		{"previous tab", km.PrevTab, []string{"shift+tab"}},
		{"next page", km.NextPage, []string{"right", "n"}},
		{"previous page", km.PrevPage, []string{"left", "p"}},
		{"run", km.Run, []string{"r"}},
		{"assisted", km.Assisted, []string{"a"}},
		{"export", km.Export, []string{"e"}},
		{"import", km.Import, []string{"i"}},
		{"match", km.Match, []string{"m"}},
		{"raise", km.Raise, []string{"+"}},
		{"lower", km.Lower, []string{"-"}},
		{"select", km.Select, []string{"enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()
	require.Len(t, help, 4)
	assert.Equal(t, "tab", help[0].Help().Key)
}

func TestKeyMap_ListHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ListHelp(), 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	full := km.FullHelp()
	require.Len(t, full, 5)
	for _, group := range full {
		assert.NotEmpty(t, group)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("n", km.NextPage))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Run))
}
