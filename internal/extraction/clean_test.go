package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"adds period", "Le client doit payer", "Le client doit payer."},
		{"keeps single period", "Le client doit payer.", "Le client doit payer."},
		{"collapses whitespace", "  Le   client\n\tdoit payer  ", "Le client doit payer."},
		{"collapses trailing periods", "Le client doit payer..", "Le client doit payer."},
		{"period after space", "Le client doit payer .", "Le client doit payer."},
		{"empty", "", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Si le client ne paie pas, alors le compte est suspendu",
		"  x  ",
		"a.b.c...",
		"Fin ;",
		"...",
		"Vérifier\nque\tle montant est positif . .",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
		assert.True(t, strings.HasSuffix(once, "."))
		assert.False(t, strings.HasSuffix(once, ".."), "input %q", in)
	}
}

func TestSortByLength(t *testing.T) {
	items := []string{"bb.", "a.", "éééé.", "cc."}
	SortByLength(items)

	assert.Equal(t, []string{"éééé.", "bb.", "cc.", "a."}, items)
}
