package text_test

import (
	"testing"

	"github.com/julien-sobczak/nt-flashcards/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, text.IsBlank(""))
	assert.True(t, text.IsBlank("  \n\t "))
	assert.False(t, text.IsBlank(" a "))
}

func TestAbbreviate(t *testing.T) {
	var tests = []struct {
		name      string // name
		input     string // input
		maxLength int    // input
		expected  string // expected result
	}{
		{"short", "Paris", 10, "Paris"},
		{"multiline", "- France\n- Italy", 20, "- France - Italy"},
		{"truncated", "Schedules a call to run later", 10, "Schedules…"},
		{"unicode", "élève à l'école", 6, "élève…"},
		{"tiny", "abc", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Abbreviate(tt.input, tt.maxLength))
		})
	}
}
