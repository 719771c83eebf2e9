package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	"github.com/stretchr/testify/assert"
)

func TestDocumentLines(t *testing.T) {
	var tests = []struct {
		name     string            // name
		md       markdown.Document // input
		expected []string          // output
	}{
		{
			name:     "Empty",
			md:       "",
			expected: []string{""},
		},
		{
			name:     "Single line",
			md:       "# Go",
			expected: []string{"# Go"},
		},
		{
			name:     "Trailing newline",
			md:       "# Go\n\n> [!card]- Q\n",
			expected: []string{"# Go", "", "> [!card]- Q", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.md.Lines())
		})
	}
}

func TestDocumentIsBlank(t *testing.T) {
	assert.True(t, markdown.Document("").IsBlank())
	assert.True(t, markdown.Document(" \n\t\n").IsBlank())
	assert.False(t, markdown.Document("\n# Go\n").IsBlank())
}

func TestDocumentHash(t *testing.T) {
	md := markdown.Document("> [!card]- Q\n> A\n")
	assert.Equal(t, md.Hash(), markdown.Document("> [!card]- Q\n> A\n").Hash())
	assert.NotEqual(t, md.Hash(), markdown.Document("> [!card]- Q\n> B\n").Hash())
	assert.Len(t, md.Hash(), 32)
}

func TestDocumentString(t *testing.T) {
	assert.Equal(t, "# Go\n", markdown.Document("# Go\n").String())
}
