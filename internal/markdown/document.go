package markdown

import (
	"strings"

	"github.com/julien-sobczak/nt-flashcards/internal/helpers"
	"github.com/julien-sobczak/nt-flashcards/pkg/text"
)

// Document represents a Markdown document (can be a whole file, or just a snippet)
type Document string

// Lines returns the lines present in the Markdown document
func (m Document) Lines() []string {
	return strings.Split(string(m), "\n")
}

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

func (m Document) Hash() string {
	return helpers.Hash([]byte(m))
}

func (m Document) String() string {
	return string(m)
}
