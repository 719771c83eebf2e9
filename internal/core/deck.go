package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
)

// Deck contains the flashcards extracted from a single document.
type Deck struct {
	// Absolute path of the document (used as a stable identifier)
	Path string
	// Hash of the document content when the flashcards were extracted
	Hash       string
	Flashcards []markdown.Flashcard
}

// NewDeck extracts the flashcards from a document content.
func NewDeck(path string, content markdown.Document, syntax markdown.CalloutSyntax) *Deck {
	return &Deck{
		Path:       path,
		Hash:       content.Hash(),
		Flashcards: content.ExtractFlashcards(syntax),
	}
}

// LoadDeck reads a document and extracts its flashcards.
func LoadDeck(path string, syntax markdown.CalloutSyntax) (*Deck, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	content, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	document := markdown.Document(content)
	if document.IsBlank() {
		CurrentLogger().Warnf("Empty document %s", absolutePath)
	}

	deck := NewDeck(absolutePath, document, syntax)
	CurrentLogger().Debugf("Found %d flashcard(s) in %s", len(deck.Flashcards), absolutePath)
	return deck, nil
}

// Name returns the file name of the document.
func (d *Deck) Name() string {
	return filepath.Base(d.Path)
}

// Len returns the number of flashcards.
func (d *Deck) Len() int {
	return len(d.Flashcards)
}
