package core

import (
	"os"
	"testing"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDocument(t *testing.T) {
	filename := SetUpHomeFromFileContent(t, "go.md", `# Go

!c What is a goroutine?
> A lightweight thread.

!c What is a channel?
> A typed conduit.

Use !c inside a sentence.
`)

	expansion, err := ExpandDocument(filename, CurrentConfig().Syntax(), CurrentConfig().Snippet())
	require.NoError(t, err)
	assert.Equal(t, 2, expansion.Count)
	assert.Contains(t, expansion.Patch, "-!c What is a goroutine?\n")
	assert.Contains(t, expansion.Patch, "+> [!card]- What is a goroutine?\n")

	// The file is unchanged until saved
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "!c What is a goroutine?")

	require.NoError(t, expansion.Save())
	content, err = os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, `# Go

> [!card]- What is a goroutine?
> A lightweight thread.

> [!card]- What is a channel?
> A typed conduit.

Use !c inside a sentence.
`, string(content))

	// The expanded document contains the flashcards
	deck, err := LoadDeck(filename, CurrentConfig().Syntax())
	require.NoError(t, err)
	assert.Equal(t, 2, deck.Len())
}

func TestExpandDocumentWithoutSnippet(t *testing.T) {
	filename := SetUpHomeFromFileContent(t, "go.md", "> [!card]- What is Go?\n> A language.\n")

	expansion, err := ExpandDocument(filename, markdown.DefaultCalloutSyntax, "!c")
	require.NoError(t, err)
	assert.Equal(t, 0, expansion.Count)
	assert.Empty(t, expansion.Patch)
	require.NoError(t, expansion.Save())

	// Disabled snippet
	expansion, err = ExpandDocument(filename, markdown.DefaultCalloutSyntax, "")
	require.NoError(t, err)
	assert.Equal(t, 0, expansion.Count)

	_, err = ExpandDocument(filename+".missing", markdown.DefaultCalloutSyntax, "!c")
	assert.Error(t, err)
}
