package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Expansion is the result of expanding the snippets of a document.
type Expansion struct {
	Path string
	// Number of lines rewritten
	Count int
	// Unified diff between the original and the expanded content
	Patch string

	content markdown.Document
}

// ExpandDocument rewrites the snippets present in a document into callout openings.
// The file is only modified when Save is called.
func ExpandDocument(path string, syntax markdown.CalloutSyntax, snippet string) (*Expansion, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	before, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	after, count := markdown.Document(before).ExpandSnippets(syntax, snippet)
	CurrentLogger().Debugf("Found %d snippet(s) %q in %s", count, snippet, absolutePath)

	result := &Expansion{
		Path:    absolutePath,
		Count:   count,
		content: after,
	}
	if count > 0 {
		result.Patch = godiffpatch.GeneratePatch(filepath.Base(absolutePath), string(before), after.String())
	}
	return result, nil
}

// Save writes the expanded content. Nothing is written when no snippet was found.
func (e *Expansion) Save() error {
	if e.Count == 0 {
		return nil
	}
	stat, err := os.Stat(e.Path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(e.Path, []byte(e.content), stat.Mode()); err != nil {
		return fmt.Errorf("unable to write %s: %w", e.Path, err)
	}
	CurrentLogger().Infof("Expanded %d snippet(s) in %s", e.Count, e.Path)
	return nil
}
