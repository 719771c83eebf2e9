package markdown

import (
	"strings"
)

// DefaultSnippet is the shortcut expanded into a callout opening.
const DefaultSnippet = "!c"

// Expansion returns the text replacing a snippet ("> [!card]- ").
func (s CalloutSyntax) Expansion() string {
	return s.OpenPrefix() + " "
}

// ExpandSnippets rewrites every line starting with the snippet followed by a space.
// It returns the new document and the number of lines rewritten.
func (m Document) ExpandSnippets(syntax CalloutSyntax, snippet string) (Document, int) {
	if snippet == "" {
		return m, 0
	}

	trigger := snippet + " "

	count := 0
	lines := m.Lines()
	for i, line := range lines {
		if !strings.HasPrefix(line, trigger) {
			continue
		}
		// The space typed after the snippet is the one ending the expansion
		lines[i] = syntax.Expansion() + strings.TrimPrefix(line, trigger)
		count++
	}

	return Document(strings.Join(lines, "\n")), count
}
