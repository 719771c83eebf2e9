package markdown

import (
	"strings"
)

// DefaultCalloutKeyword is the keyword used inside the callout tag ("> [!card]-").
const DefaultCalloutKeyword = "card"

// ContinuationPrefix starts every line of a blockquote after the first one.
const ContinuationPrefix = "> "

// DefaultCalloutSyntax recognizes "> [!card]-" callouts.
var DefaultCalloutSyntax = CalloutSyntax{Keyword: DefaultCalloutKeyword}

// Flashcard is a question/answer pair extracted from a callout.
// The content is kept as raw Markdown and is never interpreted here.
type Flashcard struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// CalloutSyntax describes the callouts to consider as flashcards.
type CalloutSyntax struct {
	Keyword string
}

// OpenPrefix returns the literal prefix starting a flashcard callout.
// The trailing dash is the Obsidian hint to render the callout collapsed.
func (s CalloutSyntax) OpenPrefix() string {
	keyword := s.Keyword
	if keyword == "" {
		keyword = DefaultCalloutKeyword
	}
	return "> [!" + keyword + "]-"
}

// ExtractFlashcards extracts flashcards using the default callout syntax.
func ExtractFlashcards(text string) []Flashcard {
	return Document(text).ExtractFlashcards(DefaultCalloutSyntax)
}

// ExtractFlashcards extracts all flashcard callouts present in a Markdown document.
//
// Ex:
//
//	> [!card]- What is 2+2?
//	> 4
//
// A callout ends at the first line not starting with "> ", including blank lines,
// or when a new callout starts.
func (m Document) ExtractFlashcards(syntax CalloutSyntax) []Flashcard {
	var results []Flashcard

	prefix := syntax.OpenPrefix()

	insideCallout := false
	var question string
	var answer strings.Builder

	flush := func() {
		results = append(results, Flashcard{
			Question: question,
			Answer:   strings.TrimSpace(answer.String()),
		})
	}

	for _, line := range m.Lines() {
		if strings.HasPrefix(line, prefix) {
			if insideCallout {
				// No blank line between two callouts
				flush()
			}
			question = strings.TrimPrefix(line, prefix)
			answer.Reset()
			insideCallout = true
		} else if insideCallout && strings.HasPrefix(line, ContinuationPrefix) {
			answer.WriteString(strings.TrimPrefix(line, ContinuationPrefix))
			answer.WriteRune('\n')
		} else {
			if insideCallout {
				flush()
			}
			// Reset for next callout
			insideCallout = false
			question = ""
			answer.Reset()
		}
	}

	// Callout at the end of the document
	if insideCallout {
		flush()
	}

	return results
}
