package core

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/itchyny/gojq"
	"github.com/julien-sobczak/nt-flashcards/pkg/markdown"
	"gopkg.in/yaml.v3"
)

// Supported export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHTML = "html"
)

// ExportedDeck is the document written when exporting a deck.
type ExportedDeck struct {
	Source     string         `yaml:"source" json:"source"`
	Flashcards []ExportedCard `yaml:"flashcards" json:"flashcards"`
}

type ExportedCard struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

func newExportedDeck(deck *Deck) ExportedDeck {
	result := ExportedDeck{
		Source:     deck.Path,
		Flashcards: []ExportedCard{},
	}
	for _, flashcard := range deck.Flashcards {
		result.Flashcards = append(result.Flashcards, ExportedCard{
			// The space following the callout tag is not part of the question
			Question: strings.TrimSpace(flashcard.Question),
			Answer:   flashcard.Answer,
		})
	}
	return result
}

// Export writes the deck in the given format.
func Export(w io.Writer, deck *Deck, format string, config *Config) error {
	switch format {
	case FormatYAML:
		return ExportYAML(w, deck)
	case FormatJSON:
		return ExportJSON(w, deck, "")
	case FormatHTML:
		return ExportHTML(w, deck, config.ConfigFile.Style.Color)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// ExportYAML writes the deck as YAML.
func ExportYAML(w io.Writer, deck *Deck) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newExportedDeck(deck)); err != nil {
		return err
	}
	return encoder.Close()
}

// ExportJSON writes the deck as JSON, optionally filtered by a jq expression.
// Ex: `.flashcards[] | select(.answer == "") | .question`
func ExportJSON(w io.Writer, deck *Deck, expr string) error {
	exported := newExportedDeck(deck)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if expr == "" {
		return encoder.Encode(exported)
	}

	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}

	// gojq only supports generic JSON values
	data, err := toJSONValue(exported)
	if err != nil {
		return err
	}

	iter := query.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return err
		}
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

var htmlTemplate = template.Must(template.New("deck").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
  .callout { --callout-color: {{ .RGB }}; }
  .callout { border-left: 4px solid rgb(var(--callout-color)); background: rgba(var(--callout-color), 0.1); margin: 1em 0; padding: 0.5em 1em; }
  .callout summary { font-weight: bold; cursor: pointer; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- range .Cards }}
<details class="callout">
<summary>{{ .Question }}</summary>
<div class="flashcard-content">{{ .Answer }}</div>
</details>
{{- end }}
</body>
</html>
`))

type htmlCard struct {
	Question template.HTML
	Answer   template.HTML
}

// ExportHTML writes the deck as a standalone HTML page where every flashcard is a collapsed callout.
func ExportHTML(w io.Writer, deck *Deck, color string) error {
	r, g, b, err := HexToRGB(color)
	if err != nil {
		return err
	}

	var cards []htmlCard
	for _, flashcard := range deck.Flashcards {
		cards = append(cards, htmlCard{
			// Content is sanitized by bluemonday
			Question: template.HTML(markdown.ToSafeHTML(flashcard.Question)),
			Answer:   template.HTML(markdown.ToSafeHTML(flashcard.Answer)),
		})
	}

	return htmlTemplate.Execute(w, map[string]any{
		"Title": deck.Name(),
		"RGB":   template.CSS(fmt.Sprintf("%d,%d,%d", r, g, b)),
		"Cards": cards,
	})
}
