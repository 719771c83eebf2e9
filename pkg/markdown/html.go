package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/microcosm-cc/bluemonday"
)

// ToHTML converts a Markdown text to HTML.
func ToHTML(md string) string {
	html := markdown.ToHTML([]byte(md), nil, nil)
	return strings.TrimSpace(string(html))
}

// ToSafeHTML converts a Markdown text to HTML, stripping any unsafe HTML (scripts, event handlers, ...)
// present in the original text.
func ToSafeHTML(md string) string {
	return strings.TrimSpace(bluemonday.UGCPolicy().Sanitize(ToHTML(md)))
}
