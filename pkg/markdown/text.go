package markdown

import (
	"regexp"
	"strings"
)

// How many spaces to indent code blocks
const indentCode = 4

var (
	reBoldAsterisks   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscores = regexp.MustCompile(`\b__(.+?)__\b`)
	reItalicAsterisks = regexp.MustCompile(`\*(.+?)\*`)
	reInlineCode      = regexp.MustCompile("`([^`]+)`")
	reImage           = regexp.MustCompile(`!\[(.*?)\]\(.*?\)`)
	reLink            = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	reWikilink        = regexp.MustCompile(`\[\[(?:[^\]|]*\|)?([^\]]*)\]\]`)
)

// ToText converts a Markdown text to a plain text readable in a terminal.
func ToText(md string) string {
	var res strings.Builder

	insideCode := false
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "```") {
			insideCode = !insideCode
			continue
		}
		if insideCode {
			// Code is kept as is
			res.WriteString(strings.Repeat(" ", indentCode))
			res.WriteString(line)
			res.WriteRune('\n')
			continue
		}
		res.WriteString(stripInline(line))
		res.WriteRune('\n')
	}

	return strings.TrimSpace(res.String())
}

func stripInline(line string) string {
	// Images before links as they share the same syntax
	line = reImage.ReplaceAllString(line, "$1")
	line = reLink.ReplaceAllString(line, "$1")
	line = reWikilink.ReplaceAllString(line, "$1")
	line = reInlineCode.ReplaceAllString(line, "$1")
	line = reBoldAsterisks.ReplaceAllString(line, "$1")
	line = reBoldUnderscores.ReplaceAllString(line, "$1")
	line = reItalicAsterisks.ReplaceAllString(line, "$1")
	return line
}
