package text

import (
	"strings"
	"unicode/utf8"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// Abbreviate joins the lines of a text and truncates the result to the given number of characters.
func Abbreviate(text string, maxLength int) string {
	oneLine := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(oneLine) <= maxLength {
		return oneLine
	}
	if maxLength <= 1 {
		return "…"
	}
	runes := []rune(oneLine)
	return strings.TrimSpace(string(runes[:maxLength-1])) + "…"
}
