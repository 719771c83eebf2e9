package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

// ProgressLog prints a single-line progress indicator.
type ProgressLog struct {
	output        io.Writer
	showBar       bool
	showPercent   bool
	barWidth      int
	maxCharacters int
	// Line terminator ("\r" to overwrite the line in a terminal)
	eol string
}

func NewProgressLog(options ...func(*ProgressLog)) *ProgressLog {
	result := &ProgressLog{
		output:        os.Stdout,
		showPercent:   false,
		showBar:       true,
		barWidth:      10,
		maxCharacters: 80,
		eol:           "\r",
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.output = w
	}
}

func HideBar() func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.showBar = false
	}
}

func ShowPercent() func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.showPercent = true
	}
}

func BarWidth(characters int) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.barWidth = characters
	}
}

func LineLength(characters int) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.maxCharacters = characters
	}
}

// NewLines prints every progress on a new line (useful when the output is not a terminal).
func NewLines() func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.eol = "\n"
	}
}

// Bar returns the progress bar for a fraction in [0, 1].
// Ex: "####      " for 0.4 using a width of 10
func (l *ProgressLog) Bar(fraction float64) string {
	filled := int(math.Floor(clamp(fraction) * float64(l.barWidth)))
	return strings.Repeat("#", filled) + strings.Repeat(" ", l.barWidth-filled)
}

// Log prints the progress of the current step (1-based) out of total steps.
func (l *ProgressLog) Log(currentStep, totalSteps int, message string) {
	fraction := 0.0
	if totalSteps > 0 {
		fraction = float64(currentStep) / float64(totalSteps)
	}

	// Build the line step by step
	var sb strings.Builder

	if l.showBar {
		sb.WriteString(l.Bar(fraction))
		sb.WriteRune(' ') // Add a space after the progress bar
	}

	if l.showPercent {
		sb.WriteString(fmt.Sprintf("(%3d%%) ", int(math.Round(clamp(fraction)*100))))
	} else {
		sb.WriteString(fmt.Sprintf("(%d/%d) ", currentStep, totalSteps))
	}

	sb.WriteString(message)

	fmt.Fprint(l.output, l.pad(sb.String()), l.eol)
}

// Clear rewrites the last line.
func (l *ProgressLog) Clear(newMessage string) {
	// Rewrite the last line
	fmt.Fprint(l.output, l.pad(newMessage))

	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		// Move to next line
		fmt.Fprint(l.output, "\n")
	}
}

// pad truncates or completes the line with spaces to erase the previous content.
func (l *ProgressLog) pad(line string) string {
	length := utf8.RuneCountInString(line)
	if length > l.maxCharacters {
		return string([]rune(line)[0:l.maxCharacters])
	}
	if l.eol == "\n" {
		// Nothing to erase
		return line
	}
	return line + strings.Repeat(" ", l.maxCharacters-length)
}

func clamp(fraction float64) float64 {
	if math.IsNaN(fraction) || fraction < 0 {
		return 0
	}
	return math.Min(fraction, 1)
}
