package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/julien-sobczak/nt-flashcards/internal/session"
	"github.com/julien-sobczak/nt-flashcards/pkg/console"
	"github.com/julien-sobczak/nt-flashcards/pkg/markdown"
)

const plainHelp = "Commands: f (flip), n (next), p (previous), s (shuffle), j <0..1> (jump), q (quit)"

// runPlain studies a session using line-oriented commands.
// Used when the terminal does not support the interactive mode.
func runPlain(in io.Reader, out io.Writer, s *session.Session) error {
	if s.Len() == 0 {
		fmt.Fprintln(out, "No flashcards found")
		return nil
	}

	progressLog := console.NewProgressLog(
		console.ToWriter(out),
		console.NewLines(),
		console.ShowPercent())

	fmt.Fprintln(out, plainHelp)
	printPlainCard(out, progressLog, s)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "f", "flip":
			s.Flip()
		case "n", "next":
			s.Next()
		case "p", "previous":
			s.Previous()
		case "s", "shuffle":
			s.Shuffle()
		case "j", "jump":
			if len(fields) != 2 {
				fmt.Fprintln(out, "Missing fraction (ex: j 0.5)")
				continue
			}
			fraction, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				fmt.Fprintf(out, "Invalid fraction %q\n", fields[1])
				continue
			}
			s.JumpToFraction(fraction)
		default:
			fmt.Fprintf(out, "Unknown command %q\n", fields[0])
			fmt.Fprintln(out, plainHelp)
			continue
		}
		printPlainCard(out, progressLog, s)
	}
	return scanner.Err()
}

func printPlainCard(out io.Writer, progressLog *console.ProgressLog, s *session.Session) {
	card, ok := s.CurrentCard()
	if !ok {
		return
	}
	progressLog.Log(s.Position()+1, s.Len(), markdown.ToText(card.Question))
	if !s.Revealed() {
		return
	}
	answer := markdown.ToText(card.Answer)
	if answer == "" {
		answer = "(no answer)"
	}
	for _, line := range strings.Split(answer, "\n") {
		fmt.Fprintln(out, "  "+line)
	}
}
