package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/julien-sobczak/nt-flashcards/pkg/markdown"
	"github.com/julien-sobczak/nt-flashcards/pkg/text"
	"github.com/spf13/cobra"
)

var listFull bool

func init() {
	listCmd.Flags().BoolVarP(&listFull, "full", "f", false, "Show answers without abbreviating them")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List flashcards",
	Long:  `List the flashcards present in a Markdown document.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustLoadDeck(args[0])
		if deck.Len() == 0 {
			fmt.Fprintf(os.Stderr, "No flashcards found in %s\n", deck.Name())
			return
		}
		printFlashcards(os.Stdout, deck, listFull)
	},
}

var (
	indexColor    = color.New(color.FgYellow)
	questionColor = color.New(color.Bold)
	answerColor   = color.New(color.FgHiBlack)
)

func printFlashcards(w io.Writer, deck *core.Deck, full bool) {
	for i, flashcard := range deck.Flashcards {
		indexColor.Fprintf(w, "%3d. ", i+1)
		questionColor.Fprintln(w, strings.TrimSpace(flashcard.Question))

		answer := markdown.ToText(flashcard.Answer)
		if answer == "" {
			answerColor.Fprintln(w, "     (no answer)")
			continue
		}
		if !full {
			answer = text.Abbreviate(answer, 72)
		}
		for _, line := range strings.Split(answer, "\n") {
			answerColor.Fprintln(w, "     "+line)
		}
	}
}
