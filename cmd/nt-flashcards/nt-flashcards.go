package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-flashcards/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var keyword string

var rootCmd = &cobra.Command{
	Use:   "nt-flashcards",
	Short: "Review the flashcards written as callouts in your Markdown notes",
	Long: `Extract flashcards written as collapsed callouts ("> [!card]- Question")
from a Markdown document and study them in the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passsed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}

		err := core.CurrentConfig().Override(core.ConfigFile{
			Callout: core.ConfigCallout{
				Keyword: keyword,
			},
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVarP(&keyword, "keyword", "k", "", "callout keyword identifying flashcards (default from config)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// mustLoadDeck reads the flashcards of a document or exits.
func mustLoadDeck(path string) *core.Deck {
	deck, err := core.LoadDeck(path, core.CurrentConfig().Syntax())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return deck
}
