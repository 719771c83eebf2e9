package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/spf13/cobra"
)

var dryRun bool

func init() {
	expandCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the changes without modifying the file")
	rootCmd.AddCommand(expandCmd)
}

var expandCmd = &cobra.Command{
	Use:   "expand <file>",
	Short: "Expand snippets",
	Long:  `Rewrite lines starting with the snippet (ex: "!c What is Go?") into flashcard callouts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		snippet := config.Snippet()
		if snippet == "" {
			fmt.Fprintln(os.Stderr, "Snippets are disabled in configuration")
			os.Exit(1)
		}

		expansion, err := core.ExpandDocument(args[0], config.Syntax(), snippet)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if expansion.Count == 0 {
			fmt.Printf("No snippet %q found\n", snippet)
			return
		}

		if dryRun {
			printDiff(expansion.Patch)
			return
		}

		if err := expansion.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Expanded %d snippet(s)\n", expansion.Count)
	},
}

func printDiff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			color.Red(line)
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}
