package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var exportFormat string
var exportQuery string
var exportOutput string
var exportOpen bool

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", core.FormatYAML, "Output format (yaml, json, html)")
	exportCmd.Flags().StringVarP(&exportQuery, "jq", "q", "", "jq expression to filter the JSON output")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default to stdout)")
	exportCmd.Flags().BoolVarP(&exportOpen, "open", "", false, "Open the HTML output in the browser")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export flashcards",
	Long:  `Export the flashcards present in a Markdown document as YAML, JSON or HTML.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exportQuery != "" && exportFormat != core.FormatJSON {
			fmt.Fprintln(os.Stderr, "--jq is only supported with --format json")
			os.Exit(1)
		}
		if exportOpen && exportFormat != core.FormatHTML {
			fmt.Fprintln(os.Stderr, "--open is only supported with --format html")
			os.Exit(1)
		}

		deck := mustLoadDeck(args[0])

		output := exportOutput
		if output == "" && exportOpen {
			// The browser needs a file
			output = filepath.Join(os.TempDir(), strings.TrimSuffix(deck.Name(), filepath.Ext(deck.Name()))+".html")
		}

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to create %s: %v\n", output, err)
				os.Exit(1)
			}
			defer f.Close()
			w = f
		}

		if err := exportDeck(w, deck, exportFormat, exportQuery); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if exportOpen {
			if err := browser.OpenFile(output); err != nil {
				fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", output, err)
				os.Exit(1)
			}
		}
	},
}

func exportDeck(w io.Writer, deck *core.Deck, format, query string) error {
	if format == core.FormatJSON && query != "" {
		return core.ExportJSON(w, deck, query)
	}
	return core.Export(w, deck, format, core.CurrentConfig())
}
