package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default configuration",
	Long:  `Write the default configuration file in $HOME/.nt-flashcards/ (or $NT_FLASHCARDS_HOME) if missing.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		created, err := config.WriteDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error while initializing configuration: %v\n", err)
			os.Exit(1)
		}
		if !created {
			fmt.Printf("Configuration %s already exists\n", config.ConfigPath())
			return
		}
		fmt.Printf("Configuration written to %s\n", config.ConfigPath())
	},
}
