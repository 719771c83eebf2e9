package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/julien-sobczak/nt-flashcards/internal/session"
	"github.com/spf13/cobra"
)

var studyShuffle bool
var studyResume bool
var studyReset bool
var studyWatch bool
var studyPlain bool

func init() {
	studyCmd.Flags().BoolVarP(&studyShuffle, "shuffle", "s", false, "Shuffle the flashcards before starting")
	studyCmd.Flags().BoolVarP(&studyResume, "resume", "r", false, "Resume the last saved session if the document is unchanged")
	studyCmd.Flags().BoolVarP(&studyReset, "reset", "", false, "Forget the saved session before starting")
	studyCmd.Flags().BoolVarP(&studyWatch, "watch", "w", false, "Reload the flashcards when the document is saved")
	studyCmd.Flags().BoolVarP(&studyPlain, "plain", "", false, "Read commands from stdin instead of using the interactive mode")
	rootCmd.AddCommand(studyCmd)
}

var studyCmd = &cobra.Command{
	Use:   "study <file>",
	Short: "Study flashcards",
	Long:  `Review the flashcards of a Markdown document one by one.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		deck := mustLoadDeck(args[0])
		store := core.NewSessionStore(config.SessionsDir())

		s, _, err := prepareSession(deck, store, config, nil, studyOptions{
			Shuffle: studyShuffle,
			Resume:  studyResume,
			Reset:   studyReset,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if studyPlain {
			err = runPlain(os.Stdin, os.Stdout, s)
		} else {
			// The deck may have been reloaded while studying
			deck, err = runInteractive(deck, s, config)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if _, err := saveSession(store, deck, s, config); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to save session: %v\n", err)
			os.Exit(1)
		}
	},
}

type studyOptions struct {
	Shuffle bool
	Resume  bool
	Reset   bool
}

// prepareSession loads the deck into a new session.
// A resumed session keeps its saved order and is never shuffled.
func prepareSession(deck *core.Deck, store *core.SessionStore, config *core.Config, random session.RandomSource, opts studyOptions) (*session.Session, bool, error) {
	s := session.New(random)
	s.Load(deck.Flashcards)

	if opts.Reset {
		if err := store.Delete(deck); err != nil {
			return nil, false, fmt.Errorf("unable to reset session: %w", err)
		}
		core.CurrentLogger().Infof("Forgot saved session of %s", deck.Path)
	}

	resumed := false
	if opts.Resume && !opts.Reset {
		snapshot, ok, err := store.Resume(deck)
		if err != nil {
			core.CurrentLogger().Warnf("Unable to resume session: %v", err)
		}
		if ok {
			s.Restore(snapshot)
			resumed = true
		}
	}
	if !resumed && (opts.Shuffle || config.ConfigFile.Session.Shuffle) {
		s.Shuffle()
	}
	return s, resumed, nil
}

// saveSession persists the session against the deck it was studied with.
// Nothing is saved when persistence is disabled or the deck is empty.
func saveSession(store *core.SessionStore, deck *core.Deck, s *session.Session, config *core.Config) (*core.SavedSession, error) {
	if !config.ConfigFile.Session.Persist || s.Len() == 0 {
		return nil, nil
	}
	return store.Save(deck, s.Snapshot())
}

// runInteractive starts the TUI and returns the deck displayed when quitting.
func runInteractive(deck *core.Deck, s *session.Session, config *core.Config) (*core.Deck, error) {
	model := NewStudyModel(deck, s, config.ConfigFile.Style.Color)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if studyWatch {
		watcher, err := core.WatchDeck(deck.Path, config.Syntax(),
			func(deck *core.Deck) { p.Send(deckReloadedMsg{deck: deck}) },
			func(err error) { p.Send(deckErrorMsg{err: err}) })
		if err != nil {
			return deck, fmt.Errorf("unable to watch %s: %w", deck.Path, err)
		}
		defer watcher.Close()
	}

	finalModel, err := p.Run()
	if err != nil {
		return deck, err
	}
	if m, ok := finalModel.(StudyModel); ok {
		return m.deck, nil
	}
	return deck, nil
}
