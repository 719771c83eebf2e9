package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julien-sobczak/nt-flashcards/internal/core"
	"github.com/julien-sobczak/nt-flashcards/internal/session"
	"github.com/julien-sobczak/nt-flashcards/pkg/markdown"
)

/*
 * The command study uses Bubble Tea under the hood to provide an interactive CLI.
 * All BubbleTea-related code is present in this file to make easy to refactor or switch to another library someday.
 * The model only renders the session. All state changes go through the session.
 */

var (
	maxCardWidth = 80
	padding      = 2

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

type keyMap struct {
	Flip     key.Binding
	Next     key.Binding
	Previous key.Binding
	Shuffle  key.Binding
	First    key.Binding
	Last     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Previous, k.Next, k.Shuffle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Previous, k.Next},
		{k.First, k.Last, k.Shuffle, k.Quit},
	}
}

var keys = keyMap{
	Flip: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "flip"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/l", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/h", "previous"),
	),
	Shuffle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "shuffle"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Messages sent by the watcher
type deckReloadedMsg struct {
	deck *core.Deck
}
type deckErrorMsg struct {
	err error
}

type StudyModel struct {
	deck     *core.Deck
	session  *session.Session
	keys     keyMap
	help     help.Model
	progress progress.Model
	accent   lipgloss.Color
	width    int
	err      error
	quitting bool
}

func NewStudyModel(deck *core.Deck, s *session.Session, accent string) StudyModel {
	return StudyModel{
		deck:     deck,
		session:  s,
		keys:     keys,
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(accent), progress.WithoutPercentage()),
		accent:   lipgloss.Color(accent),
		width:    maxCardWidth,
	}
}

func (m StudyModel) Init() tea.Cmd {
	return nil
}

func (m StudyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - padding*2
		if m.width > maxCardWidth {
			m.width = maxCardWidth
		}
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Flip):
			m.session.Flip()
		case key.Matches(msg, m.keys.Next):
			m.session.Next()
		case key.Matches(msg, m.keys.Previous):
			m.session.Previous()
		case key.Matches(msg, m.keys.Shuffle):
			m.session.Shuffle()
		case key.Matches(msg, m.keys.First):
			m.session.JumpToFraction(0)
		case key.Matches(msg, m.keys.Last):
			m.session.JumpToFraction(1)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Type != tea.MouseLeft || msg.Y != m.progressRow() {
			return m, nil
		}
		x := msg.X - padding
		if x < 0 || x >= m.width {
			return m, nil
		}
		m.session.JumpToFraction(float64(x) / float64(m.width))
		return m, nil

	case deckReloadedMsg:
		m.deck = msg.deck
		m.session.Load(msg.deck.Flashcards)
		m.err = nil
		return m, nil

	case deckErrorMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m StudyModel) View() string {
	if m.quitting {
		return ""
	}

	pad := strings.Repeat(" ", padding)
	progressBar := m.progress
	progressBar.Width = m.width

	var sb strings.Builder
	sb.WriteString(m.headerView())
	sb.WriteString("\n")
	sb.WriteString(m.cardView())
	sb.WriteString("\n")
	sb.WriteString(pad + progressBar.ViewAs(m.session.ProgressFraction()))
	sb.WriteString("\n")
	sb.WriteString(pad + m.navigationView())
	sb.WriteString("\n\n")
	if m.err != nil {
		sb.WriteString(pad + errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(pad + m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// progressRow returns the line where the progress bar is rendered.
func (m StudyModel) progressRow() int {
	return lipgloss.Height(m.headerView()) + lipgloss.Height(m.cardView())
}

func (m StudyModel) headerView() string {
	pad := strings.Repeat(" ", padding)
	counter := fmt.Sprintf("%d/%d", m.session.Position()+1, m.session.Len())
	if m.session.Len() == 0 {
		counter = "0/0"
	}
	return "\n" + pad + titleStyle.Copy().Foreground(m.accent).Render(m.deck.Name()) + " " + dimStyle.Render(counter)
}

func (m StudyModel) cardView() string {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.accent).
		Padding(1, 2).
		MarginLeft(padding).
		Width(m.width - 2)

	card, ok := m.session.CurrentCard()
	if !ok {
		return style.Render(dimStyle.Render(fmt.Sprintf("No flashcards found in %s", m.deck.Name())))
	}

	content := titleStyle.Render(markdown.ToText(card.Question))
	if m.session.Revealed() {
		answer := markdown.ToText(card.Answer)
		if answer == "" {
			answer = dimStyle.Render("(no answer)")
		}
		content += "\n" + answerStyle.Render(answer)
	} else {
		content += "\n" + answerStyle.Copy().Inherit(dimStyle).Render("Press space to reveal the answer")
	}
	return style.Render(content)
}

func (m StudyModel) navigationView() string {
	previous := "← previous"
	if m.session.IsAtStart() {
		previous = dimStyle.Render(previous)
	}
	next := "next →"
	if m.session.IsAtEnd() {
		next = dimStyle.Render(next)
	}
	return previous + "  " + next
}
