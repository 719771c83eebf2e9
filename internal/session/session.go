// Package session implements the navigation through a deck of flashcards.
package session

import (
	"math"
	"math/rand"
	"time"

	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	"golang.org/x/exp/slices"
)

// RandomSource generates uniform numbers in [0,1).
// *rand.Rand satisfies this interface.
type RandomSource interface {
	Float64() float64
}

// Snapshot is the minimal state required to resume a session.
type Snapshot struct {
	Cards    []markdown.Flashcard `yaml:"cards" json:"cards"`
	Position int                  `yaml:"position" json:"position"`
}

// Session tracks the current card of a deck and whether its answer is shown.
//
// A Session is not safe for concurrent use. All calls must come from a single
// goroutine (ex: the Bubble Tea event loop).
type Session struct {
	cards    []markdown.Flashcard
	position int
	revealed bool

	random RandomSource
}

// New creates an empty session using the given source of randomness to shuffle decks.
// A nil source defaults to a time-seeded generator.
func New(source RandomSource) *Session {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		random: source,
	}
}

// Load installs a copy of the deck and moves to the first card.
func (s *Session) Load(cards []markdown.Flashcard) {
	s.cards = slices.Clone(cards)
	s.position = 0
	s.revealed = false
}

// Flip toggles between the question and the answer.
func (s *Session) Flip() {
	if s.isEmpty() {
		return
	}
	s.revealed = !s.revealed
}

// Next moves to the following card. Nothing happens on the last card.
func (s *Session) Next() {
	if s.position < len(s.cards)-1 {
		s.moveTo(s.position + 1)
	}
}

// Previous moves to the preceding card. Nothing happens on the first card.
func (s *Session) Previous() {
	if s.position > 0 {
		s.moveTo(s.position - 1)
	}
}

// JumpToFraction moves to the card located at the given fraction of the deck.
// Ex: 0.5 on a deck of 10 cards moves to the sixth card.
func (s *Session) JumpToFraction(f float64) {
	if s.isEmpty() {
		return
	}
	if math.IsNaN(f) {
		f = 0
	}
	f = math.Max(0, math.Min(1, f))

	index := int(math.Floor(f * float64(len(s.cards))))
	if index > len(s.cards)-1 {
		index = len(s.cards) - 1
	}
	s.moveTo(index)
}

// Shuffle reorders the deck randomly (Fisher-Yates) and restarts from the first card.
func (s *Session) Shuffle() {
	if s.isEmpty() {
		return
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := int(math.Floor(s.random.Float64() * float64(i+1)))
		if j > i {
			// Guard against a source returning 1.0
			j = i
		}
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.position = 0
	s.revealed = false
}

// CurrentCard returns the card at the current position, or false on an empty deck.
func (s *Session) CurrentCard() (markdown.Flashcard, bool) {
	if s.isEmpty() {
		return markdown.Flashcard{}, false
	}
	return s.cards[s.position], true
}

// IsAtStart returns if there is no previous card.
func (s *Session) IsAtStart() bool {
	return s.position == 0
}

// IsAtEnd returns if there is no next card.
func (s *Session) IsAtEnd() bool {
	return s.position >= len(s.cards)-1
}

// ProgressFraction returns the completion ratio in ]0,1], or 0 on an empty deck.
func (s *Session) ProgressFraction() float64 {
	if s.isEmpty() {
		return 0
	}
	return float64(s.position+1) / float64(len(s.cards))
}

// Position returns the 0-based index of the current card.
func (s *Session) Position() int {
	return s.position
}

// Len returns the number of cards in the deck.
func (s *Session) Len() int {
	return len(s.cards)
}

// Revealed returns if the answer is currently shown.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Cards returns a copy of the deck in its current order.
func (s *Session) Cards() []markdown.Flashcard {
	return slices.Clone(s.cards)
}

// Snapshot captures the deck and the position.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cards:    s.Cards(),
		Position: s.position,
	}
}

// Restore reinstalls a snapshot. The position is clamped to the deck and the answer is hidden.
func (s *Session) Restore(snapshot Snapshot) {
	s.Load(snapshot.Cards)
	if s.isEmpty() {
		return
	}
	position := snapshot.Position
	if position < 0 {
		position = 0
	}
	if position > len(s.cards)-1 {
		position = len(s.cards) - 1
	}
	s.position = position
}

func (s *Session) isEmpty() bool {
	return len(s.cards) == 0
}

func (s *Session) moveTo(index int) {
	s.position = index
	s.revealed = false
}
