package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/julien-sobczak/nt-flashcards/internal/helpers"
	"github.com/julien-sobczak/nt-flashcards/internal/session"
	"github.com/julien-sobczak/nt-flashcards/pkg/clock"
	"gopkg.in/yaml.v3"
)

// SavedSession is a session persisted when quitting to be resumed later.
type SavedSession struct {
	ID      string    `yaml:"id"`
	Source  string    `yaml:"source"`
	Hash    string    `yaml:"hash"`
	SavedAt time.Time `yaml:"saved_at"`

	session.Snapshot `yaml:",inline"`
}

// Matches returns if the session was saved for the current version of the deck.
func (s *SavedSession) Matches(deck *Deck) bool {
	return s.Source == deck.Path && s.Hash == deck.Hash
}

// SessionStore persists sessions as YAML files (one per document).
type SessionStore struct {
	Dir string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{
		Dir: dir,
	}
}

// Path returns the file where the session of a given document is saved.
// The slug alone is ambiguous (ex: Go.md and go.md) and is suffixed by a short hash of the path.
// Ex: /home/me/notes/go.md => <dir>/home-me-notes-go-md-1a2b3c4d.yaml
func (s *SessionStore) Path(documentPath string) string {
	suffix := helpers.Hash([]byte(documentPath))[:8]
	return filepath.Join(s.Dir, slug.Make(documentPath)+"-"+suffix+".yaml")
}

// Save persists the snapshot of a deck. The session ID is preserved between saves.
func (s *SessionStore) Save(deck *Deck, snapshot session.Snapshot) (*SavedSession, error) {
	existing, err := s.Load(deck)
	if err != nil {
		// A corrupted file will be overwritten
		CurrentLogger().Warnf("Ignoring saved session for %s: %v", deck.Path, err)
		existing = nil
	}

	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}

	saved := &SavedSession{
		ID:       id,
		Source:   deck.Path,
		Hash:     deck.Hash,
		SavedAt:  clock.Now(),
		Snapshot: snapshot,
	}

	data, err := yaml.Marshal(saved)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create %s: %w", s.Dir, err)
	}
	path := s.Path(deck.Path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("unable to save session: %w", err)
	}
	CurrentLogger().Debugf("Saved session %s in %s", saved.ID, path)
	return saved, nil
}

// Load reads the saved session of a deck. It returns nil when no session exists.
func (s *SessionStore) Load(deck *Deck) (*SavedSession, error) {
	path := s.Path(deck.Path)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var saved SavedSession
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("invalid session file %s: %w", path, err)
	}
	return &saved, nil
}

// Resume returns the snapshot to restore for the deck, or false when the document changed
// since the session was saved.
func (s *SessionStore) Resume(deck *Deck) (session.Snapshot, bool, error) {
	saved, err := s.Load(deck)
	if err != nil {
		return session.Snapshot{}, false, err
	}
	if saved == nil {
		return session.Snapshot{}, false, nil
	}
	if !saved.Matches(deck) {
		CurrentLogger().Infof("Document %s changed since the session %s was saved", deck.Path, saved.ID)
		return session.Snapshot{}, false, nil
	}
	return saved.Snapshot, true, nil
}

// Delete removes the saved session of a deck if any.
func (s *SessionStore) Delete(deck *Deck) error {
	err := os.Remove(s.Path(deck.Path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
