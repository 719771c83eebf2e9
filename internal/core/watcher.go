package core

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/julien-sobczak/nt-flashcards/internal/helpers"
	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
)

// Watcher reloads a deck every time its document is saved.
type Watcher struct {
	path    string
	syntax  markdown.CalloutSyntax
	watcher *fsnotify.Watcher
	done    chan struct{}
	// Hash of the last loaded content
	hash string
}

// WatchDeck starts watching the document of a deck.
// The callbacks are invoked from a dedicated goroutine.
func WatchDeck(path string, syntax markdown.CalloutSyntax, onChange func(*Deck), onError func(error)) (*Watcher, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	hash, err := helpers.HashFromFile(absolutePath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory as editors often replace the file when saving
	if err := watcher.Add(filepath.Dir(absolutePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absolutePath,
		syntax:  syntax,
		watcher: watcher,
		done:    make(chan struct{}),
		hash:    hash,
	}
	go w.loop(onChange, onError)
	return w, nil
}

func (w *Watcher) loop(onChange func(*Deck), onError func(error)) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			CurrentLogger().Debugf("Detected change %s on %s", event.Op, event.Name)
			deck, err := LoadDeck(w.path, w.syntax)
			if err != nil {
				// The file may be temporarily missing while being replaced
				onError(err)
				continue
			}
			if deck.Hash == w.hash {
				// Editors often emit several events for a single save
				continue
			}
			w.hash = deck.Hash
			onChange(deck)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}

// Close stops watching and waits for the pending callback to complete.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
