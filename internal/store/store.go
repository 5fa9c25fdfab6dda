// Package store keeps a user's word lists in memory, applies changes
// optimistically and reconciles them with the remote word-list service.
package store

import (
	"context"
	"sync"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"
	"wordsync/internal/repository"

	"go.uber.org/zap"
)

// Snapshot is a read-only copy of the store state.
// Version grows with every local transition, so listeners can drop stale snapshots.
type Snapshot struct {
	Starred      []domain.WordID
	Graveyard    []domain.WordID
	WrongAnswers []domain.WordID
	Vocabularies []domain.VocabularyRef
	Loading      bool
	Loaded       bool
	Version      uint64
}

// Store holds one session's word lists
type Store struct {
	wordLists repository.WordListRepository
	logger    *zap.Logger
	words     *keyLock

	mu           sync.Mutex
	lists        lists
	vocabularies []domain.VocabularyRef
	loading      bool
	loaded       bool
	// generation changes on Reset; in-flight work started in an older generation is discarded
	generation uint64
	version    uint64

	listenerMu   sync.Mutex
	listeners    map[int]func(Snapshot)
	nextListener int
}

// New creates an empty store
func New(wordLists repository.WordListRepository, logger *zap.Logger) *Store {
	return &Store{
		wordLists: wordLists,
		logger:    logger,
		words:     newKeyLock(),
		lists:     newLists(),
		listeners: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// IsStarred reports whether id is starred
func (s *Store) IsStarred(id domain.WordID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.starred.Contains(id)
}

// InGraveyard reports whether id is in the graveyard
func (s *Store) InGraveyard(id domain.WordID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.graveyard.Contains(id)
}

// IsWrongAnswer reports whether id was answered wrong
func (s *Store) IsWrongAnswer(id domain.WordID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.wrong.Contains(id)
}

// Vocabularies returns the user's vocabularies
func (s *Store) Vocabularies() []domain.VocabularyRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.VocabularyRef(nil), s.vocabularies...)
}

// Loaded reports whether the initial load has completed
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Reset wipes the store back to its empty state.
// Operations still waiting on the network will not write into the new state.
func (s *Store) Reset() {
	s.mu.Lock()
	s.lists = newLists()
	s.vocabularies = nil
	s.loading = false
	s.loaded = false
	s.generation++
	snap := s.changedLocked()
	s.mu.Unlock()

	s.logger.Debug("Word lists reset")
	s.notify(snap)
}

// Subscribe registers fn to receive a snapshot after every local transition.
// fn runs outside the store lock and may be called from several goroutines.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.listenerMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

func (s *Store) notify(snap Snapshot) {
	s.listenerMu.Lock()
	listeners := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// changedLocked bumps the version and returns the new snapshot. s.mu must be held.
func (s *Store) changedLocked() Snapshot {
	s.version++
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Starred:      s.lists.starred.IDs(),
		Graveyard:    s.lists.graveyard.IDs(),
		WrongAnswers: s.lists.wrong.IDs(),
		Vocabularies: append([]domain.VocabularyRef(nil), s.vocabularies...),
		Loading:      s.loading,
		Loaded:       s.loaded,
		Version:      s.version,
	}
}

// token resolves the caller's token; false means the operation is skipped
func (s *Store) token(ctx context.Context, tokens gateway.TokenFunc, operation string) (string, bool) {
	token, err := gateway.ResolveToken(ctx, tokens)
	if err != nil {
		s.logger.Debug("Skipping word-list operation",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return "", false
	}
	return token, true
}
