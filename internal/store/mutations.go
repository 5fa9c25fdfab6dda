package store

import (
	"context"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"

	"go.uber.org/zap"
)

// mutation is one optimistic change: apply locally, confirm remotely,
// compensate on failure. forward and inverse run under s.mu.
type mutation struct {
	name string
	word domain.WordID
	// forward applies the local change; false skips the remote call
	forward func() bool
	inverse func()
	remote  func(ctx context.Context, tokens gateway.TokenFunc) error
}

// apply runs m. Operations on the same word are serialized; the store lock
// is never held across the remote call.
func (s *Store) apply(ctx context.Context, tokens gateway.TokenFunc, m mutation) {
	token, ok := s.token(ctx, tokens, m.name)
	if !ok {
		return
	}

	unlock, err := s.words.Lock(ctx, m.word)
	if err != nil {
		s.logger.Warn("Gave up waiting for word",
			zap.String("operation", m.name),
			zap.String("word_id", string(m.word)),
			zap.Error(err),
		)
		return
	}
	defer unlock()

	s.mu.Lock()
	if !m.forward() {
		s.mu.Unlock()
		return
	}
	gen := s.generation
	snap := s.changedLocked()
	s.mu.Unlock()
	s.notify(snap)

	err = m.remote(ctx, gateway.StaticToken(token))
	if err == nil {
		return
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		s.logger.Debug("Skipping rollback after reset",
			zap.String("operation", m.name),
			zap.String("word_id", string(m.word)),
			zap.Error(err),
		)
		return
	}
	m.inverse()
	snap = s.changedLocked()
	s.mu.Unlock()

	s.logger.Warn("Rolled back word-list change",
		zap.String("operation", m.name),
		zap.String("word_id", string(m.word)),
		zap.Error(err),
	)
	s.notify(snap)
}

// ToggleStarred stars id, or unstars it if it is already starred
func (s *Store) ToggleStarred(ctx context.Context, tokens gateway.TokenFunc, id domain.WordID) {
	var (
		wasStarred bool
		pos        int
	)

	s.apply(ctx, tokens, mutation{
		name: "toggle_starred",
		word: id,
		forward: func() bool {
			wasStarred = s.lists.starred.Contains(id)
			if wasStarred {
				pos = s.lists.starred.Remove(id)
			} else {
				s.lists.starred.Add(id)
			}
			return true
		},
		inverse: func() {
			if wasStarred {
				s.lists.starred.Insert(pos, id)
			} else {
				s.lists.starred.Remove(id)
			}
		},
		remote: func(ctx context.Context, tokens gateway.TokenFunc) error {
			if wasStarred {
				return s.wordLists.RemoveWord(ctx, tokens, domain.ListStarred, id)
			}
			return s.wordLists.AddWord(ctx, tokens, domain.ListStarred, id)
		},
	})
}

// MoveToGraveyard buries id, evicting it from starred and wrong answers
func (s *Store) MoveToGraveyard(ctx context.Context, tokens gateway.TokenFunc, id domain.WordID) {
	var before lists

	s.apply(ctx, tokens, mutation{
		name: "move_to_graveyard",
		word: id,
		forward: func() bool {
			before = s.lists.clone()
			s.lists.graveyard.Add(id)
			s.lists.starred.Remove(id)
			s.lists.wrong.Remove(id)
			return true
		},
		inverse: func() {
			s.lists.restoreWord(before, id)
		},
		remote: func(ctx context.Context, tokens gateway.TokenFunc) error {
			return s.wordLists.AddWord(ctx, tokens, domain.ListGraveyard, id)
		},
	})
}

// DeletePermanently removes id from every list
func (s *Store) DeletePermanently(ctx context.Context, tokens gateway.TokenFunc, id domain.WordID) {
	var before lists

	s.apply(ctx, tokens, mutation{
		name: "delete_permanently",
		word: id,
		forward: func() bool {
			before = s.lists.clone()
			s.lists.starred.Remove(id)
			s.lists.graveyard.Remove(id)
			s.lists.wrong.Remove(id)
			return true
		},
		inverse: func() {
			s.lists.restoreWord(before, id)
		},
		remote: func(ctx context.Context, tokens gateway.TokenFunc) error {
			return s.wordLists.RemoveWord(ctx, tokens, domain.ListGraveyard, id)
		},
	})
}

// AddWrongAnswer records id as answered wrong. Already recorded words are skipped.
func (s *Store) AddWrongAnswer(ctx context.Context, tokens gateway.TokenFunc, id domain.WordID) {
	s.apply(ctx, tokens, mutation{
		name: "add_wrong_answer",
		word: id,
		forward: func() bool {
			return s.lists.wrong.Add(id)
		},
		inverse: func() {
			s.lists.wrong.Remove(id)
		},
		remote: func(ctx context.Context, tokens gateway.TokenFunc) error {
			return s.wordLists.AddWord(ctx, tokens, domain.ListWrongAnswers, id)
		},
	})
}
