package store

import (
	"context"
	"errors"
	"fmt"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errLoadAborted = errors.New("load aborted")

type loadResult struct {
	starred      []domain.WordID
	graveyard    []domain.WordID
	wrong        []domain.WordID
	vocabularies []domain.VocabularyRef
}

// LoadAll fetches every list and the vocabularies at once.
// It does nothing without a token, while another load is running, or once loaded.
// Either all four results are committed or none are.
func (s *Store) LoadAll(ctx context.Context, tokens gateway.TokenFunc) {
	token, ok := s.token(ctx, tokens, "load")
	if !ok {
		return
	}

	s.mu.Lock()
	if s.loading || s.loaded {
		s.mu.Unlock()
		s.logger.Debug("Word lists already loading or loaded")
		return
	}
	s.loading = true
	gen := s.generation
	snap := s.changedLocked()
	s.mu.Unlock()
	s.notify(snap)

	var (
		result *loadResult
		err    error
	)
	defer func() {
		if result == nil && err == nil {
			err = errLoadAborted
		}
		s.finishLoad(gen, result, err)
	}()

	result, err = s.fetchAll(ctx, gateway.StaticToken(token))
}

func (s *Store) fetchAll(ctx context.Context, tokens gateway.TokenFunc) (*loadResult, error) {
	var result loadResult
	g, gctx := errgroup.WithContext(ctx)

	fetchList := func(list domain.ListKind, dst *[]domain.WordID) {
		g.Go(func() error {
			ids, err := s.wordLists.ListWords(gctx, tokens, list)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", list, err)
			}
			*dst = ids
			return nil
		})
	}
	fetchList(domain.ListStarred, &result.starred)
	fetchList(domain.ListGraveyard, &result.graveyard)
	fetchList(domain.ListWrongAnswers, &result.wrong)

	g.Go(func() error {
		vocabularies, err := s.wordLists.ListVocabularies(gctx, tokens)
		if err != nil {
			return fmt.Errorf("failed to list vocabularies: %w", err)
		}
		result.vocabularies = vocabularies
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Store) finishLoad(gen uint64, result *loadResult, err error) {
	s.mu.Lock()
	if s.generation != gen {
		// Reset already cleared loading; the results belong to a dead session
		s.mu.Unlock()
		s.logger.Debug("Discarding word lists loaded before reset")
		return
	}

	s.loading = false
	if err == nil {
		s.lists = lists{
			starred:   domain.NewMembershipSet(result.starred...),
			graveyard: domain.NewMembershipSet(result.graveyard...),
			wrong:     domain.NewMembershipSet(result.wrong...),
		}
		s.vocabularies = result.vocabularies
		s.loaded = true
	}
	snap := s.changedLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to load word lists", zap.Error(err))
	} else {
		s.logger.Info("Word lists loaded",
			zap.Int("starred", len(snap.Starred)),
			zap.Int("graveyard", len(snap.Graveyard)),
			zap.Int("wrong_answers", len(snap.WrongAnswers)),
			zap.Int("vocabularies", len(snap.Vocabularies)),
		)
	}
	s.notify(snap)
}

// RefreshVocabularies replaces the vocabularies with a fresh copy from the
// remote service. On failure the current ones are kept.
func (s *Store) RefreshVocabularies(ctx context.Context, tokens gateway.TokenFunc) {
	token, ok := s.token(ctx, tokens, "refresh_vocabularies")
	if !ok {
		return
	}

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	vocabularies, err := s.wordLists.ListVocabularies(ctx, gateway.StaticToken(token))
	if err != nil {
		s.logger.Error("Failed to refresh vocabularies", zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		s.logger.Debug("Discarding vocabularies fetched before reset")
		return
	}
	s.vocabularies = vocabularies
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
}
