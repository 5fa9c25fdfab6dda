package service

import (
	"sync"

	"wordsync/internal/repository"
	"wordsync/internal/store"

	"go.uber.org/zap"
)

// SyncService owns one word-list store per user
type SyncService struct {
	wordLists repository.WordListRepository
	logger    *zap.Logger

	stores map[int64]*store.Store
	mu     sync.Mutex
}

// NewSyncService creates a new sync service
func NewSyncService(wordLists repository.WordListRepository, logger *zap.Logger) *SyncService {
	return &SyncService{
		wordLists: wordLists,
		logger:    logger,
		stores:    make(map[int64]*store.Store),
	}
}

// Store returns the user's store, creating an empty one on first use
func (s *SyncService) Store(userID int64) *store.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, exists := s.stores[userID]
	if !exists {
		st = store.New(s.wordLists, s.logger.With(zap.Int64("user_id", userID)))
		s.stores[userID] = st
	}
	return st
}

// Drop resets the user's store and forgets it
func (s *SyncService) Drop(userID int64) {
	s.mu.Lock()
	st, exists := s.stores[userID]
	delete(s.stores, userID)
	s.mu.Unlock()

	if exists {
		st.Reset()
	}
}

// Active returns the number of users with a store
func (s *SyncService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}
