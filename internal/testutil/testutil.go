package testutil

import (
	"encoding/json"
	"time"

	"wordsync/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a test session
func NewTestSession(userID int64, token string) *domain.Session {
	return &domain.Session{
		UserID:    userID,
		Token:     token,
		UpdatedAt: time.Now(),
	}
}

// NewTestVocabulary creates a vocabulary record with the given id and title
func NewTestVocabulary(id, title string) domain.VocabularyRef {
	raw, _ := json.Marshal(map[string]string{"id": id, "title": title})
	return domain.NewVocabularyRef(raw)
}

// WordIDs converts strings to word ids
func WordIDs(ids ...string) []domain.WordID {
	out := make([]domain.WordID, len(ids))
	for i, id := range ids {
		out[i] = domain.WordID(id)
	}
	return out
}
