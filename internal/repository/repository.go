package repository

import (
	"context"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"
)

// SessionRepository defines stored API token operations
type SessionRepository interface {
	SaveToken(userID int64, token string) error
	GetSession(userID int64) (*domain.Session, error)
	DeleteToken(userID int64) error
	CleanExpired(days int) error
}

// WordListRepository is the remote authority for the per-user word lists
type WordListRepository interface {
	ListWords(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind) ([]domain.WordID, error)
	AddWord(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind, id domain.WordID) error
	RemoveWord(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind, id domain.WordID) error
	ListVocabularies(ctx context.Context, tokens gateway.TokenFunc) ([]domain.VocabularyRef, error)
}
