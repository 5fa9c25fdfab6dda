package testutil

import (
	"context"

	"wordsync/internal/domain"
	"wordsync/internal/gateway"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveToken(userID int64, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(userID int64) (*domain.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteToken(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanExpired(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockWordListRepository is a mock for WordListRepository
type MockWordListRepository struct {
	mock.Mock
}

func (m *MockWordListRepository) ListWords(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind) ([]domain.WordID, error) {
	args := m.Called(ctx, tokens, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordID), args.Error(1)
}

func (m *MockWordListRepository) AddWord(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind, id domain.WordID) error {
	args := m.Called(ctx, tokens, list, id)
	return args.Error(0)
}

func (m *MockWordListRepository) RemoveWord(ctx context.Context, tokens gateway.TokenFunc, list domain.ListKind, id domain.WordID) error {
	args := m.Called(ctx, tokens, list, id)
	return args.Error(0)
}

func (m *MockWordListRepository) ListVocabularies(ctx context.Context, tokens gateway.TokenFunc) ([]domain.VocabularyRef, error) {
	args := m.Called(ctx, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyRef), args.Error(1)
}
