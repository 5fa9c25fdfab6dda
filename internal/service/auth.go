package service

import (
	"context"
	"fmt"
	"strings"

	"wordsync/internal/gateway"
	"wordsync/internal/repository"
)

// AuthService handles API token storage for bot users
type AuthService struct {
	sessionRepo repository.SessionRepository
}

// NewAuthService creates a new auth service
func NewAuthService(sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{sessionRepo: sessionRepo}
}

// Login stores the user's API token
func (s *AuthService) Login(userID int64, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	return s.sessionRepo.SaveToken(userID, token)
}

// Logout forgets the user's API token
func (s *AuthService) Logout(userID int64) error {
	return s.sessionRepo.DeleteToken(userID)
}

// IsLoggedIn checks if the user has a stored token
func (s *AuthService) IsLoggedIn(userID int64) (bool, error) {
	session, err := s.sessionRepo.GetSession(userID)
	if err != nil {
		return false, err
	}
	return session != nil && session.Token != "", nil
}

// TokenFunc returns a token source reading the user's stored token on every call
func (s *AuthService) TokenFunc(userID int64) gateway.TokenFunc {
	return func(context.Context) (string, error) {
		session, err := s.sessionRepo.GetSession(userID)
		if err != nil {
			return "", fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			return "", nil
		}
		return session.Token, nil
	}
}
