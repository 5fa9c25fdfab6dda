package service

import (
	"wordsync/internal/repository"

	"go.uber.org/zap"
)

// CleanupService removes stale sessions
type CleanupService struct {
	sessionRepo repository.SessionRepository
	ttlDays     int
	logger      *zap.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessionRepo repository.SessionRepository, ttlDays int, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		sessionRepo: sessionRepo,
		ttlDays:     ttlDays,
		logger:      logger,
	}
}

// CleanupExpiredSessions removes sessions older than the configured TTL
func (s *CleanupService) CleanupExpiredSessions() error {
	s.logger.Info("Starting cleanup of expired sessions", zap.Int("ttl_days", s.ttlDays))

	err := s.sessionRepo.CleanExpired(s.ttlDays)
	if err != nil {
		s.logger.Error("Failed to cleanup expired sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
