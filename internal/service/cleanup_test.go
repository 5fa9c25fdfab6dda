package service

import (
	"fmt"
	"testing"

	"wordsync/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCleanupService_CleanupExpiredSessions(t *testing.T) {
	tests := []struct {
		name          string
		ttlDays       int
		mockError     error
		expectedError bool
	}{
		{
			name:    "successful cleanup",
			ttlDays: 30,
		},
		{
			name:    "custom ttl",
			ttlDays: 7,
		},
		{
			name:          "database error",
			ttlDays:       30,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSessionRepository)
			mockRepo.On("CleanExpired", tt.ttlDays).Return(tt.mockError)

			service := NewCleanupService(mockRepo, tt.ttlDays, testutil.NewTestLogger())

			err := service.CleanupExpiredSessions()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
