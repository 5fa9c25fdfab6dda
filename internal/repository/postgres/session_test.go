package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"wordsync/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_GetSession(t *testing.T) {
	updatedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		userID          int64
		mockRows        *sqlmock.Rows
		mockError       error
		expectedSession *domain.Session
		expectedError   bool
	}{
		{
			name:     "session found",
			userID:   123,
			mockRows: sqlmock.NewRows([]string{"user_id", "api_token", "updated_at"}).AddRow(int64(123), "tok", updatedAt),
			expectedSession: &domain.Session{
				UserID:    123,
				Token:     "tok",
				UpdatedAt: updatedAt,
			},
		},
		{
			name:            "no session",
			userID:          456,
			mockError:       sql.ErrNoRows,
			expectedSession: nil,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			query := "SELECT user_id, api_token, updated_at FROM sessions WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			session, err := repo.GetSession(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSession, session)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepo_SaveToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(int64(123), "tok").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveToken(123, "tok")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_DeleteToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSessionRepo(db)

	mock.ExpectExec("DELETE FROM sessions WHERE user_id = \\$1").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteToken(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_CleanExpired(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{name: "success"},
		{name: "database error", mockError: fmt.Errorf("db error"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSessionRepo(db)

			exec := mock.ExpectExec("DELETE FROM sessions").WithArgs(30)
			if tt.mockError != nil {
				exec.WillReturnError(tt.mockError)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 4))
			}

			err = repo.CleanExpired(30)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
