package postgres

import (
	"database/sql"

	"wordsync/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// SaveToken stores the API token for a user, replacing any previous one
func (r *SessionRepo) SaveToken(userID int64, token string) error {
	query := `
		INSERT INTO sessions (user_id, api_token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET api_token = EXCLUDED.api_token, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, token)
	return err
}

// GetSession returns the stored session, or nil if the user never logged in
func (r *SessionRepo) GetSession(userID int64) (*domain.Session, error) {
	var s domain.Session
	query := `SELECT user_id, api_token, updated_at FROM sessions WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&s.UserID, &s.Token, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// DeleteToken forgets the user's token
func (r *SessionRepo) DeleteToken(userID int64) error {
	query := `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// CleanExpired deletes sessions not refreshed for the given number of days
func (r *SessionRepo) CleanExpired(days int) error {
	query := `
		DELETE FROM sessions
		WHERE updated_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
