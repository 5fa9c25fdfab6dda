package domain

import "time"

// Session links a bot user to the API token used against the word-list service
type Session struct {
	UserID    int64
	Token     string
	UpdatedAt time.Time
}
