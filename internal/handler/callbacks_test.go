package handler

import (
	"testing"

	"wordsync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "star:w1",
			expected: "star:w1",
		},
		{
			name:     "string with whitespace",
			input:    "  star:w1  ",
			expected: "star:w1",
		},
		{
			name:     "string with newline",
			input:    "star\n:w1",
			expected: "star:w1",
		},
		{
			name:     "leading form feed from button data",
			input:    "\fword|star:w1",
			expected: "word|star:w1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "star\x00:w1\x01",
			expected: "star:w1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestParseWordArg(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expected      domain.WordID
		expectedError bool
	}{
		{
			name:     "single id",
			payload:  "w1",
			expected: "w1",
		},
		{
			name:     "surrounding whitespace",
			payload:  "  42 ",
			expected: "42",
		},
		{
			name:          "empty payload",
			payload:       "",
			expectedError: true,
		},
		{
			name:          "only whitespace",
			payload:       "   ",
			expectedError: true,
		},
		{
			name:          "several ids",
			payload:       "w1 w2",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseWordArg(tt.payload)

			if tt.expectedError {
				assert.ErrorIs(t, err, errNoWordID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestParseWordCallback(t *testing.T) {
	tests := []struct {
		name           string
		data           string
		expectedAction string
		expectedID     domain.WordID
		expectedError  bool
	}{
		{
			name:           "payload only",
			data:           wordCallbackData(actionStar.name, "w1"),
			expectedAction: "star",
			expectedID:     "w1",
		},
		{
			name:           "payload with unique prefix",
			data:           "\fword|bury:w2",
			expectedAction: "bury",
			expectedID:     "w2",
		},
		{
			name:           "id containing colon",
			data:           "delete:a:b",
			expectedAction: "delete",
			expectedID:     "a:b",
		},
		{
			name:          "unknown action",
			data:          "explode:w1",
			expectedError: true,
		},
		{
			name:          "missing separator",
			data:          "star",
			expectedError: true,
		},
		{
			name:          "missing id",
			data:          "wrong:",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, id, err := parseWordCallback(tt.data)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAction, action.name)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
