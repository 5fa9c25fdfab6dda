package gateway

import (
	"context"
	"net/http"
	"testing"

	"wordsync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordLists_ListWords(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expected      []domain.WordID
		expectedError bool
	}{
		{
			name:     "string ids",
			body:     `{"words":[{"id":"a","lemma":"apple"},{"id":"b"}]}`,
			expected: []domain.WordID{"a", "b"},
		},
		{
			name:     "numeric ids",
			body:     `{"words":[{"id":7},{"id":12}]}`,
			expected: []domain.WordID{"7", "12"},
		},
		{
			name:     "entries without id are skipped",
			body:     `{"words":[{"lemma":"x"},{"id":"b"}]}`,
			expected: []domain.WordID{"b"},
		},
		{
			name:     "empty list",
			body:     `{"words":[]}`,
			expected: []domain.WordID{},
		},
		{
			name:          "missing words field",
			body:          `{"items":[]}`,
			expectedError: true,
		},
		{
			name:          "invalid id type",
			body:          `{"words":[{"id":true}]}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.Write([]byte(tt.body))
			})

			ids, err := NewWordLists(client).ListWords(context.Background(), StaticToken("t"), domain.ListWrongAnswers)

			assert.Equal(t, "/wrong-answers", path)
			if tt.expectedError {
				var malformed *MalformedResponseError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestWordLists_Membership(t *testing.T) {
	tests := []struct {
		name           string
		call           func(w *WordLists) error
		expectedMethod string
		expectedPath   string
	}{
		{
			name: "star",
			call: func(w *WordLists) error {
				return w.AddWord(context.Background(), StaticToken("t"), domain.ListStarred, "w1")
			},
			expectedMethod: http.MethodPost,
			expectedPath:   "/starred/w1",
		},
		{
			name: "unstar",
			call: func(w *WordLists) error {
				return w.RemoveWord(context.Background(), StaticToken("t"), domain.ListStarred, "w1")
			},
			expectedMethod: http.MethodDelete,
			expectedPath:   "/starred/w1",
		},
		{
			name: "bury",
			call: func(w *WordLists) error {
				return w.AddWord(context.Background(), StaticToken("t"), domain.ListGraveyard, "w1")
			},
			expectedMethod: http.MethodPost,
			expectedPath:   "/graveyard/w1",
		},
		{
			name: "delete permanently",
			call: func(w *WordLists) error {
				return w.RemoveWord(context.Background(), StaticToken("t"), domain.ListGraveyard, "w1")
			},
			expectedMethod: http.MethodDelete,
			expectedPath:   "/graveyard/w1",
		},
		{
			name: "wrong answer",
			call: func(w *WordLists) error {
				return w.AddWord(context.Background(), StaticToken("t"), domain.ListWrongAnswers, "w1")
			},
			expectedMethod: http.MethodPost,
			expectedPath:   "/wrong-answers/w1",
		},
		{
			name: "id is path escaped",
			call: func(w *WordLists) error {
				return w.AddWord(context.Background(), StaticToken("t"), domain.ListStarred, "a/b c")
			},
			expectedMethod: http.MethodPost,
			expectedPath:   "/starred/a%2Fb%20c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, path string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				path = r.URL.EscapedPath()
				w.Write([]byte(`{"ok":true}`))
			})

			err := tt.call(NewWordLists(client))

			require.NoError(t, err)
			assert.Equal(t, tt.expectedMethod, method)
			assert.Equal(t, tt.expectedPath, path)
		})
	}
}

func TestWordLists_ListVocabularies(t *testing.T) {
	t.Run("returns records", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/my-vocabularies", r.URL.Path)
			w.Write([]byte(`{"vocabularies":[{"id":"v1","title":"Travel"},{"id":2,"name":"Work"}]}`))
		})

		vocabularies, err := NewWordLists(client).ListVocabularies(context.Background(), StaticToken("t"))

		require.NoError(t, err)
		require.Len(t, vocabularies, 2)
		assert.Equal(t, "v1", vocabularies[0].ID())
		assert.Equal(t, "Work", vocabularies[1].Title())
	})

	t.Run("missing field is malformed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := NewWordLists(client).ListVocabularies(context.Background(), StaticToken("t"))

		var malformed *MalformedResponseError
		assert.ErrorAs(t, err, &malformed)
	})
}
