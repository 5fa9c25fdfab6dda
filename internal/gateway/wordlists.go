package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"wordsync/internal/domain"
)

const vocabulariesPath = "/my-vocabularies"

// WordLists implements repository.WordListRepository over the gateway
type WordLists struct {
	client *Client
}

// NewWordLists creates a new word-list client
func NewWordLists(client *Client) *WordLists {
	return &WordLists{client: client}
}

type wordsResponse struct {
	Words []wordEntry `json:"words"`
}

type wordEntry struct {
	ID remoteID `json:"id"`
}

type vocabulariesResponse struct {
	Vocabularies []domain.VocabularyRef `json:"vocabularies"`
}

// remoteID accepts both string and numeric ids
type remoteID string

func (r *remoteID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = remoteID(s)
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("word id must be a string or number: %w", err)
	}
	*r = remoteID(n.String())
	return nil
}

// ListWords fetches every word id in list
func (w *WordLists) ListWords(ctx context.Context, tokens TokenFunc, list domain.ListKind) ([]domain.WordID, error) {
	path := "/" + string(list)

	var resp wordsResponse
	if err := w.client.Call(ctx, tokens, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Words == nil {
		return nil, &MalformedResponseError{Path: path, Err: errors.New(`missing "words" field`)}
	}

	ids := make([]domain.WordID, 0, len(resp.Words))
	for _, entry := range resp.Words {
		if entry.ID == "" {
			continue
		}
		ids = append(ids, domain.WordID(entry.ID))
	}
	return ids, nil
}

// AddWord adds id to list
func (w *WordLists) AddWord(ctx context.Context, tokens TokenFunc, list domain.ListKind, id domain.WordID) error {
	return w.client.Call(ctx, tokens, http.MethodPost, memberPath(list, id), nil, nil)
}

// RemoveWord removes id from list
func (w *WordLists) RemoveWord(ctx context.Context, tokens TokenFunc, list domain.ListKind, id domain.WordID) error {
	return w.client.Call(ctx, tokens, http.MethodDelete, memberPath(list, id), nil, nil)
}

// ListVocabularies fetches the vocabularies owned by the user
func (w *WordLists) ListVocabularies(ctx context.Context, tokens TokenFunc) ([]domain.VocabularyRef, error) {
	var resp vocabulariesResponse
	if err := w.client.Call(ctx, tokens, http.MethodGet, vocabulariesPath, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Vocabularies == nil {
		return nil, &MalformedResponseError{Path: vocabulariesPath, Err: errors.New(`missing "vocabularies" field`)}
	}
	return resp.Vocabularies, nil
}

func memberPath(list domain.ListKind, id domain.WordID) string {
	return "/" + string(list) + "/" + url.PathEscape(string(id))
}
