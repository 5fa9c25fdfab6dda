package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenFunc yields the bearer token for one request.
// An empty token means the user is signed out.
type TokenFunc func(ctx context.Context) (string, error)

// StaticToken returns a TokenFunc that always yields token
func StaticToken(token string) TokenFunc {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// ResolveToken calls tokens once and maps an empty or failed lookup to ErrAuthentication
func ResolveToken(ctx context.Context, tokens TokenFunc) (string, error) {
	if tokens == nil {
		return "", ErrAuthentication
	}
	token, err := tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	if token == "" {
		return "", ErrAuthentication
	}
	return token, nil
}

// Client performs authenticated JSON calls against the word-list service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new gateway client.
// A nil httpClient falls back to one with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Call sends method to path with an optional JSON body and decodes a
// successful response into out when out is non-nil
func (c *Client) Call(ctx context.Context, tokens TokenFunc, method, path string, body, out any) error {
	token, err := ResolveToken(ctx, tokens)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Remote call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &RemoteError{Method: method, Path: path, Message: genericFailureMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    genericFailureMessage,
			Err:        err,
		}
	}

	c.logger.Debug("Remote call completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	payload, malformed := normalizeBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(payload),
		}
	}

	if out == nil {
		return nil
	}
	if malformed {
		return &MalformedResponseError{Path: path, Body: string(raw), Err: errors.New("body is not valid JSON")}
	}
	if payload == nil {
		return &MalformedResponseError{Path: path, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &MalformedResponseError{Path: path, Body: string(raw), Err: err}
	}
	return nil
}

// normalizeBody returns the body as JSON. A non-JSON body is wrapped as
// {"error": <raw text>} and reported as malformed.
func normalizeBody(raw []byte) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed), false
	}

	wrapped, err := json.Marshal(map[string]string{"error": string(raw)})
	if err != nil {
		return nil, true
	}
	return wrapped, true
}

// extractMessage picks a human-readable message out of an error body.
// Precedence: "message", then "error" (string, or object with "message").
func extractMessage(payload json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return genericFailureMessage
	}

	for _, key := range []string{"message", "error"} {
		value, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}
		// {"error": {"code": "...", "message": "..."}}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(value, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return genericFailureMessage
}
