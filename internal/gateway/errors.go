package gateway

import (
	"errors"
	"fmt"
)

// ErrAuthentication is returned when no usable token is available.
// The request is never sent in that case.
var ErrAuthentication = errors.New("authentication required")

// genericFailureMessage is used when the response carries no message of its own
const genericFailureMessage = "request failed"

// RemoteError describes a transport failure or a non-2xx response
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int // 0 for transport failures
	Message    string
	Err        error
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Message, e.Err)
		}
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when a successful response has a body
// that cannot be decoded into the expected shape
type MalformedResponseError struct {
	Path string
	Body string
	Err  error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the decode error
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err came from the remote service or the transport
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}
