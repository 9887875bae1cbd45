package lastfm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLimit is returned when a result limit below 1 is requested.
var ErrInvalidLimit = errors.New("limit must be positive")

// APIError is the single error kind for failed Last.fm calls: transport
// failures, non-2xx responses and error payloads all end up here.
type APIError struct {
	Method  string // API method, e.g. "album.search"
	Status  int    // HTTP status, 0 if no response was received
	Code    int    // Last.fm error code from the payload, 0 if none
	Message string
	Err     error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Method)
	if e.Status != 0 && !isSuccess(e.Status) {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Code != 0 {
		fmt.Fprintf(&b, ": error %d", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
