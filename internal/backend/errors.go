package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is returned when a backend body is not valid JSON or does not
// match the expected schema. It is never retried and never partially rendered.
var ErrMalformedResponse = errors.New("malformed backend response")

// ErrInvalidArgument is returned before any request is sent when the caller's
// parameters cannot form a valid backend call.
var ErrInvalidArgument = errors.New("invalid argument")

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Status int
	Path   string
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend %s returned %d: %s", e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("backend %s returned %d", e.Path, e.Status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// IsMalformed reports whether err stems from an invalid backend payload.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// newStatusError extracts FastAPI's {"detail": "..."} message when present.
func newStatusError(status int, path string, body []byte) *StatusError {
	se := &StatusError{Status: status, Path: path}
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch d := payload.Detail.(type) {
		case string:
			se.Detail = d
		case nil:
		default:
			if raw, err := json.Marshal(d); err == nil {
				se.Detail = string(raw)
			}
		}
	}
	return se
}

func malformed(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, path, err)
}
