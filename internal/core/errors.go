package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("missing required fields")
	ErrConflict         = errors.New("email already registered")
	ErrUnauthorized     = errors.New("invalid email or password")
	ErrUnsupportedIssue = errors.New("unsupported issueId")
	ErrConfig           = errors.New("gemini api key is not configured")
	ErrParse            = errors.New("invalid response format from the gemini api")
)

// UpstreamError reports a failed exchange with the Gemini API. Status is the
// upstream HTTP status (0 when the request never got a response). Details
// holds the decoded JSON error body when it parses, the raw text otherwise.
type UpstreamError struct {
	Status  int
	Details any
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return "gemini api request failed"
	}
	return fmt.Sprintf("gemini api returned status %d", e.Status)
}
