package staffing

import (
	"errors"
	"fmt"
)

// Error codes carried in types.TeamProposal.Error.
const (
	CodeAPIKeyMissing  = "API_KEY_MISSING"
	CodeAPIError       = "API_ERROR"
	CodeNoResponse     = "NO_RESPONSE"
	CodeJSONNotFound   = "JSON_NOT_FOUND"
	CodeJSONParseError = "JSON_PARSE_ERROR"
	CodeRequestFailed  = "REQUEST_FAILED"
)

// ErrNoResponse is returned by a Completer whose reply holds no text.
var ErrNoResponse = errors.New("no text in model response")

// StatusError is an upstream rejection with an HTTP status.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }
