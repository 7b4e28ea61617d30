package telegram

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorReason is the machine readable reason carried in a Bot API error description.
type ErrorReason string

const (
	ReasonUnknown          ErrorReason = ""
	ReasonScoreNotModified ErrorReason = "BOT_SCORE_NOT_MODIFIED"
	ReasonScoreInvalid     ErrorReason = "SCORE_INVALID"
)

var knownReasons = []ErrorReason{ReasonScoreNotModified, ReasonScoreInvalid}

// Sentinels matched by errors.Is against an *APIError.
var (
	ErrScoreNotModified = errors.New("telegram: score not modified")
	ErrScoreInvalid     = errors.New("telegram: score invalid")
)

// APIError is returned when the Bot API answers with ok=false.
type APIError struct {
	Method      string
	Code        int
	Description string
	Reason      ErrorReason
}

func newAPIError(method string, code int, description string) *APIError {
	return &APIError{
		Method:      method,
		Code:        code,
		Description: description,
		Reason:      parseReason(description),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.Code, e.Description)
}

// Is reports whether e belongs to one of the sentinel categories.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrScoreNotModified:
		return e.Reason == ReasonScoreNotModified
	case ErrScoreInvalid:
		return e.Reason == ReasonScoreInvalid
	}
	return false
}

// parseReason extracts the upper-case reason token Telegram appends to
// descriptions such as "Bad Request: BOT_SCORE_NOT_MODIFIED".
func parseReason(description string) ErrorReason {
	_, tail, found := strings.Cut(description, ":")
	if !found {
		tail = description
	}
	token := ErrorReason(strings.TrimSpace(tail))
	for _, r := range knownReasons {
		if token == r {
			return r
		}
	}
	return ReasonUnknown
}
