package templateapi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const previewLimit = 140

var (
	ErrNotFound    = errors.New("template not found")
	ErrNoMessageID = errors.New("response carried no message id")
)

// TransportError covers every failure below the business contract: non-2xx
// statuses, network loss and timeouts alike.
type TransportError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request failed: %v", e.Cause)
	}

	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}

	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError never carries more than previewLimit characters of the body.
type MalformedResponseError struct {
	Preview string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %s", e.Preview)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// BusinessError is an enveloped response whose code is not zero.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}

	runes := []rune(text)
	return string(runes[:previewLimit])
}

func outcome(err error) string {
	var (
		transportErr *TransportError
		malformedErr *MalformedResponseError
		businessErr  *BusinessError
	)

	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &malformedErr):
		return "malformed"
	case errors.As(err, &businessErr):
		return "business"
	default:
		return "other"
	}
}
