package service

import (
	"errors"
	"fmt"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
)

const ErrCodeDatabase = "DATABASE_ERROR"

var (
	ErrRoleNotPermitted = errors.New("ROLE_NOT_PERMITTED")
	ErrInvalidState     = errors.New("INVALID_STATE")
	ErrEmptyBatch       = errors.New("EMPTY_BATCH")
)

// detailError reads as detail and matches kind with errors.Is.
type detailError struct {
	kind   error
	detail string
}

func (e detailError) Error() string {
	return e.detail
}

func (e detailError) Unwrap() error {
	return e.kind
}

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// BatchError reports where a batch approval stopped. Items before Index were
// approved and stay approved.
type BatchError struct {
	Index      int
	TemplateID string
	Approved   []string
	Cause      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch approval stopped at item %d (%s) after %d approved: %v",
		e.Index+1, e.TemplateID, len(e.Approved), e.Cause)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}

// Code returns the service error code carried by err, or INTERNAL_ERROR.
func Code(err error) string {
	var serviceErr Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}

	return constants.ErrCodeInternalError
}

// Message renders err as the single line shown to a user. Internal service
// failures never expose their cause.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var serviceErr Error
	if errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeInternalError {
		return constants.GetErrorMessage(serviceErr.Code)
	}

	return err.Error()
}

func validationError(message string) error {
	return NewServiceError(constants.ErrCodeValidationFailed, errors.New(message))
}

func emptyBatchError() error {
	return NewServiceError(constants.ErrCodeValidationFailed,
		detailError{kind: ErrEmptyBatch, detail: "select at least one template"})
}

func roleError(format string, args ...any) error {
	return NewServiceError(constants.ErrCodeRoleNotPermitted,
		detailError{kind: ErrRoleNotPermitted, detail: fmt.Sprintf(format, args...)})
}

func stateError(format string, args ...any) error {
	return NewServiceError(constants.ErrCodeInvalidState,
		detailError{kind: ErrInvalidState, detail: fmt.Sprintf(format, args...)})
}

// backendError classifies a template API failure.
func backendError(err error) error {
	var (
		transportErr *templateapi.TransportError
		malformedErr *templateapi.MalformedResponseError
		businessErr  *templateapi.BusinessError
	)

	switch {
	case errors.Is(err, templateapi.ErrNotFound):
		return NewServiceError(constants.ErrCodeTemplateNotFound, err)
	case errors.As(err, &businessErr):
		return NewServiceError(constants.ErrCodeBusiness, err)
	case errors.As(err, &malformedErr), errors.Is(err, templateapi.ErrNoMessageID):
		return NewServiceError(constants.ErrCodeMalformedResponse, err)
	case errors.As(err, &transportErr):
		return NewServiceError(constants.ErrCodeTransport, err)
	default:
		return NewServiceError(constants.ErrCodeInternalError, err)
	}
}
