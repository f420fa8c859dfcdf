package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	err := service.NewServiceError(constants.ErrCodeInvalidState, errors.New("template is approved"))

	assert.Equal(t, constants.ErrCodeInvalidState, service.Code(err))
	assert.Equal(t, constants.ErrCodeInvalidState, service.Code(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, constants.ErrCodeInternalError, service.Code(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	t.Run("client error keeps its cause", func(t *testing.T) {
		err := service.NewServiceError(constants.ErrCodeValidationFailed, errors.New("name is required"))
		assert.Equal(t, "name is required", service.Message(err))
	})

	t.Run("internal error hides its cause", func(t *testing.T) {
		err := service.NewServiceError(constants.ErrCodeInternalError, errors.New("dial tcp: refused"))
		assert.Equal(t, constants.ErrMsgInternalError, service.Message(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "accepts 1 arg(s), received 0", service.Message(errors.New("accepts 1 arg(s), received 0")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, service.Message(nil))
	})
}

func TestBatchError(t *testing.T) {
	cause := service.NewServiceError(constants.ErrCodeInvalidState, errors.New("template is rejected"))
	err := error(&service.BatchError{Index: 1, TemplateID: "tpl-2", Approved: []string{"tpl-1"}, Cause: cause})

	assert.Equal(t, "batch approval stopped at item 2 (tpl-2) after 1 approved: template is rejected", err.Error())
	assert.Equal(t, constants.ErrCodeInvalidState, service.Code(err))

	var batchErr *service.BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Equal(t, []string{"tpl-1"}, batchErr.Approved)
}

func TestSentinels(t *testing.T) {
	assert.EqualError(t, service.ErrRoleNotPermitted, "ROLE_NOT_PERMITTED")
	assert.EqualError(t, service.ErrInvalidState, "INVALID_STATE")
	assert.EqualError(t, service.ErrEmptyBatch, "EMPTY_BATCH")
}
