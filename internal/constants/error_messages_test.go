package constants_test

import (
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code     string
		expected int
	}{
		{code: constants.ErrCodeValidationFailed, expected: 400},
		{code: constants.ErrCodeRoleNotPermitted, expected: 403},
		{code: constants.ErrCodeTemplateNotFound, expected: 404},
		{code: constants.ErrCodeInvalidState, expected: 409},
		{code: constants.ErrCodeBusiness, expected: 422},
		{code: constants.ErrCodeTransport, expected: 502},
		{code: constants.ErrCodeMalformedResponse, expected: 502},
		{code: "SOMETHING_ELSE", expected: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, constants.GetHTTPStatus(tc.code))
		})
	}
}

func TestGetErrorMessage_Unknown(t *testing.T) {
	assert.Equal(t, constants.ErrMsgInternalError, constants.GetErrorMessage("NOPE"))
}
