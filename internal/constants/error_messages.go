package constants

const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeRoleNotPermitted   = "ROLE_NOT_PERMITTED"
	ErrCodeInvalidState       = "INVALID_STATE"
	ErrCodeTemplateNotFound   = "TEMPLATE_NOT_FOUND"
	ErrCodeTransport          = "TRANSPORT_ERROR"
	ErrCodeMalformedResponse  = "MALFORMED_RESPONSE"
	ErrCodeBusiness           = "BUSINESS_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgValidationFailed   = "request validation failed"
	ErrMsgRoleNotPermitted   = "operation not permitted for the current role"
	ErrMsgInvalidState       = "operation not allowed in the template's current state"
	ErrMsgTemplateNotFound   = "template not found"
	ErrMsgTransport          = "template backend unavailable"
	ErrMsgMalformedResponse  = "template backend returned an unreadable response"
	ErrMsgBusiness           = "template backend rejected the request"
	ErrMsgInternalError      = "Internal server error"
	ErrMsgInvalidRequestBody = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeRoleNotPermitted:   ErrMsgRoleNotPermitted,
	ErrCodeInvalidState:       ErrMsgInvalidState,
	ErrCodeTemplateNotFound:   ErrMsgTemplateNotFound,
	ErrCodeTransport:          ErrMsgTransport,
	ErrCodeMalformedResponse:  ErrMsgMalformedResponse,
	ErrCodeBusiness:           ErrMsgBusiness,
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeRoleNotPermitted:
		return 403
	case ErrCodeTemplateNotFound:
		return 404
	case ErrCodeInvalidState:
		return 409
	case ErrCodeBusiness:
		return 422
	case ErrCodeTransport, ErrCodeMalformedResponse:
		return 502
	default:
		return 500
	}
}
