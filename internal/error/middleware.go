package middleware

import (
	"errors"

	"github.com/Behyna/sms-services/templateconsole/internal/api/contract"
	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		trackID, _ := templateapi.RequestIDFrom(c.UserContext())

		var batchErr *service.BatchError
		if errors.As(err, &batchErr) {
			resp := serviceResponse(err, trackID)
			resp.Result = fiber.Map{
				"approved":    batchErr.Approved,
				"failedIndex": batchErr.Index,
				"templateId":  batchErr.TemplateID,
			}
			if resp.Code != constants.ErrCodeInternalError {
				resp.Message = batchErr.Error()
			}
			return c.Status(constants.GetHTTPStatus(resp.Code)).JSON(resp)
		}

		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			resp := serviceResponse(serviceErr, trackID)
			if resp.Code == constants.ErrCodeInternalError {
				logger.Error("Unhandled service error", zap.Error(err), zap.String("requestID", trackID))
			}
			return c.Status(constants.GetHTTPStatus(resp.Code)).JSON(resp)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.ResponseError{
				Code:    constants.ErrCodeInvalidRequestBody,
				Message: fiberErr.Message,
				Error:   fiberErr.Message,
				TrackID: trackID,
			})
		}

		logger.Error("Unhandled error", zap.Error(err), zap.String("requestID", trackID))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.ResponseError{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
			Error:   constants.GetErrorMessage(constants.ErrCodeInternalError),
			TrackID: trackID,
		})
	}
}

// serviceResponse renders the error chain as one human-readable message.
// Internal failures never leak their cause.
func serviceResponse(err error, trackID string) contract.ResponseError {
	code := service.Code(err)
	status := constants.GetHTTPStatus(code)
	if status == fiber.StatusInternalServerError {
		code = constants.ErrCodeInternalError
	}

	message := service.Message(err)
	if code == constants.ErrCodeInternalError {
		message = constants.GetErrorMessage(code)
	}

	return contract.ResponseError{
		Code:    code,
		Message: message,
		Error:   constants.GetErrorMessage(code),
		TrackID: trackID,
	}
}
