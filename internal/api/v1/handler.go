package v1

import (
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/api/contract"
	"github.com/Behyna/sms-services/templateconsole/internal/api/v1/middleware"
	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const codeSuccess = "success"

type Handler struct {
	logger          *zap.Logger
	templateService service.TemplateService
	messageService  service.MessageService
	store           session.Store
}

func NewHandler(logger *zap.Logger, templateService service.TemplateService, messageService service.MessageService,
	store session.Store) *Handler {
	return &Handler{
		logger:          logger,
		templateService: templateService,
		messageService:  messageService,
		store:           store,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	return h.ok(c, fiber.StatusOK, newSessionResponse(middleware.PrincipalFrom(c)))
}

func (h *Handler) SwitchRole(c *fiber.Ctx) error {
	var request SwitchRoleRequest
	if err := c.BodyParser(&request); err != nil {
		return h.badBody(c, err)
	}

	p, err := h.store.Switch(request.Role)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	return h.ok(c, fiber.StatusOK, newSessionResponse(p))
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	page, err := h.templateService.ListTemplates(c.UserContext(), middleware.PrincipalFrom(c), templateQuery(c))
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplatePage(page))
}

func (h *Handler) ListPendingTemplates(c *fiber.Ctx) error {
	page, err := h.templateService.ListPendingTemplates(c.UserContext(), middleware.PrincipalFrom(c), templateQuery(c))
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplatePage(page))
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	t, err := h.templateService.GetTemplate(c.UserContext(), middleware.PrincipalFrom(c), c.Params("id"))
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplateResponse(t))
}

func (h *Handler) CreateTemplate(c *fiber.Ctx) error {
	var request CreateTemplateRequest
	if err := c.BodyParser(&request); err != nil {
		return h.badBody(c, err)
	}

	cmd := service.CreateTemplateCommand{
		Name:          request.Name,
		SignName:      request.SignName,
		SourceID:      request.SourceID,
		Channel:       request.Channel,
		Subject:       request.Subject,
		Content:       request.Content,
		RelTemplateID: request.RelTemplateID,
	}

	t, err := h.templateService.CreateTemplate(c.UserContext(), middleware.PrincipalFrom(c), cmd)
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusCreated, newTemplateResponse(t))
}

func (h *Handler) UpdateTemplate(c *fiber.Ctx) error {
	var request UpdateTemplateRequest
	if err := c.BodyParser(&request); err != nil {
		return h.badBody(c, err)
	}

	cmd := service.UpdateTemplateCommand{
		TemplateID:    c.Params("id"),
		Name:          request.Name,
		SignName:      request.SignName,
		SourceID:      request.SourceID,
		Channel:       request.Channel,
		Subject:       request.Subject,
		Content:       request.Content,
		RelTemplateID: request.RelTemplateID,
		Status:        request.Status,
	}

	t, err := h.templateService.UpdateTemplate(c.UserContext(), middleware.PrincipalFrom(c), cmd)
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplateResponse(t))
}

func (h *Handler) ApproveTemplate(c *fiber.Ctx) error {
	t, err := h.templateService.ApproveTemplate(c.UserContext(), middleware.PrincipalFrom(c), c.Params("id"))
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplateResponse(t))
}

func (h *Handler) RejectTemplate(c *fiber.Ctx) error {
	t, err := h.templateService.RejectTemplate(c.UserContext(), middleware.PrincipalFrom(c), c.Params("id"))
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newTemplateResponse(t))
}

func (h *Handler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.templateService.DeleteTemplate(c.UserContext(), middleware.PrincipalFrom(c), c.Params("id")); err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, fiber.Map{"templateId": c.Params("id"), "deleted": true})
}

func (h *Handler) BatchApprove(c *fiber.Ctx) error {
	var request BatchApproveRequest
	if err := c.BodyParser(&request); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.templateService.BatchApprove(c.UserContext(), middleware.PrincipalFrom(c), request.TemplateIDs)
	if err != nil {
		return err
	}

	h.logger.Info("Batch approval completed",
		zap.Int("approved", len(result.Approved)),
		zap.Int("skipped", len(result.Skipped)))

	return h.ok(c, fiber.StatusOK, result)
}

func (h *Handler) SendTest(c *fiber.Ctx) error {
	var request SendTestRequest
	if err := c.BodyParser(&request); err != nil {
		return h.badBody(c, err)
	}

	cmd := service.SendTestCommand{
		TemplateID:   request.TemplateID,
		Channel:      request.Channel,
		To:           request.To,
		Subject:      request.Subject,
		Priority:     request.Priority,
		TemplateData: request.TemplateData,
	}

	resp, err := h.messageService.SendTest(c.UserContext(), middleware.PrincipalFrom(c), cmd)
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, resp)
}

func (h *Handler) SearchRecords(c *fiber.Ctx) error {
	query := service.SearchRecordsQuery{
		MsgID:      c.Query("msgId"),
		TemplateID: c.Query("templateId"),
		Status:     model.RecordStatus(c.QueryInt("status")),
		Page:       c.QueryInt("page"),
		PageSize:   c.QueryInt("pageSize"),
	}

	resp, err := h.messageService.SearchRecords(c.UserContext(), middleware.PrincipalFrom(c), query)
	if err != nil {
		return err
	}

	return h.ok(c, fiber.StatusOK, newRecordPage(resp))
}

func (h *Handler) ok(c *fiber.Ctx, status int, result any) error {
	trackID, _ := templateapi.RequestIDFrom(c.UserContext())
	return c.Status(status).JSON(contract.Response{Successful: true, Code: codeSuccess, TrackID: trackID, Result: result})
}

func (h *Handler) badBody(c *fiber.Ctx, err error) error {
	h.logger.Warn("Failed to parse body",
		zap.Error(err),
		zap.String("path", c.Path()),
		zap.String("body", string(c.Body())))

	trackID, _ := templateapi.RequestIDFrom(c.UserContext())
	return c.Status(fiber.StatusBadRequest).JSON(contract.ResponseError{
		Code:    constants.ErrCodeInvalidRequestBody,
		Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		Error:   err.Error(),
		TrackID: trackID,
	})
}

func templateQuery(c *fiber.Ctx) service.ListTemplatesQuery {
	return service.ListTemplatesQuery{
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   model.TemplateStatus(c.QueryInt("status")),
		Channel:  model.Channel(c.QueryInt("channel")),
		SourceID: c.Query("source"),
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("pageSize"),
	}
}
