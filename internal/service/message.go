package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/validation"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"go.uber.org/zap"
)

const defaultRecordPageSize = 50

type MessageService interface {
	SendTest(ctx context.Context, p model.Principal, cmd SendTestCommand) (SendTestResponse, error)
	SearchRecords(ctx context.Context, p model.Principal, query SearchRecordsQuery) (RecordSearchResponse, error)
}

type message struct {
	client    templateapi.Client
	validator validation.IXValidator
	pageSize  int
	logger    *zap.Logger
}

func NewMessageService(client templateapi.Client, validator validation.IXValidator, cfg *config.Config,
	logger *zap.Logger) MessageService {
	pageSize := defaultRecordPageSize
	if cfg != nil && cfg.Records.PageSize > 0 {
		pageSize = cfg.Records.PageSize
	}

	return &message{client: client, validator: validator, pageSize: pageSize, logger: logger}
}

func (m *message) SendTest(ctx context.Context, p model.Principal, cmd SendTestCommand) (SendTestResponse, error) {
	if err := CanSendTest(p); err != nil {
		return SendTestResponse{}, err
	}

	if errs := m.validator.Validate(cmd); len(errs) > 0 {
		return SendTestResponse{}, validationError(m.validator.Message(errs))
	}

	to, err := m.recipient(cmd.Channel, cmd.To)
	if err != nil {
		return SendTestResponse{}, err
	}

	data, err := templateData(cmd.TemplateData)
	if err != nil {
		return SendTestResponse{}, err
	}

	ctx, requestID := templateapi.EnsureRequestID(ctx)
	if p.UserID != "" {
		ctx = templateapi.WithUserID(ctx, p.UserID)
	}

	result, err := m.client.SendMessage(ctx, templateapi.SendMessageRequest{
		TemplateID:   cmd.TemplateID,
		To:           to,
		TemplateData: data,
		Subject:      cmd.Subject,
		Priority:     cmd.Priority,
	})
	if err != nil {
		m.logger.Warn("Failed to send test message",
			zap.Error(err),
			zap.String("templateID", cmd.TemplateID),
			zap.String("requestID", requestID))
		return SendTestResponse{}, backendError(err)
	}

	m.logger.Info("Test message sent",
		zap.String("templateID", cmd.TemplateID),
		zap.String("msgID", result.MsgID),
		zap.String("requestID", requestID))

	return SendTestResponse{
		MsgID:  result.MsgID,
		Status: result.Status,
		Next:   Navigation{View: ViewRecords, State: map[string]string{"msgId": result.MsgID}},
	}, nil
}

// SearchRecords looks up by msgId when one is given and ignores the other
// filters in that case.
func (m *message) SearchRecords(ctx context.Context, p model.Principal, query SearchRecordsQuery) (RecordSearchResponse, error) {
	if err := CanView(p); err != nil {
		return RecordSearchResponse{}, err
	}

	if errs := m.validator.Validate(query); len(errs) > 0 {
		return RecordSearchResponse{}, validationError(m.validator.Message(errs))
	}

	ctx, _ = templateapi.EnsureRequestID(ctx)
	if p.UserID != "" {
		ctx = templateapi.WithUserID(ctx, p.UserID)
	}

	if msgID := strings.TrimSpace(query.MsgID); msgID != "" {
		records, err := m.client.GetMessageRecords(ctx, msgID)
		if err != nil {
			m.logger.Warn("Failed to get message records", zap.Error(err), zap.String("msgID", msgID))
			return RecordSearchResponse{}, backendError(err)
		}

		return RecordSearchResponse{
			Page:       model.Page[model.MessageRecord]{List: records, Total: len(records), Page: 1, PageSize: len(records)},
			ExactMatch: true,
		}, nil
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = m.pageSize
	}

	page, err := m.client.ListMessageRecords(ctx, templateapi.RecordQuery{
		TemplateID: strings.TrimSpace(query.TemplateID),
		Status:     query.Status,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		m.logger.Warn("Failed to list message records", zap.Error(err), zap.String("templateID", query.TemplateID))
		return RecordSearchResponse{}, backendError(err)
	}

	return RecordSearchResponse{Page: page}, nil
}

func (m *message) recipient(channel model.Channel, to string) (string, error) {
	to = strings.TrimSpace(to)

	switch channel {
	case model.ChannelSMS:
		normalized, err := validation.NormalizePhone(to)
		if err != nil {
			return "", validationError("to: " + err.Error())
		}
		return normalized, nil
	case model.ChannelEmail:
		if errs := m.validator.Validate(emailRecipient{To: to}); len(errs) > 0 {
			return "", validationError(m.validator.Message(errs))
		}
	}

	return to, nil
}

// templateData sends text that looks like a JSON object as an object and
// anything else verbatim. Blank input becomes an empty object.
func templateData(text string) (any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	if !strings.HasPrefix(trimmed, "{") {
		return text, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return nil, validationError("templateData must be a valid JSON object")
	}

	return data, nil
}
