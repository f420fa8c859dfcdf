package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/stretchr/testify/mock"
)

type TemplateClient struct {
	mock.Mock
}

func (_m *TemplateClient) ListTemplates(ctx context.Context, query templateapi.TemplateQuery) (model.Page[model.Template], error) {
	ret := _m.Called(ctx, query)
	return ret.Get(0).(model.Page[model.Template]), ret.Error(1)
}

func (_m *TemplateClient) GetTemplate(ctx context.Context, templateID string) (model.Template, error) {
	ret := _m.Called(ctx, templateID)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateClient) CreateTemplate(ctx context.Context, request templateapi.CreateTemplateRequest) (model.Template, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateClient) UpdateTemplate(ctx context.Context, request templateapi.UpdateTemplateRequest) (model.Template, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateClient) DeleteTemplate(ctx context.Context, templateID string) error {
	ret := _m.Called(ctx, templateID)
	return ret.Error(0)
}

func (_m *TemplateClient) SendMessage(ctx context.Context, request templateapi.SendMessageRequest) (templateapi.SendMessageResult, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(templateapi.SendMessageResult), ret.Error(1)
}

func (_m *TemplateClient) GetMessageRecords(ctx context.Context, msgID string) ([]model.MessageRecord, error) {
	ret := _m.Called(ctx, msgID)
	var records []model.MessageRecord
	if v := ret.Get(0); v != nil {
		records = v.([]model.MessageRecord)
	}
	return records, ret.Error(1)
}

func (_m *TemplateClient) ListMessageRecords(ctx context.Context, query templateapi.RecordQuery) (model.Page[model.MessageRecord], error) {
	ret := _m.Called(ctx, query)
	return ret.Get(0).(model.Page[model.MessageRecord]), ret.Error(1)
}
