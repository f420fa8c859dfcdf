package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/stretchr/testify/mock"
)

type TemplateService struct {
	mock.Mock
}

func (_m *TemplateService) ListTemplates(ctx context.Context, p model.Principal, query service.ListTemplatesQuery) (model.Page[model.Template], error) {
	ret := _m.Called(ctx, p, query)
	return ret.Get(0).(model.Page[model.Template]), ret.Error(1)
}

func (_m *TemplateService) ListPendingTemplates(ctx context.Context, p model.Principal, query service.ListTemplatesQuery) (model.Page[model.Template], error) {
	ret := _m.Called(ctx, p, query)
	return ret.Get(0).(model.Page[model.Template]), ret.Error(1)
}

func (_m *TemplateService) GetTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	ret := _m.Called(ctx, p, templateID)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateService) CreateTemplate(ctx context.Context, p model.Principal, cmd service.CreateTemplateCommand) (model.Template, error) {
	ret := _m.Called(ctx, p, cmd)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateService) UpdateTemplate(ctx context.Context, p model.Principal, cmd service.UpdateTemplateCommand) (model.Template, error) {
	ret := _m.Called(ctx, p, cmd)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateService) ApproveTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	ret := _m.Called(ctx, p, templateID)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateService) RejectTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	ret := _m.Called(ctx, p, templateID)
	return ret.Get(0).(model.Template), ret.Error(1)
}

func (_m *TemplateService) DeleteTemplate(ctx context.Context, p model.Principal, templateID string) error {
	ret := _m.Called(ctx, p, templateID)
	return ret.Error(0)
}

func (_m *TemplateService) BatchApprove(ctx context.Context, p model.Principal, templateIDs []string) (service.BatchResult, error) {
	ret := _m.Called(ctx, p, templateIDs)
	return ret.Get(0).(service.BatchResult), ret.Error(1)
}
