package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/stretchr/testify/mock"
)

type MessageService struct {
	mock.Mock
}

func (_m *MessageService) SendTest(ctx context.Context, p model.Principal, cmd service.SendTestCommand) (service.SendTestResponse, error) {
	ret := _m.Called(ctx, p, cmd)
	return ret.Get(0).(service.SendTestResponse), ret.Error(1)
}

func (_m *MessageService) SearchRecords(ctx context.Context, p model.Principal, query service.SearchRecordsQuery) (service.RecordSearchResponse, error) {
	ret := _m.Called(ctx, p, query)
	return ret.Get(0).(service.RecordSearchResponse), ret.Error(1)
}
