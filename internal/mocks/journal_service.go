package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/stretchr/testify/mock"
)

type JournalService struct {
	mock.Mock
}

func (_m *JournalService) Append(ctx context.Context, event model.LifecycleEvent) (bool, error) {
	ret := _m.Called(ctx, event)
	return ret.Bool(0), ret.Error(1)
}

func (_m *JournalService) History(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error) {
	ret := _m.Called(ctx, templateID, limit)
	var entries []model.JournalEntry
	if v := ret.Get(0); v != nil {
		entries = v.([]model.JournalEntry)
	}
	return entries, ret.Error(1)
}
