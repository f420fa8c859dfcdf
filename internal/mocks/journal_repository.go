package mocks

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/stretchr/testify/mock"
)

type JournalRepository struct {
	mock.Mock
}

func (_m *JournalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

func (_m *JournalRepository) ListByTemplateID(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error) {
	ret := _m.Called(ctx, templateID, limit)
	var entries []model.JournalEntry
	if v := ret.Get(0); v != nil {
		entries = v.([]model.JournalEntry)
	}
	return entries, ret.Error(1)
}
