package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/mocks"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/repository"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJournal_Append(t *testing.T) {
	event := model.LifecycleEvent{
		EventID:    "evt-1",
		Action:     model.ActionApprove,
		TemplateID: "tpl-1",
		FromStatus: model.TemplateStatusPending,
		ToStatus:   model.TemplateStatusApproved,
		Role:       model.RoleManager,
		UserID:     "sam",
	}

	t.Run("stores a new event", func(t *testing.T) {
		repo := &mocks.JournalRepository{}
		svc := service.NewJournalService(repo, zap.NewNop())

		repo.On("Create", context.Background(), mock.MatchedBy(func(e *model.JournalEntry) bool {
			return e.EventID == "evt-1" && e.Action == "APPROVE" && e.FromStatus == 1 && e.ToStatus == 2
		})).Return(nil)

		stored, err := svc.Append(context.Background(), event)

		require.NoError(t, err)
		assert.True(t, stored)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		repo := &mocks.JournalRepository{}
		svc := service.NewJournalService(repo, zap.NewNop())

		repo.On("Create", context.Background(), mock.Anything).Return(repository.ErrJournalDuplicate)

		stored, err := svc.Append(context.Background(), event)

		require.NoError(t, err)
		assert.False(t, stored)
	})

	t.Run("database failure", func(t *testing.T) {
		repo := &mocks.JournalRepository{}
		svc := service.NewJournalService(repo, zap.NewNop())

		repo.On("Create", context.Background(), mock.Anything).Return(errors.New("connection reset"))

		_, err := svc.Append(context.Background(), event)

		assert.Equal(t, service.ErrCodeDatabase, service.Code(err))
	})

	t.Run("incomplete event", func(t *testing.T) {
		repo := &mocks.JournalRepository{}
		svc := service.NewJournalService(repo, zap.NewNop())

		_, err := svc.Append(context.Background(), model.LifecycleEvent{Action: model.ActionCreate})

		assert.Equal(t, constants.ErrCodeValidationFailed, service.Code(err))
		assert.ErrorIs(t, err, service.ErrIncompleteEvent)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJournal_History(t *testing.T) {
	t.Run("defaults the limit", func(t *testing.T) {
		repo := &mocks.JournalRepository{}
		svc := service.NewJournalService(repo, zap.NewNop())

		entries := []model.JournalEntry{{EventID: "evt-2"}, {EventID: "evt-1"}}
		repo.On("ListByTemplateID", context.Background(), "tpl-1", 50).Return(entries, nil)

		got, err := svc.History(context.Background(), " tpl-1 ", 0)

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("requires a template id", func(t *testing.T) {
		svc := service.NewJournalService(&mocks.JournalRepository{}, zap.NewNop())

		_, err := svc.History(context.Background(), "", 10)

		assert.Equal(t, constants.ErrCodeValidationFailed, service.Code(err))
	})
}
