package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/repository"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 50

var ErrIncompleteEvent = errors.New("lifecycle event is missing event_id, action or template_id")

// JournalService keeps the audit trail of lifecycle events.
type JournalService interface {
	Append(ctx context.Context, event model.LifecycleEvent) (bool, error)
	History(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error)
}

type journal struct {
	repo   repository.JournalRepository
	logger *zap.Logger
}

func NewJournalService(repo repository.JournalRepository, logger *zap.Logger) JournalService {
	return &journal{repo: repo, logger: logger}
}

// Append stores event once. Redelivered events report false without error.
func (j *journal) Append(ctx context.Context, event model.LifecycleEvent) (bool, error) {
	if event.EventID == "" || event.Action == "" || event.TemplateID == "" {
		return false, NewServiceError(constants.ErrCodeValidationFailed, ErrIncompleteEvent)
	}

	entry := model.NewJournalEntry(event)
	err := j.repo.Create(ctx, &entry)
	if errors.Is(err, repository.ErrJournalDuplicate) {
		j.logger.Info("Duplicate lifecycle event ignored", zap.String("eventID", event.EventID))
		return false, nil
	}

	if err != nil {
		j.logger.Warn("Failed to store lifecycle event", zap.Error(err), zap.String("eventID", event.EventID))
		return false, NewServiceError(ErrCodeDatabase, err)
	}

	return true, nil
}

func (j *journal) History(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return nil, validationError("template_id is required")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := j.repo.ListByTemplateID(ctx, templateID, limit)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return entries, nil
}
