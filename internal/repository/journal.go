package repository

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrJournalDuplicate = errors.New("JOURNAL_DUPLICATE")

const mysqlDuplicateEntry = 1062

type JournalRepository interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	ListByTemplateID(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error)
}

type Journal struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &Journal{db: db}
}

func (j *Journal) Create(ctx context.Context, entry *model.JournalEntry) error {
	err := j.db.WithContext(ctx).Create(entry).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrJournalDuplicate
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrJournalDuplicate
	}

	return err
}

func (j *Journal) ListByTemplateID(ctx context.Context, templateID string, limit int) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry

	err := j.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Migrate creates or updates the journal table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.JournalEntry{})
}
