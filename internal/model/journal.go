package model

import "time"

type JournalEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	EventID    string    `gorm:"column:event_id;type:varchar(64);uniqueIndex;not null"`
	Action     string    `gorm:"column:action;type:varchar(16);not null"`
	TemplateID string    `gorm:"column:template_id;type:varchar(128);index;not null"`
	FromStatus int       `gorm:"column:from_status"`
	ToStatus   int       `gorm:"column:to_status"`
	Role       string    `gorm:"column:role;type:varchar(16);not null"`
	UserID     string    `gorm:"column:user_id;type:varchar(128)"`
	RequestID  string    `gorm:"column:request_id;type:varchar(64)"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (JournalEntry) TableName() string {
	return "template_journal"
}

func NewJournalEntry(event LifecycleEvent) JournalEntry {
	return JournalEntry{
		EventID:    event.EventID,
		Action:     string(event.Action),
		TemplateID: event.TemplateID,
		FromStatus: int(event.FromStatus),
		ToStatus:   int(event.ToStatus),
		Role:       string(event.Role),
		UserID:     event.UserID,
		RequestID:  event.RequestID,
		OccurredAt: event.At,
		CreatedAt:  time.Now(),
	}
}
