package service

import "github.com/Behyna/sms-services/templateconsole/internal/model"

type ListTemplatesQuery struct {
	Keyword  string
	Status   model.TemplateStatus
	Channel  model.Channel
	SourceID string
	Page     int
	PageSize int
}

type CreateTemplateCommand struct {
	Name          string        `json:"name" validate:"notblank"`
	SignName      string        `json:"sign_name"`
	SourceID      string        `json:"source_id" validate:"notblank"`
	Channel       model.Channel `json:"channel" validate:"oneof=1 2"`
	Subject       string        `json:"subject" validate:"notblank"`
	Content       string        `json:"content" validate:"notblank"`
	RelTemplateID string        `json:"rel_template_id"`
}

// UpdateTemplateCommand carries only the fields being changed. Status is
// honoured for reviewers alone.
type UpdateTemplateCommand struct {
	TemplateID    string                `json:"template_id" validate:"notblank"`
	Name          *string               `json:"name"`
	SignName      *string               `json:"sign_name"`
	SourceID      *string               `json:"source_id"`
	Channel       *model.Channel        `json:"channel"`
	Subject       *string               `json:"subject"`
	Content       *string               `json:"content"`
	RelTemplateID *string               `json:"rel_template_id"`
	Status        *model.TemplateStatus `json:"status"`
}

type SendTestCommand struct {
	TemplateID   string        `json:"templateId" validate:"notblank"`
	Channel      model.Channel `json:"channel"`
	To           string        `json:"to" validate:"notblank"`
	Subject      string        `json:"subject" validate:"notblank"`
	Priority     int           `json:"priority" validate:"oneof=1 2 3"`
	TemplateData string        `json:"templateData"`
}

type SearchRecordsQuery struct {
	MsgID      string             `json:"msgId"`
	TemplateID string             `json:"templateId"`
	Status     model.RecordStatus `json:"status" validate:"omitempty,oneof=1 2 3"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

type emailRecipient struct {
	To string `json:"to" validate:"email"`
}
