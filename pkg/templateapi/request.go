package templateapi

import "github.com/Behyna/sms-services/templateconsole/internal/model"

type TemplateQuery struct {
	Keyword  string
	Status   model.TemplateStatus
	Channel  model.Channel
	SourceID string
	Page     int
	PageSize int
}

type CreateTemplateRequest struct {
	Name          string        `json:"name"`
	SignName      string        `json:"sign_name,omitempty"`
	SourceID      string        `json:"source_id"`
	Channel       model.Channel `json:"channel"`
	Subject       string        `json:"subject"`
	Content       string        `json:"content"`
	RelTemplateID string        `json:"rel_template_id,omitempty"`
}

// UpdateTemplateRequest only serializes the fields that are set, so an approval
// is just {template_id, status}.
type UpdateTemplateRequest struct {
	TemplateID    string                `json:"template_id"`
	Name          *string               `json:"name,omitempty"`
	SignName      *string               `json:"sign_name,omitempty"`
	SourceID      *string               `json:"source_id,omitempty"`
	Channel       *model.Channel        `json:"channel,omitempty"`
	Subject       *string               `json:"subject,omitempty"`
	Content       *string               `json:"content,omitempty"`
	RelTemplateID *string               `json:"rel_template_id,omitempty"`
	Status        *model.TemplateStatus `json:"status,omitempty"`
}

type deleteTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

type SendMessageRequest struct {
	TemplateID   string `json:"templateId"`
	To           string `json:"to"`
	TemplateData any    `json:"templateData"`
	Subject      string `json:"subject,omitempty"`
	Priority     int    `json:"priority,omitempty"`
}

type RecordQuery struct {
	TemplateID string
	Status     model.RecordStatus
	Page       int
	PageSize   int
}
