package v1

import "github.com/Behyna/sms-services/templateconsole/internal/model"

type SwitchRoleRequest struct {
	Role string `json:"role"`
}

type CreateTemplateRequest struct {
	Name          string        `json:"name"`
	SignName      string        `json:"sign_name"`
	SourceID      string        `json:"source_id"`
	Channel       model.Channel `json:"channel"`
	Subject       string        `json:"subject"`
	Content       string        `json:"content"`
	RelTemplateID string        `json:"rel_template_id"`
}

type UpdateTemplateRequest struct {
	Name          *string               `json:"name"`
	SignName      *string               `json:"sign_name"`
	SourceID      *string               `json:"source_id"`
	Channel       *model.Channel        `json:"channel"`
	Subject       *string               `json:"subject"`
	Content       *string               `json:"content"`
	RelTemplateID *string               `json:"rel_template_id"`
	Status        *model.TemplateStatus `json:"status"`
}

type BatchApproveRequest struct {
	TemplateIDs []string `json:"templateIds"`
}

type SendTestRequest struct {
	TemplateID   string        `json:"templateId"`
	Channel      model.Channel `json:"channel"`
	To           string        `json:"to"`
	Subject      string        `json:"subject"`
	Priority     int           `json:"priority"`
	TemplateData string        `json:"templateData"`
}
