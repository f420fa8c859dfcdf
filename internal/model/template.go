package model

import "fmt"

type Channel int

const (
	ChannelEmail Channel = 1
	ChannelSMS   Channel = 2
)

func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "Email"
	case ChannelSMS:
		return "SMS"
	default:
		return fmt.Sprintf("Channel %d", int(c))
	}
}

func (c Channel) Known() bool {
	return c == ChannelEmail || c == ChannelSMS
}

type TemplateStatus int

const (
	TemplateStatusPending  TemplateStatus = 1
	TemplateStatusApproved TemplateStatus = 2
	TemplateStatusRejected TemplateStatus = 3
)

func (s TemplateStatus) String() string {
	switch s {
	case TemplateStatusPending:
		return "Pending"
	case TemplateStatusApproved:
		return "Approved"
	case TemplateStatusRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Status %d", int(s))
	}
}

func (s TemplateStatus) Known() bool {
	return s >= TemplateStatusPending && s <= TemplateStatusRejected
}

// Template is the canonical shape of a message template after normalization.
// CreateTime and ModifyTime are passed through exactly as the backend reports them.
type Template struct {
	ID            int64          `json:"id"`
	TemplateID    string         `json:"template_id"`
	RelTemplateID string         `json:"rel_template_id,omitempty"`
	Name          string         `json:"name"`
	SignName      string         `json:"sign_name"`
	SourceID      string         `json:"source_id"`
	Channel       Channel        `json:"channel"`
	Subject       string         `json:"subject"`
	Content       string         `json:"content"`
	Status        TemplateStatus `json:"status"`
	Creator       string         `json:"creator,omitempty"`
	CreateTime    string         `json:"create_time"`
	ModifyTime    string         `json:"modify_time"`
}

func (t Template) IsPending() bool {
	return t.Status == TemplateStatusPending
}
