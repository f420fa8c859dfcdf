package model

import "fmt"

type RecordStatus int

const (
	RecordStatusPending RecordStatus = 1
	RecordStatusSuccess RecordStatus = 2
	RecordStatusFailed  RecordStatus = 3
)

func (s RecordStatus) String() string {
	switch s {
	case RecordStatusPending:
		return "Pending"
	case RecordStatusSuccess:
		return "Success"
	case RecordStatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Status %d", int(s))
	}
}

// MessageRecord is a read-only log entry of one send attempt. TemplateData is
// the serialized substitution values exactly as they were recorded.
type MessageRecord struct {
	ID           int64        `json:"id"`
	MsgID        string       `json:"msg_id"`
	SourceID     string       `json:"source_id"`
	TemplateID   string       `json:"template_id"`
	Channel      Channel      `json:"channel"`
	To           string       `json:"to"`
	Subject      string       `json:"subject"`
	TemplateData string       `json:"template_data"`
	Status       RecordStatus `json:"status"`
	RetryCount   int          `json:"retry_count"`
	CreateTime   string       `json:"create_time"`
	ModifyTime   string       `json:"modify_time"`
}
