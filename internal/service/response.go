package service

import "github.com/Behyna/sms-services/templateconsole/internal/model"

const ViewRecords = "records"

// Navigation tells the caller which view to open next and with what state.
type Navigation struct {
	View  string            `json:"view"`
	State map[string]string `json:"state"`
}

type SendTestResponse struct {
	MsgID  string     `json:"msgId"`
	Status string     `json:"status,omitempty"`
	Next   Navigation `json:"next"`
}

type RecordSearchResponse struct {
	model.Page[model.MessageRecord]
	ExactMatch bool `json:"exactMatch"`
}

type BatchResult struct {
	Approved  []string `json:"approved"`
	Skipped   []string `json:"skipped"`
	Remaining []string `json:"remaining"`
}
