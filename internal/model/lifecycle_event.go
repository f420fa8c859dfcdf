package model

import "time"

type LifecycleAction string

const (
	ActionCreate  LifecycleAction = "CREATE"
	ActionUpdate  LifecycleAction = "UPDATE"
	ActionApprove LifecycleAction = "APPROVE"
	ActionReject  LifecycleAction = "REJECT"
	ActionDelete  LifecycleAction = "DELETE"
)

type LifecycleEvent struct {
	EventID    string          `json:"event_id"`
	Action     LifecycleAction `json:"action"`
	TemplateID string          `json:"template_id"`
	FromStatus TemplateStatus  `json:"from_status,omitempty"`
	ToStatus   TemplateStatus  `json:"to_status,omitempty"`
	Role       Role            `json:"role"`
	UserID     string          `json:"user_id"`
	RequestID  string          `json:"request_id,omitempty"`
	At         time.Time       `json:"at"`
}
