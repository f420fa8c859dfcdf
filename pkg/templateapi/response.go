package templateapi

type SendMessageResult struct {
	MsgID  string `json:"msgId"`
	Status string `json:"status,omitempty"`
}
