package v1

import (
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
)

type SessionResponse struct {
	Role        model.Role `json:"role"`
	User        string     `json:"user"`
	CanReview   bool       `json:"canReview"`
	CanAuthor   bool       `json:"canAuthor"`
	DisplayName string     `json:"displayName"`
}

type TemplateResponse struct {
	model.Template
	ChannelLabel string `json:"channel_label"`
	StatusLabel  string `json:"status_label"`
}

type RecordResponse struct {
	model.MessageRecord
	ChannelLabel string `json:"channel_label"`
	StatusLabel  string `json:"status_label"`
}

type PageResponse[T any] struct {
	List       []T  `json:"list"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	ExactMatch bool `json:"exactMatch,omitempty"`
}

func newSessionResponse(p model.Principal) SessionResponse {
	display := "Marketer"
	if p.IsReviewer() {
		display = "Manager"
	}

	return SessionResponse{
		Role:        p.Role,
		User:        p.UserID,
		CanReview:   p.IsReviewer(),
		CanAuthor:   p.IsAuthor(),
		DisplayName: display,
	}
}

func newTemplateResponse(t model.Template) TemplateResponse {
	return TemplateResponse{Template: t, ChannelLabel: t.Channel.String(), StatusLabel: t.Status.String()}
}

func newRecordResponse(r model.MessageRecord) RecordResponse {
	return RecordResponse{MessageRecord: r, ChannelLabel: r.Channel.String(), StatusLabel: r.Status.String()}
}

func newTemplatePage(page model.Page[model.Template]) PageResponse[TemplateResponse] {
	list := make([]TemplateResponse, 0, len(page.List))
	for _, t := range page.List {
		list = append(list, newTemplateResponse(t))
	}

	return PageResponse[TemplateResponse]{
		List:       list,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}
}

func newRecordPage(resp service.RecordSearchResponse) PageResponse[RecordResponse] {
	list := make([]RecordResponse, 0, len(resp.List))
	for _, r := range resp.List {
		list = append(list, newRecordResponse(r))
	}

	return PageResponse[RecordResponse]{
		List:       list,
		Total:      resp.Total,
		Page:       resp.Page.Page,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages(),
		ExactMatch: resp.ExactMatch,
	}
}
