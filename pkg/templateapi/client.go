package templateapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/pkg/httpclient"
)

const (
	TemplateListEndpoint      = "/template-list"
	TemplateEndpoint          = "/template"
	TemplateCreateEndpoint    = "/template-create"
	TemplateUpdateEndpoint    = "/template-update"
	TemplateDeleteEndpoint    = "/template-delete"
	SendMessageEndpoint       = "/send-message"
	MessageRecordEndpoint     = "/message-record"
	MessageRecordPageEndpoint = "/message-record-page"
)

// Client is the only way the rest of the console talks to the template backend.
// Every method attaches the correlation headers and returns normalized models.
type Client interface {
	ListTemplates(ctx context.Context, query TemplateQuery) (model.Page[model.Template], error)
	GetTemplate(ctx context.Context, templateID string) (model.Template, error)
	// CreateTemplate and UpdateTemplate return a zero Template when the backend
	// acknowledges without echoing the record.
	CreateTemplate(ctx context.Context, request CreateTemplateRequest) (model.Template, error)
	UpdateTemplate(ctx context.Context, request UpdateTemplateRequest) (model.Template, error)
	DeleteTemplate(ctx context.Context, templateID string) error
	SendMessage(ctx context.Context, request SendMessageRequest) (SendMessageResult, error)
	GetMessageRecords(ctx context.Context, msgID string) ([]model.MessageRecord, error)
	ListMessageRecords(ctx context.Context, query RecordQuery) (model.Page[model.MessageRecord], error)
}

// Observer receives the outcome of every backend call.
type Observer interface {
	ObserveCall(endpoint string, outcome string, duration time.Duration)
}

type client struct {
	http     httpclient.HTTPClient
	config   Config
	observer Observer
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient, observer Observer) Client {
	return &client{http: httpClient, config: cfg, observer: observer}
}

func (c *client) ListTemplates(ctx context.Context, query TemplateQuery) (model.Page[model.Template], error) {
	params := url.Values{}
	setString(params, "keyword", query.Keyword)
	setInt(params, "status", int(query.Status))
	setInt(params, "channel", int(query.Channel))
	setString(params, "source", query.SourceID)
	setInt(params, "page", query.Page)
	setInt(params, "pageSize", query.PageSize)

	payload, err := c.get(ctx, TemplateListEndpoint, params)
	if err != nil {
		return model.Page[model.Template]{}, err
	}

	items := objects(payload.List())
	page := model.Page[model.Template]{List: make([]model.Template, 0, len(items))}
	for _, item := range items {
		page.List = append(page.List, NormalizeTemplate(item))
	}

	page.Total, page.Page, page.PageSize = payload.pageMeta(len(page.List), query.Page, query.PageSize)
	return page, nil
}

func (c *client) GetTemplate(ctx context.Context, templateID string) (model.Template, error) {
	params := url.Values{}
	params.Set("templateId", templateID)

	payload, err := c.get(ctx, TemplateEndpoint, params)
	if err != nil {
		return model.Template{}, err
	}

	template, _, ok := templateFrom(payload, templateID)
	if !ok {
		return model.Template{}, fmt.Errorf("template %s: %w", templateID, ErrNotFound)
	}

	return template, nil
}

func (c *client) CreateTemplate(ctx context.Context, request CreateTemplateRequest) (model.Template, error) {
	payload, err := c.post(ctx, TemplateCreateEndpoint, request)
	if err != nil {
		return model.Template{}, err
	}

	if template, raw, ok := templateFrom(payload, ""); ok {
		// NormalizeTemplate defaults a missing channel, which would turn an
		// SMS template into email.
		if _, present := lookup(raw, "channel"); !present {
			template.Channel = request.Channel
		}
		return template, nil
	}

	// Some deployments answer a create with the bare identifier.
	if id := payload.String(); id != "" {
		return model.Template{TemplateID: id}, nil
	}

	return model.Template{}, nil
}

func (c *client) UpdateTemplate(ctx context.Context, request UpdateTemplateRequest) (model.Template, error) {
	payload, err := c.post(ctx, TemplateUpdateEndpoint, request)
	if err != nil {
		return model.Template{}, err
	}

	template, _, _ := templateFrom(payload, request.TemplateID)
	return template, nil
}

func (c *client) DeleteTemplate(ctx context.Context, templateID string) error {
	_, err := c.post(ctx, TemplateDeleteEndpoint, deleteTemplateRequest{TemplateID: templateID})
	return err
}

func (c *client) SendMessage(ctx context.Context, request SendMessageRequest) (SendMessageResult, error) {
	payload, err := c.post(ctx, SendMessageEndpoint, request)
	if err != nil {
		return SendMessageResult{}, err
	}

	var result SendMessageResult
	switch payload.Kind() {
	case KindScalar:
		result.MsgID = payload.String()
	case KindObject:
		result.MsgID = stringField(payload.Object(), "msg_id", "msgId")
		result.Status = stringField(payload.Object(), "status")
	}

	if result.MsgID == "" {
		return SendMessageResult{}, ErrNoMessageID
	}

	return result, nil
}

func (c *client) GetMessageRecords(ctx context.Context, msgID string) ([]model.MessageRecord, error) {
	params := url.Values{}
	params.Set("msgId", msgID)

	payload, err := c.get(ctx, MessageRecordEndpoint, params)
	if err != nil {
		return nil, err
	}

	items := objects(payload.List())

	// A lookup by id may come back as the single record itself.
	if obj := payload.Object(); len(items) == 0 && obj != nil {
		if _, ok := lookup(obj, "msg_id", "msgId"); ok {
			items = []map[string]any{obj}
		}
	}

	records := make([]model.MessageRecord, 0, len(items))
	for _, item := range items {
		records = append(records, NormalizeRecord(item))
	}

	return records, nil
}

func (c *client) ListMessageRecords(ctx context.Context, query RecordQuery) (model.Page[model.MessageRecord], error) {
	params := url.Values{}
	setString(params, "templateId", query.TemplateID)
	setInt(params, "status", int(query.Status))
	setInt(params, "page", query.Page)
	setInt(params, "pageSize", query.PageSize)

	payload, err := c.get(ctx, MessageRecordPageEndpoint, params)
	if err != nil {
		return model.Page[model.MessageRecord]{}, err
	}

	items := objects(payload.List())
	page := model.Page[model.MessageRecord]{List: make([]model.MessageRecord, 0, len(items))}
	for _, item := range items {
		page.List = append(page.List, NormalizeRecord(item))
	}

	page.Total, page.Page, page.PageSize = payload.pageMeta(len(page.List), query.Page, query.PageSize)
	return page, nil
}

func (c *client) get(ctx context.Context, endpoint string, params url.Values) (Payload, error) {
	target := c.config.BaseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	start := time.Now()
	resp, err := c.http.Get(ctx, target, c.headers(ctx, false))
	payload, err := c.read(resp, err)
	c.observe(endpoint, start, err)

	return payload, err
}

func (c *client) post(ctx context.Context, endpoint string, body any) (Payload, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return Payload{}, fmt.Errorf("encoding error: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Post(ctx, c.config.BaseURL+endpoint, &buf, c.headers(ctx, true))
	payload, err := c.read(resp, err)
	c.observe(endpoint, start, err)

	return payload, err
}

func (c *client) read(resp *http.Response, err error) (Payload, error) {
	if err != nil {
		return Payload{}, &TransportError{Cause: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, &TransportError{StatusCode: resp.StatusCode, Cause: err}
	}

	return Decode(resp.StatusCode, body)
}

func (c *client) observe(endpoint string, start time.Time, err error) {
	if c.observer == nil {
		return
	}

	c.observer.ObserveCall(endpoint, outcome(err), time.Since(start))
}

// templateFrom picks the template out of a single-record payload. A non-empty
// wantID must match; list-shaped replies can carry other templates.
func templateFrom(payload Payload, wantID string) (model.Template, map[string]any, bool) {
	candidates := objects(payload.List())
	if obj := payload.Object(); obj != nil {
		if nested, ok := obj["template"].(map[string]any); ok {
			candidates = append([]map[string]any{nested}, candidates...)
		}
		candidates = append([]map[string]any{obj}, candidates...)
	}

	for _, candidate := range candidates {
		template := NormalizeTemplate(candidate)
		if template.TemplateID == "" || (wantID != "" && template.TemplateID != wantID) {
			continue
		}
		return template, candidate, true
	}

	return model.Template{}, nil, false
}

func setString(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setInt(params url.Values, key string, value int) {
	if value != 0 {
		params.Set(key, strconv.Itoa(value))
	}
}
