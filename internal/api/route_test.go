package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/api"
	v1 "github.com/Behyna/sms-services/templateconsole/internal/api/v1"
	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/constants"
	middleware "github.com/Behyna/sms-services/templateconsole/internal/error"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/mocks"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Successful bool            `json:"successful"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	TrackID    string          `json:"x_track_id"`
	Result     json.RawMessage `json:"result"`
}

type testServer struct {
	app       *fiber.App
	templates *mocks.TemplateService
	messages  *mocks.MessageService
	store     session.Store
}

func newTestServer() testServer {
	logger := zap.NewNop()
	cfg := &config.Config{Session: config.Session{DefaultRole: "MARKETER", DefaultUser: "console"}}

	templates := &mocks.TemplateService{}
	messages := &mocks.MessageService{}
	store := session.NewStore(cfg, logger)
	registry := metrics.NewRegistry()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger)})
	handler := v1.NewHandler(logger, templates, messages, store)
	api.SetupRoutes(app, handler, store, metrics.NewMetrics(registry), registry, logger)

	return testServer{app: app, templates: templates, messages: messages, store: store}
}

func (s testServer) do(t *testing.T, method, target, body string, headers map[string]string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	_ = json.Unmarshal(raw, &env)

	return resp, env
}

func principal(role model.Role, user string) model.Principal {
	return model.Principal{Role: role, UserID: user}
}

func TestRoutes_Ping(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))
}

func TestRoutes_CreateTemplate(t *testing.T) {
	s := newTestServer()

	cmd := service.CreateTemplateCommand{
		Name:     "Order Notification",
		SourceID: "src-1",
		Channel:  model.ChannelEmail,
		Subject:  "Order Shipped",
		Content:  "Dear ${name}",
	}
	s.templates.On("CreateTemplate", mock.Anything, principal(model.RoleMarketer, "alex"), cmd).
		Return(model.Template{TemplateID: "tpl-9", Name: "Order Notification", Channel: model.ChannelEmail,
			Status: model.TemplateStatusPending}, nil)

	resp, env := s.do(t, http.MethodPost, "/v1/templates",
		`{"name":"Order Notification","source_id":"src-1","channel":1,"subject":"Order Shipped","content":"Dear ${name}"}`,
		map[string]string{"X-Role": "marketer", "X-User": "alex", templateapi.HeaderRequestID: "req-1"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(templateapi.HeaderRequestID))
	assert.True(t, env.Successful)
	assert.Equal(t, "req-1", env.TrackID)

	var result map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "tpl-9", result["template_id"])
	assert.Equal(t, float64(1), result["status"])
	assert.Equal(t, "Pending", result["status_label"])
	assert.Equal(t, "Email", result["channel_label"])
	s.templates.AssertExpectations(t)
}

func TestRoutes_Errors(t *testing.T) {
	t.Run("role failure maps to 403", func(t *testing.T) {
		s := newTestServer()
		s.templates.On("ApproveTemplate", mock.Anything, principal(model.RoleMarketer, "console"), "tpl-1").
			Return(model.Template{}, service.NewServiceError(constants.ErrCodeRoleNotPermitted,
				errors.New("MARKETER cannot change template status")))

		resp, env := s.do(t, http.MethodPost, "/v1/templates/tpl-1/approve", "", nil)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.False(t, env.Successful)
		assert.Equal(t, constants.ErrCodeRoleNotPermitted, env.Code)
		assert.Equal(t, "MARKETER cannot change template status", env.Message)
		assert.NotEmpty(t, env.TrackID)
	})

	t.Run("unknown role header", func(t *testing.T) {
		s := newTestServer()

		resp, env := s.do(t, http.MethodGet, "/v1/templates", "", map[string]string{"X-Role": "owner"})

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeRoleNotPermitted, env.Code)
	})

	t.Run("state conflict maps to 409", func(t *testing.T) {
		s := newTestServer()
		s.templates.On("UpdateTemplate", mock.Anything, mock.Anything, mock.MatchedBy(func(cmd service.UpdateTemplateCommand) bool {
			return cmd.TemplateID == "tpl-1" && cmd.Content != nil && *cmd.Content == "new"
		})).Return(model.Template{}, service.NewServiceError(constants.ErrCodeInvalidState, errors.New("template tpl-1 is Approved")))

		resp, env := s.do(t, http.MethodPut, "/v1/templates/tpl-1", `{"content":"new"}`, nil)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeInvalidState, env.Code)
	})

	t.Run("backend failures map to 502", func(t *testing.T) {
		s := newTestServer()
		s.templates.On("GetTemplate", mock.Anything, mock.Anything, "tpl-1").
			Return(model.Template{}, service.NewServiceError(constants.ErrCodeMalformedResponse,
				&templateapi.MalformedResponseError{Preview: "{bad"}))

		resp, env := s.do(t, http.MethodGet, "/v1/templates/tpl-1", "", nil)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "invalid JSON response: {bad", env.Message)
	})

	t.Run("internal errors hide their cause", func(t *testing.T) {
		s := newTestServer()
		s.templates.On("DeleteTemplate", mock.Anything, mock.Anything, "tpl-1").Return(errors.New("secret detail"))

		resp, env := s.do(t, http.MethodDelete, "/v1/templates/tpl-1", "", nil)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeInternalError, env.Code)
		assert.NotContains(t, env.Message, "secret")
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer()

		resp, env := s.do(t, http.MethodPost, "/v1/templates", `{"name":`, nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, env.Code)
	})
}

func TestRoutes_BatchApprove(t *testing.T) {
	s := newTestServer()
	cause := service.NewServiceError(constants.ErrCodeBusiness, &templateapi.BusinessError{Code: "500", Message: "quota exceeded"})
	s.templates.On("BatchApprove", mock.Anything, principal(model.RoleManager, "sam"), []string{"tpl-1", "tpl-2", "tpl-3"}).
		Return(service.BatchResult{Approved: []string{"tpl-1"}},
			&service.BatchError{Index: 1, TemplateID: "tpl-2", Approved: []string{"tpl-1"}, Cause: cause})

	resp, env := s.do(t, http.MethodPost, "/v1/templates/approve", `{"templateIds":["tpl-1","tpl-2","tpl-3"]}`,
		map[string]string{"X-Role": "MANAGER", "X-User": "sam"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, constants.ErrCodeBusiness, env.Code)
	assert.Contains(t, env.Message, "item 2 (tpl-2)")

	var result struct {
		Approved    []string `json:"approved"`
		FailedIndex int      `json:"failedIndex"`
		TemplateID  string   `json:"templateId"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, []string{"tpl-1"}, result.Approved)
	assert.Equal(t, 1, result.FailedIndex)
	assert.Equal(t, "tpl-2", result.TemplateID)
}

func TestRoutes_BatchApprove_InternalCauseIsHidden(t *testing.T) {
	s := newTestServer()
	cause := service.NewServiceError(constants.ErrCodeInternalError, errors.New("dial tcp 10.0.0.5:3306: refused"))
	s.templates.On("BatchApprove", mock.Anything, principal(model.RoleManager, "sam"), []string{"tpl-1", "tpl-2"}).
		Return(service.BatchResult{Approved: []string{"tpl-1"}},
			&service.BatchError{Index: 1, TemplateID: "tpl-2", Approved: []string{"tpl-1"}, Cause: cause})

	resp, env := s.do(t, http.MethodPost, "/v1/templates/approve", `{"templateIds":["tpl-1","tpl-2"]}`,
		map[string]string{"X-Role": "MANAGER", "X-User": "sam"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, constants.ErrCodeInternalError, env.Code)
	assert.Equal(t, constants.ErrMsgInternalError, env.Message)
	assert.NotContains(t, env.Message, "10.0.0.5")
	assert.Contains(t, string(env.Result), `"templateId":"tpl-2"`)
}

func TestRoutes_Session(t *testing.T) {
	s := newTestServer()

	resp, env := s.do(t, http.MethodPut, "/v1/session/role", `{"role":"manager"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var switched v1.SessionResponse
	require.NoError(t, json.Unmarshal(env.Result, &switched))
	assert.Equal(t, model.RoleManager, switched.Role)
	assert.True(t, switched.CanReview)

	_, env = s.do(t, http.MethodGet, "/v1/session", "", nil)

	var current v1.SessionResponse
	require.NoError(t, json.Unmarshal(env.Result, &current))
	assert.Equal(t, model.RoleManager, current.Role)
	assert.Equal(t, "console", current.User)

	resp, env = s.do(t, http.MethodPut, "/v1/session/role", `{"role":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.ErrCodeValidationFailed, env.Code)
}

func TestRoutes_SendTestAndRecords(t *testing.T) {
	s := newTestServer()

	s.messages.On("SendTest", mock.Anything, principal(model.RoleMarketer, "console"), service.SendTestCommand{
		TemplateID: "tpl-1", Channel: model.ChannelSMS, To: "+16502530000", Subject: "Hi", Priority: 1,
		TemplateData: `{"code":"1234"}`,
	}).Return(service.SendTestResponse{MsgID: "msg-1",
		Next: service.Navigation{View: service.ViewRecords, State: map[string]string{"msgId": "msg-1"}}}, nil)

	resp, env := s.do(t, http.MethodPost, "/v1/messages/test",
		`{"templateId":"tpl-1","channel":2,"to":"+16502530000","subject":"Hi","priority":1,"templateData":"{\"code\":\"1234\"}"}`, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sent service.SendTestResponse
	require.NoError(t, json.Unmarshal(env.Result, &sent))
	assert.Equal(t, "records", sent.Next.View)
	assert.Equal(t, "msg-1", sent.Next.State["msgId"])

	s.messages.On("SearchRecords", mock.Anything, mock.Anything, service.SearchRecordsQuery{MsgID: "msg-1"}).
		Return(service.RecordSearchResponse{
			Page: model.Page[model.MessageRecord]{
				List:  []model.MessageRecord{{MsgID: "msg-1", Channel: model.ChannelSMS, Status: model.RecordStatusSuccess}},
				Total: 1, Page: 1, PageSize: 1,
			},
			ExactMatch: true,
		}, nil)

	resp, env = s.do(t, http.MethodGet, "/v1/records?msgId=msg-1", "", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		List []struct {
			MsgID        string `json:"msg_id"`
			ChannelLabel string `json:"channel_label"`
		} `json:"list"`
		ExactMatch bool `json:"exactMatch"`
		TotalPages int  `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Result, &page))
	require.Len(t, page.List, 1)
	assert.Equal(t, "SMS", page.List[0].ChannelLabel)
	assert.True(t, page.ExactMatch)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRoutes_Metrics(t *testing.T) {
	s := newTestServer()

	_, _ = s.do(t, http.MethodGet, "/ping", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "templateconsole_http_requests_total")
}
