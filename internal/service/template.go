package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/validation"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TemplateService interface {
	ListTemplates(ctx context.Context, p model.Principal, query ListTemplatesQuery) (model.Page[model.Template], error)
	ListPendingTemplates(ctx context.Context, p model.Principal, query ListTemplatesQuery) (model.Page[model.Template], error)
	GetTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error)
	CreateTemplate(ctx context.Context, p model.Principal, cmd CreateTemplateCommand) (model.Template, error)
	UpdateTemplate(ctx context.Context, p model.Principal, cmd UpdateTemplateCommand) (model.Template, error)
	ApproveTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error)
	RejectTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error)
	DeleteTemplate(ctx context.Context, p model.Principal, templateID string) error
	BatchApprove(ctx context.Context, p model.Principal, templateIDs []string) (BatchResult, error)
}

type template struct {
	client    templateapi.Client
	recorder  LifecycleRecorder
	validator validation.IXValidator
	pageSize  int
	logger    *zap.Logger
}

func NewTemplateService(client templateapi.Client, recorder LifecycleRecorder, validator validation.IXValidator,
	cfg *config.Config, logger *zap.Logger) TemplateService {
	pageSize := templateapi.DefaultPageSize
	if cfg != nil && cfg.Backend.PageSize > 0 {
		pageSize = cfg.Backend.PageSize
	}

	return &template{client: client, recorder: recorder, validator: validator, pageSize: pageSize, logger: logger}
}

func (s *template) ListTemplates(ctx context.Context, p model.Principal, query ListTemplatesQuery) (model.Page[model.Template], error) {
	if err := CanView(p); err != nil {
		return model.Page[model.Template]{}, err
	}

	ctx, _ = s.scope(ctx, p)
	page, err := s.client.ListTemplates(ctx, s.templateQuery(query))
	if err != nil {
		s.logger.Warn("Failed to list templates", zap.Error(err), zap.String("keyword", query.Keyword))
		return model.Page[model.Template]{}, backendError(err)
	}

	return page, nil
}

// ListPendingTemplates feeds the approval queue. The backend filter is
// re-applied locally since some deployments ignore it.
func (s *template) ListPendingTemplates(ctx context.Context, p model.Principal, query ListTemplatesQuery) (model.Page[model.Template], error) {
	if err := CanChangeStatus(p); err != nil {
		return model.Page[model.Template]{}, err
	}

	query.Status = model.TemplateStatusPending
	page, err := s.ListTemplates(ctx, p, query)
	if err != nil {
		return page, err
	}

	pending := make([]model.Template, 0, len(page.List))
	for _, t := range page.List {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	page.List = pending

	return page, nil
}

func (s *template) GetTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	if err := CanView(p); err != nil {
		return model.Template{}, err
	}

	if strings.TrimSpace(templateID) == "" {
		return model.Template{}, validationError("template_id is required")
	}

	ctx, _ = s.scope(ctx, p)
	return s.fetch(ctx, templateID)
}

func (s *template) CreateTemplate(ctx context.Context, p model.Principal, cmd CreateTemplateCommand) (model.Template, error) {
	if err := CanCreate(p); err != nil {
		s.logger.Warn("Create rejected", zap.String("role", string(p.Role)), zap.Error(err))
		return model.Template{}, err
	}

	if errs := s.validator.Validate(cmd); len(errs) > 0 {
		return model.Template{}, validationError(s.validator.Message(errs))
	}

	ctx, requestID := s.scope(ctx, p)
	request := templateapi.CreateTemplateRequest{
		Name:          cmd.Name,
		SignName:      cmd.SignName,
		SourceID:      cmd.SourceID,
		Channel:       cmd.Channel,
		Subject:       cmd.Subject,
		Content:       cmd.Content,
		RelTemplateID: cmd.RelTemplateID,
	}

	created, err := s.client.CreateTemplate(ctx, request)
	if err != nil {
		s.logger.Warn("Failed to create template", zap.Error(err), zap.String("requestID", requestID))
		return model.Template{}, backendError(err)
	}

	created = completeCreated(created, request, p)
	if created.TemplateID == "" {
		s.logger.Warn("Backend acknowledged create without a template id", zap.String("requestID", requestID))
	}

	s.emit(ctx, p, requestID, model.ActionCreate, created.TemplateID, 0, created.Status)
	s.logger.Info("Template created",
		zap.String("templateID", created.TemplateID),
		zap.String("user", p.UserID),
		zap.String("requestID", requestID))

	return created, nil
}

func (s *template) UpdateTemplate(ctx context.Context, p model.Principal, cmd UpdateTemplateCommand) (model.Template, error) {
	if err := knownRole(p); err != nil {
		return model.Template{}, err
	}

	if err := s.validateUpdate(cmd); err != nil {
		return model.Template{}, err
	}

	if cmd.Status != nil {
		if err := CanChangeStatus(p); err != nil {
			return model.Template{}, err
		}
	}

	ctx, requestID := s.scope(ctx, p)
	current, err := s.fetch(ctx, cmd.TemplateID)
	if err != nil {
		return model.Template{}, err
	}

	if err := CanEdit(p, current); err != nil {
		s.logger.Warn("Update rejected",
			zap.String("templateID", cmd.TemplateID),
			zap.String("role", string(p.Role)),
			zap.Int("status", int(current.Status)))
		return model.Template{}, err
	}

	request := templateapi.UpdateTemplateRequest{
		TemplateID:    cmd.TemplateID,
		Name:          cmd.Name,
		SignName:      cmd.SignName,
		SourceID:      cmd.SourceID,
		Channel:       cmd.Channel,
		Subject:       cmd.Subject,
		Content:       cmd.Content,
		RelTemplateID: cmd.RelTemplateID,
		Status:        cmd.Status,
	}

	updated, err := s.client.UpdateTemplate(ctx, request)
	if err != nil {
		s.logger.Warn("Failed to update template", zap.Error(err), zap.String("templateID", cmd.TemplateID))
		return model.Template{}, backendError(err)
	}

	if updated.TemplateID != cmd.TemplateID {
		updated = applyUpdate(current, request)
	}

	s.emit(ctx, p, requestID, model.ActionUpdate, cmd.TemplateID, current.Status, updated.Status)

	return updated, nil
}

func (s *template) ApproveTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	t, _, err := s.approve(ctx, p, templateID)
	return t, err
}

func (s *template) RejectTemplate(ctx context.Context, p model.Principal, templateID string) (model.Template, error) {
	return s.transition(ctx, p, templateID, model.TemplateStatusRejected, model.ActionReject, CanReject)
}

func (s *template) DeleteTemplate(ctx context.Context, p model.Principal, templateID string) error {
	if err := knownRole(p); err != nil {
		return err
	}

	if strings.TrimSpace(templateID) == "" {
		return validationError("template_id is required")
	}

	ctx, requestID := s.scope(ctx, p)

	var from model.TemplateStatus
	if !p.IsReviewer() {
		current, err := s.fetch(ctx, templateID)
		if err != nil {
			return err
		}

		if err := CanDelete(p, current); err != nil {
			s.logger.Warn("Delete rejected", zap.String("templateID", templateID), zap.String("user", p.UserID))
			return err
		}
		from = current.Status
	}

	if err := s.client.DeleteTemplate(ctx, templateID); err != nil {
		s.logger.Warn("Failed to delete template", zap.Error(err), zap.String("templateID", templateID))
		return backendError(err)
	}

	s.emit(ctx, p, requestID, model.ActionDelete, templateID, from, 0)
	s.logger.Info("Template deleted", zap.String("templateID", templateID), zap.String("user", p.UserID))

	return nil
}

// BatchApprove approves ids in order and stops at the first failure. Earlier
// approvals are not rolled back; a repeated id is approved once.
func (s *template) BatchApprove(ctx context.Context, p model.Principal, templateIDs []string) (BatchResult, error) {
	result := BatchResult{Approved: []string{}, Skipped: []string{}, Remaining: []string{}}

	if err := CanChangeStatus(p); err != nil {
		return result, err
	}

	if len(templateIDs) == 0 {
		return result, emptyBatchError()
	}

	ctx, requestID := s.scope(ctx, p)
	seen := make(map[string]struct{}, len(templateIDs))

	for i, id := range templateIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		_, changed, err := s.approve(ctx, p, id)
		if err != nil {
			result.Remaining = append(result.Remaining, templateIDs[i+1:]...)
			s.logger.Warn("Batch approval stopped",
				zap.Int("index", i),
				zap.String("templateID", id),
				zap.Int("approved", len(result.Approved)),
				zap.String("requestID", requestID),
				zap.Error(err))
			return result, &BatchError{Index: i, TemplateID: id, Approved: result.Approved, Cause: err}
		}

		if changed {
			result.Approved = append(result.Approved, id)
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}

	s.logger.Info("Batch approval finished",
		zap.Int("approved", len(result.Approved)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("requestID", requestID))

	return result, nil
}

// approve reports whether the template actually changed state.
func (s *template) approve(ctx context.Context, p model.Principal, templateID string) (model.Template, bool, error) {
	if err := CanChangeStatus(p); err != nil {
		return model.Template{}, false, err
	}

	if strings.TrimSpace(templateID) == "" {
		return model.Template{}, false, validationError("template_id is required")
	}

	ctx, _ = s.scope(ctx, p)
	current, err := s.fetch(ctx, templateID)
	if err != nil {
		return model.Template{}, false, err
	}

	if current.Status == model.TemplateStatusApproved {
		s.logger.Info("Template already approved", zap.String("templateID", templateID))
		return current, false, nil
	}

	t, err := s.commitStatus(ctx, p, templateID, current, model.TemplateStatusApproved, model.ActionApprove, CanApprove)
	return t, err == nil, err
}

func (s *template) transition(ctx context.Context, p model.Principal, templateID string, to model.TemplateStatus,
	action model.LifecycleAction, allowed func(model.Principal, model.Template) error) (model.Template, error) {
	if err := CanChangeStatus(p); err != nil {
		return model.Template{}, err
	}

	if strings.TrimSpace(templateID) == "" {
		return model.Template{}, validationError("template_id is required")
	}

	ctx, _ = s.scope(ctx, p)
	current, err := s.fetch(ctx, templateID)
	if err != nil {
		return model.Template{}, err
	}

	return s.commitStatus(ctx, p, templateID, current, to, action, allowed)
}

// commitStatus writes to templateID, the id the caller asked for, never to
// whatever id the backend echoed.
func (s *template) commitStatus(ctx context.Context, p model.Principal, templateID string, current model.Template,
	to model.TemplateStatus, action model.LifecycleAction,
	allowed func(model.Principal, model.Template) error) (model.Template, error) {
	if err := allowed(p, current); err != nil {
		s.logger.Warn("Status change rejected",
			zap.String("templateID", templateID),
			zap.String("action", string(action)),
			zap.Int("status", int(current.Status)))
		return model.Template{}, err
	}

	request := templateapi.UpdateTemplateRequest{TemplateID: templateID, Status: &to}
	updated, err := s.client.UpdateTemplate(ctx, request)
	if err != nil {
		s.logger.Warn("Failed to change template status",
			zap.Error(err),
			zap.String("templateID", templateID),
			zap.String("action", string(action)))
		return model.Template{}, backendError(err)
	}

	if updated.TemplateID != templateID {
		updated = applyUpdate(current, request)
	}

	requestID, _ := templateapi.RequestIDFrom(ctx)
	s.emit(ctx, p, requestID, action, templateID, current.Status, updated.Status)
	s.logger.Info("Template status changed",
		zap.String("templateID", templateID),
		zap.String("action", string(action)),
		zap.String("user", p.UserID))

	return updated, nil
}

func (s *template) fetch(ctx context.Context, templateID string) (model.Template, error) {
	t, err := s.client.GetTemplate(ctx, templateID)
	if err != nil {
		s.logger.Warn("Failed to get template", zap.Error(err), zap.String("templateID", templateID))
		return model.Template{}, backendError(err)
	}

	switch t.TemplateID {
	case templateID:
	case "":
		t.TemplateID = templateID
	default:
		s.logger.Warn("Backend returned a different template",
			zap.String("templateID", templateID),
			zap.String("returned", t.TemplateID))
		return model.Template{}, backendError(fmt.Errorf("template %s: %w", templateID, templateapi.ErrNotFound))
	}

	return t, nil
}

func (s *template) validateUpdate(cmd UpdateTemplateCommand) error {
	if errs := s.validator.Validate(cmd); len(errs) > 0 {
		return validationError(s.validator.Message(errs))
	}

	blank := func(v *string) bool { return v != nil && strings.TrimSpace(*v) == "" }

	var msgs []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", cmd.Name},
		{"source_id", cmd.SourceID},
		{"subject", cmd.Subject},
		{"content", cmd.Content},
	} {
		if blank(f.value) {
			msgs = append(msgs, f.name+" is required")
		}
	}

	if cmd.Channel != nil && !cmd.Channel.Known() {
		msgs = append(msgs, "channel must be one of [1 2]")
	}

	if cmd.Status != nil && !cmd.Status.Known() {
		msgs = append(msgs, "status must be one of [1 2 3]")
	}

	if len(msgs) > 0 {
		return validationError(strings.Join(msgs, " and "))
	}

	return nil
}

// scope stamps the request id and acting user onto ctx for the backend call.
func (s *template) scope(ctx context.Context, p model.Principal) (context.Context, string) {
	ctx, requestID := templateapi.EnsureRequestID(ctx)
	if p.UserID != "" {
		ctx = templateapi.WithUserID(ctx, p.UserID)
	}

	return ctx, requestID
}

func (s *template) emit(ctx context.Context, p model.Principal, requestID string, action model.LifecycleAction,
	templateID string, from, to model.TemplateStatus) {
	event := model.LifecycleEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		TemplateID: templateID,
		FromStatus: from,
		ToStatus:   to,
		Role:       p.Role,
		UserID:     p.UserID,
		RequestID:  requestID,
		At:         time.Now().UTC(),
	}

	if err := s.recorder.Record(ctx, event); err != nil {
		s.logger.Warn("Failed to record lifecycle event",
			zap.Error(err),
			zap.String("eventID", event.EventID),
			zap.String("action", string(action)),
			zap.String("templateID", templateID))
	}
}

func (s *template) templateQuery(query ListTemplatesQuery) templateapi.TemplateQuery {
	if query.Page <= 0 {
		query.Page = 1
	}

	if query.PageSize <= 0 {
		query.PageSize = s.pageSize
	}

	return templateapi.TemplateQuery{
		Keyword:  strings.TrimSpace(query.Keyword),
		Status:   query.Status,
		Channel:  query.Channel,
		SourceID: strings.TrimSpace(query.SourceID),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
}

// completeCreated fills in what the backend left out of its create reply.
func completeCreated(created model.Template, request templateapi.CreateTemplateRequest, p model.Principal) model.Template {
	if created.Name == "" {
		created.Name = request.Name
	}
	if created.SignName == "" {
		created.SignName = request.SignName
	}
	if created.SourceID == "" {
		created.SourceID = request.SourceID
	}
	if created.Channel == 0 {
		created.Channel = request.Channel
	}
	if created.Subject == "" {
		created.Subject = request.Subject
	}
	if created.Content == "" {
		created.Content = request.Content
	}
	if created.RelTemplateID == "" {
		created.RelTemplateID = request.RelTemplateID
	}
	if created.Creator == "" {
		created.Creator = p.UserID
	}
	if created.Status == 0 {
		created.Status = model.TemplateStatusPending
	}

	return created
}

func applyUpdate(current model.Template, request templateapi.UpdateTemplateRequest) model.Template {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&current.Name, request.Name)
	set(&current.SignName, request.SignName)
	set(&current.SourceID, request.SourceID)
	set(&current.Subject, request.Subject)
	set(&current.Content, request.Content)
	set(&current.RelTemplateID, request.RelTemplateID)

	if request.Channel != nil {
		current.Channel = *request.Channel
	}
	if request.Status != nil {
		current.Status = *request.Status
	}

	return current
}
