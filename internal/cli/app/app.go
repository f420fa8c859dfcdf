package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/database"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/publishers"
	"github.com/Behyna/sms-services/templateconsole/internal/repository"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/Behyna/sms-services/templateconsole/internal/validation"
	"github.com/Behyna/sms-services/templateconsole/pkg/httpclient"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"go.uber.org/zap"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigDir string
	Role      string
	User      string
	Output    string
}

type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Principal model.Principal
	Templates service.TemplateService
	Messages  service.MessageService

	output string
	closer func() error
}

func New(opts *Options) (*App, error) {
	cfg, err := config.LoadFrom(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(cfg, logger)
	if opts.Role != "" {
		if _, err := store.Switch(opts.Role); err != nil {
			return nil, fmt.Errorf("--role %q: %w", opts.Role, err)
		}
	}
	if opts.User != "" {
		store.SetUser(opts.User)
	}

	m := metrics.NewMetrics(metrics.NewRegistry())
	client := templateapi.NewClient(cfg.Backend, httpclient.NewHTTPClient(cfg.Backend.Timeout), m)
	validator := validation.NewXValidator()

	recorder, closer, err := newRecorder(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Principal: store.Current(),
		Templates: service.NewTemplateService(client, m.WrapRecorder(recorder), validator, cfg, logger),
		Messages:  service.NewMessageService(client, validator, cfg, logger),
		output:    opts.Output,
		closer:    closer,
	}, nil
}

func newRecorder(cfg *config.Config, logger *zap.Logger) (service.LifecycleRecorder, func() error, error) {
	if !cfg.RabbitMQ.Enable {
		return service.NewNopRecorder(), func() error { return nil }, nil
	}

	rabbit, err := mq.NewConnection(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		_ = rabbit.Close()
		return nil, nil, err
	}

	return publishers.NewLifecyclePublisher(publisher, cfg.RabbitMQ.Exchange, logger), rabbit.Close, nil
}

// Journal opens the journal database. Only the history command needs it.
func (a *App) Journal(ctx context.Context) (service.JournalService, error) {
	db, err := database.NewConnectionContext(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	closeBackend := a.closer
	a.closer = func() error {
		_ = database.Close(db)
		return closeBackend()
	}

	return service.NewJournalService(repository.NewJournalRepository(db), a.Logger), nil
}

func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.closer()
}

func (a *App) JSON() bool {
	return a.output == OutputJSON
}

func PrintJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
