package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/api"
	v1 "github.com/Behyna/sms-services/templateconsole/internal/api/v1"
	"github.com/Behyna/sms-services/templateconsole/internal/config"
	middleware "github.com/Behyna/sms-services/templateconsole/internal/error"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/publishers"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/internal/session"
	"github.com/Behyna/sms-services/templateconsole/internal/validation"
	"github.com/Behyna/sms-services/templateconsole/pkg/httpclient"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"github.com/Behyna/sms-services/templateconsole/pkg/templateapi"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			config.NewLogger,
			metrics.NewRegistry,
			metrics.NewMetrics,
			validation.NewXValidator,
			session.NewStore,
			NewTemplateClient,
			NewLifecycleRecorder,
			service.NewTemplateService,
			service.NewMessageService,
			v1.NewHandler,
			NewFiber,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewFiber(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "templateconsole",
		ErrorHandler: middleware.ErrorHandler(logger),
	})
}

func NewTemplateClient(cfg *config.Config, m *metrics.Metrics) templateapi.Client {
	client := httpclient.NewHTTPClient(cfg.Backend.Timeout)
	return templateapi.NewClient(cfg.Backend, client, m)
}

// NewLifecycleRecorder publishes lifecycle events to RabbitMQ when enabled.
func NewLifecycleRecorder(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger,
	lc fx.Lifecycle) (service.LifecycleRecorder, error) {
	if !cfg.RabbitMQ.Enable {
		logger.Info("Lifecycle publishing disabled")
		return m.WrapRecorder(service.NewNopRecorder()), nil
	}

	rabbit, err := mq.NewConnection(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}

	if err := rabbit.DeclareTopology([]mq.Binding{{
		Exchange:   cfg.RabbitMQ.Exchange,
		Queue:      cfg.RabbitMQ.Queue,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
	}}); err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rabbit.Close()
		},
	})

	return m.WrapRecorder(publishers.NewLifecyclePublisher(publisher, cfg.RabbitMQ.Exchange, logger)), nil
}

func startServer(app *fiber.App, handler *v1.Handler, store session.Store, m *metrics.Metrics,
	registry *prometheus.Registry, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, store, m, registry, logger)
	collector := metrics.NewSystemCollector(m, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(15*time.Second, version)
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("API server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			_ = logger.Sync()
			return app.ShutdownWithContext(ctx)
		},
	})
}
