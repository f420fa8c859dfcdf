package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/internal/consumers"
	"github.com/Behyna/sms-services/templateconsole/internal/database"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/repository"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			config.NewLogger,
			metrics.NewRegistry,
			metrics.NewMetrics,
			database.NewConnection,
			NewMQConnection,
			NewMQConsumer,
			NewQueueConfig,

			repository.NewJournalRepository,
			service.NewJournalService,
			metrics.NewDatabaseMetricsCollector,

			consumers.NewJournalConsumer,
		),
		fx.Invoke(runJournalConsumer),
	).Run()
}

func runJournalConsumer(cfg *config.Config, journalConsumer consumers.JournalConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, db *gorm.DB, dbMetrics *metrics.DatabaseMetricsCollector, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repository.Migrate(db); err != nil {
				logger.Error("journal migration failed", zap.Error(err))
				return err
			}

			binding := mq.Binding{
				Exchange:   cfg.RabbitMQ.Exchange,
				Queue:      cfg.RabbitMQ.Queue,
				RoutingKey: cfg.RabbitMQ.RoutingKey,
			}
			if err := rabbit.DeclareTopology([]mq.Binding{binding}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			dbMetrics.Start(30 * time.Second)

			go func() {
				if err := journalConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("journal consumer started", zap.String("queue", cfg.RabbitMQ.Queue))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping journal consumer")
			cancel()
			dbMetrics.Stop()
			if err := database.Close(db); err != nil {
				logger.Warn("close database failed", zap.Error(err))
			}
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewQueueConfig(cfg *config.Config) mq.Config {
	return cfg.RabbitMQ
}
