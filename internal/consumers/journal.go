package consumers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"go.uber.org/zap"
)

type JournalConsumer interface {
	Consume(ctx context.Context) error
}

type journalConsumer struct {
	service  service.JournalService
	consumer mq.Consumer
	config   mq.Config
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewJournalConsumer(service service.JournalService, consumer mq.Consumer, config mq.Config,
	metrics *metrics.Metrics, logger *zap.Logger) JournalConsumer {
	return &journalConsumer{
		service:  service,
		consumer: consumer,
		config:   config,
		metrics:  metrics,
		logger:   logger,
	}
}

func (j *journalConsumer) Consume(ctx context.Context) error {
	return j.consumer.Consume(ctx, j.config.Prefetch, j.config.Queue, j.handleMessage)
}

// handleMessage drops undecodable or incomplete events and requeues storage failures.
func (j *journalConsumer) handleMessage(ctx context.Context, d mq.Delivery) error {
	var event model.LifecycleEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		j.logger.Warn("Invalid lifecycle event",
			zap.Error(err),
			zap.String("messageID", d.MessageID),
			zap.String("routingKey", d.RoutingKey),
			zap.ByteString("body", d.Body))
		j.metrics.RecordJournalWrite("invalid")
		return err
	}

	var stored bool
	err := metrics.TimeQuery(j.metrics, j.logger, "insert", model.JournalEntry{}.TableName(), func() error {
		var err error
		stored, err = j.service.Append(ctx, event)
		return err
	})

	switch {
	case err != nil && service.Code(err) == service.ErrCodeDatabase:
		j.metrics.RecordJournalWrite("failed")
		j.logger.Warn("Journal write failed, requeueing",
			zap.Error(err),
			zap.String("eventID", event.EventID),
			zap.Bool("redelivered", d.Redelivered))
		return mq.Temporary(err)
	case err != nil:
		j.metrics.RecordJournalWrite("invalid")
		return err
	case !stored:
		j.metrics.RecordJournalWrite("duplicate")
	default:
		j.metrics.RecordJournalWrite("stored")
		j.logger.Info("Lifecycle event journaled",
			zap.String("eventID", event.EventID),
			zap.String("templateID", event.TemplateID),
			zap.String("action", string(event.Action)),
			zap.String("requestID", d.CorrelationID))
	}

	return nil
}
