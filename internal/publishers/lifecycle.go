package publishers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"go.uber.org/zap"
)

const routingKeyPrefix = "template."

type lifecyclePublisher struct {
	publisher mq.Publisher
	exchange  string
	logger    *zap.Logger
}

// NewLifecyclePublisher returns a recorder that publishes each event to
// exchange under template.<action>.
func NewLifecyclePublisher(publisher mq.Publisher, exchange string, logger *zap.Logger) service.LifecycleRecorder {
	return &lifecyclePublisher{publisher: publisher, exchange: exchange, logger: logger}
}

func (l *lifecyclePublisher) Record(ctx context.Context, event model.LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode lifecycle event: %w", err)
	}

	routingKey := RoutingKey(event.Action)

	if pp, ok := l.publisher.(mq.PropertyPublisher); ok {
		err = pp.PublishMessage(ctx, l.exchange, routingKey, mq.Message{
			MessageID:     event.EventID,
			CorrelationID: event.RequestID,
			Type:          string(event.Action),
			Body:          body,
		})
	} else {
		err = l.publisher.Publish(ctx, l.exchange, routingKey, body)
	}

	if err != nil {
		l.logger.Error("Failed to publish lifecycle event",
			zap.Error(err),
			zap.String("eventID", event.EventID),
			zap.String("routingKey", routingKey))
		return err
	}

	l.logger.Debug("Lifecycle event published",
		zap.String("eventID", event.EventID),
		zap.String("routingKey", routingKey))

	return nil
}

func RoutingKey(action model.LifecycleAction) string {
	return routingKeyPrefix + strings.ToLower(string(action))
}
