package consumers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/consumers"
	"github.com/Behyna/sms-services/templateconsole/internal/metrics"
	"github.com/Behyna/sms-services/templateconsole/internal/mocks"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var queueConfig = mq.Config{Queue: "template.journal", Prefetch: 5}

// deliver runs body through the handler the consumer registers.
func deliver(t *testing.T, journal *mocks.JournalService, m *metrics.Metrics, body []byte) error {
	t.Helper()

	var handlerErr error
	consumer := &mocks.Consumer{}
	consumer.On("Consume", mock.Anything, 5, "template.journal", mock.Anything).
		Run(func(args mock.Arguments) {
			handler := args.Get(3).(mq.Handle)
			handlerErr = handler(context.Background(), mq.Delivery{
				MessageID:     "evt-1",
				CorrelationID: "req-1",
				RoutingKey:    "template.reject",
				Body:          body,
			})
		}).Return(nil)

	c := consumers.NewJournalConsumer(journal, consumer, queueConfig, m, zap.NewNop())
	assert.NoError(t, c.Consume(context.Background()))
	consumer.AssertExpectations(t)

	return handlerErr
}

func TestJournalConsumer(t *testing.T) {
	event := model.LifecycleEvent{EventID: "evt-1", Action: model.ActionReject, TemplateID: "tpl-1"}
	body, _ := json.Marshal(event)

	t.Run("stores new events", func(t *testing.T) {
		m := metrics.NewMetrics(metrics.NewRegistry())
		journal := &mocks.JournalService{}
		journal.On("Append", mock.Anything, mock.MatchedBy(func(e model.LifecycleEvent) bool {
			return e.EventID == "evt-1" && e.Action == model.ActionReject
		})).Return(true, nil)

		err := deliver(t, journal, m, body)

		assert.NoError(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.JournalWritesTotal.WithLabelValues("stored")))
	})

	t.Run("acks duplicates", func(t *testing.T) {
		m := metrics.NewMetrics(metrics.NewRegistry())
		journal := &mocks.JournalService{}
		journal.On("Append", mock.Anything, mock.Anything).Return(false, nil)

		err := deliver(t, journal, m, body)

		assert.NoError(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.JournalWritesTotal.WithLabelValues("duplicate")))
	})

	t.Run("database failures are requeued", func(t *testing.T) {
		m := metrics.NewMetrics(metrics.NewRegistry())
		journal := &mocks.JournalService{}
		journal.On("Append", mock.Anything, mock.Anything).
			Return(false, service.NewServiceError(service.ErrCodeDatabase, errors.New("deadlock")))

		err := deliver(t, journal, m, body)

		assert.True(t, mq.IsTemporary(err))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.JournalWritesTotal.WithLabelValues("failed")))
	})

	t.Run("garbage is dropped", func(t *testing.T) {
		m := metrics.NewMetrics(metrics.NewRegistry())
		journal := &mocks.JournalService{}

		err := deliver(t, journal, m, []byte("{bad"))

		assert.Error(t, err)
		assert.False(t, mq.IsTemporary(err))
		journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.JournalWritesTotal.WithLabelValues("invalid")))
	})
}
