package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/mocks"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/publishers"
	"github.com/Behyna/sms-services/templateconsole/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLifecyclePublisher_Record(t *testing.T) {
	event := model.LifecycleEvent{
		EventID:    "evt-1",
		Action:     model.ActionApprove,
		TemplateID: "tpl-1",
		FromStatus: model.TemplateStatusPending,
		ToStatus:   model.TemplateStatusApproved,
		Role:       model.RoleManager,
		UserID:     "sam",
		RequestID:  "req-1",
		At:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("publishes with message properties", func(t *testing.T) {
		publisher := &mocks.Publisher{}
		recorder := publishers.NewLifecyclePublisher(publisher, "template.lifecycle", zap.NewNop())

		publisher.On("PublishMessage", mock.Anything, "template.lifecycle", "template.approve",
			mock.MatchedBy(func(msg mq.Message) bool {
				var decoded model.LifecycleEvent
				if err := json.Unmarshal(msg.Body, &decoded); err != nil {
					return false
				}
				return msg.MessageID == "evt-1" && msg.CorrelationID == "req-1" &&
					msg.Type == "APPROVE" && decoded.TemplateID == "tpl-1" &&
					decoded.ToStatus == model.TemplateStatusApproved && decoded.At.Equal(event.At)
			})).Return(nil)

		err := recorder.Record(context.Background(), event)

		assert.NoError(t, err)
		publisher.AssertExpectations(t)
	})

	t.Run("returns broker errors", func(t *testing.T) {
		publisher := &mocks.Publisher{}
		recorder := publishers.NewLifecyclePublisher(publisher, "template.lifecycle", zap.NewNop())

		publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed"))

		err := recorder.Record(context.Background(), event)

		assert.EqualError(t, err, "channel closed")
	})
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "template.create", publishers.RoutingKey(model.ActionCreate))
	assert.Equal(t, "template.delete", publishers.RoutingKey(model.ActionDelete))
}
