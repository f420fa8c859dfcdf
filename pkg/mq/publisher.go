package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, body []byte) error
}

// Message carries the optional AMQP properties a publisher may attach.
type Message struct {
	MessageID     string
	CorrelationID string
	Type          string
	Body          []byte
}

// PropertyPublisher publishes with message properties set.
type PropertyPublisher interface {
	PublishMessage(ctx context.Context, exchange string, routingKey string, msg Message) error
}

type RabbitPublisher struct {
	ch *amqp.Channel
}

func NewRabbitPublisher(ch *amqp.Channel) Publisher { return &RabbitPublisher{ch: ch} }

func (r *RabbitPublisher) Publish(ctx context.Context, exchange string, routingKey string, body []byte) error {
	return r.PublishMessage(ctx, exchange, routingKey, Message{Body: body})
}

func (r *RabbitPublisher) PublishMessage(ctx context.Context, exchange string, routingKey string, msg Message) error {
	publishing := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     msg.MessageID,
		CorrelationId: msg.CorrelationID,
		Type:          msg.Type,
		Timestamp:     time.Now().UTC(),
		Body:          msg.Body,
	}

	return r.ch.PublishWithContext(ctx, exchange, routingKey, false, false, publishing)
}

func (r *RabbitPublisher) Close() error {
	if r.ch != nil {
		return r.ch.Close()
	}

	return nil
}
