package mq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Delivery is the part of an AMQP delivery handlers care about.
type Delivery struct {
	MessageID     string
	CorrelationID string
	RoutingKey    string
	Redelivered   bool
	Body          []byte
}

type Handle func(ctx context.Context, d Delivery) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

type RabbitConsumer struct {
	ch *amqp.Channel
}

func NewRabbitConsumer(ch *amqp.Channel) Consumer {
	return &RabbitConsumer{ch: ch}
}

// Consume blocks until ctx ends or the channel closes. A handler error nacks
// the delivery and requeues it only when the error is temporary.
func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Cancel("", false)
			time.Sleep(50 * time.Millisecond)
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handle(ctx, handler, d); err != nil {
				_ = d.Nack(false, IsTemporary(err))
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// handle turns a handler panic into a permanent failure so one poisoned
// message cannot stop the loop.
func handle(ctx context.Context, handler Handle, d amqp.Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return handler(ctx, Delivery{
		MessageID:     d.MessageId,
		CorrelationID: d.CorrelationId,
		RoutingKey:    d.RoutingKey,
		Redelivered:   d.Redelivered,
		Body:          d.Body,
	})
}
