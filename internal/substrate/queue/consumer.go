package queue

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrDeliveriesClosed is returned when the broker closes the delivery channel.
var ErrDeliveriesClosed = errors.New("delivery channel closed")

// Consumer feeds deliveries of one queue to a Handler, one at a time.
type Consumer struct {
	channel ConsumeChannel
	queue   string
	tag     string
	handler Handler
	logger  *zap.Logger
}

// NewConsumer builds a Consumer of the queue.
func NewConsumer(channel ConsumeChannel, queue, tag string, handler Handler, logger *zap.Logger) *Consumer {
	return &Consumer{
		channel: channel,
		queue:   queue,
		tag:     tag,
		handler: handler,
		logger:  logger.With(zap.String("queue", queue)),
	}
}

// Run consumes until ctx is canceled or the broker closes the channel.
// Cancellation is only observed between deliveries: a claimed job runs to completion.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.queue, err)
	}
	deliveries, err := c.channel.Consume(c.queue, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", c.queue, err)
	}

	c.logger.Info("consumer started")
	jobCtx := context.WithoutCancel(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.deliver(jobCtx, d)
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, d amqp.Delivery) {
	outcome := c.handler.Handle(ctx, d.Body)
	if err := d.Ack(false); err != nil {
		c.logger.Error("ack failed", zap.Error(err), zap.Uint64("delivery_tag", d.DeliveryTag))
		return
	}
	c.logger.Debug("message acknowledged", zap.String("outcome", string(outcome)), zap.Uint64("delivery_tag", d.DeliveryTag))
}
