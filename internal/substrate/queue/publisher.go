package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends job messages to the queues of one network.
type Publisher struct {
	channel PublishChannel
	network model.Network
	now     func() time.Time
}

func NewPublisher(channel PublishChannel, network model.Network) *Publisher {
	return &Publisher{
		channel: channel,
		network: network,
		now:     time.Now,
	}
}

// Declare makes sure the durable queue exists.
func (p *Publisher) Declare(queue model.Queue) error {
	name := p.network.QueueName(queue)
	if _, err := p.channel.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	return nil
}

// Publish sends a persistent job message for the task.
func (p *Publisher) Publish(ctx context.Context, queue model.Queue, task model.ProcessingTask) error {
	body, err := Message{EntityID: task.EntityID, CollectUID: task.CollectUID}.Encode()
	if err != nil {
		return err
	}

	name := p.network.QueueName(queue)
	if err := p.channel.PublishWithContext(ctx, "", name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish %s/%d to %s: %w", task.Entity, task.EntityID, name, err)
	}
	return nil
}
