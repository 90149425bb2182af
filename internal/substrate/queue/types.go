package queue

import (
	"context"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TaskStore is the claim side of the task ledger.
	TaskStore interface {
		IncreaseAttempts(ctx context.Context, entity model.Entity, entityID int64, collectUID string) error
		ReadTaskAndLockRow(ctx context.Context, tx storage.Tx, entity model.Entity, entityID int64, collectUID string) (*model.ProcessingTask, error)
		SetTaskRecordAsProcessed(ctx context.Context, tx storage.Tx, task model.ProcessingTask) error
	}

	TxBeginner interface {
		Begin(ctx context.Context) (storage.Tx, error)
	}

	// Processor does the work of one claimed task inside tx. Returning false rolls the job back.
	Processor interface {
		Process(ctx context.Context, tx storage.Tx, task model.ProcessingTask) (bool, error)
	}

	// CommitObserver is optionally implemented by a Processor that needs to know its work was committed.
	CommitObserver interface {
		Committed(ctx context.Context, task model.ProcessingTask)
	}

	// Handler handles a delivered message body. Whatever the outcome, the delivery is acknowledged.
	Handler interface {
		Handle(ctx context.Context, body []byte) Outcome
	}

	Metrics interface {
		ObserveMessage(outcome string, started time.Time)
	}

	// ConsumeChannel is the part of *amqp.Channel used to consume a queue.
	ConsumeChannel interface {
		Qos(prefetchCount, prefetchSize int, global bool) error
		QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
		Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	}

	// PublishChannel is the part of *amqp.Channel used to publish job messages.
	PublishChannel interface {
		QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
		PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	}
)
