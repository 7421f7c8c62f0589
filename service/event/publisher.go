package event

import (
	"context"
	"log"

	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
	"github.com/viant/shellsim/service/messaging"
)

// Publisher emits command events to a queue
type Publisher struct {
	queue messaging.Queue[Command]
}

// Publish enqueues an event
func (p *Publisher) Publish(ctx context.Context, event *Command) error {
	return p.queue.Publish(ctx, event)
}

// Listen publishes every executed command; it matches executor.Listener.
// Publishing failures are logged and never affect the command result.
func (p *Publisher) Listen(ctx context.Context, call *types.Call, result *model.Result) {
	if err := p.Publish(context.WithoutCancel(ctx), NewCommand(ctx, call, result)); err != nil {
		log.Printf("event: failed to publish %v: %v", call.Name, err)
	}
}

// Consume delivers events to handler until ctx is done.
func (p *Publisher) Consume(ctx context.Context, handler func(*Command)) error {
	for {
		msg, err := p.queue.Consume(ctx)
		if err != nil {
			return err
		}
		handler(msg.T())
		if err = msg.Ack(); err != nil {
			log.Printf("event: %v", err)
		}
	}
}

// NewPublisher creates a publisher over queue
func NewPublisher(queue messaging.Queue[Command]) *Publisher {
	return &Publisher{queue: queue}
}
