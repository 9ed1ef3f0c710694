package events

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

const (
	fetchBatch   = 10
	fetchMaxWait = 5 * time.Second
	fetchBackoff = 5 * time.Second
)

// Message is the subset of *nats.Msg the pull loop needs
type Message interface {
	Ack(opts ...nats.AckOpt) error
	Nak(opts ...nats.AckOpt) error
}

// Handler processes one event payload
type Handler func(data []byte) error

// PullSubscribe binds to the cart worker's durable consumer
func PullSubscribe(js nats.JetStreamContext) (*nats.Subscription, error) {
	return js.PullSubscribe(StreamSubjects, ConsumerName, nats.ManualAck(), nats.Bind(StreamName, ConsumerName))
}

// RunPullLoop fetches batches from sub until ctx is done.
// Successfully handled messages are acked; failures are nacked for redelivery.
func RunPullLoop(ctx context.Context, sub *nats.Subscription, handle Handler, log *logger.Logger) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		msgs, err := fetch(ctx, sub)
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			log.Error("Failed to fetch messages from JetStream", err)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchBackoff):
			}
			continue
		}

		for _, msg := range msgs {
			settle(msg, msg.Data, handle, log)
		}
	}
}

func fetch(ctx context.Context, sub *nats.Subscription) ([]*nats.Msg, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchMaxWait)
	defer cancel()

	return sub.Fetch(fetchBatch, nats.Context(fetchCtx))
}

// settle runs handle on data and acknowledges msg accordingly
func settle(msg Message, data []byte, handle Handler, log *logger.Logger) {
	if err := handle(data); err != nil {
		log.Error("Failed to handle event", err)

		if nakErr := msg.Nak(); nakErr != nil {
			log.Error("Failed to NACK message", nakErr)
		}
		return
	}

	if ackErr := msg.Ack(); ackErr != nil {
		log.Error("Failed to ACK message", ackErr)
	}
}
