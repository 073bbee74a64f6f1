package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/creasty/defaults"
	"github.com/hnhuaxi/factory"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Config struct {
	Topic string `default:"factory.changes"`

	// PublisherMaker and SubscriberMaker default to one shared in-process gochannel.
	PublisherMaker  PublisherMaker
	SubscriberMaker SubscriberMaker
	Marshaler       cqrs.CommandEventMarshaler
	Logger          *zap.Logger
}

var DefaultMarshaler = cqrs.JSONMarshaler{}

// Events publishes factory changes on a watermill topic. It implements factory.Notifier.
type Events struct {
	topic      string
	publisher  message.Publisher
	subscriber message.Subscriber
	marshaler  cqrs.CommandEventMarshaler
	log        *zap.SugaredLogger
}

var _ factory.Notifier = (*Events)(nil)

func NewEvents(config Config) (*Events, error) {
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to set events config defaults: %w", err)
	}

	if config.Logger == nil {
		config.Logger = factory.Logger
	}

	if config.Marshaler == nil {
		config.Marshaler = DefaultMarshaler
	}

	if config.PublisherMaker == nil || config.SubscriberMaker == nil {
		config.PublisherMaker, config.SubscriberMaker = GoPubsublisherMaker(gochannel.Config{}, StdLogger(config.Logger))
	}

	publisher, err := config.PublisherMaker()
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	subscriber, err := config.SubscriberMaker()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &Events{
		topic:      config.Topic,
		publisher:  publisher,
		subscriber: subscriber,
		marshaler:  config.Marshaler,
		log:        config.Logger.Sugar(),
	}, nil
}

func (events *Events) Topic() string {
	return events.topic
}

func (events *Events) Notify(ctx context.Context, change factory.Change) error {
	msg, err := events.marshaler.Marshal(&change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}
	msg.SetContext(ctx)

	return events.publisher.Publish(events.topic, msg)
}

// Subscribe streams changes until ctx is done. Messages that fail to decode are logged
// and dropped.
func (events *Events) Subscribe(ctx context.Context) (<-chan factory.Change, error) {
	messages, err := events.subscriber.Subscribe(ctx, events.topic)
	if err != nil {
		return nil, err
	}

	changes := make(chan factory.Change)
	go func() {
		defer close(changes)

		for msg := range messages {
			var change factory.Change
			if err := events.marshaler.Unmarshal(msg, &change); err != nil {
				events.log.Warnw("invalid change message", "uuid", msg.UUID, "error", err)
				msg.Ack()
				continue
			}

			select {
			case changes <- change:
				msg.Ack()
			case <-ctx.Done():
				return
			}
		}
	}()

	return changes, nil
}

func (events *Events) Close() error {
	var errs error

	errs = multierr.Append(errs, events.publisher.Close())
	if any(events.subscriber) != any(events.publisher) {
		errs = multierr.Append(errs, events.subscriber.Close())
	}

	return errs
}
