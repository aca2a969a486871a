// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/sakefinder/internal/metrics"
)

// Forwarder drains the purchase topic into a StatsStore. It implements
// suture.Service.
type Forwarder struct {
	subscriber message.Subscriber
	topic      string
	store      StatsStore
	logger     watermill.LoggerAdapter
}

// NewForwarder creates a forwarder. An empty topic means DefaultTopic.
func NewForwarder(sub message.Subscriber, topic string, store StatsStore, logger watermill.LoggerAdapter) (*Forwarder, error) {
	if sub == nil {
		return nil, fmt.Errorf("subscriber required")
	}
	if store == nil {
		return nil, fmt.Errorf("stats store required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &Forwarder{subscriber: sub, topic: topic, store: store, logger: logger}, nil
}

// Serve consumes until ctx is done or the subscription closes.
func (f *Forwarder) Serve(ctx context.Context) error {
	msgs, err := f.subscriber.Subscribe(ctx, f.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", f.topic, err)
	}

	f.logger.Info("Purchase forwarder started", watermill.LogFields{"topic": f.topic})
	defer f.logger.Info("Purchase forwarder stopped", nil)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			f.handle(ctx, msg)
		}
	}
}

func (f *Forwarder) handle(ctx context.Context, msg *message.Message) {
	var e Event
	if err := json.Unmarshal(msg.Payload, &e); err != nil {
		// a payload that does not decode will never decode; drop it
		f.logger.Error("Dropping malformed purchase event", err, watermill.LogFields{"message_uuid": msg.UUID})
		metrics.PurchaseEventsForwarded.WithLabelValues("malformed").Inc()
		msg.Ack()
		return
	}

	if err := f.store.Record(ctx, e); err != nil {
		f.logger.Error("Failed to record purchase event", err, watermill.LogFields{"event_id": e.ID})
		metrics.PurchaseEventsForwarded.WithLabelValues("error").Inc()
		msg.Nack()
		return
	}

	metrics.PurchaseEventsForwarded.WithLabelValues("success").Inc()
	msg.Ack()
}

// String names the service in supervisor logs.
func (f *Forwarder) String() string {
	return "purchase-forwarder"
}
