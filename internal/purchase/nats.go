// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

//go:build nats

package purchase

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
)

// NATSEnabled reports whether this binary was built with NATS support.
const NATSEnabled = true

// NewNATSPubSub connects a JetStream publisher and a durable subscriber to url.
func NewNATSPubSub(cfg NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	jsCfg := wmNats.JetStreamConfig{
		AutoProvision: true,
		TrackMsgId:    true,
		PublishOptions: []natsgo.PubOpt{
			natsgo.RetryAttempts(3),
			natsgo.RetryWait(100 * time.Millisecond),
		},
		DurablePrefix: cfg.DurableName,
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   jsCfg,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create NATS publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        jsCfg,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     5 * time.Second,
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, nil, fmt.Errorf("create NATS subscriber: %w", err)
	}

	return pub, sub, nil
}
