// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/sakefinder/internal/metrics"
)

// DefaultTopic is the topic purchase events are published on.
const DefaultTopic = "sakefinder.purchases"

// ErrPublisherClosed is returned after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// BreakerConfig tunes the circuit breaker in front of the broker.
type BreakerConfig struct {
	// MaxRequests allowed while half-open.
	MaxRequests uint32
	// Interval resets the failure counts while closed.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// FailureThreshold is the consecutive failures that open the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NewInMemoryPubSub returns the in-process broker used when NATS is off.
func NewInMemoryPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
}

// newBreaker builds a breaker that reports transitions to metrics and logs.
func newBreaker(name string, cfg BreakerConfig, logger watermill.LoggerAdapter) *gobreaker.CircuitBreaker[struct{}] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state change", watermill.LogFields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})
}

// Publisher is a Sink that serializes events onto a watermill topic behind
// a circuit breaker.
type Publisher struct {
	publisher message.Publisher
	topic     string
	breaker   *gobreaker.CircuitBreaker[struct{}]
	logger    watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewPublisher wraps pub. An empty topic means DefaultTopic.
func NewPublisher(pub message.Publisher, topic string, cfg BreakerConfig, logger watermill.LoggerAdapter) (*Publisher, error) {
	if pub == nil {
		return nil, fmt.Errorf("publisher required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		publisher: pub,
		topic:     topic,
		breaker:   newBreaker("purchase-publisher", cfg, logger),
		logger:    logger,
	}, nil
}

// Record publishes e.
func (p *Publisher) Record(ctx context.Context, e Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal purchase event: %w", err)
	}

	msg := message.NewMessage(e.ID, payload)
	msg.Metadata.Set("sake_id", e.SakeID)
	msg.Metadata.Set("referrer", string(e.Referrer))
	msg.SetContext(ctx)

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.publisher.Publish(p.topic, msg)
	})
	if err != nil {
		return fmt.Errorf("publish purchase event: %w", err)
	}
	return nil
}

// State is the breaker state name.
func (p *Publisher) State() string {
	return p.breaker.State().String()
}

// Close stops accepting events. The underlying publisher is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
