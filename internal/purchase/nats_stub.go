// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

//go:build !nats

package purchase

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NATSEnabled reports whether this binary was built with NATS support.
const NATSEnabled = false

// ErrNATSNotCompiled is returned when NATS is configured but the binary was
// built without -tags nats.
var ErrNATSNotCompiled = errors.New("NATS support not compiled in (build with -tags nats)")

// NewNATSPubSub always fails in builds without the nats tag.
func NewNATSPubSub(_ NATSConfig, _ watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	return nil, nil, ErrNATSNotCompiled
}
