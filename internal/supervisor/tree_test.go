// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/sakefinder/internal/config"
)

// countingService runs until canceled. The first failN runs return an error
// straight away.
type countingService struct {
	name  string
	failN int32
	runs  atomic.Int32
	ran   chan struct{}
	once  sync.Once
}

func newCountingService(name string, failN int32) *countingService {
	return &countingService{name: name, failN: failN, ran: make(chan struct{})}
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.runs.Add(1)
	if n <= s.failN {
		return errors.New("transient failure")
	}
	s.once.Do(func() { close(s.ran) })
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func (s *countingService) waitHealthy(t *testing.T) {
	t.Helper()
	select {
	case <-s.ran:
	case <-time.After(3 * time.Second):
		t.Fatalf("%s never reached a healthy run (runs=%d)", s.name, s.runs.Load())
	}
}

// syncBuffer guards the log buffer; supervisor events arrive from several goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fastConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 10,
		FailureDecay:     1,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	}
}

func TestTreeConfig_Defaults(t *testing.T) {
	t.Parallel()

	tree := NewSupervisorTree(slog.New(slog.NewTextHandler(&syncBuffer{}, nil)), TreeConfig{FailureBackoff: -time.Second})
	if got, want := tree.Config(), DefaultTreeConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}

	partial := NewSupervisorTree(slog.Default(), TreeConfig{FailureThreshold: 2})
	if got := partial.Config(); got.FailureThreshold != 2 || got.ShutdownTimeout != 10*time.Second {
		t.Errorf("partial config = %+v", got)
	}
}

func TestTreeConfigFrom(t *testing.T) {
	t.Parallel()

	got := TreeConfigFrom(config.SupervisorConfig{
		FailureThreshold: 3,
		FailureDecay:     60,
		FailureBackoff:   time.Second,
		ShutdownTimeout:  5 * time.Second,
	})
	want := TreeConfig{FailureThreshold: 3, FailureDecay: 60, FailureBackoff: time.Second, ShutdownTimeout: 5 * time.Second}
	if got != want {
		t.Errorf("TreeConfigFrom() = %+v, want %+v", got, want)
	}
}

func TestSupervisorTree_RunsEveryLayer(t *testing.T) {
	t.Parallel()

	tree := NewSupervisorTree(slog.Default(), fastConfig())
	janitor := newCountingService("janitor", 0)
	forwarder := newCountingService("forwarder", 0)
	httpSvc := newCountingService("http", 0)

	tree.AddDataService(janitor)
	tree.AddMessagingService(forwarder)
	tree.AddAPIService(httpSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	janitor.waitHealthy(t)
	forwarder.waitHealthy(t)
	httpSvc.waitHealthy(t)
	cancel()

	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
	if unstopped, err := tree.UnstoppedServiceReport(); err != nil || len(unstopped) != 0 {
		t.Errorf("UnstoppedServiceReport() = %v, %v", unstopped, err)
	}
}

func TestSupervisorTree_RestartsFailingService(t *testing.T) {
	t.Parallel()

	logs := &syncBuffer{}
	tree := NewSupervisorTree(slog.New(slog.NewTextHandler(logs, nil)), fastConfig())

	flaky := newCountingService("forwarder", 2)
	steady := newCountingService("http", 0)
	tree.AddMessagingService(flaky)
	tree.AddAPIService(steady)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	flaky.waitHealthy(t)
	steady.waitHealthy(t)

	if got := flaky.runs.Load(); got != 3 {
		t.Errorf("flaky runs = %d, want 3", got)
	}
	// a failure in messaging never restarts the api layer
	if got := steady.runs.Load(); got != 1 {
		t.Errorf("steady runs = %d, want 1", got)
	}

	cancel()
	<-errCh

	if !strings.Contains(logs.String(), "forwarder") {
		t.Errorf("supervisor events not logged through slog:\n%s", logs.String())
	}
}
