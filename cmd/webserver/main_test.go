package main

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

type fakeServer struct {
	listenCalled   int32
	shutdownCalled int32
	listenErr      error
	shutdownErr    error
	stopped        chan struct{}
}

func newFakeServer() *fakeServer {
	return &fakeServer{stopped: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	atomic.AddInt32(&f.listenCalled, 1)
	if f.listenErr != nil {
		return f.listenErr
	}
	// имитируем обычную работу сервера до вызова Shutdown
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if atomic.AddInt32(&f.shutdownCalled, 1) == 1 {
		close(f.stopped)
	}
	return f.shutdownErr
}

func TestRunHTTPServer_ShutdownCalledOnContextCancel(t *testing.T) {
	f := newFakeServer()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// даём немного поработать ListenAndServe, затем отменяем контекст
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if err := runHTTPServer(ctx, f, time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if atomic.LoadInt32(&f.shutdownCalled) == 0 {
		t.Fatalf("expected Shutdown to be called")
	}
	if atomic.LoadInt32(&f.listenCalled) == 0 {
		t.Fatalf("expected ListenAndServe to be called")
	}
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	f := newFakeServer()
	f.listenErr = errors.New("address in use")

	err := runHTTPServer(context.Background(), f, time.Second)
	if !errors.Is(err, f.listenErr) {
		t.Fatalf("expected listen error, got %v", err)
	}
	if atomic.LoadInt32(&f.shutdownCalled) != 0 {
		t.Fatalf("Shutdown should not run after a failed listen")
	}
}

func TestRunHTTPServer_ShutdownError(t *testing.T) {
	f := newFakeServer()
	f.shutdownErr = errors.New("timeout")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runHTTPServer(ctx, f, time.Second); !errors.Is(err, f.shutdownErr) {
		t.Fatalf("expected shutdown error, got %v", err)
	}
}
