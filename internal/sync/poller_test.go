package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"github.com/nhle/demodash/internal/model"
)

// countingFetcher returns a history whose length grows on every call.
type countingFetcher struct {
	mu    gosync.Mutex
	calls int
	err   error
}

func (f *countingFetcher) ListMessages(ctx context.Context) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.calls++
	messages := make([]model.Message, f.calls)
	return messages, nil
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPollerDeliversResults(t *testing.T) {
	fetcher := &countingFetcher{}
	p := New(fetcher, 10*time.Millisecond)

	cmd := p.Start()
	if !p.Running() {
		t.Fatal("poller not running after Start")
	}
	defer p.Stop()

	msg := cmd()
	result, ok := msg.(ChatResultMsg)
	if !ok {
		t.Fatalf("got %T, want ChatResultMsg", msg)
	}
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	// Keep subscribing; each cycle is independent.
	msg = p.WaitForNextResult()()
	if _, ok := msg.(ChatResultMsg); !ok {
		t.Fatalf("got %T, want ChatResultMsg", msg)
	}

	if fetcher.callCount() < 2 {
		t.Errorf("fetcher called %d times, want at least 2", fetcher.callCount())
	}
}

func TestPollerReportsFetchErrors(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("connection refused")}
	p := New(fetcher, 10*time.Millisecond)

	cmd := p.Start()
	defer p.Stop()

	msg := cmd()
	result, ok := msg.(ChatResultMsg)
	if !ok {
		t.Fatalf("got %T, want ChatResultMsg", msg)
	}
	if result.Err == nil {
		t.Error("expected the fetch error to be carried in the result")
	}
}

func TestPollerStop(t *testing.T) {
	fetcher := &countingFetcher{}
	p := New(fetcher, 5*time.Millisecond)

	cmd := p.Start()
	cmd()
	p.Stop()

	if p.Running() {
		t.Fatal("poller still running after Stop")
	}

	// No new ticks fire once stopped; in-flight fetches may still land.
	time.Sleep(20 * time.Millisecond)
	settled := fetcher.callCount()
	time.Sleep(30 * time.Millisecond)
	if got := fetcher.callCount(); got != settled {
		t.Errorf("fetcher called %d more times after Stop settled", got-settled)
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&countingFetcher{}, time.Hour)
	p.Start()
	p.Stop()
	p.Stop()
	if p.Running() {
		t.Error("poller running after double Stop")
	}
}

func TestPollerRestart(t *testing.T) {
	fetcher := &countingFetcher{}
	p := New(fetcher, 10*time.Millisecond)

	cmd := p.Start()
	cmd()
	p.Stop()

	cmd = p.Start()
	defer p.Stop()
	if !p.Running() {
		t.Fatal("poller not running after restart")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("no result after restart")
	}
}
