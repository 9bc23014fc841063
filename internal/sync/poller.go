// Package sync drives the chat view's fixed-interval refresh.
//
// The poller is deliberately simple: a fixed period, no backoff, no
// cancellation of in-flight fetches, and no deduplication when a slow
// response is still pending as the next tick fires. Ticks are fully
// independent; a slow response simply arrives late and may land after a
// faster, newer one. The rendering layer is idempotent, so an older
// snapshot redraws briefly-stale content without corrupting anything.
package sync

import (
	"context"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/demodash/internal/model"
)

// MessagesFetcher fetches the chat history.
type MessagesFetcher interface {
	ListMessages(ctx context.Context) ([]model.Message, error)
}

// ChatResultMsg is a tea.Msg carrying one fetch cycle's outcome. Err is
// either an api.AuthError (the view must redirect to login) or a
// transport failure (already logged; the previous render stays).
type ChatResultMsg struct {
	Messages []model.Message
	Err      error
}

// Poller re-fetches the chat history on a fixed interval for as long as
// the chat view is open.
type Poller struct {
	fetcher  MessagesFetcher
	interval time.Duration
	resultCh chan ChatResultMsg
	stopCh   chan struct{}
	mu       gosync.Mutex
	running  bool
}

// New creates a Poller with the given fetcher and tick interval.
func New(fetcher MessagesFetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		resultCh: make(chan ChatResultMsg, 16),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the tick loop and returns a subscription command that
// delivers ChatResultMsg values to the Bubble Tea runtime. Calling
// Start on a running poller returns a fresh subscription only.
func (p *Poller) Start() tea.Cmd {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return p.waitForResult()
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	go p.loop()

	return p.waitForResult()
}

// Stop halts the tick loop. In-flight fetches are not cancelled; a
// pending response is dropped when nothing is subscribed to receive it.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	close(p.stopCh)
	p.running = false
}

// Running reports whether the tick loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// loop fires one independent fetch per tick until stopped.
func (p *Poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.mu.Lock()
	stopCh := p.stopCh
	p.mu.Unlock()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Each tick gets its own goroutine so a slow response
			// never delays the next tick.
			go p.fetchOnce()
		}
	}
}

// fetchOnce performs a single uncancellable fetch and reports the result.
func (p *Poller) fetchOnce() {
	messages, err := p.fetcher.ListMessages(context.Background())
	p.sendResult(ChatResultMsg{Messages: messages, Err: err})
}

// sendResult sends without blocking; when the buffer is full the new
// result is dropped and the next cycle delivers a fresher snapshot.
func (p *Poller) sendResult(msg ChatResultMsg) {
	select {
	case p.resultCh <- msg:
	default:
	}
}

// waitForResult returns a tea.Cmd that waits for the next fetch result.
func (p *Poller) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-p.resultCh
		if !ok {
			return nil
		}
		return result
	}
}

// WaitForNextResult returns a tea.Cmd that waits for the next fetch
// result. Call this after processing a ChatResultMsg to keep listening.
func (p *Poller) WaitForNextResult() tea.Cmd {
	return p.waitForResult()
}
