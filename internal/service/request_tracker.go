package service

import (
	"context"
	"sync"
)

// RequestTracker makes the latest request for a key win. Beginning a new
// request cancels the previous one for the same key, and the older ticket
// stops reporting itself as current.
type RequestTracker struct {
	mu       sync.Mutex
	inflight map[string]*RequestTicket
}

// RequestTicket identifies one tracked request.
type RequestTicket struct {
	tracker    *RequestTracker
	cancel     context.CancelFunc
	superseded bool
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{inflight: make(map[string]*RequestTicket)}
}

// Begin starts a request for key. The returned context is cancelled when a
// newer request for the same key begins or when release is called. release
// must always be called.
func (t *RequestTracker) Begin(parent context.Context, key string) (context.Context, *RequestTicket, func()) {
	ctx, cancel := context.WithCancel(parent)
	ticket := &RequestTicket{tracker: t, cancel: cancel}

	t.mu.Lock()
	if prev, ok := t.inflight[key]; ok {
		prev.superseded = true
		prev.cancel()
	}
	t.inflight[key] = ticket
	t.mu.Unlock()

	release := func() {
		cancel()
		t.mu.Lock()
		if t.inflight[key] == ticket {
			delete(t.inflight, key)
		}
		t.mu.Unlock()
	}
	return ctx, ticket, release
}

// Current reports whether no newer request for the same key has begun.
func (r *RequestTicket) Current() bool {
	r.tracker.mu.Lock()
	defer r.tracker.mu.Unlock()
	return !r.superseded
}

// InFlight is the number of keys with a running request.
func (t *RequestTracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}
