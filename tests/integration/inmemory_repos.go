package integration

import (
	"context"
	"sync"

	"bizdash-core/internal/core/domain"
)

// --- In-Memory Dispatch Log ---

type inMemoryDispatchLog struct {
	mu      sync.RWMutex
	results []domain.DispatchResult // insertion order
}

func newInMemoryDispatchLog() *inMemoryDispatchLog {
	return &inMemoryDispatchLog{}
}

func (r *inMemoryDispatchLog) Create(ctx context.Context, result *domain.DispatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, *result)
	return nil
}

func (r *inMemoryDispatchLog) ListRecent(ctx context.Context, kind *domain.WebhookKind, limit int) ([]domain.DispatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DispatchResult, 0, limit)
	for i := len(r.results) - 1; i >= 0 && len(out) < limit; i-- {
		if kind != nil && r.results[i].WebhookType != *kind {
			continue
		}
		out = append(out, r.results[i])
	}
	return out, nil
}

func (r *inMemoryDispatchLog) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}

// --- Webhook Receiver ---

type receivedWebhook struct {
	Path    string
	Headers map[string]string
	Body    map[string]interface{}
}

type webhookReceiver struct {
	mu       sync.Mutex
	received []receivedWebhook
}

func (w *webhookReceiver) add(r receivedWebhook) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.received = append(w.received, r)
}

func (w *webhookReceiver) all() []receivedWebhook {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]receivedWebhook, len(w.received))
	copy(out, w.received)
	return out
}
