package service

import (
	"context"
	"sync"
	"time"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// DefaultHistorySize is how many dispatch results are kept in memory.
const DefaultHistorySize = 20

// DispatchStats holds per-kind counters and the recent dispatch history.
// Results are optionally mirrored to a DispatchLogRepository.
type DispatchStats struct {
	mu       sync.Mutex
	counters map[domain.WebhookKind]*domain.EndpointStats
	history  []domain.DispatchResult // most recent first
	size     int

	repo ports.DispatchLogRepository
	log  zerolog.Logger
}

// NewDispatchStats creates a stats recorder. repo may be nil.
func NewDispatchStats(historySize int, repo ports.DispatchLogRepository, log zerolog.Logger) *DispatchStats {
	if historySize < 1 {
		historySize = DefaultHistorySize
	}
	s := &DispatchStats{
		size: historySize,
		repo: repo,
		log:  log,
	}
	s.resetCounters()
	return s
}

func (s *DispatchStats) resetCounters() {
	s.counters = make(map[domain.WebhookKind]*domain.EndpointStats, len(domain.AllWebhookKinds()))
	for _, k := range domain.AllWebhookKinds() {
		s.counters[k] = &domain.EndpointStats{}
	}
}

// MarkSent counts a dispatch that reached the network gate.
func (s *DispatchStats) MarkSent(kind domain.WebhookKind, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[kind]
	if !ok {
		return
	}
	c.Sent++
	t := at
	c.LastSentAt = &t
}

// Record stores a finished result in the history and bumps success or errors.
func (s *DispatchStats) Record(ctx context.Context, result domain.DispatchResult) {
	s.mu.Lock()
	if c, ok := s.counters[result.WebhookType]; ok {
		if result.Success {
			c.Success++
		} else {
			c.Errors++
		}
	}
	s.history = append([]domain.DispatchResult{result}, s.history...)
	if len(s.history) > s.size {
		s.history = s.history[:s.size]
	}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		s.log.Warn().Err(err).
			Str("dispatch_id", result.ID.String()).
			Str("webhook_type", string(result.WebhookType)).
			Msg("dispatch stats: failed to persist result")
	}
}

// History returns a copy of the in-memory history, most recent first.
func (s *DispatchStats) History() []domain.DispatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DispatchResult, len(s.history))
	copy(out, s.history)
	return out
}

// Recent lists up to limit results, optionally for one kind. The durable log
// is preferred when configured; the in-memory history is the fallback.
func (s *DispatchStats) Recent(ctx context.Context, kind *domain.WebhookKind, limit int) []domain.DispatchResult {
	if limit <= 0 || limit > s.size {
		limit = s.size
	}
	if s.repo != nil {
		results, err := s.repo.ListRecent(ctx, kind, limit)
		if err == nil {
			return results
		}
		s.log.Warn().Err(err).Msg("dispatch stats: durable history unavailable, using memory")
	}

	out := make([]domain.DispatchResult, 0, limit)
	for _, r := range s.History() {
		if kind != nil && r.WebhookType != *kind {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Stats returns a snapshot of every kind's counters.
func (s *DispatchStats) Stats() map[domain.WebhookKind]domain.EndpointStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.WebhookKind]domain.EndpointStats, len(s.counters))
	for k, c := range s.counters {
		snap := *c
		if c.LastSentAt != nil {
			t := *c.LastSentAt
			snap.LastSentAt = &t
		}
		out[k] = snap
	}
	return out
}

// Reset zeroes the counters. History is kept.
func (s *DispatchStats) Reset() {
	s.mu.Lock()
	s.resetCounters()
	s.mu.Unlock()
}
