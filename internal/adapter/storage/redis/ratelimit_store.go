package redis

import (
	"context"
	"fmt"
	"time"

	"bizdash-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore keeps fixed-window counters in Redis.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "bdc:ratelimit:",
		now:    time.Now,
	}
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// Allow counts one hit against key in the current window.
// It uses a fixed-window counter: INCR + EXPIRE on a key scoped by windowID,
// where windowID is time / window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	secs := int64(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	windowID := s.now().Unix() / secs
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}

	// First hit of a new window owns the expiry.
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, time.Duration(secs)*time.Second+time.Second).Err(); err != nil {
			return nil, fmt.Errorf("redis rate limit expire: %w", err)
		}
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * secs,
	}, nil
}

// DispatchLimiter implements ports.RateLimiter: at most limit dispatches
// per user per webhook kind in each window.
type DispatchLimiter struct {
	store  *RateLimitStore
	limit  int64
	window time.Duration
}

func NewDispatchLimiter(store *RateLimitStore, limit int64, window time.Duration) *DispatchLimiter {
	return &DispatchLimiter{store: store, limit: limit, window: window}
}

func (l *DispatchLimiter) Allow(ctx context.Context, userID string, kind domain.WebhookKind) (bool, string, error) {
	res, err := l.store.Allow(ctx, userID+":"+string(kind), l.limit, l.window)
	if err != nil {
		return false, "", err
	}
	if !res.Allowed {
		return false, fmt.Sprintf("Rate limit exceeded: %d %s webhooks per %s. Try again after %s.",
			l.limit, kind, l.window, time.Unix(res.ResetAt, 0).UTC().Format(time.RFC3339)), nil
	}
	return true, "", nil
}
