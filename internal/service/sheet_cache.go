package service

import (
	"context"
	"sync"
	"time"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultCacheTTL is how long a fetched table is served without refetching.
const DefaultCacheTTL = 300 * time.Second

// sheetCache implements ports.SheetService.
type sheetCache struct {
	source ports.SheetSource
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger

	mu      sync.RWMutex
	entries map[domain.CacheKey]domain.CacheEntry
	// gen advances on every invalidation; a fetch that started before the
	// latest invalidation is returned but not stored.
	gen uint64
}

// SheetCacheOption customizes a sheet cache.
type SheetCacheOption func(*sheetCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) SheetCacheOption {
	return func(c *sheetCache) { c.now = now }
}

// NewSheetCache creates a TTL read cache in front of source.
func NewSheetCache(source ports.SheetSource, ttl time.Duration, log zerolog.Logger, opts ...SheetCacheOption) ports.SheetService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &sheetCache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
		entries: make(map[domain.CacheKey]domain.CacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the table for sourceID/worksheet, serving a fresh cache entry
// when useCache is set and otherwise fetching from the source.
func (c *sheetCache) Get(ctx context.Context, sourceID, worksheet string, useCache bool) (domain.Table, error) {
	key := domain.CacheKey{SourceID: sourceID, Worksheet: worksheet}

	if useCache {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && entry.Fresh(c.now(), c.ttl) {
			return entry.Table.Clone(), nil
		}
	}

	c.mu.RLock()
	startGen := c.gen
	c.mu.RUnlock()

	values, err := c.source.ReadAll(ctx, sourceID, worksheet)
	if err != nil {
		c.log.Error().Err(err).
			Str("source", sourceID).
			Str("worksheet", worksheet).
			Msg("sheet cache: fetch failed")
		return domain.Table{}, apperror.ErrDataSource(err)
	}

	table := domain.NewTable(values)
	c.mu.Lock()
	if c.gen == startGen {
		c.entries[key] = domain.CacheEntry{Key: key, Table: table, FetchedAt: c.now()}
	}
	c.mu.Unlock()

	c.log.Debug().
		Str("source", sourceID).
		Str("worksheet", worksheet).
		Int("rows", table.Len()).
		Msg("sheet cache: fetched")
	return table.Clone(), nil
}

// Peek returns the last stored table regardless of age.
func (c *sheetCache) Peek(sourceID, worksheet string) (domain.Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[domain.CacheKey{SourceID: sourceID, Worksheet: worksheet}]
	if !ok {
		return domain.Table{}, false
	}
	return entry.Table.Clone(), true
}

func (c *sheetCache) Invalidate(sourceID, worksheet string) {
	c.mu.Lock()
	delete(c.entries, domain.CacheKey{SourceID: sourceID, Worksheet: worksheet})
	c.gen++
	c.mu.Unlock()
}

// invalidateSource drops every cached worksheet of sourceID. Writes use it
// because "" and the first sheet's title name the same worksheet.
func (c *sheetCache) invalidateSource(sourceID string) {
	c.mu.Lock()
	for key := range c.entries {
		if key.SourceID == sourceID {
			delete(c.entries, key)
		}
	}
	c.gen++
	c.mu.Unlock()
}

func (c *sheetCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[domain.CacheKey]domain.CacheEntry)
	c.gen++
	c.mu.Unlock()
}

// AppendRow appends one row remotely and drops the source's cached
// worksheets on success.
func (c *sheetCache) AppendRow(ctx context.Context, sourceID string, row []any, worksheet string) bool {
	if err := c.source.AppendRow(ctx, sourceID, worksheet, row); err != nil {
		c.log.Error().Err(err).
			Str("source", sourceID).
			Str("worksheet", worksheet).
			Msg("sheet cache: append failed")
		return false
	}
	c.invalidateSource(sourceID)
	return true
}

// UpdateTable replaces the whole worksheet and drops the source's cached
// worksheets on success.
func (c *sheetCache) UpdateTable(ctx context.Context, sourceID string, table domain.Table, worksheet string) bool {
	if err := c.source.ReplaceAll(ctx, sourceID, worksheet, table.Values()); err != nil {
		c.log.Error().Err(err).
			Str("source", sourceID).
			Str("worksheet", worksheet).
			Int("rows", table.Len()).
			Msg("sheet cache: update failed")
		return false
	}
	c.invalidateSource(sourceID)
	return true
}

func (c *sheetCache) CacheInfo() domain.CacheInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info := domain.CacheInfo{Count: len(c.entries)}
	for _, e := range c.entries {
		if info.OldestFetchedAt == nil || e.FetchedAt.Before(*info.OldestFetchedAt) {
			t := e.FetchedAt
			info.OldestFetchedAt = &t
		}
	}
	return info
}
