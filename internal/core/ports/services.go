package ports

import (
	"context"
	"time"

	"bizdash-core/internal/core/domain"
)

// RateLimiter throttles dispatches per user per webhook kind.
type RateLimiter interface {
	// Allow returns whether the call may proceed and, when refused, a
	// message suitable for the caller.
	Allow(ctx context.Context, userID string, kind domain.WebhookKind) (bool, string, error)
}

// --- Service Ports (Business Logic) ---

// SheetService is the cached view of the spreadsheet backend. Entries are
// keyed by the worksheet name as given; writes drop every worksheet of the
// source since "" and the first sheet's title are the same worksheet.
type SheetService interface {
	Get(ctx context.Context, sourceID, worksheet string, useCache bool) (domain.Table, error)
	Peek(sourceID, worksheet string) (domain.Table, bool)
	Invalidate(sourceID, worksheet string)
	Clear()
	AppendRow(ctx context.Context, sourceID string, row []any, worksheet string) bool
	UpdateTable(ctx context.Context, sourceID string, table domain.Table, worksheet string) bool
	CacheInfo() domain.CacheInfo
}

// WebhookDispatcher publishes content payloads to the per-kind endpoints.
type WebhookDispatcher interface {
	Validate(payload domain.WebhookPayload) (bool, []string)
	Sanitize(payload domain.WebhookPayload) domain.WebhookPayload
	CheckRateLimit(ctx context.Context, userID string, kind domain.WebhookKind) (bool, string)
	Dispatch(ctx context.Context, payload domain.WebhookPayload, kind domain.WebhookKind) (bool, string, domain.DispatchResult)
	DispatchMany(ctx context.Context, payload domain.WebhookPayload, kinds []string) (map[string]domain.DispatchOutcome, error)
	History() []domain.DispatchResult
	Recent(ctx context.Context, kind *domain.WebhookKind, limit int) []domain.DispatchResult
	Stats() map[domain.WebhookKind]domain.EndpointStats
	ResetStats()
	Endpoints() map[domain.WebhookKind]string
	SetEndpoint(kind domain.WebhookKind, url string) error
}

// ProjectLoad is a project table plus how it was obtained.
type ProjectLoad struct {
	Table    domain.Table `json:"table"`
	Fallback string       `json:"fallback,omitempty"` // "", "stale_cache", "empty_schema", "sample"
	Error    string       `json:"error,omitempty"`
	LoadedAt time.Time    `json:"loaded_at"`
}

// ProjectService manages the project sheet.
type ProjectService interface {
	Load(ctx context.Context, force bool) (ProjectLoad, error)
	AddProject(ctx context.Context, fields map[string]any) (ProjectLoad, error)
	SaveProjects(ctx context.Context, table domain.Table) error
	Scan(table domain.Table, now time.Time) domain.QualityReport
}

// CallService reads and filters the call-center sheet.
type CallService interface {
	List(ctx context.Context, filter domain.CallFilter) (domain.Table, error)
}
