package ports

import (
	"context"

	"bizdash-core/internal/core/domain"
)

// SheetSource is the remote spreadsheet backend. Values are header-first
// grids; an empty worksheet means the first sheet of the spreadsheet.
type SheetSource interface {
	ReadAll(ctx context.Context, sourceID, worksheet string) ([][]any, error)
	AppendRow(ctx context.Context, sourceID, worksheet string, row []any) error
	ReplaceAll(ctx context.Context, sourceID, worksheet string, values [][]any) error
}

// DispatchLogRepository persists dispatch results beyond the in-memory history.
type DispatchLogRepository interface {
	Create(ctx context.Context, result *domain.DispatchResult) error
	ListRecent(ctx context.Context, kind *domain.WebhookKind, limit int) ([]domain.DispatchResult, error)
}
