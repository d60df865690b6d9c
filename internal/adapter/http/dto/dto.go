package dto

import (
	"time"

	"bizdash-core/internal/core/domain"
)

// AppendRowRequest is the body for appending one row to a sheet.
type AppendRowRequest struct {
	Worksheet string `json:"worksheet" binding:"omitempty,max=100"`
	Row       []any  `json:"row" binding:"required,min=1"`
}

// ReplaceTableRequest is the body for overwriting a whole worksheet.
type ReplaceTableRequest struct {
	Worksheet string       `json:"worksheet" binding:"omitempty,max=100"`
	Columns   []string     `json:"columns" binding:"required,min=1,dive,required"`
	Rows      []domain.Row `json:"rows"`
}

// Table converts the request into a domain table.
func (r ReplaceTableRequest) Table() domain.Table {
	rows := r.Rows
	if rows == nil {
		rows = []domain.Row{}
	}
	return domain.Table{Columns: r.Columns, Rows: rows}
}

// SheetQuery holds query parameters for sheet reads.
type SheetQuery struct {
	Worksheet string `form:"worksheet" binding:"omitempty,max=100"`
	UseCache  *bool  `form:"use_cache"`
}

// CacheQuery narrows a cache invalidation to one key.
type CacheQuery struct {
	Source    string `form:"source"`
	Worksheet string `form:"worksheet"`
}

// AddProjectRequest carries project fields keyed by column name.
type AddProjectRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}

// SaveProjectsRequest is the edited project table.
type SaveProjectsRequest struct {
	Columns []string     `json:"columns" binding:"required,min=1"`
	Rows    []domain.Row `json:"rows"`
}

func (r SaveProjectsRequest) Table() domain.Table {
	rows := r.Rows
	if rows == nil {
		rows = []domain.Row{}
	}
	return domain.Table{Columns: r.Columns, Rows: rows}
}

// UserInfoRequest identifies who captured the content.
type UserInfoRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	SessionID string `json:"session_id" binding:"omitempty,max=200"`
}

// DispatchRequest is captured content to publish. The type-specific fields
// are derived from metadata.
type DispatchRequest struct {
	User        UserInfoRequest `json:"user_info" binding:"required"`
	PrimaryData string          `json:"primary_data" binding:"required"`
	Metadata    map[string]any  `json:"metadata"`
	Quality     string          `json:"quality" binding:"omitempty,max=32"`
	AutoProcess bool            `json:"auto_process"`
}

// Payload builds the webhook payload for kind.
func (r DispatchRequest) Payload(kind domain.WebhookKind, now time.Time) domain.WebhookPayload {
	quality := r.Quality
	if quality == "" {
		quality = "high"
	}
	return domain.NewPayload(kind,
		domain.UserInfo{Name: r.User.Name, SessionID: r.User.SessionID},
		r.PrimaryData,
		r.Metadata,
		domain.ProcessingOptions{Quality: quality, AutoProcess: r.AutoProcess},
		now,
	)
}

// FanOutRequest publishes one payload, built for WebhookType, to every
// endpoint in Kinds.
type FanOutRequest struct {
	DispatchRequest
	WebhookType string   `json:"webhook_type" binding:"required,webhook_kind"`
	Kinds       []string `json:"kinds" binding:"required,min=1"`
}

// UpdateEndpointRequest overrides one endpoint URL.
type UpdateEndpointRequest struct {
	URL string `json:"url" binding:"required,safe_url"`
}

// HistoryQuery narrows dispatch history.
type HistoryQuery struct {
	Kind  string `form:"kind" binding:"omitempty,webhook_kind"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// DispatchResponse is the (success, message, result) triple.
type DispatchResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Result  domain.DispatchResult `json:"result"`
}

// ProjectsResponse is a project table plus its quality report.
type ProjectsResponse struct {
	Table    domain.Table         `json:"table"`
	Fallback string               `json:"fallback,omitempty"`
	Error    string               `json:"error,omitempty"`
	LoadedAt time.Time            `json:"loaded_at"`
	Quality  domain.QualityReport `json:"quality"`
}

// CallsResponse is the filtered call table.
type CallsResponse struct {
	Table domain.Table `json:"table"`
	Count int          `json:"count"`
	Error string       `json:"error,omitempty"`
}
