package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal state of one dispatch call.
type Outcome string

const (
	OutcomeSucceeded           Outcome = "succeeded"
	OutcomeServerError         Outcome = "server_error"
	OutcomeClientError         Outcome = "client_error"
	OutcomeRateLimitedByServer Outcome = "rate_limited_by_server"
	OutcomeUnexpectedStatus    Outcome = "unexpected_status"
	OutcomeTransportFailure    Outcome = "transport_failure"
	OutcomeInternalError       Outcome = "internal_error"

	// Gate failures: the payload never reached the network.
	OutcomeInvalid     Outcome = "invalid"
	OutcomeOversized   Outcome = "oversized"
	OutcomeRateLimited Outcome = "rate_limited"
)

// ReachedNetwork reports whether the outcome came from an actual send.
func (o Outcome) ReachedNetwork() bool {
	switch o {
	case OutcomeInvalid, OutcomeOversized, OutcomeRateLimited:
		return false
	}
	return true
}

// OutcomeForStatus classifies an HTTP status the endpoint answered with.
func OutcomeForStatus(status int) Outcome {
	switch {
	case status == 200:
		return OutcomeSucceeded
	case status == 429:
		return OutcomeRateLimitedByServer
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	default:
		return OutcomeUnexpectedStatus
	}
}

// MaxResponseTextLen caps how much of an endpoint's response body is kept.
const MaxResponseTextLen = 500

// DispatchResult records one dispatch call, successful or not.
type DispatchResult struct {
	ID               uuid.UUID   `json:"id"`
	WebhookType      WebhookKind `json:"webhook_type"`
	URL              string      `json:"url"`
	Outcome          Outcome     `json:"outcome"`
	Success          bool        `json:"success"`
	StatusCode       int         `json:"status_code,omitempty"`
	PayloadSize      int64       `json:"payload_size"`
	ResponseText     string      `json:"response_text,omitempty"`
	AttemptCount     int         `json:"attempt_count"`
	ValidationPassed bool        `json:"validation_passed"`
	ValidationErrors []string    `json:"validation_errors,omitempty"`
	Error            string      `json:"error,omitempty"`
	ErrorCode        string      `json:"error_code,omitempty"`
	Detail           string      `json:"-"` // cause chain; debug logs only
	StartedAt        time.Time   `json:"started_at"`
	FinishedAt       time.Time   `json:"finished_at"`
}

// Duration is how long the dispatch took end to end.
func (r DispatchResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// TruncateResponse clips an endpoint body to MaxResponseTextLen bytes
// without splitting a UTF-8 sequence.
func TruncateResponse(body string) string {
	if len(body) <= MaxResponseTextLen {
		return body
	}
	cut := MaxResponseTextLen
	for cut > 0 && !isRuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// DispatchOutcome is the (success, message, result) triple returned to callers.
type DispatchOutcome struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Result  DispatchResult `json:"result"`
}

// EndpointStats are monotonically increasing counters for one webhook kind.
type EndpointStats struct {
	Sent       int64      `json:"sent"`
	Success    int64      `json:"success"`
	Errors     int64      `json:"errors"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}
