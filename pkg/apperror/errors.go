package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string   `json:"error_code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	HTTPStatus int      `json:"-"`
	Err        error    `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes. Callers switch on these to tell "your input was bad"
// apart from "the remote was unreachable".
const (
	CodeDataSource      = "DS_001"
	CodeValidation      = "VAL_001"
	CodePayloadTooLarge = "VAL_002"
	CodeRateLimit       = "RATE_001"
	CodeTransport       = "NET_001"
	CodeRemoteRejection = "NET_002"
	CodeUnknownKind     = "WH_001"
	CodeNoKinds         = "WH_002"
	CodeBadRequest      = "REQ_001"
	CodeInternal        = "SYS_001"
)

// ---- Data source (DS) ----

// ErrDataSource wraps a remote spreadsheet read/write failure.
func ErrDataSource(err error) *AppError {
	return Wrap(CodeDataSource, "Data source unavailable", http.StatusBadGateway, err)
}

// ---- Payload gates (VAL / RATE) ----

// ErrValidation reports schema violations found in a webhook payload.
func ErrValidation(errs []string) *AppError {
	msg := "Payload validation failed"
	if len(errs) > 0 {
		shown, more := errs, ""
		if len(shown) > 3 {
			shown, more = shown[:3], "..."
		}
		msg = fmt.Sprintf("Validation failed: %s%s", strings.Join(shown, "; "), more)
	}
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		Details:    errs,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func ErrPayloadTooLarge(size, max int64) *AppError {
	return New(CodePayloadTooLarge,
		fmt.Sprintf("Payload too large: %s (max %s)", FormatBytes(size), FormatBytes(max)),
		http.StatusRequestEntityTooLarge)
}

func ErrRateLimitExceeded(message string) *AppError {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return New(CodeRateLimit, message, http.StatusTooManyRequests)
}

// ---- Network (NET) ----

// ErrTransport reports a timeout, connection or TLS failure talking to an endpoint.
func ErrTransport(err error) *AppError {
	return Wrap(CodeTransport, "Could not reach webhook endpoint", http.StatusBadGateway, err)
}

// ErrRemoteRejection reports that the endpoint answered with a non-200 status.
func ErrRemoteRejection(status int, body string) *AppError {
	if len(body) > 100 {
		body = body[:100]
	}
	msg := fmt.Sprintf("Endpoint responded with status %d", status)
	if body != "" {
		msg = fmt.Sprintf("%s: %s", msg, body)
	}
	return New(CodeRemoteRejection, msg, http.StatusBadGateway)
}

// ---- Webhook routing (WH) ----

func ErrUnknownWebhookKind(kind string) *AppError {
	return New(CodeUnknownKind, fmt.Sprintf("Invalid webhook type: %s", kind), http.StatusBadRequest)
}

func ErrNoWebhookKinds() *AppError {
	return New(CodeNoKinds, "No webhook types specified", http.StatusBadRequest)
}

// ---- System & request (SYS / REQ) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-level validation error.
func Validation(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

// FormatBytes renders a byte count in human readable form (B, KB, MB, GB).
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.2f %s", v, units[i])
}
