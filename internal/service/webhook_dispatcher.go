package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"syscall"
	"time"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseRead bounds how much of an endpoint body is read before truncation.
const maxResponseRead = 64 << 10

// DispatcherConfig tunes the dispatch gates and retry loop.
type DispatcherConfig struct {
	Endpoints       map[domain.WebhookKind]string
	MaxPayloadBytes int64
	MaxAttempts     int
	BaseDelay       time.Duration
	Timeout         time.Duration
	UserAgentPrefix string
	// SigningSecret enables X-Webhook-Signature on every delivery when set.
	SigningSecret string
}

// DefaultDispatcherConfig returns the stock limits with no endpoints set.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Endpoints:       map[domain.WebhookKind]string{},
		MaxPayloadBytes: 10 << 20,
		MaxAttempts:     3,
		BaseDelay:       time.Second,
		Timeout:         30 * time.Second,
		UserAgentPrefix: "Book-Buddy-Multi-Webhook/2.0.0",
	}
}

// webhookDispatcher implements ports.WebhookDispatcher.
type webhookDispatcher struct {
	cfg        DispatcherConfig
	validator  *PayloadValidator
	limiter    ports.RateLimiter
	stats      *DispatchStats
	signer     *WebhookSigner
	httpClient HTTPClient
	now        func() time.Time
	log        zerolog.Logger

	mu        sync.RWMutex
	endpoints map[domain.WebhookKind]string
}

// NewWebhookDispatcher creates a dispatcher. A nil limiter allows every call.
func NewWebhookDispatcher(
	cfg DispatcherConfig,
	validator *PayloadValidator,
	limiter ports.RateLimiter,
	stats *DispatchStats,
	httpClient HTTPClient,
	log zerolog.Logger,
) ports.WebhookDispatcher {
	def := DefaultDispatcherConfig()
	if cfg.MaxPayloadBytes <= 0 {
		cfg.MaxPayloadBytes = def.MaxPayloadBytes
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.BaseDelay < 0 {
		cfg.BaseDelay = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgentPrefix == "" {
		cfg.UserAgentPrefix = def.UserAgentPrefix
	}

	endpoints := make(map[domain.WebhookKind]string, len(cfg.Endpoints))
	for k, u := range cfg.Endpoints {
		endpoints[k] = u
	}

	return &webhookDispatcher{
		cfg:        cfg,
		validator:  validator,
		limiter:    limiter,
		stats:      stats,
		signer:     NewWebhookSigner(cfg.SigningSecret),
		httpClient: httpClient,
		now:        time.Now,
		log:        log,
		endpoints:  endpoints,
	}
}

func (d *webhookDispatcher) Validate(payload domain.WebhookPayload) (bool, []string) {
	return d.validator.Validate(payload)
}

func (d *webhookDispatcher) Sanitize(payload domain.WebhookPayload) domain.WebhookPayload {
	return d.validator.Sanitize(payload)
}

// CheckRateLimit asks the limiter whether userID may dispatch to kind.
// Limiter failures allow the call (degraded mode).
func (d *webhookDispatcher) CheckRateLimit(ctx context.Context, userID string, kind domain.WebhookKind) (bool, string) {
	if d.limiter == nil {
		return true, "OK"
	}
	allowed, msg, err := d.limiter.Allow(ctx, userID, kind)
	if err != nil {
		d.log.Warn().Err(err).
			Str("webhook_type", string(kind)).
			Str("user_id", userID).
			Msg("rate limit check failed, allowing dispatch (degraded mode)")
		return true, "OK"
	}
	return allowed, msg
}

// Dispatch runs payload through the gates and sends it to kind's endpoint.
func (d *webhookDispatcher) Dispatch(ctx context.Context, payload domain.WebhookPayload, kind domain.WebhookKind) (bool, string, domain.DispatchResult) {
	result := domain.DispatchResult{
		ID:          uuid.New(),
		WebhookType: kind,
		URL:         d.endpoint(kind),
		StartedAt:   d.now(),
	}

	if !kind.Valid() {
		return d.fail(ctx, &result, apperror.ErrUnknownWebhookKind(string(kind)), 0)
	}

	if ok, errs := d.Validate(payload); !ok {
		result.ValidationErrors = errs
		return d.fail(ctx, &result, apperror.ErrValidation(errs), 0)
	}
	result.ValidationPassed = true

	payload = d.Sanitize(payload)
	body, err := json.Marshal(payload)
	if err != nil {
		return d.fail(ctx, &result, apperror.ErrValidation([]string{"payload is not JSON-encodable: " + err.Error()}), 0)
	}
	result.PayloadSize = int64(len(body))

	if result.PayloadSize > d.cfg.MaxPayloadBytes {
		return d.fail(ctx, &result, apperror.ErrPayloadTooLarge(result.PayloadSize, d.cfg.MaxPayloadBytes), 0)
	}

	userID := payload.UserID()
	if allowed, msg := d.CheckRateLimit(ctx, userID, kind); !allowed {
		return d.fail(ctx, &result, apperror.ErrRateLimitExceeded(msg), 0)
	}

	if result.URL == "" {
		return d.fail(ctx, &result, apperror.ErrTransport(fmt.Errorf("no endpoint configured for %s", kind)), 0)
	}

	d.stats.MarkSent(kind, d.now())

	status, text, attempts, err := d.send(ctx, result.URL, kind, userID, body)
	result.AttemptCount = attempts
	if err != nil {
		return d.fail(ctx, &result, apperror.ErrTransport(err), attempts)
	}

	result.StatusCode = status
	result.ResponseText = domain.TruncateResponse(text)
	result.Outcome = domain.OutcomeForStatus(status)
	if result.Outcome != domain.OutcomeSucceeded {
		rej := apperror.ErrRemoteRejection(status, text)
		result.ErrorCode = rej.Code
		result.Error = rej.Message
	}
	result.Success = result.Outcome == domain.OutcomeSucceeded
	result.FinishedAt = d.now()
	d.stats.Record(ctx, result)

	msg := statusMessage(kind, status, text)
	logEvent := d.log.Info()
	if !result.Success {
		logEvent = d.log.Warn()
	}
	logEvent.
		Str("webhook_type", string(kind)).
		Int64("payload_size", result.PayloadSize).
		Str("outcome", string(result.Outcome)).
		Int("attempt", attempts).
		Int("status", status).
		Dur("duration", result.Duration()).
		Msg("webhook: dispatched")

	return result.Success, msg, result
}

// fail finishes a dispatch that ended on an error and records it.
func (d *webhookDispatcher) fail(ctx context.Context, result *domain.DispatchResult, appErr *apperror.AppError, attempts int) (bool, string, domain.DispatchResult) {
	result.Outcome = outcomeFor(appErr)
	result.Success = false
	result.AttemptCount = attempts
	result.ErrorCode = appErr.Code
	result.Error = appErr.Message
	if appErr.Err != nil {
		result.Detail = appErr.Err.Error()
	}
	result.FinishedAt = d.now()
	d.stats.Record(ctx, *result)

	msg := appErr.Message
	if result.Outcome == domain.OutcomeTransportFailure {
		msg = transportMessage(appErr.Err, d.cfg.Timeout)
	}

	d.log.Error().
		Str("webhook_type", string(result.WebhookType)).
		Int64("payload_size", result.PayloadSize).
		Str("outcome", string(result.Outcome)).
		Int("attempt", attempts).
		Str("error_code", appErr.Code).
		Msg("webhook: dispatch failed")
	if result.Detail != "" {
		d.log.Debug().
			Str("dispatch_id", result.ID.String()).
			Str("detail", result.Detail).
			Msg("webhook: failure detail")
	}

	return false, msg, *result
}

// outcomeFor maps a dispatch error to the outcome it represents.
func outcomeFor(err error) domain.Outcome {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return domain.OutcomeInternalError
	}
	switch appErr.Code {
	case apperror.CodeValidation, apperror.CodeUnknownKind:
		return domain.OutcomeInvalid
	case apperror.CodePayloadTooLarge:
		return domain.OutcomeOversized
	case apperror.CodeRateLimit:
		return domain.OutcomeRateLimited
	case apperror.CodeTransport:
		return domain.OutcomeTransportFailure
	}
	return domain.OutcomeInternalError
}

// send POSTs body, retrying only timeouts and connection failures with a
// linearly growing delay. Any HTTP response ends the loop.
func (d *webhookDispatcher) send(ctx context.Context, endpoint string, kind domain.WebhookKind, userID string, body []byte) (int, string, int, error) {
	var (
		status   int
		text     string
		attempts int
	)

	retryable := func(err error) bool {
		return ctx.Err() == nil && isTransient(err)
	}

	err := retry.Do(
		func() error {
			attempts++
			s, t, err := d.post(ctx, endpoint, kind, userID, body)
			if err != nil {
				if retryable(err) {
					d.log.Warn().Err(err).
						Str("webhook_type", string(kind)).
						Int64("payload_size", int64(len(body))).
						Str("outcome", string(domain.OutcomeTransportFailure)).
						Int("attempt", attempts).
						Msg("webhook: attempt failed")
				}
				return err
			}
			status, text = s, t
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(d.cfg.MaxAttempts)),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return d.cfg.BaseDelay * time.Duration(n+1)
		}),
	)
	if err != nil {
		return 0, "", attempts, err
	}
	return status, text, attempts, nil
}

// post performs one attempt under the per-attempt timeout.
func (d *webhookDispatcher) post(ctx context.Context, endpoint string, kind domain.WebhookKind, userID string, body []byte) (int, string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.cfg.UserAgentPrefix+"-"+string(kind))
	req.Header.Set("X-Webhook-Type", string(kind))
	req.Header.Set("X-Content-Type", string(kind))
	req.Header.Set("X-Payload-Size", strconv.Itoa(len(body)))
	req.Header.Set("X-User-ID", userID)
	if d.signer != nil {
		ts := d.now().Unix()
		req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(HeaderWebhookSignature, d.signer.Sign(ts, body))
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseRead))
	return resp.StatusCode, string(raw), nil
}

// isTransient reports whether a transport error is worth another attempt:
// timeouts and failures to connect. TLS and malformed-request errors are not.
func isTransient(err error) bool {
	if isTLSError(err) {
		return false
	}
	if isTimeout(err) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func isTLSError(err error) bool {
	var (
		certErr     *tls.CertificateVerificationError
		unknownAuth x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidCert x509.CertificateInvalidError
		recordErr   tls.RecordHeaderError
	)
	return errors.As(err, &certErr) || errors.As(err, &unknownAuth) || errors.As(err, &hostErr) ||
		errors.As(err, &invalidCert) || errors.As(err, &recordErr)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func transportMessage(err error, timeout time.Duration) string {
	switch {
	case err == nil:
		return "Transport error"
	case isTLSError(err):
		return "SSL certificate error. Please check the webhook URL."
	case isTimeout(err):
		return fmt.Sprintf("Request timed out after %s. Please check your connection.", timeout)
	case isTransient(err):
		return "Could not connect to webhook. Please check the URL and your internet connection."
	}
	return "Unexpected error: " + truncateRunes(err.Error(), 100)
}

func statusMessage(kind domain.WebhookKind, status int, body string) string {
	switch domain.OutcomeForStatus(status) {
	case domain.OutcomeSucceeded:
		return fmt.Sprintf("Successfully sent to %s webhook!", kind.DisplayName())
	case domain.OutcomeRateLimitedByServer:
		return "Rate limited by server. Please try again later."
	case domain.OutcomeServerError:
		return fmt.Sprintf("Server error (%d). Please try again later.", status)
	case domain.OutcomeClientError:
		return fmt.Sprintf("Request error (%d): %s", status, truncateRunes(body, 100))
	}
	return fmt.Sprintf("Unexpected response (%d)", status)
}

// DispatchMany validates payload once and sends it to every kind
// concurrently. Each kind gets its own outcome; one failing or panicking
// endpoint never affects the others.
func (d *webhookDispatcher) DispatchMany(ctx context.Context, payload domain.WebhookPayload, kinds []string) (map[string]domain.DispatchOutcome, error) {
	if len(kinds) == 0 {
		return nil, apperror.ErrNoWebhookKinds()
	}

	seen := make(map[string]struct{}, len(kinds))
	unique := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	results := make(map[string]domain.DispatchOutcome, len(unique))

	if ok, errs := d.Validate(payload); !ok {
		appErr := apperror.ErrValidation(errs)
		for _, k := range unique {
			results[k] = domain.DispatchOutcome{
				Success: false,
				Message: appErr.Message,
				Result: domain.DispatchResult{
					ID:               uuid.New(),
					WebhookType:      domain.WebhookKind(k),
					Outcome:          domain.OutcomeInvalid,
					ValidationErrors: errs,
					Error:            appErr.Message,
					ErrorCode:        appErr.Code,
				},
			}
		}
		return results, nil
	}

	slots := make([]domain.DispatchOutcome, len(unique))
	var wg sync.WaitGroup
	for i, raw := range unique {
		kind, err := domain.ParseWebhookKind(raw)
		if err != nil {
			appErr := apperror.ErrUnknownWebhookKind(raw)
			slots[i] = domain.DispatchOutcome{
				Success: false,
				Message: appErr.Message,
				Result: domain.DispatchResult{
					ID:          uuid.New(),
					WebhookType: domain.WebhookKind(raw),
					Outcome:     domain.OutcomeInvalid,
					Error:       appErr.Message,
					ErrorCode:   appErr.Code,
				},
			}
			continue
		}

		wg.Add(1)
		go func(i int, kind domain.WebhookKind) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.log.Error().
						Str("webhook_type", string(kind)).
						Interface("panic", r).
						Msg("webhook: dispatch panicked")
					slots[i] = domain.DispatchOutcome{
						Success: false,
						Message: truncateRunes(fmt.Sprintf("Error sending to %s: %v", kind, r), 100),
						Result: domain.DispatchResult{
							ID:          uuid.New(),
							WebhookType: kind,
							Outcome:     domain.OutcomeInternalError,
							ErrorCode:   apperror.CodeInternal,
							Error:       fmt.Sprint(r),
						},
					}
				}
			}()
			ok, msg, res := d.Dispatch(ctx, payload, kind)
			slots[i] = domain.DispatchOutcome{Success: ok, Message: msg, Result: res}
		}(i, kind)
	}
	wg.Wait()

	for i, k := range unique {
		results[k] = slots[i]
	}
	return results, nil
}

func (d *webhookDispatcher) History() []domain.DispatchResult {
	return d.stats.History()
}

func (d *webhookDispatcher) Recent(ctx context.Context, kind *domain.WebhookKind, limit int) []domain.DispatchResult {
	return d.stats.Recent(ctx, kind, limit)
}

func (d *webhookDispatcher) Stats() map[domain.WebhookKind]domain.EndpointStats {
	return d.stats.Stats()
}

func (d *webhookDispatcher) ResetStats() {
	d.stats.Reset()
}

func (d *webhookDispatcher) endpoint(kind domain.WebhookKind) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.endpoints[kind]
}

// Endpoints returns a copy of the kind to URL table.
func (d *webhookDispatcher) Endpoints() map[domain.WebhookKind]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[domain.WebhookKind]string, len(d.endpoints))
	for k, u := range d.endpoints {
		out[k] = u
	}
	return out
}

// SetEndpoint points kind at a new http(s) URL.
func (d *webhookDispatcher) SetEndpoint(kind domain.WebhookKind, rawURL string) error {
	if !kind.Valid() {
		return apperror.ErrUnknownWebhookKind(string(kind))
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.Validation("Webhook URL must be an absolute http or https URL")
	}

	d.mu.Lock()
	d.endpoints[kind] = rawURL
	d.mu.Unlock()

	d.log.Info().Str("webhook_type", string(kind)).Str("url", rawURL).Msg("webhook: endpoint updated")
	return nil
}
