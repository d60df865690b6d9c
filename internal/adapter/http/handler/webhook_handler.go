package handler

import (
	"net/http"
	"time"

	"bizdash-core/internal/adapter/http/dto"
	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"
	"bizdash-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler publishes captured content and exposes dispatch state.
type WebhookHandler struct {
	dispatcher ports.WebhookDispatcher
	now        func() time.Time
}

func NewWebhookHandler(dispatcher ports.WebhookDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher, now: time.Now}
}

// Dispatch handles POST /api/v1/webhooks/:kind/dispatch.
func (h *WebhookHandler) Dispatch(c *gin.Context) {
	kind, err := domain.ParseWebhookKind(c.Param("kind"))
	if err != nil {
		response.Error(c, apperror.ErrUnknownWebhookKind(c.Param("kind")))
		return
	}
	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	ok, msg, result := h.dispatcher.Dispatch(c.Request.Context(), req.Payload(kind, h.now()), kind)
	response.Status(c, statusForOutcome(ok, result.Outcome), dto.DispatchResponse{
		Success: ok,
		Message: msg,
		Result:  result,
	})
}

// DispatchMany handles POST /api/v1/webhooks/dispatch.
func (h *WebhookHandler) DispatchMany(c *gin.Context) {
	var req dto.FanOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	payload := req.Payload(domain.WebhookKind(req.WebhookType), h.now())
	results, err := h.dispatcher.DispatchMany(c.Request.Context(), payload, req.Kinds)
	if err != nil {
		response.Error(c, err)
		return
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	response.OK(c, gin.H{
		"results":   results,
		"succeeded": succeeded,
		"total":     len(results),
	})
}

// History handles GET /api/v1/webhooks/history. Without query parameters
// it returns the in-memory history; with kind or limit it reads the durable
// log when one is configured.
func (h *WebhookHandler) History(c *gin.Context) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if q.Kind == "" && q.Limit == 0 {
		response.OK(c, h.dispatcher.History())
		return
	}

	var kind *domain.WebhookKind
	if q.Kind != "" {
		k := domain.WebhookKind(q.Kind)
		kind = &k
	}
	response.OK(c, h.dispatcher.Recent(c.Request.Context(), kind, q.Limit))
}

// Stats handles GET /api/v1/webhooks/stats.
func (h *WebhookHandler) Stats(c *gin.Context) {
	response.OK(c, h.dispatcher.Stats())
}

// ResetStats handles DELETE /api/v1/webhooks/stats.
func (h *WebhookHandler) ResetStats(c *gin.Context) {
	h.dispatcher.ResetStats()
	response.OK(c, h.dispatcher.Stats())
}

type endpointView struct {
	Kind        domain.WebhookKind `json:"kind"`
	DisplayName string             `json:"display_name"`
	URL         string             `json:"url"`
}

// Endpoints handles GET /api/v1/webhooks/endpoints.
func (h *WebhookHandler) Endpoints(c *gin.Context) {
	urls := h.dispatcher.Endpoints()
	out := make([]endpointView, 0, len(urls))
	for _, k := range domain.AllWebhookKinds() {
		out = append(out, endpointView{Kind: k, DisplayName: k.DisplayName(), URL: urls[k]})
	}
	response.OK(c, out)
}

// UpdateEndpoint handles PUT /api/v1/webhooks/:kind/endpoint.
func (h *WebhookHandler) UpdateEndpoint(c *gin.Context) {
	kind, err := domain.ParseWebhookKind(c.Param("kind"))
	if err != nil {
		response.Error(c, apperror.ErrUnknownWebhookKind(c.Param("kind")))
		return
	}
	var req dto.UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.dispatcher.SetEndpoint(kind, req.URL); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, endpointView{Kind: kind, DisplayName: kind.DisplayName(), URL: req.URL})
}

// statusForOutcome picks the HTTP status for a single dispatch answer.
func statusForOutcome(ok bool, outcome domain.Outcome) int {
	if ok {
		return http.StatusOK
	}
	switch outcome {
	case domain.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case domain.OutcomeOversized:
		return http.StatusRequestEntityTooLarge
	case domain.OutcomeRateLimited:
		return http.StatusTooManyRequests
	case domain.OutcomeInternalError:
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}
