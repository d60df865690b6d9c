package handler

import (
	"bizdash-core/internal/adapter/http/dto"
	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// CallHandler serves the call-center sheet.
type CallHandler struct {
	calls ports.CallService
}

func NewCallHandler(calls ports.CallService) *CallHandler {
	return &CallHandler{calls: calls}
}

// List handles GET /api/v1/calls. A failed read answers 200 with the empty
// schema and the error.
func (h *CallHandler) List(c *gin.Context) {
	var filter domain.CallFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, bindError(err))
		return
	}

	table, err := h.calls.List(c.Request.Context(), filter)
	resp := dto.CallsResponse{Table: table, Count: table.Len()}
	if err != nil {
		resp.Error = err.Error()
	}
	response.OK(c, resp)
}
