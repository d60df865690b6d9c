package handler

import (
	"errors"

	"bizdash-core/internal/adapter/http/dto"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"
	"bizdash-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// SheetHandler exposes the sheet cache.
type SheetHandler struct {
	sheets ports.SheetService
}

func NewSheetHandler(sheets ports.SheetService) *SheetHandler {
	return &SheetHandler{sheets: sheets}
}

// Get handles GET /api/v1/sheets/:source.
func (h *SheetHandler) Get(c *gin.Context) {
	source, appErr := sourceParam(c)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	var q dto.SheetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	useCache := q.UseCache == nil || *q.UseCache

	table, err := h.sheets.Get(c.Request.Context(), source, q.Worksheet, useCache)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, table)
}

// AppendRow handles POST /api/v1/sheets/:source/rows.
func (h *SheetHandler) AppendRow(c *gin.Context) {
	source, appErr := sourceParam(c)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	var req dto.AppendRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if !h.sheets.AppendRow(c.Request.Context(), source, req.Row, req.Worksheet) {
		response.Error(c, apperror.ErrDataSource(errors.New("append row failed")))
		return
	}
	response.Created(c, gin.H{"appended": true})
}

// Replace handles PUT /api/v1/sheets/:source.
func (h *SheetHandler) Replace(c *gin.Context) {
	source, appErr := sourceParam(c)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	var req dto.ReplaceTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	table := req.Table()
	if !h.sheets.UpdateTable(c.Request.Context(), source, table, req.Worksheet) {
		response.Error(c, apperror.ErrDataSource(errors.New("replace table failed")))
		return
	}
	response.OK(c, gin.H{"updated": true, "rows": table.Len()})
}

// ClearCache handles DELETE /api/v1/sheets/cache. With ?source= only that
// key is dropped.
func (h *SheetHandler) ClearCache(c *gin.Context) {
	var q dto.CacheQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if q.Source == "" {
		h.sheets.Clear()
	} else {
		h.sheets.Invalidate(q.Source, q.Worksheet)
	}
	response.OK(c, h.sheets.CacheInfo())
}

// CacheInfo handles GET /api/v1/sheets/cache.
func (h *SheetHandler) CacheInfo(c *gin.Context) {
	response.OK(c, h.sheets.CacheInfo())
}
