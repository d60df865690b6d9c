package handler

import (
	"strconv"
	"time"

	"bizdash-core/internal/adapter/http/dto"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the project sheet.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/v1/projects. A failed read still answers 200 with
// the fallback table and the error.
func (h *ProjectHandler) List(c *gin.Context) {
	force, _ := strconv.ParseBool(c.Query("force"))

	load, err := h.projects.Load(c.Request.Context(), force)
	if err != nil && load.Fallback == "" {
		response.Error(c, err)
		return
	}
	response.OK(c, h.toResponse(load))
}

// Add handles POST /api/v1/projects.
func (h *ProjectHandler) Add(c *gin.Context) {
	var req dto.AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	load, err := h.projects.AddProject(c.Request.Context(), req.Fields)
	if err != nil && load.Fallback == "" {
		response.Error(c, err)
		return
	}
	response.Created(c, h.toResponse(load))
}

// Save handles PUT /api/v1/projects.
func (h *ProjectHandler) Save(c *gin.Context) {
	var req dto.SaveProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	table := req.Table()
	if err := h.projects.SaveProjects(c.Request.Context(), table); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"saved": true, "rows": table.Len()})
}

// Quality handles GET /api/v1/projects/quality.
func (h *ProjectHandler) Quality(c *gin.Context) {
	load, err := h.projects.Load(c.Request.Context(), false)
	if err != nil && load.Fallback == "" {
		response.Error(c, err)
		return
	}
	response.OK(c, h.projects.Scan(load.Table, time.Now()))
}

func (h *ProjectHandler) toResponse(load ports.ProjectLoad) dto.ProjectsResponse {
	return dto.ProjectsResponse{
		Table:    load.Table,
		Fallback: load.Fallback,
		Error:    load.Error,
		LoadedAt: load.LoadedAt,
		Quality:  h.projects.Scan(load.Table, time.Now()),
	}
}
