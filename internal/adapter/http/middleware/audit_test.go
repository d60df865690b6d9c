package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditRouter(buf *bytes.Buffer, status int) *gin.Engine {
	router := gin.New()
	router.Use(AuditLog(zerolog.New(buf)))
	handler := func(c *gin.Context) { c.Status(status) }
	router.PUT("/api/v1/webhooks/:kind/endpoint", handler)
	router.GET("/api/v1/webhooks/endpoints", handler)
	router.POST("/api/v1/sheets/:source/rows", handler)
	return router
}

func TestAuditLog_RecordsEndpointUpdate(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, http.StatusOK)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/webhooks/audio/endpoint", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "webhook.update_endpoint", entry["audit_action"])
	assert.Equal(t, "webhook", entry["resource"])
	assert.Equal(t, "audio", entry["kind"])
}

func TestAuditLog_SkipsGET(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, http.StatusOK)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/webhooks/endpoints", nil))
	assert.Zero(t, buf.Len())
}

func TestAuditLog_SkipsFailedRequests(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, http.StatusBadGateway)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/sheets/abc/rows", nil))
	assert.Zero(t, buf.Len())
}

func TestMapRouteToAction(t *testing.T) {
	tests := []struct {
		route, method, action string
	}{
		{"/api/v1/sheets/:source/rows", http.MethodPost, "sheet.append_row"},
		{"/api/v1/sheets/:source", http.MethodPut, "sheet.replace"},
		{"/api/v1/sheets/cache", http.MethodDelete, "cache.clear"},
		{"/api/v1/projects", http.MethodPost, "project.add"},
		{"/api/v1/projects", http.MethodPut, "project.save"},
		{"/api/v1/webhooks/stats", http.MethodDelete, "webhook.reset_stats"},
		{"/api/v1/webhooks/:kind/dispatch", http.MethodPost, ""},
	}
	for _, tt := range tests {
		action, _ := mapRouteToAction(tt.route, tt.method)
		assert.Equal(t, tt.action, action, tt.route)
	}
}
