package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog records successful mutating requests (sheet writes, cache
// clears, endpoint overrides) to the audit logger after the handler runs.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resource := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		event := log.Info().
			Str("audit_action", action).
			Str("resource", resource).
			Str("request_id", c.GetString(CtxRequestID)).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status())
		for _, p := range c.Params {
			event = event.Str(p.Key, p.Value)
		}
		event.Msg("audit")
	}
}

func mapRouteToAction(route, method string) (action, resource string) {
	switch {
	case route == "/api/v1/sheets/:source/rows" && method == http.MethodPost:
		return "sheet.append_row", "sheet"
	case route == "/api/v1/sheets/:source" && method == http.MethodPut:
		return "sheet.replace", "sheet"
	case route == "/api/v1/sheets/cache" && method == http.MethodDelete:
		return "cache.clear", "cache"
	case route == "/api/v1/projects" && method == http.MethodPost:
		return "project.add", "project"
	case route == "/api/v1/projects" && method == http.MethodPut:
		return "project.save", "project"
	case route == "/api/v1/webhooks/:kind/endpoint" && method == http.MethodPut:
		return "webhook.update_endpoint", "webhook"
	case route == "/api/v1/webhooks/stats" && method == http.MethodDelete:
		return "webhook.reset_stats", "webhook"
	}
	return "", ""
}
