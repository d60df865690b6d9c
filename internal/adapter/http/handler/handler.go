package handler

import (
	"errors"
	"net/http"

	"bizdash-core/internal/adapter/http/dto"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// bindError maps a request binding failure to an AppError. Bodies cut off by
// MaxBodySize answer 413.
func bindError(err error) *apperror.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.New(apperror.CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge)
	}
	return apperror.Validation(err.Error())
}

// sourceParam reads and checks the :source path parameter.
func sourceParam(c *gin.Context) (string, *apperror.AppError) {
	source := c.Param("source")
	if !dto.ValidSourceID(source) {
		return "", apperror.Validation("invalid sheet id")
	}
	return source, nil
}

// HealthCheck handles GET /health, pinging every configured dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
