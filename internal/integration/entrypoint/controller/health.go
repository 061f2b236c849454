package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheStatus reports the state of the key-value cache.
type CacheStatus interface {
	Available() bool
	Ping(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	cache           CacheStatus
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool, cache CacheStatus) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		cache:           cache,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
// A missing or unreachable cache does not degrade the status since reads
// fall back to the store.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health [get]
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	statusCode := http.StatusOK

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Cache:     h.cacheStatus(c.Request.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(statusCode, response)
}

func (h *HealthController) cacheStatus(ctx context.Context) string {
	switch {
	case h.cache == nil || !h.cache.Available():
		return "disabled"
	case h.cache.Ping(ctx) != nil:
		return "unreachable"
	default:
		return "connected"
	}
}
