package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// version is reported by the health endpoints
const version = "1.0.0"

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler handles health check requests
type HealthHandler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		timeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services,omitempty"`
}

// Health returns the overall health of the service
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "A dependency is unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, services := h.run(c.Request.Context())
	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   version,
		Services:  services,
	})
}

// Ready reports whether the service can take traffic
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is ready"
// @Failure 503 {object} HealthResponse "Service is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	status, services := h.run(c.Request.Context())
	if status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC(),
			Version:   version,
			Services:  services,
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
		Version:   version,
	})
}

// Live reports that the process is running
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Version:   version,
	})
}

func (h *HealthHandler) run(ctx context.Context) (string, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "healthy"
	services := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			services[name] = "unhealthy: " + err.Error()
			status = "unhealthy"
			continue
		}
		services[name] = "healthy"
	}
	return status, services
}
