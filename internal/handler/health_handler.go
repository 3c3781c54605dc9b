package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"redcross/internal/cache"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db        Pinger
	cache     Pinger
	startTime time.Time
	version   string
	now       func() time.Time
}

// NewHealthHandler creates a health handler. cache may be nil.
func NewHealthHandler(db, cache Pinger, version string) *HealthHandler {
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		db:        db,
		cache:     cache,
		startTime: time.Now(),
		version:   version,
		now:       time.Now,
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
}

// Check is the state of one dependency.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadyResponse is the readiness payload.
type ReadyResponse struct {
	Success bool             `json:"success"`
	Status  string           `json:"status"`
	Checks  map[string]Check `json:"checks"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	now := h.now()
	return c.JSON(http.StatusOK, HealthResponse{
		Success:   true,
		Status:    "ok",
		Message:   "Indian Red Cross Society - Tripura API Server",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startTime).Round(time.Second).String(),
		Version:   h.version,
	})
}

// Ready godoc
// @Summary Readiness probe
// @Description The database is required. A missing or unreachable cache only degrades the service.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := ReadyResponse{Success: true, Status: "UP", Checks: map[string]Check{}}
	httpStatus := http.StatusOK

	dbCheck := check(ctx, h.db, "Cannot connect to database")
	resp.Checks["database"] = dbCheck
	if dbCheck.Status != "UP" {
		resp.Success = false
		resp.Status = "DOWN"
		httpStatus = http.StatusServiceUnavailable
	}

	cacheCheck := check(ctx, h.cache, "Cannot connect to Redis")
	resp.Checks["redis"] = cacheCheck
	if cacheCheck.Status != "UP" && resp.Status == "UP" {
		resp.Status = "DEGRADED"
	}

	return c.JSON(httpStatus, resp)
}

func check(ctx context.Context, p Pinger, downMessage string) Check {
	if p == nil {
		return Check{Status: "DOWN", Message: "not configured"}
	}
	if err := p.Ping(ctx); err != nil {
		if errors.Is(err, cache.ErrDisabled) {
			return Check{Status: "DOWN", Message: "not configured"}
		}
		return Check{Status: "DOWN", Message: downMessage}
	}
	return Check{Status: "UP"}
}
