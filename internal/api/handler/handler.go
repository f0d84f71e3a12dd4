// Package handler provides HTTP handlers for all API endpoints. Handlers are
// a thin translation layer: parse request parameters, call the orchestrator,
// marshal canonical entities. All provider selection and caching happens
// below them.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/albapepper/courtside/internal/api/respond"
	"github.com/albapepper/courtside/internal/cache"
	"github.com/albapepper/courtside/internal/config"
	"github.com/albapepper/courtside/internal/orchestrator"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	orc *orchestrator.Orchestrator
	c   *cache.Cache
	cfg *config.Config
}

// New creates a Handler with shared dependencies.
func New(orc *orchestrator.Orchestrator, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{orc: orc, c: c, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and supported leagues.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Courtside API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"leagues": h.orc.Leagues(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache reports cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.c.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeEntity marshals a canonical result with ETag and cache headers,
// honoring If-None-Match.
func (h *Handler) writeEntity(w http.ResponseWriter, r *http.Request, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode response")
		return
	}

	etag := cache.ComputeETag(data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl)
}

// writeOrchestratorError maps orchestrator errors: invalid arguments become
// 400s, anything else (which should not happen on read paths) a 500.
func writeOrchestratorError(w http.ResponseWriter, err error) {
	if errors.Is(err, orchestrator.ErrInvalidArgument) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Unexpected error")
}
