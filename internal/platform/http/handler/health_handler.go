// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recorder writes an ephemeral marker to the persistence layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (platform/health).
type Recorder interface {
	Record(ctx context.Context) error
}

// HealthHandler serves the /healthz liveness probe.
type HealthHandler struct {
	recorder Recorder
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(recorder Recorder) *HealthHandler {
	return &HealthHandler{recorder: recorder}
}

// Check handles GET /healthz.
//
// The contract is strict: a request carrying a body or any query parameter is
// rejected with 400. On success a marker row is written to prove the store is
// reachable; a storage failure yields 503. Every response, including the
// rejections, carries the no-cache headers.
func (h *HealthHandler) Check(c *gin.Context) {
	// Always set, regardless of outcome.
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("X-Content-Type-Options", "nosniff")

	if c.Request.ContentLength != 0 || len(c.Request.URL.RawQuery) > 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.recorder.Record(c.Request.Context()); err != nil {
		slog.Error("health check storage write failed", "error", err)
		c.Status(http.StatusServiceUnavailable)
		return
	}

	c.Status(http.StatusOK)
}
