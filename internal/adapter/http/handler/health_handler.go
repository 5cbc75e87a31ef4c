package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/adapter/client"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	nlpClient *client.NLPClient
}

// NewHealthHandler creates a new health handler. The client is nil unless
// the remote classifier backend is configured.
func NewHealthHandler(nlpClient *client.NLPClient) *HealthHandler {
	return &HealthHandler{nlpClient: nlpClient}
}

// Health handles GET /health. It always reports ok: the keyword classifier
// has no dependencies that could fail, and liveness must not flap when an
// optional remote backend is down.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready. When a remote classifier backend is configured
// it is pinged first.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.nlpClient != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.nlpClient.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model service unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
