package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store, timeout: 2 * time.Second}
}

func (h *HealthController) Show(c *ctx.Context) {
	pctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(pctx); err != nil {
		logger.WithCtx(c.Context()).Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
