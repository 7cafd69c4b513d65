package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Probe checks one dependency.
type Probe func(ctx context.Context) error

// HealthController reports liveness and store reachability.
type HealthController struct {
	driver string
	probe  Probe
}

// NewHealthController creates a new HealthController
func NewHealthController(driver string, probe Probe) *HealthController {
	return &HealthController{driver: driver, probe: probe}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status, code := "ok", http.StatusOK
	if c.probe != nil {
		pctx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.probe(pctx); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}
	ctx.JSON(code, gin.H{"status": status, "store": c.driver})
}
