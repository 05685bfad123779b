package handler

import (
	"log/slog"
	"net/http"

	"github.com/KaveeshaKaru/investiAI/service"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves record counts for the dashboard.
type StatsHandler struct {
	store *service.Store
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(store *service.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// Get handles GET /api/stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.store.GetStats(c.Request.Context())
	if err != nil {
		slog.Error("get stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
