package handler

import (
	"log/slog"
	"net/http"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/KaveeshaKaru/investiAI/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PredictionHandler serves analyst suggestions attached to cases.
type PredictionHandler struct {
	store *service.Store
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(store *service.Store) *PredictionHandler {
	return &PredictionHandler{store: store}
}

// List handles GET /api/predictions
func (h *PredictionHandler) List(c *gin.Context) {
	preds, err := h.store.ListPredictions(c.Request.Context())
	if err != nil {
		slog.Error("list predictions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": preds, "total": len(preds)})
}

// Create handles POST /api/predictions, upserting by caseId so a case
// carries at most one suggestion.
func (h *PredictionHandler) Create(c *gin.Context) {
	var p model.Prediction
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if p.CaseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caseId is required"})
		return
	}

	p.ID = uuid.New().String()
	if err := h.store.UpsertPrediction(c.Request.Context(), &p); err != nil {
		slog.Error("save prediction failed", "case_id", p.CaseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save prediction"})
		return
	}
	c.JSON(http.StatusCreated, p)
}
