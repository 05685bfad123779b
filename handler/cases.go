package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/KaveeshaKaru/investiAI/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler serves court order case records.
type CaseHandler struct {
	store *service.Store
}

// NewCaseHandler creates a new court order case handler
func NewCaseHandler(store *service.Store) *CaseHandler {
	return &CaseHandler{store: store}
}

// List handles GET /api/cases?query=&status=. A non-empty status filter is
// normalized onto the canonical vocabulary before matching.
func (h *CaseHandler) List(c *gin.Context) {
	opts := service.ListOptions{Query: c.Query("query")}
	if status := c.Query("status"); status != "" {
		opts.Status = model.CourtOrderStatuses.Normalize(status)
	}

	cases, err := h.store.ListCourtOrders(c.Request.Context(), opts)
	if err != nil {
		slog.Error("list court orders failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cases"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases, "total": len(cases)})
}

// Get handles GET /api/cases/:id
func (h *CaseHandler) Get(c *gin.Context) {
	rec, err := h.store.GetCourtOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	if err != nil {
		slog.Error("get court order failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get case"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create handles POST /api/cases. The record is upserted by its caseId and
// the status is normalized, matching the extraction write path.
func (h *CaseHandler) Create(c *gin.Context) {
	var rec model.CourtOrderCase
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if rec.CaseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caseId is required"})
		return
	}

	rec.ID = uuid.New().String()
	rec.Status = model.CourtOrderStatuses.Normalize(rec.Status)

	if err := h.store.UpsertCourtOrder(c.Request.Context(), &rec); err != nil {
		slog.Error("create court order failed", "case_id", rec.CaseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save case"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /api/cases/:id with a partial record. If status is
// among the updated fields it is re-normalized.
func (h *CaseHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	existing, err := h.store.GetCourtOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	if err != nil {
		slog.Error("get court order failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get case"})
		return
	}

	var updated model.CourtOrderCase
	if err := applyPatch(existing, patch, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
		return
	}
	updated.Status = model.CourtOrderStatuses.Normalize(updated.Status)

	if err := h.store.UpdateCourtOrder(c.Request.Context(), &updated); err != nil {
		slog.Error("update court order failed", "id", updated.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update case"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/cases/:id
func (h *CaseHandler) Delete(c *gin.Context) {
	err := h.store.DeleteCourtOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	if err != nil {
		slog.Error("delete court order failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete case"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "case deleted"})
}
