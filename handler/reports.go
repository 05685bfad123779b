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

// ReportHandler serves police report records.
type ReportHandler struct {
	store *service.Store
}

// NewReportHandler creates a new police report handler
func NewReportHandler(store *service.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// List handles GET /api/police-reports?query=&status=. A filter of
// status=active matches ongoing reports: the filter value goes through the
// same synonym table as stored statuses.
func (h *ReportHandler) List(c *gin.Context) {
	opts := service.ListOptions{Query: c.Query("query")}
	if status := c.Query("status"); status != "" {
		opts.Status = model.PoliceReportStatuses.Normalize(status)
	}

	reports, err := h.store.ListPoliceReports(c.Request.Context(), opts)
	if err != nil {
		slog.Error("list police reports failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}

// Get handles GET /api/police-reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	rec, err := h.store.GetPoliceReport(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		slog.Error("get police report failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get report"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create handles POST /api/police-reports, upserting by caseId.
func (h *ReportHandler) Create(c *gin.Context) {
	var rec model.PoliceReport
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if rec.CaseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caseId is required"})
		return
	}

	rec.ID = uuid.New().String()
	rec.CaseStatus = model.PoliceReportStatuses.Normalize(rec.CaseStatus)

	if err := h.store.UpsertPoliceReport(c.Request.Context(), &rec); err != nil {
		slog.Error("create police report failed", "case_id", rec.CaseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save report"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /api/police-reports/:id with a partial record.
func (h *ReportHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	existing, err := h.store.GetPoliceReport(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		slog.Error("get police report failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get report"})
		return
	}

	var updated model.PoliceReport
	if err := applyPatch(existing, patch, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
		return
	}
	updated.CaseStatus = model.PoliceReportStatuses.Normalize(updated.CaseStatus)

	if err := h.store.UpdatePoliceReport(c.Request.Context(), &updated); err != nil {
		slog.Error("update police report failed", "id", updated.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update report"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/police-reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	err := h.store.DeletePoliceReport(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		slog.Error("delete police report failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}
