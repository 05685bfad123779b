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

// DocumentHandler serves the upload tracking records.
type DocumentHandler struct {
	store *service.Store
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(store *service.Store) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// List handles GET /api/documents?status=
func (h *DocumentHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidDocStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	docs, err := h.store.ListDocuments(c.Request.Context(), status)
	if err != nil {
		slog.Error("list documents failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "total": len(docs)})
}

// Create handles POST /api/documents. A tracking record can be declared
// before extraction begins; it starts as pending unless a valid status is
// given.
func (h *DocumentHandler) Create(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if doc.FileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName is required"})
		return
	}
	if !model.ValidDocType(doc.DocType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "docType must be courtOrder or policeReport"})
		return
	}
	if doc.Status == "" {
		doc.Status = model.DocStatusPending
	}
	if !model.ValidDocStatus(doc.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	doc.ID = uuid.New().String()
	if err := h.store.CreateDocument(c.Request.Context(), &doc); err != nil {
		slog.Error("create document failed", "file_name", doc.FileName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /api/documents/:id; the UI polls this for status.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.store.GetDocument(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		slog.Error("get document failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateStatusRequest is the PUT /api/documents/:id body.
type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	ErrorMsg string `json:"errorMsg"`
}

// Update handles PUT /api/documents/:id, patching the lifecycle status
// with the same validation as create.
func (h *DocumentHandler) Update(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !model.ValidDocStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	err := h.store.UpdateDocumentStatus(c.Request.Context(), c.Param("id"), req.Status, req.ErrorMsg)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		slog.Error("update document failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update document"})
		return
	}

	doc, err := h.store.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("get document failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/documents/:id. Extracted case records are
// kept; only the tracking record goes away.
func (h *DocumentHandler) Delete(c *gin.Context) {
	err := h.store.DeleteDocument(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		slog.Error("delete document failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}
