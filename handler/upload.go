package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/KaveeshaKaru/investiAI/service"
	"github.com/gin-gonic/gin"
)

// MaxUploadSize limits uploaded document size.
const MaxUploadSize = 20 << 20 // 20MB

// UploadHandler accepts documents and runs them through the intake
// pipeline.
type UploadHandler struct {
	intake *service.IntakeService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(intake *service.IntakeService) *UploadHandler {
	return &UploadHandler{intake: intake}
}

// UploadResponse is the upload response body. Cases holds the records
// extracted from the document, in persisted form.
type UploadResponse struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
	Cases      any    `json:"cases"`
}

// Upload handles POST /api/upload (multipart: file + docType).
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 20MB)"})
		return
	}

	docType := c.PostForm("docType")
	if !model.ValidDocType(docType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "docType must be courtOrder or policeReport"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	doc, cases, err := h.intake.Process(c.Request.Context(), file.Filename, data, docType)
	if err != nil {
		slog.Error("upload processing failed",
			"file_name", file.Filename,
			"doc_type", docType,
			"error", err,
		)
		resp := gin.H{"error": err.Error()}
		if doc != nil {
			resp["documentId"] = doc.ID
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	var extracted any
	if docType == model.DocTypeCourtOrder {
		extracted = cases.CourtOrders
	} else {
		extracted = cases.PoliceReports
	}

	c.JSON(http.StatusOK, UploadResponse{
		DocumentID: doc.ID,
		Status:     doc.Status,
		Cases:      extracted,
	})
}
