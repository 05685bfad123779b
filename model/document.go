package model

import (
	"time"
)

// Document tracks one uploaded file through the extraction pipeline.
// The case records extracted from it are stored separately and point
// back to it via their DocumentID.
type Document struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	FileSize  int64     `json:"fileSize"`
	DocType   string    `json:"docType"` // courtOrder, policeReport
	Status    string    `json:"status"`  // pending, uploading, success, error
	ErrorMsg  string    `json:"errorMsg,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Document status constants
const (
	DocStatusPending   = "pending"
	DocStatusUploading = "uploading"
	DocStatusSuccess   = "success"
	DocStatusError     = "error"
)

// Document type tokens
const (
	DocTypeCourtOrder   = "courtOrder"
	DocTypePoliceReport = "policeReport"
)

// ValidDocType reports whether t is a known document type token.
func ValidDocType(t string) bool {
	return t == DocTypeCourtOrder || t == DocTypePoliceReport
}

// ValidDocStatus reports whether s is a known document status.
func ValidDocStatus(s string) bool {
	switch s {
	case DocStatusPending, DocStatusUploading, DocStatusSuccess, DocStatusError:
		return true
	}
	return false
}
