package model

import (
	"strings"
)

// StatusVocabulary maps free-text status strings from extracted documents
// (or from API callers) onto a small canonical set. Normalization is total:
// every input maps to exactly one canonical value.
type StatusVocabulary struct {
	Canonical []string
	Synonyms  map[string]string
	Default   string
}

// Normalize returns the canonical value for s. Matching is case-insensitive
// and ignores surrounding whitespace; unrecognized values map to Default.
func (v StatusVocabulary) Normalize(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := v.Synonyms[key]; ok {
		return canonical
	}
	return v.Default
}

// Contains reports whether s is one of the canonical values.
func (v StatusVocabulary) Contains(s string) bool {
	for _, c := range v.Canonical {
		if c == s {
			return true
		}
	}
	return false
}

// Court order status canonical values
const (
	CourtOrderStatusClosed  = "closed"
	CourtOrderStatusPending = "pending"
	CourtOrderStatusActive  = "active"
)

// Police report status canonical values
const (
	ReportStatusOngoing   = "ongoing"
	ReportStatusReferred  = "referred to court"
	ReportStatusConcluded = "concluded"
)

// CourtOrderStatuses normalizes court order statuses. "Pending Appeal" and
// similar open dispositions collapse to pending; terminal dispositions
// such as "dismissed" collapse to closed.
var CourtOrderStatuses = StatusVocabulary{
	Canonical: []string{CourtOrderStatusClosed, CourtOrderStatusPending, CourtOrderStatusActive},
	Synonyms: map[string]string{
		"closed":         CourtOrderStatusClosed,
		"pending":        CourtOrderStatusPending,
		"active":         CourtOrderStatusActive,
		"open":           CourtOrderStatusActive,
		"ongoing":        CourtOrderStatusActive,
		"pending appeal": CourtOrderStatusPending,
		"appealed":       CourtOrderStatusPending,
		"dismissed":      CourtOrderStatusClosed,
		"concluded":      CourtOrderStatusClosed,
		"unknown":        CourtOrderStatusPending,
	},
	Default: CourtOrderStatusPending,
}

// PoliceReportStatuses normalizes police report case statuses.
var PoliceReportStatuses = StatusVocabulary{
	Canonical: []string{ReportStatusOngoing, ReportStatusReferred, ReportStatusConcluded},
	Synonyms: map[string]string{
		"ongoing":           ReportStatusOngoing,
		"referred to court": ReportStatusReferred,
		"concluded":         ReportStatusConcluded,
		"active":            ReportStatusOngoing,
		"pending":           ReportStatusOngoing,
		"open":              ReportStatusOngoing,
		"closed":            ReportStatusConcluded,
		"unknown":           ReportStatusOngoing,
	},
	Default: ReportStatusOngoing,
}

// StatusVocabularyFor returns the vocabulary for the given document type.
// Callers must pass a valid docType.
func StatusVocabularyFor(docType string) StatusVocabulary {
	if docType == DocTypeCourtOrder {
		return CourtOrderStatuses
	}
	return PoliceReportStatuses
}
