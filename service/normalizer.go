package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/google/uuid"
)

// FieldFallback is substituted for required fields the source document does
// not contain. Partial extraction is preferred over record loss, so records
// are never rejected for missing fields.
const FieldFallback = "Unknown"

// NormalizedCases is the typed output of normalization; exactly one of the
// two slices is populated, matching the document type.
type NormalizedCases struct {
	CourtOrders   []model.CourtOrderCase
	PoliceReports []model.PoliceReport
}

// Len returns the number of normalized records.
func (n *NormalizedCases) Len() int {
	return len(n.CourtOrders) + len(n.PoliceReports)
}

// NormalizeRecords turns raw extraction objects into persisted-shape case
// records: each gets a fresh record id and the shared documentID, required
// fields missing from the raw object are filled with "Unknown", and the
// status field is mapped onto the document type's canonical vocabulary.
func NormalizeRecords(docType, documentID string, records []map[string]any) (*NormalizedCases, error) {
	schema, err := model.SchemaFor(docType)
	if err != nil {
		return nil, err
	}
	vocab := model.StatusVocabularyFor(docType)

	normalized := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		clean := map[string]any{}
		for _, f := range schema.Fields {
			v := stringValue(rec[f.Name])
			if v == "" && f.Required {
				v = FieldFallback
			}
			clean[f.Name] = v
		}
		clean[schema.StatusField] = vocab.Normalize(stringValue(rec[schema.StatusField]))
		clean["id"] = uuid.New().String()
		clean["documentId"] = documentID
		normalized = append(normalized, clean)
	}

	// Decode through JSON so the field names line up with the struct tags.
	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("normalize records: %w", err)
	}

	out := &NormalizedCases{}
	switch docType {
	case model.DocTypeCourtOrder:
		if err := json.Unmarshal(data, &out.CourtOrders); err != nil {
			return nil, fmt.Errorf("normalize court orders: %w", err)
		}
	case model.DocTypePoliceReport:
		if err := json.Unmarshal(data, &out.PoliceReports); err != nil {
			return nil, fmt.Errorf("normalize police reports: %w", err)
		}
	}
	return out, nil
}

// stringValue renders a raw extraction value as a trimmed string. Numbers
// arrive as float64 from JSON decoding; anything unrenderable becomes "".
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}
