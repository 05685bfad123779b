package model

import (
	"testing"
)

func TestCourtOrderStatusNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"active", CourtOrderStatusActive},
		{"Active", CourtOrderStatusActive},
		{"ACTIVE", CourtOrderStatusActive},
		{"  Closed  ", CourtOrderStatusClosed},
		{"Dismissed", CourtOrderStatusClosed},
		{"Pending Appeal", CourtOrderStatusPending},
		{"unknown", CourtOrderStatusPending},
		{"xyz", CourtOrderStatusPending},
		{"", CourtOrderStatusPending},
	}

	for _, tt := range tests {
		got := CourtOrderStatuses.Normalize(tt.input)
		if got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPoliceReportStatusNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ongoing", ReportStatusOngoing},
		{"Referred to Court", ReportStatusReferred},
		{"Concluded", ReportStatusConcluded},
		{"Closed", ReportStatusConcluded},
		{"active", ReportStatusOngoing},
		{"pending", ReportStatusOngoing},
		{"unknown", ReportStatusOngoing},
		{"something else entirely", ReportStatusOngoing},
		{"", ReportStatusOngoing},
	}

	for _, tt := range tests {
		got := PoliceReportStatuses.Normalize(tt.input)
		if got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	inputs := []string{"Active", "xyz", "", "CLOSED", "referred to court"}

	for _, in := range inputs {
		first := PoliceReportStatuses.Normalize(in)
		for i := 0; i < 5; i++ {
			if got := PoliceReportStatuses.Normalize(in); got != first {
				t.Errorf("Normalize(%q) not deterministic: %q then %q", in, first, got)
			}
		}
		if !PoliceReportStatuses.Contains(first) {
			t.Errorf("Normalize(%q) = %q, not in canonical set", in, first)
		}
	}
}

func TestStatusVocabularyFor(t *testing.T) {
	if got := StatusVocabularyFor(DocTypeCourtOrder).Default; got != CourtOrderStatusPending {
		t.Errorf("Expected court order default %q, got %q", CourtOrderStatusPending, got)
	}
	if got := StatusVocabularyFor(DocTypePoliceReport).Default; got != ReportStatusOngoing {
		t.Errorf("Expected police report default %q, got %q", ReportStatusOngoing, got)
	}
}

func TestVocabularyContains(t *testing.T) {
	if !CourtOrderStatuses.Contains("active") {
		t.Error("Expected 'active' in court order canonical set")
	}
	if CourtOrderStatuses.Contains("ongoing") {
		t.Error("Did not expect 'ongoing' in court order canonical set")
	}
}
