package model

import (
	"time"
)

// CourtOrderCase is one extracted court order record. Dates are kept as
// free-text strings exactly as they appear in the source document.
type CourtOrderCase struct {
	ID                   string    `json:"id"`
	CaseID               string    `json:"caseId"`
	CourtOrderDate       string    `json:"courtOrderDate"`
	CourtLocation        string    `json:"courtLocation"`
	VictimStatement      string    `json:"victimStatement"`
	PlaintiffAge         string    `json:"plaintiffAge"`
	PlaintiffGender      string    `json:"plaintiffGender"`
	PerpetratorStatement string    `json:"perpetratorStatement"`
	DefendantAge         string    `json:"defendantAge"`
	DefendantGender      string    `json:"defendantGender"`
	ChargeOffense        string    `json:"chargeOffense"`
	CourtRuling          string    `json:"courtRuling"`
	SentenceFine         string    `json:"sentenceFine"`
	CourtAction          string    `json:"courtAction"`
	EvidenceSummary      string    `json:"evidenceSummary"`
	Status               string    `json:"status"` // closed, pending, active
	Recurrence           string    `json:"recurrence"`
	DocumentID           string    `json:"documentId"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PoliceReport is one extracted police report record.
type PoliceReport struct {
	ID                     string    `json:"id"`
	CaseID                 string    `json:"caseId"`
	IncidentDate           string    `json:"incidentDate"`
	IncidentTime           string    `json:"incidentTime"`
	ReportDate             string    `json:"reportDate"`
	VictimName             string    `json:"victimName"`
	VictimAge              string    `json:"victimAge"`
	VictimGender           string    `json:"victimGender"`
	VictimNationality      string    `json:"victimNationality"`
	PerpetratorName        string    `json:"perpetratorName"`
	PerpetratorGender      string    `json:"perpetratorGender"`
	PerpetratorNationality string    `json:"perpetratorNationality"`
	RelationshipToVictim   string    `json:"relationshipToVictim"`
	IncidentLocation       string    `json:"incidentLocation"`
	IncidentSummary        string    `json:"incidentSummary"`
	TypeOfViolence         string    `json:"typeOfViolence"`
	InjuryDescription      string    `json:"injuryDescription"`
	EvidenceMentioned      string    `json:"evidenceMentioned"`
	ReportedToAuthorities  string    `json:"reportedToAuthorities"`
	ActionTaken            string    `json:"actionTaken"`
	Recurrence             string    `json:"recurrence"`
	CaseStatus             string    `json:"caseStatus"` // ongoing, referred to court, concluded
	RelevantLaws           string    `json:"relevantLaws"`
	PriorCriminalHistory   string    `json:"priorCriminalHistory"`
	DocumentID             string    `json:"documentId"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Prediction is an analyst suggestion attached to a police report case.
type Prediction struct {
	ID              string    `json:"id"`
	CaseID          string    `json:"caseId"`
	CaseSummary     string    `json:"caseSummary"`
	SuggestedAction string    `json:"suggestedAction"`
	PoliceReportID  string    `json:"policeReportId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
