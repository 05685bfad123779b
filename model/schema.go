package model

import (
	"fmt"
)

// FieldSpec describes one extraction target field. All fields are free-text
// strings on the wire; Required controls the "Unknown" fallback applied
// during normalization.
type FieldSpec struct {
	Name     string
	Required bool
}

// ExtractionSchema is the extraction target for one document type: the
// ordered field set plus the instruction text sent to the model. The two
// canonical instances are defined at init and never mutated.
type ExtractionSchema struct {
	DocType      string
	StatusField  string
	Fields       []FieldSpec
	Instructions string
}

// RequiredFields returns the names of all required fields.
func (s *ExtractionSchema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldNames returns the names of all fields in declaration order.
func (s *ExtractionSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// SchemaFor returns the extraction schema for the given document type
// token. An unknown token is a caller error.
func SchemaFor(docType string) (*ExtractionSchema, error) {
	switch docType {
	case DocTypeCourtOrder:
		return &courtOrderSchema, nil
	case DocTypePoliceReport:
		return &policeReportSchema, nil
	}
	return nil, fmt.Errorf("unknown document type: %q", docType)
}

var courtOrderSchema = ExtractionSchema{
	DocType:     DocTypeCourtOrder,
	StatusField: "status",
	Fields: []FieldSpec{
		{Name: "caseId", Required: true},
		{Name: "courtOrderDate", Required: true},
		{Name: "courtLocation", Required: true},
		{Name: "victimStatement", Required: true},
		{Name: "plaintiffAge", Required: true},
		{Name: "plaintiffGender", Required: true},
		{Name: "perpetratorStatement", Required: true},
		{Name: "defendantAge", Required: true},
		{Name: "defendantGender", Required: true},
		{Name: "chargeOffense", Required: true},
		{Name: "courtRuling", Required: true},
		{Name: "sentenceFine", Required: true},
		{Name: "courtAction", Required: true},
		{Name: "evidenceSummary", Required: true},
		{Name: "status", Required: true},
		{Name: "recurrence", Required: true},
	},
	Instructions: "You are an expert in extracting structured data from unstructured or semi-structured text in court orders. " +
		"Given a file (image, PDF, DOCX, CSV, etc.) containing one or more court orders, extract every order into the declared fields, " +
		"in English only, translating or transliterating any non-English content (e.g., Sinhala) into English. " +
		"Always include every field, using the literal string 'Unknown' when the document does not contain the information. " +
		"Do not extract personal names, to protect privacy. " +
		"Field guidance: " +
		"caseId: identifiers like 'Case No. 123-2023', '2024-059', or a standalone number such as '862'. " +
		"courtOrderDate: the order date as written (e.g., '2025.02.25', 'February 25, 2025'); use the most recent date if several appear. " +
		"courtLocation: the issuing court, translated to English. " +
		"victimStatement: a short English summary of the victim's complaint or allegations. " +
		"plaintiffAge / defendantAge: numbers or phrases like '20 years'. " +
		"plaintiffGender / defendantGender: infer from context if possible. " +
		"perpetratorStatement: a short English summary of the accused's response or defense, if present. " +
		"chargeOffense: the charge or statute, translated to English (e.g., 'Sections 2(2)(a and b) of Act No. 34 of 2005'). " +
		"courtRuling: the ruling, translated to English (e.g., 'Request dismissed'). " +
		"sentenceFine: monetary amounts or terms like '6 months probation'. " +
		"courtAction: the action ordered (e.g., 'Restraining order issued'). " +
		"evidenceSummary: a short English summary of any evidence mentioned. " +
		"status: e.g. 'Closed', 'Pending Appeal', 'Active'; infer from context ('Dismissed' implies 'Closed'). " +
		"recurrence: phrases like 'First-time offense' or 'Repeat offender'. " +
		"Ignore OCR artifacts (stray symbols, repeated fragments) and focus on unique, meaningful data. " +
		"Extract multiple court orders if the document contains more than one.",
}

var policeReportSchema = ExtractionSchema{
	DocType:     DocTypePoliceReport,
	StatusField: "caseStatus",
	Fields: []FieldSpec{
		{Name: "caseId", Required: true},
		{Name: "incidentDate", Required: true},
		{Name: "incidentTime", Required: true},
		{Name: "reportDate", Required: true},
		{Name: "victimName", Required: true},
		{Name: "victimAge", Required: true},
		{Name: "victimGender", Required: true},
		{Name: "victimNationality", Required: false},
		{Name: "perpetratorName", Required: true},
		{Name: "perpetratorGender", Required: false},
		{Name: "perpetratorNationality", Required: false},
		{Name: "relationshipToVictim", Required: false},
		{Name: "incidentLocation", Required: true},
		{Name: "incidentSummary", Required: true},
		{Name: "typeOfViolence", Required: false},
		{Name: "injuryDescription", Required: false},
		{Name: "evidenceMentioned", Required: false},
		{Name: "reportedToAuthorities", Required: false},
		{Name: "actionTaken", Required: false},
		{Name: "recurrence", Required: false},
		{Name: "caseStatus", Required: true},
		{Name: "relevantLaws", Required: false},
		{Name: "priorCriminalHistory", Required: false},
	},
	Instructions: "You are an expert in extracting structured data from unstructured or semi-structured text in police reports. " +
		"Given a file (image, PDF, DOCX, CSV, etc.) containing one or more police reports, extract every report into the declared fields, " +
		"in English only, translating or transliterating any non-English content (e.g., Sinhala) into English. " +
		"Always include every field, using the literal string 'Unknown' when the document does not contain the information. " +
		"Field guidance: " +
		"caseId: the report or case number as written. " +
		"incidentDate / reportDate: dates as written (e.g., '2025.02.25', 'February 25, 2025'). " +
		"incidentTime: the time of the incident as written (e.g., '21:30', 'around 9 PM'). " +
		"victimName / perpetratorName: the names as recorded in the report. " +
		"victimAge: a number or phrase like '20 years'. " +
		"victimGender / perpetratorGender: infer from context if possible. " +
		"victimNationality / perpetratorNationality: as recorded. " +
		"relationshipToVictim: e.g. 'spouse', 'neighbour', 'stranger'. " +
		"incidentLocation: the place of the incident, translated to English. " +
		"incidentSummary: a short English summary of what happened. " +
		"typeOfViolence: e.g. 'physical assault', 'domestic violence', 'verbal abuse'. " +
		"injuryDescription: injuries noted, if any. " +
		"evidenceMentioned: evidence noted in the report. " +
		"reportedToAuthorities: whether and how the incident was reported. " +
		"actionTaken: any police action recorded (e.g., 'Statement recorded', 'Suspect arrested'). " +
		"recurrence: phrases like 'First-time offense' or 'Repeat offender'. " +
		"caseStatus: e.g. 'Ongoing', 'Referred to Court', 'Concluded'. " +
		"relevantLaws: statutes or sections cited. " +
		"priorCriminalHistory: prior history noted for the suspect. " +
		"Ignore OCR artifacts and focus on unique, meaningful data. " +
		"Extract multiple reports if the document contains more than one.",
}
