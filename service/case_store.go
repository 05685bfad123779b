package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/KaveeshaKaru/investiAI/model"
)

// ListOptions filters a case listing. Query matches case-insensitively
// against the identifying text columns; Status must already be canonical.
// Both are AND-ed; empty values mean "no filter".
type ListOptions struct {
	Query  string
	Status string
}

const courtOrderColumns = `id, case_id, court_order_date, court_location, victim_statement,
	plaintiff_age, plaintiff_gender, perpetrator_statement, defendant_age, defendant_gender,
	charge_offense, court_ruling, sentence_fine, court_action, evidence_summary,
	status, recurrence, document_id, created_at, updated_at`

func scanCourtOrder(row interface{ Scan(...any) error }) (*model.CourtOrderCase, error) {
	var c model.CourtOrderCase
	err := row.Scan(
		&c.ID, &c.CaseID, &c.CourtOrderDate, &c.CourtLocation, &c.VictimStatement,
		&c.PlaintiffAge, &c.PlaintiffGender, &c.PerpetratorStatement, &c.DefendantAge, &c.DefendantGender,
		&c.ChargeOffense, &c.CourtRuling, &c.SentenceFine, &c.CourtAction, &c.EvidenceSummary,
		&c.Status, &c.Recurrence, &c.DocumentID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCourtOrder inserts a new court order case. The caller assigns the ID.
func (s *Store) CreateCourtOrder(ctx context.Context, c *model.CourtOrderCase) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO court_order_cases
		(id, case_id, court_order_date, court_location, victim_statement,
		 plaintiff_age, plaintiff_gender, perpetrator_statement, defendant_age, defendant_gender,
		 charge_offense, court_ruling, sentence_fine, court_action, evidence_summary,
		 status, recurrence, document_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CaseID, c.CourtOrderDate, c.CourtLocation, c.VictimStatement,
		c.PlaintiffAge, c.PlaintiffGender, c.PerpetratorStatement, c.DefendantAge, c.DefendantGender,
		c.ChargeOffense, c.CourtRuling, c.SentenceFine, c.CourtAction, c.EvidenceSummary,
		c.Status, c.Recurrence, c.DocumentID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert court order: %w", err)
	}
	return nil
}

// UpsertCourtOrder inserts the case, or overwrites the existing row sharing
// its caseId. On conflict the original row keeps its id and created_at so
// references to the record stay stable; c is updated in place to carry the
// stored identity either way.
func (s *Store) UpsertCourtOrder(ctx context.Context, c *model.CourtOrderCase) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO court_order_cases
		(id, case_id, court_order_date, court_location, victim_statement,
		 plaintiff_age, plaintiff_gender, perpetrator_statement, defendant_age, defendant_gender,
		 charge_offense, court_ruling, sentence_fine, court_action, evidence_summary,
		 status, recurrence, document_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			court_order_date = excluded.court_order_date,
			court_location = excluded.court_location,
			victim_statement = excluded.victim_statement,
			plaintiff_age = excluded.plaintiff_age,
			plaintiff_gender = excluded.plaintiff_gender,
			perpetrator_statement = excluded.perpetrator_statement,
			defendant_age = excluded.defendant_age,
			defendant_gender = excluded.defendant_gender,
			charge_offense = excluded.charge_offense,
			court_ruling = excluded.court_ruling,
			sentence_fine = excluded.sentence_fine,
			court_action = excluded.court_action,
			evidence_summary = excluded.evidence_summary,
			status = excluded.status,
			recurrence = excluded.recurrence,
			document_id = excluded.document_id,
			updated_at = excluded.updated_at`,
		c.ID, c.CaseID, c.CourtOrderDate, c.CourtLocation, c.VictimStatement,
		c.PlaintiffAge, c.PlaintiffGender, c.PerpetratorStatement, c.DefendantAge, c.DefendantGender,
		c.ChargeOffense, c.CourtRuling, c.SentenceFine, c.CourtAction, c.EvidenceSummary,
		c.Status, c.Recurrence, c.DocumentID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert court order: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM court_order_cases WHERE case_id = ?`, c.CaseID).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert court order: read back: %w", err)
	}
	return nil
}

// GetCourtOrder returns the court order case with the given record ID.
func (s *Store) GetCourtOrder(ctx context.Context, id string) (*model.CourtOrderCase, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+courtOrderColumns+` FROM court_order_cases WHERE id = ?`, id)
	c, err := scanCourtOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get court order: %w", err)
	}
	return c, nil
}

// ListCourtOrders returns court order cases newest first, optionally
// filtered by free-text query and canonical status.
func (s *Store) ListCourtOrders(ctx context.Context, opts ListOptions) ([]model.CourtOrderCase, error) {
	q := `SELECT ` + courtOrderColumns + ` FROM court_order_cases`
	var conds []string
	var args []any

	if opts.Query != "" {
		pattern := "%" + strings.ToLower(opts.Query) + "%"
		conds = append(conds,
			`(lower(case_id) LIKE ? OR lower(court_location) LIKE ? OR lower(charge_offense) LIKE ?)`)
		args = append(args, pattern, pattern, pattern)
	}
	if opts.Status != "" {
		conds = append(conds, `status = ?`)
		args = append(args, opts.Status)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list court orders: %w", err)
	}
	defer rows.Close()

	cases := []model.CourtOrderCase{}
	for rows.Next() {
		c, err := scanCourtOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan court order: %w", err)
		}
		cases = append(cases, *c)
	}
	return cases, rows.Err()
}

// UpdateCourtOrder overwrites the stored case identified by c.ID.
func (s *Store) UpdateCourtOrder(ctx context.Context, c *model.CourtOrderCase) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `UPDATE court_order_cases SET
		case_id = ?, court_order_date = ?, court_location = ?, victim_statement = ?,
		plaintiff_age = ?, plaintiff_gender = ?, perpetrator_statement = ?, defendant_age = ?, defendant_gender = ?,
		charge_offense = ?, court_ruling = ?, sentence_fine = ?, court_action = ?, evidence_summary = ?,
		status = ?, recurrence = ?, document_id = ?, updated_at = ?
		WHERE id = ?`,
		c.CaseID, c.CourtOrderDate, c.CourtLocation, c.VictimStatement,
		c.PlaintiffAge, c.PlaintiffGender, c.PerpetratorStatement, c.DefendantAge, c.DefendantGender,
		c.ChargeOffense, c.CourtRuling, c.SentenceFine, c.CourtAction, c.EvidenceSummary,
		c.Status, c.Recurrence, c.DocumentID, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update court order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCourtOrder removes the case with the given record ID.
func (s *Store) DeleteCourtOrder(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM court_order_cases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete court order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const policeReportColumns = `id, case_id, incident_date, incident_time, report_date,
	victim_name, victim_age, victim_gender, victim_nationality,
	perpetrator_name, perpetrator_gender, perpetrator_nationality, relationship_to_victim,
	incident_location, incident_summary, type_of_violence, injury_description,
	evidence_mentioned, reported_to_authorities, action_taken, recurrence,
	case_status, relevant_laws, prior_criminal_history, document_id, created_at, updated_at`

func scanPoliceReport(row interface{ Scan(...any) error }) (*model.PoliceReport, error) {
	var r model.PoliceReport
	err := row.Scan(
		&r.ID, &r.CaseID, &r.IncidentDate, &r.IncidentTime, &r.ReportDate,
		&r.VictimName, &r.VictimAge, &r.VictimGender, &r.VictimNationality,
		&r.PerpetratorName, &r.PerpetratorGender, &r.PerpetratorNationality, &r.RelationshipToVictim,
		&r.IncidentLocation, &r.IncidentSummary, &r.TypeOfViolence, &r.InjuryDescription,
		&r.EvidenceMentioned, &r.ReportedToAuthorities, &r.ActionTaken, &r.Recurrence,
		&r.CaseStatus, &r.RelevantLaws, &r.PriorCriminalHistory, &r.DocumentID, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreatePoliceReport inserts a new police report. The caller assigns the ID.
func (s *Store) CreatePoliceReport(ctx context.Context, r *model.PoliceReport) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO police_reports
		(id, case_id, incident_date, incident_time, report_date,
		 victim_name, victim_age, victim_gender, victim_nationality,
		 perpetrator_name, perpetrator_gender, perpetrator_nationality, relationship_to_victim,
		 incident_location, incident_summary, type_of_violence, injury_description,
		 evidence_mentioned, reported_to_authorities, action_taken, recurrence,
		 case_status, relevant_laws, prior_criminal_history, document_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CaseID, r.IncidentDate, r.IncidentTime, r.ReportDate,
		r.VictimName, r.VictimAge, r.VictimGender, r.VictimNationality,
		r.PerpetratorName, r.PerpetratorGender, r.PerpetratorNationality, r.RelationshipToVictim,
		r.IncidentLocation, r.IncidentSummary, r.TypeOfViolence, r.InjuryDescription,
		r.EvidenceMentioned, r.ReportedToAuthorities, r.ActionTaken, r.Recurrence,
		r.CaseStatus, r.RelevantLaws, r.PriorCriminalHistory, r.DocumentID, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert police report: %w", err)
	}
	return nil
}

// UpsertPoliceReport inserts the report, or overwrites the existing row
// sharing its caseId, keeping the original id and created_at. r is updated
// in place to carry the stored identity.
func (s *Store) UpsertPoliceReport(ctx context.Context, r *model.PoliceReport) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO police_reports
		(id, case_id, incident_date, incident_time, report_date,
		 victim_name, victim_age, victim_gender, victim_nationality,
		 perpetrator_name, perpetrator_gender, perpetrator_nationality, relationship_to_victim,
		 incident_location, incident_summary, type_of_violence, injury_description,
		 evidence_mentioned, reported_to_authorities, action_taken, recurrence,
		 case_status, relevant_laws, prior_criminal_history, document_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			incident_date = excluded.incident_date,
			incident_time = excluded.incident_time,
			report_date = excluded.report_date,
			victim_name = excluded.victim_name,
			victim_age = excluded.victim_age,
			victim_gender = excluded.victim_gender,
			victim_nationality = excluded.victim_nationality,
			perpetrator_name = excluded.perpetrator_name,
			perpetrator_gender = excluded.perpetrator_gender,
			perpetrator_nationality = excluded.perpetrator_nationality,
			relationship_to_victim = excluded.relationship_to_victim,
			incident_location = excluded.incident_location,
			incident_summary = excluded.incident_summary,
			type_of_violence = excluded.type_of_violence,
			injury_description = excluded.injury_description,
			evidence_mentioned = excluded.evidence_mentioned,
			reported_to_authorities = excluded.reported_to_authorities,
			action_taken = excluded.action_taken,
			recurrence = excluded.recurrence,
			case_status = excluded.case_status,
			relevant_laws = excluded.relevant_laws,
			prior_criminal_history = excluded.prior_criminal_history,
			document_id = excluded.document_id,
			updated_at = excluded.updated_at`,
		r.ID, r.CaseID, r.IncidentDate, r.IncidentTime, r.ReportDate,
		r.VictimName, r.VictimAge, r.VictimGender, r.VictimNationality,
		r.PerpetratorName, r.PerpetratorGender, r.PerpetratorNationality, r.RelationshipToVictim,
		r.IncidentLocation, r.IncidentSummary, r.TypeOfViolence, r.InjuryDescription,
		r.EvidenceMentioned, r.ReportedToAuthorities, r.ActionTaken, r.Recurrence,
		r.CaseStatus, r.RelevantLaws, r.PriorCriminalHistory, r.DocumentID, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert police report: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM police_reports WHERE case_id = ?`, r.CaseID).
		Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert police report: read back: %w", err)
	}
	return nil
}

// GetPoliceReport returns the police report with the given record ID.
func (s *Store) GetPoliceReport(ctx context.Context, id string) (*model.PoliceReport, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+policeReportColumns+` FROM police_reports WHERE id = ?`, id)
	r, err := scanPoliceReport(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get police report: %w", err)
	}
	return r, nil
}

// ListPoliceReports returns police reports newest first, optionally
// filtered by free-text query and canonical status.
func (s *Store) ListPoliceReports(ctx context.Context, opts ListOptions) ([]model.PoliceReport, error) {
	q := `SELECT ` + policeReportColumns + ` FROM police_reports`
	var conds []string
	var args []any

	if opts.Query != "" {
		pattern := "%" + strings.ToLower(opts.Query) + "%"
		conds = append(conds,
			`(lower(case_id) LIKE ? OR lower(incident_location) LIKE ? OR lower(type_of_violence) LIKE ?
			  OR lower(victim_name) LIKE ? OR lower(perpetrator_name) LIKE ?)`)
		args = append(args, pattern, pattern, pattern, pattern, pattern)
	}
	if opts.Status != "" {
		conds = append(conds, `case_status = ?`)
		args = append(args, opts.Status)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list police reports: %w", err)
	}
	defer rows.Close()

	reports := []model.PoliceReport{}
	for rows.Next() {
		r, err := scanPoliceReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan police report: %w", err)
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

// UpdatePoliceReport overwrites the stored report identified by r.ID.
func (s *Store) UpdatePoliceReport(ctx context.Context, r *model.PoliceReport) error {
	r.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `UPDATE police_reports SET
		case_id = ?, incident_date = ?, incident_time = ?, report_date = ?,
		victim_name = ?, victim_age = ?, victim_gender = ?, victim_nationality = ?,
		perpetrator_name = ?, perpetrator_gender = ?, perpetrator_nationality = ?, relationship_to_victim = ?,
		incident_location = ?, incident_summary = ?, type_of_violence = ?, injury_description = ?,
		evidence_mentioned = ?, reported_to_authorities = ?, action_taken = ?, recurrence = ?,
		case_status = ?, relevant_laws = ?, prior_criminal_history = ?, document_id = ?, updated_at = ?
		WHERE id = ?`,
		r.CaseID, r.IncidentDate, r.IncidentTime, r.ReportDate,
		r.VictimName, r.VictimAge, r.VictimGender, r.VictimNationality,
		r.PerpetratorName, r.PerpetratorGender, r.PerpetratorNationality, r.RelationshipToVictim,
		r.IncidentLocation, r.IncidentSummary, r.TypeOfViolence, r.InjuryDescription,
		r.EvidenceMentioned, r.ReportedToAuthorities, r.ActionTaken, r.Recurrence,
		r.CaseStatus, r.RelevantLaws, r.PriorCriminalHistory, r.DocumentID, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update police report: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePoliceReport removes the report with the given record ID.
func (s *Store) DeletePoliceReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM police_reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete police report: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
