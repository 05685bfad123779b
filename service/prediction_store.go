package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KaveeshaKaru/investiAI/model"
)

// UpsertPrediction inserts the prediction, or overwrites the one already
// attached to its caseId. p is updated in place to carry the stored
// identity.
func (s *Store) UpsertPrediction(ctx context.Context, p *model.Prediction) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO predictions
		(id, case_id, case_summary, suggested_action, police_report_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			case_summary = excluded.case_summary,
			suggested_action = excluded.suggested_action,
			police_report_id = excluded.police_report_id,
			updated_at = excluded.updated_at`,
		p.ID, p.CaseID, p.CaseSummary, p.SuggestedAction, p.PoliceReportID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM predictions WHERE case_id = ?`, p.CaseID).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert prediction: read back: %w", err)
	}
	return nil
}

// GetPredictionByCaseID returns the prediction attached to a caseId.
func (s *Store) GetPredictionByCaseID(ctx context.Context, caseID string) (*model.Prediction, error) {
	var p model.Prediction
	err := s.db.QueryRowContext(ctx, `SELECT id, case_id, case_summary, suggested_action,
		police_report_id, created_at, updated_at FROM predictions WHERE case_id = ?`, caseID).
		Scan(&p.ID, &p.CaseID, &p.CaseSummary, &p.SuggestedAction,
			&p.PoliceReportID, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}
	return &p, nil
}

// ListPredictions returns all predictions newest first.
func (s *Store) ListPredictions(ctx context.Context) ([]model.Prediction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, case_id, case_summary, suggested_action,
		police_report_id, created_at, updated_at FROM predictions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	preds := []model.Prediction{}
	for rows.Next() {
		var p model.Prediction
		if err := rows.Scan(&p.ID, &p.CaseID, &p.CaseSummary, &p.SuggestedAction,
			&p.PoliceReportID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}

// Stats summarizes the stored records for the dashboard.
type Stats struct {
	TotalCourtOrders    int            `json:"totalCourtOrders"`
	TotalPoliceReports  int            `json:"totalPoliceReports"`
	TotalDocuments      int            `json:"totalDocuments"`
	CourtOrdersByStatus map[string]int `json:"courtOrdersByStatus"`
	ReportsByStatus     map[string]int `json:"reportsByStatus"`
	DocumentsByStatus   map[string]int `json:"documentsByStatus"`
}

// GetStats counts stored records grouped by status.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		CourtOrdersByStatus: map[string]int{},
		ReportsByStatus:     map[string]int{},
		DocumentsByStatus:   map[string]int{},
	}

	count := func(table, statusCol string, byStatus map[string]int) (int, error) {
		rows, err := s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s GROUP BY %s`, statusCol, table, statusCol))
		if err != nil {
			return 0, err
		}
		defer rows.Close()

		total := 0
		for rows.Next() {
			var status string
			var n int
			if err := rows.Scan(&status, &n); err != nil {
				return 0, err
			}
			byStatus[status] = n
			total += n
		}
		return total, rows.Err()
	}

	var err error
	if stats.TotalCourtOrders, err = count("court_order_cases", "status", stats.CourtOrdersByStatus); err != nil {
		return nil, fmt.Errorf("stats court orders: %w", err)
	}
	if stats.TotalPoliceReports, err = count("police_reports", "case_status", stats.ReportsByStatus); err != nil {
		return nil, fmt.Errorf("stats police reports: %w", err)
	}
	if stats.TotalDocuments, err = count("documents", "status", stats.DocumentsByStatus); err != nil {
		return nil, fmt.Errorf("stats documents: %w", err)
	}
	return stats, nil
}
