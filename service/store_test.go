package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCourtOrder(caseID string) *model.CourtOrderCase {
	return &model.CourtOrderCase{
		ID:             uuid.New().String(),
		CaseID:         caseID,
		CourtOrderDate: "2025.02.25",
		CourtLocation:  "Colombo Magistrate Court",
		ChargeOffense:  "Section 2(2)(a) of Act No. 34 of 2005",
		CourtRuling:    "Request dismissed",
		Status:         model.CourtOrderStatusPending,
		Recurrence:     "First-time offense",
	}
}

func testPoliceReport(caseID string) *model.PoliceReport {
	return &model.PoliceReport{
		ID:               uuid.New().String(),
		CaseID:           caseID,
		IncidentDate:     "2025.03.01",
		VictimName:       "A. Perera",
		PerpetratorName:  "B. Silva",
		IncidentLocation: "Kandy",
		IncidentSummary:  "Domestic dispute reported by neighbour",
		TypeOfViolence:   "domestic violence",
		CaseStatus:       model.ReportStatusOngoing,
	}
}

func TestCourtOrderCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c := testCourtOrder("2024-059")
	if err := s.CreateCourtOrder(ctx, c); err != nil {
		t.Fatalf("CreateCourtOrder: %v", err)
	}

	got, err := s.GetCourtOrder(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCourtOrder: %v", err)
	}
	if got.CaseID != "2024-059" || got.CourtLocation != "Colombo Magistrate Court" {
		t.Errorf("unexpected record: %+v", got)
	}

	got.Status = model.CourtOrderStatusClosed
	got.CourtRuling = "Appeal rejected"
	if err := s.UpdateCourtOrder(ctx, got); err != nil {
		t.Fatalf("UpdateCourtOrder: %v", err)
	}

	got, err = s.GetCourtOrder(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCourtOrder after update: %v", err)
	}
	if got.Status != model.CourtOrderStatusClosed || got.CourtRuling != "Appeal rejected" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := s.DeleteCourtOrder(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCourtOrder: %v", err)
	}
	if _, err := s.GetCourtOrder(ctx, c.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCourtOrderNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.GetCourtOrder(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteCourtOrder(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
	c := testCourtOrder("x")
	if err := s.UpdateCourtOrder(ctx, c); err != ErrNotFound {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
}

func TestUpsertCourtOrder_DedupByCaseID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := testCourtOrder("862")
	if err := s.UpsertCourtOrder(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := testCourtOrder("862")
	second.Status = model.CourtOrderStatusClosed
	second.CourtRuling = "Order vacated"
	if err := s.UpsertCourtOrder(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	// The returned record carries the stored identity, not a phantom id
	if second.ID != first.ID {
		t.Errorf("expected second upsert to return stored id %s, got %s", first.ID, second.ID)
	}
	if _, err := s.GetCourtOrder(ctx, second.ID); err != nil {
		t.Errorf("returned id not retrievable: %v", err)
	}

	cases, err := s.ListCourtOrders(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListCourtOrders: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected 1 case after upsert, got %d", len(cases))
	}
	// The surviving row keeps the first record's ID but the new content.
	if cases[0].ID != first.ID {
		t.Errorf("expected stable id %s, got %s", first.ID, cases[0].ID)
	}
	if cases[0].Status != model.CourtOrderStatusClosed || cases[0].CourtRuling != "Order vacated" {
		t.Errorf("expected overwritten content, got %+v", cases[0])
	}
}

func TestListCourtOrders_FilterAndOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := testCourtOrder("CASE-A")
	a.CourtLocation = "Galle District Court"
	a.Status = model.CourtOrderStatusClosed
	b := testCourtOrder("CASE-B")
	b.CourtLocation = "Colombo High Court"
	b.Status = model.CourtOrderStatusActive
	c := testCourtOrder("CASE-C")
	c.CourtLocation = "Colombo Magistrate Court"
	c.Status = model.CourtOrderStatusClosed

	for _, rec := range []*model.CourtOrderCase{a, b, c} {
		if err := s.CreateCourtOrder(ctx, rec); err != nil {
			t.Fatalf("CreateCourtOrder: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	all, err := s.ListCourtOrders(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListCourtOrders: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(all))
	}
	if all[0].CaseID != "CASE-C" || all[2].CaseID != "CASE-A" {
		t.Errorf("expected newest first, got %s..%s", all[0].CaseID, all[2].CaseID)
	}

	// Query is case-insensitive and matches location
	matches, err := s.ListCourtOrders(ctx, ListOptions{Query: "colombo"})
	if err != nil {
		t.Fatalf("query filter: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 colombo matches, got %d", len(matches))
	}

	// Status filter
	closed, err := s.ListCourtOrders(ctx, ListOptions{Status: model.CourtOrderStatusClosed})
	if err != nil {
		t.Fatalf("status filter: %v", err)
	}
	if len(closed) != 2 {
		t.Errorf("expected 2 closed cases, got %d", len(closed))
	}

	// Combined filters AND together
	both, err := s.ListCourtOrders(ctx, ListOptions{Query: "colombo", Status: model.CourtOrderStatusClosed})
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	if len(both) != 1 || both[0].CaseID != "CASE-C" {
		t.Errorf("expected only CASE-C, got %+v", both)
	}

	none, err := s.ListCourtOrders(ctx, ListOptions{Query: "jaffna"})
	if err != nil {
		t.Fatalf("no-match filter: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty result, got %d", len(none))
	}
}

func TestPoliceReportCRUDAndSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := testPoliceReport("PR-2025-001")
	if err := s.CreatePoliceReport(ctx, r); err != nil {
		t.Fatalf("CreatePoliceReport: %v", err)
	}

	got, err := s.GetPoliceReport(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetPoliceReport: %v", err)
	}
	if got.VictimName != "A. Perera" {
		t.Errorf("unexpected record: %+v", got)
	}

	// Search matches victim name
	matches, err := s.ListPoliceReports(ctx, ListOptions{Query: "perera"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected 1 match by victim name, got %d", len(matches))
	}

	// Search matches type of violence
	matches, err = s.ListPoliceReports(ctx, ListOptions{Query: "domestic"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected 1 match by violence type, got %d", len(matches))
	}

	got.CaseStatus = model.ReportStatusReferred
	if err := s.UpdatePoliceReport(ctx, got); err != nil {
		t.Fatalf("UpdatePoliceReport: %v", err)
	}
	referred, err := s.ListPoliceReports(ctx, ListOptions{Status: model.ReportStatusReferred})
	if err != nil {
		t.Fatalf("status filter: %v", err)
	}
	if len(referred) != 1 {
		t.Errorf("expected 1 referred report, got %d", len(referred))
	}

	if err := s.DeletePoliceReport(ctx, r.ID); err != nil {
		t.Fatalf("DeletePoliceReport: %v", err)
	}
	if _, err := s.GetPoliceReport(ctx, r.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUpsertPoliceReport_DedupByCaseID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := testPoliceReport("PR-42")
	if err := s.UpsertPoliceReport(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := testPoliceReport("PR-42")
	second.CaseStatus = model.ReportStatusConcluded
	if err := s.UpsertPoliceReport(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected second upsert to return stored id %s, got %s", first.ID, second.ID)
	}
	if _, err := s.GetPoliceReport(ctx, second.ID); err != nil {
		t.Errorf("returned id not retrievable: %v", err)
	}

	reports, err := s.ListPoliceReports(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListPoliceReports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].ID != first.ID || reports[0].CaseStatus != model.ReportStatusConcluded {
		t.Errorf("expected stable id with new content, got %+v", reports[0])
	}
}

func TestDocumentLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := &model.Document{
		ID:       uuid.New().String(),
		FileName: "order.pdf",
		FileSize: 2048,
		DocType:  model.DocTypeCourtOrder,
		Status:   model.DocStatusPending,
	}
	if err := s.CreateDocument(ctx, d); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if err := s.UpdateDocumentStatus(ctx, d.ID, model.DocStatusUploading, ""); err != nil {
		t.Fatalf("UpdateDocumentStatus: %v", err)
	}
	if err := s.UpdateDocumentStatus(ctx, d.ID, model.DocStatusError, "extraction failed"); err != nil {
		t.Fatalf("UpdateDocumentStatus: %v", err)
	}

	got, err := s.GetDocument(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.Status != model.DocStatusError || got.ErrorMsg != "extraction failed" {
		t.Errorf("unexpected document: %+v", got)
	}

	errored, err := s.ListDocuments(ctx, model.DocStatusError)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(errored) != 1 {
		t.Errorf("expected 1 errored document, got %d", len(errored))
	}

	if err := s.DeleteDocument(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if _, err := s.GetDocument(ctx, d.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPredictionUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := &model.Prediction{
		ID:              uuid.New().String(),
		CaseID:          "PR-42",
		CaseSummary:     "Repeat domestic violence incidents",
		SuggestedAction: "Refer to court with protection order request",
	}
	if err := s.UpsertPrediction(ctx, p); err != nil {
		t.Fatalf("UpsertPrediction: %v", err)
	}

	p2 := &model.Prediction{
		ID:              uuid.New().String(),
		CaseID:          "PR-42",
		CaseSummary:     "Updated summary",
		SuggestedAction: "Close case",
	}
	if err := s.UpsertPrediction(ctx, p2); err != nil {
		t.Fatalf("second UpsertPrediction: %v", err)
	}
	if p2.ID != p.ID {
		t.Errorf("expected second upsert to return stored id %s, got %s", p.ID, p2.ID)
	}

	preds, err := s.ListPredictions(ctx)
	if err != nil {
		t.Fatalf("ListPredictions: %v", err)
	}
	if len(preds) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(preds))
	}
	if preds[0].CaseSummary != "Updated summary" {
		t.Errorf("expected overwritten prediction, got %+v", preds[0])
	}

	got, err := s.GetPredictionByCaseID(ctx, "PR-42")
	if err != nil {
		t.Fatalf("GetPredictionByCaseID: %v", err)
	}
	if got.SuggestedAction != "Close case" {
		t.Errorf("unexpected prediction: %+v", got)
	}
}

func TestGetStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, caseID := range []string{"C1", "C2"} {
		c := testCourtOrder(caseID)
		if i == 0 {
			c.Status = model.CourtOrderStatusClosed
		}
		if err := s.CreateCourtOrder(ctx, c); err != nil {
			t.Fatalf("CreateCourtOrder: %v", err)
		}
	}
	r := testPoliceReport("PR-1")
	if err := s.CreatePoliceReport(ctx, r); err != nil {
		t.Fatalf("CreatePoliceReport: %v", err)
	}
	d := &model.Document{ID: uuid.New().String(), FileName: "f.pdf",
		DocType: model.DocTypeCourtOrder, Status: model.DocStatusSuccess}
	if err := s.CreateDocument(ctx, d); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalCourtOrders != 2 || stats.TotalPoliceReports != 1 || stats.TotalDocuments != 1 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.CourtOrdersByStatus[model.CourtOrderStatusClosed] != 1 {
		t.Errorf("expected 1 closed court order, got %+v", stats.CourtOrdersByStatus)
	}
	if stats.DocumentsByStatus[model.DocStatusSuccess] != 1 {
		t.Errorf("expected 1 successful document, got %+v", stats.DocumentsByStatus)
	}
}
