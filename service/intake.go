package service

import (
	"context"
	"fmt"

	"github.com/KaveeshaKaru/investiAI/model"
	"github.com/KaveeshaKaru/investiAI/pkg/logger"
	"github.com/google/uuid"
)

// IntakeService runs one uploaded document through the whole pipeline:
// tracking record, extraction, normalization, per-case persistence, and
// archiving of the original bytes.
type IntakeService struct {
	store     *Store
	extractor FieldExtractor
	archive   *ArchiveService // nil when archiving is disabled
}

// NewIntakeService wires the pipeline.
func NewIntakeService(store *Store, extractor FieldExtractor, archive *ArchiveService) *IntakeService {
	return &IntakeService{store: store, extractor: extractor, archive: archive}
}

// Process ingests one document. The returned Document reflects the final
// lifecycle status; the returned cases are the records actually persisted.
// On extraction failure the document ends in status error and the error is
// returned; no case records are written.
//
// Case records are upserted individually, so a failure partway through
// leaves the earlier cases stored. The document still ends in success when
// at least one case was written.
func (s *IntakeService) Process(ctx context.Context, fileName string, data []byte, docType string) (*model.Document, *NormalizedCases, error) {
	doc := &model.Document{
		ID:       uuid.New().String(),
		FileName: fileName,
		FileSize: int64(len(data)),
		DocType:  docType,
		Status:   model.DocStatusPending,
	}
	if err := s.store.CreateDocument(ctx, doc); err != nil {
		return nil, nil, err
	}

	s.setStatus(ctx, doc, model.DocStatusUploading, "")

	raw, err := s.extractor.Extract(ctx, docType, fileName, data)
	if err != nil {
		s.setStatus(ctx, doc, model.DocStatusError, err.Error())
		return doc, nil, fmt.Errorf("extract document: %w", err)
	}

	normalized, err := NormalizeRecords(docType, doc.ID, raw)
	if err != nil {
		s.setStatus(ctx, doc, model.DocStatusError, err.Error())
		return doc, nil, fmt.Errorf("normalize records: %w", err)
	}

	saved := &NormalizedCases{}
	var failed int
	for i := range normalized.CourtOrders {
		c := normalized.CourtOrders[i]
		if err := s.store.UpsertCourtOrder(ctx, &c); err != nil {
			failed++
			logger.Error(ctx, "intake.case.save_failed", "document_id", doc.ID, "case_id", c.CaseID, "error", err)
			continue
		}
		saved.CourtOrders = append(saved.CourtOrders, c)
	}
	for i := range normalized.PoliceReports {
		r := normalized.PoliceReports[i]
		if err := s.store.UpsertPoliceReport(ctx, &r); err != nil {
			failed++
			logger.Error(ctx, "intake.case.save_failed", "document_id", doc.ID, "case_id", r.CaseID, "error", err)
			continue
		}
		saved.PoliceReports = append(saved.PoliceReports, r)
	}

	if failed > 0 && saved.Len() == 0 {
		msg := fmt.Sprintf("all %d extracted cases failed to save", failed)
		s.setStatus(ctx, doc, model.DocStatusError, msg)
		return doc, saved, fmt.Errorf("%s", msg)
	}

	if s.archive != nil {
		// Archiving is best effort; a missing original never fails the intake.
		if err := s.archive.Store(ctx, docType, doc.ID, fileName, data); err != nil {
			logger.Warn(ctx, "intake.archive_failed", "document_id", doc.ID, "error", err)
		}
	}

	s.setStatus(ctx, doc, model.DocStatusSuccess, "")

	logger.Info(ctx, "intake.done",
		"document_id", doc.ID,
		"doc_type", docType,
		"cases_saved", saved.Len(),
		"cases_failed", failed,
	)
	return doc, saved, nil
}

func (s *IntakeService) setStatus(ctx context.Context, doc *model.Document, status, errMsg string) {
	doc.Status = status
	doc.ErrorMsg = errMsg
	if err := s.store.UpdateDocumentStatus(ctx, doc.ID, status, errMsg); err != nil {
		logger.Error(ctx, "intake.status_update_failed", "document_id", doc.ID, "status", status, "error", err)
	}
}
