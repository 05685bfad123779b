package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KaveeshaKaru/investiAI/model"
)

// CreateDocument inserts a new document record. The caller assigns the ID.
func (s *Store) CreateDocument(ctx context.Context, d *model.Document) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `INSERT INTO documents
		(id, file_name, file_size, doc_type, status, error_msg, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.FileName, d.FileSize, d.DocType, d.Status, d.ErrorMsg, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetDocument returns the document with the given ID.
func (s *Store) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	var d model.Document
	err := s.db.QueryRowContext(ctx, `SELECT id, file_name, file_size, doc_type, status,
		error_msg, created_at, updated_at FROM documents WHERE id = ?`, id).
		Scan(&d.ID, &d.FileName, &d.FileSize, &d.DocType, &d.Status,
			&d.ErrorMsg, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListDocuments returns documents newest first, optionally filtered by
// lifecycle status.
func (s *Store) ListDocuments(ctx context.Context, status string) ([]model.Document, error) {
	q := `SELECT id, file_name, file_size, doc_type, status, error_msg, created_at, updated_at
		FROM documents`
	var args []any
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []model.Document{}
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(&d.ID, &d.FileName, &d.FileSize, &d.DocType, &d.Status,
			&d.ErrorMsg, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// UpdateDocumentStatus moves the document to a new lifecycle status.
// errMsg is stored on error transitions and cleared otherwise.
func (s *Store) UpdateDocumentStatus(ctx context.Context, id, status, errMsg string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET status = ?, error_msg = ?, updated_at = ? WHERE id = ?`,
		status, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDocument removes the document record. Extracted case records keep
// their documentId and survive the deletion.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
