package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
)

// DocumentStore is the persistent fallback collection for finance
// documents, partitioned by kind.
type DocumentStore struct{ DB *sql.DB }

func NewDocumentStore(db *sql.DB) *DocumentStore { return &DocumentStore{DB: db} }

// Append stores a locally created document.
func (s *DocumentStore) Append(ctx context.Context, d model.Document) error {
	if s.DB == nil {
		return ErrUnavailable
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return ErrUnavailable
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO local_documents (id, kind, payload) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE payload = VALUES(payload)`,
		d.ID, d.Kind, payload)
	if err != nil {
		logrus.WithError(err).Warn("document store: append failed")
		return ErrUnavailable
	}
	return nil
}

// ListByKind returns the locally created documents of one kind.
func (s *DocumentStore) ListByKind(ctx context.Context, kind string) []model.Document {
	if s.DB == nil {
		return nil
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT payload FROM local_documents WHERE kind = ? ORDER BY created_at, id`, kind)
	if err != nil {
		logrus.WithError(err).Warn("document store: list failed")
		return nil
	}
	defer rows.Close()

	var out []model.Document
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var d model.Document
		if err := json.Unmarshal(payload, &d); err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Remove drops a document from the local collection.
func (s *DocumentStore) Remove(ctx context.Context, id string) {
	if s.DB == nil {
		return
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM local_documents WHERE id = ?`, id); err != nil {
		logrus.WithError(err).Warn("document store: remove failed")
	}
}
