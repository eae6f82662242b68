package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
)

// ProjectStore is the persistent fallback collection for projects created
// while the upstream was down.
type ProjectStore struct{ DB *sql.DB }

func NewProjectStore(db *sql.DB) *ProjectStore { return &ProjectStore{DB: db} }

// Append stores a locally created project.
func (s *ProjectStore) Append(ctx context.Context, p model.Project) error {
	if s.DB == nil {
		return ErrUnavailable
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return ErrUnavailable
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO local_projects (id, payload) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE payload = VALUES(payload)`,
		p.ID, payload)
	if err != nil {
		logrus.WithError(err).Warn("project store: append failed")
		return ErrUnavailable
	}
	return nil
}

// List returns every locally created project. Storage trouble yields an
// empty list, never an error.
func (s *ProjectStore) List(ctx context.Context) []model.Project {
	if s.DB == nil {
		return nil
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT payload FROM local_projects ORDER BY created_at, id`)
	if err != nil {
		logrus.WithError(err).Warn("project store: list failed")
		return nil
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var p model.Project
		if err := json.Unmarshal(payload, &p); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Remove drops a project from the local collection. Missing rows and
// storage trouble are both no-ops.
func (s *ProjectStore) Remove(ctx context.Context, id string) {
	if s.DB == nil {
		return
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM local_projects WHERE id = ?`, id); err != nil {
		logrus.WithError(err).Warn("project store: remove failed")
	}
}
