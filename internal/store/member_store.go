package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
)

// MemberStore holds project members added through the dashboard. These
// records exist only here: the upstream API has no members endpoint, so the
// local collection is the system of record for them.
type MemberStore struct{ DB *sql.DB }

func NewMemberStore(db *sql.DB) *MemberStore { return &MemberStore{DB: db} }

// Append stores a new project member.
func (s *MemberStore) Append(ctx context.Context, m model.ProjectMember) error {
	if s.DB == nil {
		return ErrUnavailable
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return ErrUnavailable
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO local_members (id, project_id, payload) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE payload = VALUES(payload)`,
		m.ID, m.ProjectID, payload)
	if err != nil {
		logrus.WithError(err).Warn("member store: append failed")
		return ErrUnavailable
	}
	return nil
}

// ListByProject returns the members recorded for one project.
func (s *MemberStore) ListByProject(ctx context.Context, projectID string) []model.ProjectMember {
	if s.DB == nil {
		return nil
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT payload FROM local_members WHERE project_id = ? ORDER BY created_at, id`, projectID)
	if err != nil {
		logrus.WithError(err).Warn("member store: list failed")
		return nil
	}
	defer rows.Close()

	var out []model.ProjectMember
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var m model.ProjectMember
		if err := json.Unmarshal(payload, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Remove drops a member record.
func (s *MemberStore) Remove(ctx context.Context, id string) {
	if s.DB == nil {
		return
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM local_members WHERE id = ?`, id); err != nil {
		logrus.WithError(err).Warn("member store: remove failed")
	}
}
