package model

import "time"

// ProjectMember joins a user to a project with a role label. Members added
// through the dashboard live only in the local fallback store; the upstream
// API has no endpoint for them.
type ProjectMember struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	UserID        string    `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	RoleInProject string    `json:"role_in_project"`
	AddedAt       time.Time `json:"added_at"`
}
