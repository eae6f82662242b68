// Package queue defines message payloads exchanged over the message broker.
package queue

// Activity event kinds published by the dashboard.
const (
	EventTimesheetApproved = "timesheet.approved"
	EventTimesheetRejected = "timesheet.rejected"
	EventDocumentStatus    = "document.status_changed"
	EventProjectCreated    = "project.created"
)

// ActivityEvent is published whenever a reviewable action happens: a
// timesheet review, a document status transition, a project creation. It
// carries enough context for downstream consumers to build an activity feed
// without querying anything.
type ActivityEvent struct {
	Kind       string `json:"kind"`
	ActorID    string `json:"actor_id"`
	ActorEmail string `json:"actor_email"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resource_id"`
	Detail     string `json:"detail,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
