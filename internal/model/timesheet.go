package model

import (
	"errors"
	"strings"
	"time"
)

// Timesheet statuses form a linear approval pipeline:
// draft -> submitted -> approved | rejected.
const (
	TimesheetDraft     = "draft"
	TimesheetSubmitted = "submitted"
	TimesheetApproved  = "approved"
	TimesheetRejected  = "rejected"
)

var (
	// ErrNotSubmitted is returned when a review is attempted on a
	// timesheet that is not awaiting review.
	ErrNotSubmitted = errors.New("timesheet is not in submitted state")
	// ErrReasonRequired is returned when a rejection carries no reason.
	ErrReasonRequired = errors.New("rejection reason is required")
)

// Timesheet mirrors the upstream timesheet resource. WorkDate is an ISO
// date (YYYY-MM-DD) as reported by the upstream API.
type Timesheet struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	ProjectID       string     `json:"project_id"`
	TaskID          string     `json:"task_id,omitempty"`
	WorkDate        string     `json:"work_date"`
	Hours           float64    `json:"hours"`
	Billable        bool       `json:"billable"`
	HourlyRate      float64    `json:"hourly_rate,omitempty"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

// Approve transitions a submitted timesheet to approved and records the
// reviewer. Any other starting state is rejected.
func (t *Timesheet) Approve(reviewerID string, at time.Time) error {
	if t.Status != TimesheetSubmitted {
		return ErrNotSubmitted
	}
	t.Status = TimesheetApproved
	t.ReviewedBy = reviewerID
	t.ReviewedAt = &at
	t.RejectionReason = ""
	return nil
}

// Reject transitions a submitted timesheet to rejected. A non-empty reason
// is mandatory; without one the transition does not happen.
func (t *Timesheet) Reject(reviewerID, reason string, at time.Time) error {
	if t.Status != TimesheetSubmitted {
		return ErrNotSubmitted
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	t.Status = TimesheetRejected
	t.ReviewedBy = reviewerID
	t.ReviewedAt = &at
	t.RejectionReason = strings.TrimSpace(reason)
	return nil
}

// ValidTimesheetStatus reports whether s is a known pipeline status.
func ValidTimesheetStatus(s string) bool {
	switch s {
	case TimesheetDraft, TimesheetSubmitted, TimesheetApproved, TimesheetRejected:
		return true
	}
	return false
}
