package model

import (
	"errors"
	"testing"
	"time"
)

func TestApproveSubmittedTimesheet(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ts := Timesheet{ID: "ts-1", Status: TimesheetSubmitted}

	if err := ts.Approve("3", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Status != TimesheetApproved {
		t.Fatalf("expected approved, got %q", ts.Status)
	}
	if ts.ReviewedBy != "3" || ts.ReviewedAt == nil || !ts.ReviewedAt.Equal(now) {
		t.Fatalf("reviewer not recorded: %+v", ts)
	}
}

func TestApproveRejectsNonSubmittedStates(t *testing.T) {
	now := time.Now()
	for _, status := range []string{TimesheetDraft, TimesheetApproved, TimesheetRejected} {
		ts := Timesheet{Status: status}
		if err := ts.Approve("3", now); !errors.Is(err, ErrNotSubmitted) {
			t.Fatalf("status %q: expected ErrNotSubmitted, got %v", status, err)
		}
		if ts.Status != status {
			t.Fatalf("status %q: expected no transition, got %q", status, ts.Status)
		}
	}
}

func TestRejectRequiresReason(t *testing.T) {
	ts := Timesheet{Status: TimesheetSubmitted}
	if err := ts.Reject("3", "   ", time.Now()); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	if ts.Status != TimesheetSubmitted {
		t.Fatalf("expected timesheet untouched, got %q", ts.Status)
	}

	if err := ts.Reject("3", " too many hours ", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Status != TimesheetRejected {
		t.Fatalf("expected rejected, got %q", ts.Status)
	}
	if ts.RejectionReason != "too many hours" {
		t.Fatalf("expected trimmed reason, got %q", ts.RejectionReason)
	}
}

func TestRejectOnlyFromSubmitted(t *testing.T) {
	ts := Timesheet{Status: TimesheetApproved}
	if err := ts.Reject("3", "late", time.Now()); !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("expected ErrNotSubmitted, got %v", err)
	}
}
