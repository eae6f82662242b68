package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dkoval/projectdesk/internal/model"
)

type fakeTimesheetGateway struct {
	sheets  []model.Timesheet
	err     error
	updated *model.Timesheet
}

func (f *fakeTimesheetGateway) UserTimesheets(ctx context.Context, userID string) ([]model.Timesheet, error) {
	return f.sheets, f.err
}

func (f *fakeTimesheetGateway) CreateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error) {
	if f.err != nil {
		return model.Timesheet{}, f.err
	}
	ts.ID = "remote-ts"
	return ts, nil
}

func (f *fakeTimesheetGateway) UpdateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error) {
	if f.err != nil {
		return model.Timesheet{}, f.err
	}
	f.updated = &ts
	return ts, nil
}

type fakeTimesheetStore struct {
	sheets map[string][]model.Timesheet
}

func newFakeTimesheetStore() *fakeTimesheetStore {
	return &fakeTimesheetStore{sheets: map[string][]model.Timesheet{}}
}

func (f *fakeTimesheetStore) Append(ctx context.Context, sid string, ts model.Timesheet) error {
	f.sheets[sid] = append(f.sheets[sid], ts)
	return nil
}

func (f *fakeTimesheetStore) List(ctx context.Context, sid string) []model.Timesheet {
	return f.sheets[sid]
}

func (f *fakeTimesheetStore) Replace(ctx context.Context, sid string, ts model.Timesheet) {
	for i, cur := range f.sheets[sid] {
		if cur.ID == ts.ID {
			f.sheets[sid][i] = ts
			return
		}
	}
	f.sheets[sid] = append(f.sheets[sid], ts)
}

func newTimesheetHandlerForTest(gw *fakeTimesheetGateway, local *fakeTimesheetStore) *TimesheetHandler {
	h := NewTimesheetHandler(gw, local, func() []model.Timesheet { return nil }, nil)
	h.Now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }
	return h
}

func TestReviewApprovesSubmittedTimesheet(t *testing.T) {
	gw := &fakeTimesheetGateway{sheets: []model.Timesheet{
		{ID: "ts-1", UserID: "2", Status: model.TimesheetSubmitted},
	}}
	h := newTimesheetHandlerForTest(gw, newFakeTimesheetStore())

	pm := &model.User{ID: "3", Role: model.RoleProjectManager}
	c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/ts-1/review",
		`{"decision":"approve"}`, pm)
	c.SetParamNames("id")
	c.SetParamValues("ts-1")

	if err := h.Review(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Timesheet model.Timesheet `json:"timesheet"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Timesheet.Status != model.TimesheetApproved {
		t.Fatalf("expected approved, got %q", resp.Timesheet.Status)
	}
	if resp.Timesheet.ReviewedBy != "3" {
		t.Fatalf("expected reviewer recorded, got %q", resp.Timesheet.ReviewedBy)
	}
	if gw.updated == nil || gw.updated.Status != model.TimesheetApproved {
		t.Fatal("expected approved record pushed upstream")
	}
}

func TestReviewRejectRequiresReason(t *testing.T) {
	gw := &fakeTimesheetGateway{sheets: []model.Timesheet{
		{ID: "ts-1", UserID: "2", Status: model.TimesheetSubmitted},
	}}
	h := newTimesheetHandlerForTest(gw, newFakeTimesheetStore())

	pm := &model.User{ID: "3", Role: model.RoleProjectManager}
	c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/ts-1/review",
		`{"decision":"reject","reason":"  "}`, pm)
	c.SetParamNames("id")
	c.SetParamValues("ts-1")

	if err := h.Review(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if gw.updated != nil {
		t.Fatal("expected no upstream write for a reasonless rejection")
	}
}

func TestReviewNonSubmittedConflicts(t *testing.T) {
	for _, status := range []string{model.TimesheetDraft, model.TimesheetApproved, model.TimesheetRejected} {
		gw := &fakeTimesheetGateway{sheets: []model.Timesheet{
			{ID: "ts-1", UserID: "2", Status: status},
		}}
		h := newTimesheetHandlerForTest(gw, newFakeTimesheetStore())

		pm := &model.User{ID: "3", Role: model.RoleProjectManager}
		c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/ts-1/review",
			`{"decision":"approve"}`, pm)
		c.SetParamNames("id")
		c.SetParamValues("ts-1")

		if err := h.Review(c); err != nil {
			t.Fatalf("status %q: unexpected error: %v", status, err)
		}
		if rec.Code != http.StatusConflict {
			t.Fatalf("status %q: expected 409, got %d", status, rec.Code)
		}
	}
}

func TestReviewForbiddenForTeamMember(t *testing.T) {
	h := newTimesheetHandlerForTest(&fakeTimesheetGateway{}, newFakeTimesheetStore())

	member := &model.User{ID: "2", Role: model.RoleTeamMember}
	c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/ts-1/review",
		`{"decision":"approve"}`, member)
	c.SetParamNames("id")
	c.SetParamValues("ts-1")

	if err := h.Review(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestReviewAdminOverride(t *testing.T) {
	gw := &fakeTimesheetGateway{sheets: []model.Timesheet{
		{ID: "ts-1", UserID: "2", Status: model.TimesheetSubmitted},
	}}
	h := newTimesheetHandlerForTest(gw, newFakeTimesheetStore())

	admin := &model.User{ID: "1", Role: model.RoleAdmin}
	c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/ts-1/review",
		`{"decision":"approve"}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("ts-1")

	if err := h.Review(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin to review, got %d", rec.Code)
	}
}

func TestReviewStoresLocallyWhenUpstreamWriteFails(t *testing.T) {
	local := newFakeTimesheetStore()
	local.Append(context.Background(), "sid-test", model.Timesheet{
		ID: "local-ts", UserID: "2", Status: model.TimesheetSubmitted,
	})
	gw := &fakeTimesheetGateway{err: errUpstreamDown}
	h := newTimesheetHandlerForTest(gw, local)

	pm := &model.User{ID: "3", Role: model.RoleProjectManager}
	c, rec := newTaskTestContext(http.MethodPut, "/v1/timesheets/local-ts/review",
		`{"decision":"reject","reason":"hours look wrong"}`, pm)
	c.SetParamNames("id")
	c.SetParamValues("local-ts")

	if err := h.Review(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored := local.List(context.Background(), "sid-test")
	if len(stored) != 1 || stored[0].Status != model.TimesheetRejected {
		t.Fatalf("expected rejection persisted locally, got %+v", stored)
	}
	if stored[0].RejectionReason != "hours look wrong" {
		t.Fatalf("expected reason persisted, got %q", stored[0].RejectionReason)
	}
}
