package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/queue"
	"github.com/dkoval/projectdesk/internal/rbac"
	"github.com/dkoval/projectdesk/internal/reconcile"
	"github.com/dkoval/projectdesk/internal/utils"
)

// TimesheetGateway is the slice of the upstream API the timesheet pages use.
type TimesheetGateway interface {
	UserTimesheets(ctx context.Context, userID string) ([]model.Timesheet, error)
	CreateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error)
	UpdateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error)
}

// TimesheetFallback is the session-scoped local collection of timesheets.
type TimesheetFallback interface {
	Append(ctx context.Context, sessionID string, ts model.Timesheet) error
	List(ctx context.Context, sessionID string) []model.Timesheet
	Replace(ctx context.Context, sessionID string, ts model.Timesheet)
}

// TimesheetHandler serves the timesheet pages, including the approval
// pipeline.
type TimesheetHandler struct {
	Gateway TimesheetGateway
	Local   TimesheetFallback
	Demo    func() []model.Timesheet
	Publish PublishFunc
	Now     func() time.Time
}

func NewTimesheetHandler(gw TimesheetGateway, local TimesheetFallback, demoFn func() []model.Timesheet, pub PublishFunc) *TimesheetHandler {
	return &TimesheetHandler{Gateway: gw, Local: local, Demo: demoFn, Publish: pub, Now: time.Now}
}

// ----- DTOs -----

type timesheetReq struct {
	ProjectID  string  `json:"project_id" validate:"required"`
	TaskID     string  `json:"task_id"`
	WorkDate   string  `json:"work_date" validate:"required"`
	Hours      float64 `json:"hours" validate:"required,gt=0"`
	Billable   bool    `json:"billable"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	Status     string  `json:"status" validate:"omitempty,oneof=draft submitted"`
}

type reviewReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason"`
}

// List returns the reconciled, role-scoped timesheet collection.
func (h *TimesheetHandler) List(c echo.Context) error {
	user := currentUser(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	remote, err := h.Gateway.UserTimesheets(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).Debug("timesheets: remote fetch failed, using fallback")
		remote = nil
	}
	merged := reconcile.Merge(remote, h.Local.List(ctx, sessionID(c)), h.Demo())
	return c.JSON(http.StatusOK, echo.Map{"timesheets": reconcile.VisibleTimesheets(user, merged)})
}

// Create records a timesheet entry, defaulting to draft. The usual write
// policy applies: upstream first, local fallback on failure, success
// response either way.
func (h *TimesheetHandler) Create(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResTimesheet, rbac.ActionCreate) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req timesheetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := req.Status
	if status == "" {
		status = model.TimesheetDraft
	}

	ts := model.Timesheet{
		UserID:     user.ID,
		ProjectID:  req.ProjectID,
		TaskID:     req.TaskID,
		WorkDate:   req.WorkDate,
		Hours:      req.Hours,
		Billable:   req.Billable,
		HourlyRate: req.HourlyRate,
		Status:     status,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Gateway.CreateTimesheet(ctx, ts)
	if err != nil {
		ts.ID = "local-" + uuid.NewString()
		_ = h.Local.Append(ctx, sessionID(c), ts)
		created = ts
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "timesheet recorded", "timesheet": created})
}

// Review applies an approval decision to a submitted timesheet. Approvals
// need the approve permission; a rejection without a reason is a
// validation error and leaves the record untouched.
func (h *TimesheetHandler) Review(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResTimesheet, rbac.ActionApprove) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	id := c.Param("id")
	ctx, cancel := reqCtx(c)
	defer cancel()

	ts, ok := h.findTimesheet(ctx, c, user, id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "timesheet not found"})
	}

	var reviewErr error
	eventKind := queue.EventTimesheetApproved
	if req.Decision == "approve" {
		reviewErr = ts.Approve(user.ID, h.Now().UTC())
	} else {
		reviewErr = ts.Reject(user.ID, req.Reason, h.Now().UTC())
		eventKind = queue.EventTimesheetRejected
	}
	if reviewErr != nil {
		if errors.Is(reviewErr, model.ErrReasonRequired) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rejection reason is required"})
		}
		return c.JSON(http.StatusConflict, echo.Map{"error": reviewErr.Error()})
	}

	if _, err := h.Gateway.UpdateTimesheet(ctx, ts); err != nil {
		h.Local.Replace(ctx, sessionID(c), ts)
	}
	publish(h.Publish, c, queue.ActivityEvent{
		Kind:       eventKind,
		Resource:   "timesheet",
		ResourceID: ts.ID,
		Detail:     ts.RejectionReason,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "timesheet reviewed", "timesheet": ts})
}

// findTimesheet looks the record up across the three tiers in merge order.
func (h *TimesheetHandler) findTimesheet(ctx context.Context, c echo.Context, user *model.User, id string) (model.Timesheet, bool) {
	remote, err := h.Gateway.UserTimesheets(ctx, user.ID)
	if err != nil {
		remote = nil
	}
	for _, tier := range [][]model.Timesheet{remote, h.Local.List(ctx, sessionID(c)), h.Demo()} {
		for _, ts := range tier {
			if ts.ID == id {
				return ts, true
			}
		}
	}
	return model.Timesheet{}, false
}
