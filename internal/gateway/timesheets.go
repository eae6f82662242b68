package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dkoval/projectdesk/internal/model"
)

type timesheetsResp struct {
	Timesheets []model.Timesheet `json:"timesheets"`
}

type timesheetResp struct {
	Message   string          `json:"message"`
	Timesheet model.Timesheet `json:"timesheet"`
}

// UserTimesheets lists a user's timesheet entries.
func (c *Client) UserTimesheets(ctx context.Context, userID string) ([]model.Timesheet, error) {
	var resp timesheetsResp
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/timesheets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Timesheets, nil
}

// CreateTimesheet records a new timesheet entry.
func (c *Client) CreateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error) {
	var resp timesheetResp
	if err := c.do(ctx, http.MethodPost, "/timesheets", ts, &resp); err != nil {
		return model.Timesheet{}, err
	}
	return resp.Timesheet, nil
}

// UpdateTimesheet pushes a status transition (approval pipeline) upstream.
func (c *Client) UpdateTimesheet(ctx context.Context, ts model.Timesheet) (model.Timesheet, error) {
	var resp timesheetResp
	if err := c.do(ctx, http.MethodPut, "/timesheets/"+url.PathEscape(ts.ID), ts, &resp); err != nil {
		return model.Timesheet{}, err
	}
	return resp.Timesheet, nil
}
