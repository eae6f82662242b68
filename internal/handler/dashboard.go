package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/reconcile"
)

// DashboardHandler builds the landing-page summary over the reconciled
// collections.
type DashboardHandler struct {
	Projects   *ProjectHandler
	Tasks      *TaskHandler
	Timesheets *TimesheetHandler
	Finance    *FinanceHandler
}

func NewDashboardHandler(p *ProjectHandler, t *TaskHandler, ts *TimesheetHandler, f *FinanceHandler) *DashboardHandler {
	return &DashboardHandler{Projects: p, Tasks: t, Timesheets: ts, Finance: f}
}

type dashboardResp struct {
	Projects          int     `json:"projects"`
	OpenTasks         int     `json:"open_tasks"`
	PendingTimesheets int     `json:"pending_timesheets"`
	OpenInvoices      int     `json:"open_invoices"`
	BudgetAmount      float64 `json:"budget_amount"`
	BudgetSpent       float64 `json:"budget_spent"`
}

// Summary fetches projects, tasks, timesheets and invoices concurrently —
// the four fetches are independent and unordered, each falling back on its
// own — then reduces them to the landing-page counters.
func (h *DashboardHandler) Summary(c echo.Context) error {
	user := currentUser(c)
	sid := sessionID(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	var (
		wg         sync.WaitGroup
		projects   []model.Project
		tasks      []model.Task
		timesheets []model.Timesheet
		invoices   []model.Document
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		remote, err := h.Projects.Gateway.UserProjects(ctx, user.ID)
		if err != nil {
			remote = nil
		}
		merged := reconcile.Merge(remote, h.Projects.Local.List(ctx), h.Projects.Demo())
		projects = reconcile.VisibleProjects(user, merged)
	}()
	go func() {
		defer wg.Done()
		remote, err := h.Tasks.Gateway.UserTasks(ctx, user.ID)
		if err != nil {
			remote = nil
		}
		merged := reconcile.Merge(remote, h.Tasks.Local.List(ctx, sid), h.Tasks.Demo())
		tasks = reconcile.VisibleTasks(user, merged)
	}()
	go func() {
		defer wg.Done()
		remote, err := h.Timesheets.Gateway.UserTimesheets(ctx, user.ID)
		if err != nil {
			remote = nil
		}
		merged := reconcile.Merge(remote, h.Timesheets.Local.List(ctx, sid), h.Timesheets.Demo())
		timesheets = reconcile.VisibleTimesheets(user, merged)
	}()
	go func() {
		defer wg.Done()
		remote, err := h.Finance.Gateway.Documents(ctx, model.DocInvoice)
		if err != nil {
			remote = nil
		}
		invoices = reconcile.Merge(remote, h.Finance.Local.ListByKind(ctx, model.DocInvoice), h.Finance.Demo(model.DocInvoice))
	}()
	wg.Wait()

	resp := dashboardResp{Projects: len(projects)}
	for _, p := range projects {
		resp.BudgetAmount += p.BudgetAmount
		resp.BudgetSpent += p.BudgetSpent
	}
	for _, t := range tasks {
		if t.State != model.TaskDone {
			resp.OpenTasks++
		}
	}
	for _, ts := range timesheets {
		if ts.Status == model.TimesheetSubmitted {
			resp.PendingTimesheets++
		}
	}
	for _, d := range invoices {
		if d.Status == "sent" || d.Status == "overdue" {
			resp.OpenInvoices++
		}
	}
	return c.JSON(http.StatusOK, resp)
}
