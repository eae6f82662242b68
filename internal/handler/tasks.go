package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/rbac"
	"github.com/dkoval/projectdesk/internal/reconcile"
	"github.com/dkoval/projectdesk/internal/utils"
)

// TaskGateway is the slice of the upstream API the task board uses.
type TaskGateway interface {
	UserTasks(ctx context.Context, userID string) ([]model.Task, error)
	ProjectTasks(ctx context.Context, projectID string) ([]model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	UpdateTaskState(ctx context.Context, id, state string) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// TaskFallback is the session-scoped local collection of tasks. Tasks
// created while the upstream is down are throwaway demo artifacts tied to
// the session.
type TaskFallback interface {
	Append(ctx context.Context, sessionID string, t model.Task) error
	List(ctx context.Context, sessionID string) []model.Task
	Remove(ctx context.Context, sessionID, id string)
}

// TaskHandler serves the task board.
type TaskHandler struct {
	Gateway TaskGateway
	Local   TaskFallback
	Demo    func() []model.Task
}

func NewTaskHandler(gw TaskGateway, local TaskFallback, demoFn func() []model.Task) *TaskHandler {
	return &TaskHandler{Gateway: gw, Local: local, Demo: demoFn}
}

// ----- DTOs -----

type taskReq struct {
	Title          string   `json:"title" validate:"required"`
	ProjectID      string   `json:"project_id" validate:"required"`
	Description    string   `json:"description"`
	AssigneeIDs    []string `json:"assignee_ids"`
	State          string   `json:"state"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"due_date"`
	EstimatedHours float64  `json:"estimated_hours" validate:"gte=0"`
	Tags           []string `json:"tags"`
}

type taskStateReq struct {
	State string `json:"state" validate:"required"`
}

// List returns the reconciled, role-scoped task collection, optionally
// narrowed to one project via ?project_id=.
func (h *TaskHandler) List(c echo.Context) error {
	user := currentUser(c)
	projectID := c.QueryParam("project_id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	var remote []model.Task
	var err error
	if projectID != "" {
		remote, err = h.Gateway.ProjectTasks(ctx, projectID)
	} else {
		remote, err = h.Gateway.UserTasks(ctx, user.ID)
	}
	if err != nil {
		logrus.WithError(err).Debug("tasks: remote fetch failed, using fallback")
		remote = nil
	}

	local := h.Local.List(ctx, sessionID(c))
	demo := h.Demo()
	if projectID != "" {
		local = filterTasksByProject(local, projectID)
		demo = filterTasksByProject(demo, projectID)
	}

	merged := reconcile.Merge(remote, local, demo)
	return c.JSON(http.StatusOK, echo.Map{"tasks": reconcile.VisibleTasks(user, merged)})
}

func filterTasksByProject(tasks []model.Task, projectID string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Create makes a new task. A failed upstream write is silenced entirely:
// the task goes to the session-scoped fallback store and the dialog closes
// on a success response, with no error surfaced.
func (h *TaskHandler) Create(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResTask, rbac.ActionCreate) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	t := model.Task{
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		AssigneeIDs:    req.AssigneeIDs,
		State:          model.NormalizeTaskState(req.State),
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		CreatedBy:      user.ID,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Gateway.CreateTask(ctx, t)
	if err != nil {
		t.ID = "local-" + uuid.NewString()
		_ = h.Local.Append(ctx, sessionID(c), t)
		created = t
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "task created", "task": created})
}

// UpdateState moves a task through the board.
func (h *TaskHandler) UpdateState(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResTask, rbac.ActionEdit) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req taskStateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	state := model.NormalizeTaskState(req.State)

	id := c.Param("id")
	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Gateway.UpdateTaskState(ctx, id, state)
	if err != nil {
		// Move the local copy instead, when there is one. With no local
		// copy either the task is unknown in every reachable tier.
		sid := sessionID(c)
		for _, t := range h.Local.List(ctx, sid) {
			if t.ID == id {
				h.Local.Remove(ctx, sid, id)
				t.State = state
				_ = h.Local.Append(ctx, sid, t)
				updated = t
				break
			}
		}
		if updated.ID == "" {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "task updated", "task": updated})
}

// Delete removes a task from view.
func (h *TaskHandler) Delete(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResTask, rbac.ActionDelete) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	id := c.Param("id")
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Gateway.DeleteTask(ctx, id); err != nil {
		logrus.WithError(err).Debug("tasks: remote delete failed")
	}
	h.Local.Remove(ctx, sessionID(c), id)
	return c.NoContent(http.StatusNoContent)
}
