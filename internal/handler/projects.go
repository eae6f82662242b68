package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/queue"
	"github.com/dkoval/projectdesk/internal/rbac"
	"github.com/dkoval/projectdesk/internal/reconcile"
	"github.com/dkoval/projectdesk/internal/utils"
)

// ProjectGateway is the slice of the upstream API the project pages use.
type ProjectGateway interface {
	UserProjects(ctx context.Context, userID string) ([]model.Project, error)
	CreateProject(ctx context.Context, p model.Project) (model.Project, error)
	UpdateProject(ctx context.Context, p model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// ProjectFallback is the persistent local collection of projects created
// while the upstream was down.
type ProjectFallback interface {
	Append(ctx context.Context, p model.Project) error
	List(ctx context.Context) []model.Project
	Remove(ctx context.Context, id string)
}

// ProjectHandler serves the projects page.
type ProjectHandler struct {
	Gateway ProjectGateway
	Local   ProjectFallback
	Demo    func() []model.Project
	Publish PublishFunc
}

func NewProjectHandler(gw ProjectGateway, local ProjectFallback, demoFn func() []model.Project, pub PublishFunc) *ProjectHandler {
	return &ProjectHandler{Gateway: gw, Local: local, Demo: demoFn, Publish: pub}
}

// ----- DTOs -----

type projectReq struct {
	Code         string   `json:"code"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	MemberIDs    []string `json:"team_member_ids"`
	Status       string   `json:"status"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	BudgetAmount float64  `json:"budget_amount" validate:"gte=0"`
	CustomerID   string   `json:"customer_id"`
}

// List returns the reconciled, role-scoped project collection: remote when
// reachable, demo data otherwise, locally created projects appended either
// way.
func (h *ProjectHandler) List(c echo.Context) error {
	user := currentUser(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	remote, err := h.Gateway.UserProjects(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).Debug("projects: remote fetch failed, using fallback")
		remote = nil
	}
	merged := reconcile.Merge(remote, h.Local.List(ctx), h.Demo())
	return c.JSON(http.StatusOK, echo.Map{"projects": reconcile.VisibleProjects(user, merged)})
}

// Create makes a new project, admin-only. The write goes upstream first;
// if that fails the record lands in the local fallback store and the
// response still reports success.
func (h *ProjectHandler) Create(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResProject, rbac.ActionCreate) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status := req.Status
	if !model.ValidProjectStatus(status) {
		status = model.ProjectPlanned
	}

	p := model.Project{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		ManagerID:    user.ID,
		MemberIDs:    req.MemberIDs,
		Status:       status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BudgetAmount: req.BudgetAmount,
		CustomerID:   req.CustomerID,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Gateway.CreateProject(ctx, p)
	if err != nil {
		p.ID = "local-" + uuid.NewString()
		_ = h.Local.Append(ctx, p)
		created = p
	}
	publish(h.Publish, c, queue.ActivityEvent{
		Kind:       queue.EventProjectCreated,
		Resource:   "project",
		ResourceID: created.ID,
		Detail:     created.Name,
	})
	return c.JSON(http.StatusCreated, echo.Map{"message": "project created", "project": created})
}

// Update edits a project's fields.
func (h *ProjectHandler) Update(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResProject, rbac.ActionEdit) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req projectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	p := model.Project{
		ID:           c.Param("id"),
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		MemberIDs:    req.MemberIDs,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BudgetAmount: req.BudgetAmount,
		CustomerID:   req.CustomerID,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Gateway.UpdateProject(ctx, p)
	if err != nil {
		_ = h.Local.Append(ctx, p) // upsert into the local collection
		updated = p
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project updated", "project": updated})
}

// Delete removes a project from view, admin-only. Deletion only ever
// affects the merged collection: the upstream may refuse or be down, and
// the local copy is dropped regardless.
func (h *ProjectHandler) Delete(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResProject, rbac.ActionDelete) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	id := c.Param("id")
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Gateway.DeleteProject(ctx, id); err != nil {
		logrus.WithError(err).Debug("projects: remote delete failed")
	}
	h.Local.Remove(ctx, id)
	return c.NoContent(http.StatusNoContent)
}
