package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/demo"
	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/rbac"
)

// AdminSettings backs the admin-only settings page: the workspace user
// directory and the navigation each role resolves to. Reaching this
// handler at all requires the admin route gate.
func AdminSettings(c echo.Context) error {
	roles := []string{
		model.RoleAdmin,
		model.RoleProjectManager,
		model.RoleTeamMember,
		model.RoleSalesFinance,
	}
	nav := make(map[string][]string, len(roles))
	for _, r := range roles {
		nav[r] = rbac.NavFor(r)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"users":    demo.Users(),
		"roles":    roles,
		"nav":      nav,
	})
}
