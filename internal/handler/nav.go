package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/rbac"
)

// Nav returns the navigation items the signed-in user's role may see. The
// shell renders exactly this list; pages outside it are unreachable from
// the UI (and the routes behind them are gated separately).
func Nav(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, echo.Map{"items": rbac.NavFor(user.Role)})
}
