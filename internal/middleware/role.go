package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
)

// RequireRole returns middleware that enforces that the signed-in user has
// one of the given roles. Admin passes regardless of the list; that
// override is deliberate and matches the permission tables in rbac. It
// assumes SessionAuth ran earlier and stored the user in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(CtxUser).(*model.User)
			if !ok || user == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
			}
			if user.Role != model.RoleAdmin && !allowed[user.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireAdmin gates admin-only routes. A signed-in non-admin is redirected
// to the regular dashboard instead of receiving a hard 403 — graceful
// degradation over an error page.
func RequireAdmin(dashboardPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(CtxUser).(*model.User)
			if !ok || user == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
			}
			if user.Role != model.RoleAdmin {
				return c.Redirect(http.StatusSeeOther, dashboardPath)
			}
			return next(c)
		}
	}
}
