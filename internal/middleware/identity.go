package middleware

// identity.go holds the helper that identifies a client for rate limiting.
// A signed-in user is keyed by their id; everyone else by remote address.

import (
	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
)

// clientKey returns a stable identifier for the requester.
func clientKey(c echo.Context) string {
	if user, ok := c.Get(CtxUser).(*model.User); ok && user != nil && user.ID != "" {
		return "user:" + user.ID
	}
	return "ip:" + c.RealIP()
}
