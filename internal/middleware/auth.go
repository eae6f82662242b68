package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/session"
)

// Context keys under which the session identity is stored.
const (
	CtxUser      = "user"
	CtxSessionID = "session_id"
)

// SessionAuth returns middleware that resolves the current user from the
// session cookie and injects it into the request context. Requests without
// a valid session are rejected with 401; an unparsable cookie counts as no
// session, not as an error.
func SessionAuth(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, sid := sessions.Current(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
			}
			c.Set(CtxUser, user)
			c.Set(CtxSessionID, sid)
			return next(c)
		}
	}
}
