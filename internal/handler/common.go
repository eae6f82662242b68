package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/middleware"
	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/queue"
)

// PublishFunc sends an activity event. Handlers treat a nil function, and
// any returned error, as "no activity feed today" — publishing never gates
// a user action.
type PublishFunc func(ctx context.Context, ev queue.ActivityEvent) error

// currentUser pulls the signed-in user injected by SessionAuth. Handlers
// behind the auth middleware can rely on it being present.
func currentUser(c echo.Context) *model.User {
	if u, ok := c.Get(middleware.CtxUser).(*model.User); ok {
		return u
	}
	return nil
}

// sessionID pulls the session id that keys session-scoped fallback records.
func sessionID(c echo.Context) string {
	if sid, ok := c.Get(middleware.CtxSessionID).(string); ok {
		return sid
	}
	return ""
}

// reqCtx bounds downstream calls made on behalf of one request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// publish fires an activity event, swallowing every failure.
func publish(fn PublishFunc, c echo.Context, ev queue.ActivityEvent) {
	if fn == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if u := currentUser(c); u != nil {
		ev.ActorID = u.ID
		ev.ActorEmail = u.Email
	}
	_ = fn(c.Request().Context(), ev)
}
