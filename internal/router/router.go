package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/dkoval/projectdesk/internal/config"
	"github.com/dkoval/projectdesk/internal/handler"
	"github.com/dkoval/projectdesk/internal/middleware"
	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/session"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth       *handler.AuthHandler
	Projects   *handler.ProjectHandler
	Members    *handler.MemberHandler
	Tasks      *handler.TaskHandler
	Timesheets *handler.TimesheetHandler
	Finance    *handler.FinanceHandler
	Dashboard  *handler.DashboardHandler
}

// RegisterRoutes wires the full route table. Access is a two-tier gate:
// anything under /v1 (except auth) needs a session, and the /v1/admin
// group needs the admin role — non-admins are bounced to the dashboard
// rather than shown an error page.
func RegisterRoutes(e *echo.Echo, cfg config.Config, sessions *session.Store, rdb *redis.Client, h Handlers) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated auth endpoints. Login carries a brute-force limiter.
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/login", h.Auth.Login, middleware.LoginRateLimit(config.LoadRateLimitConfig(), rdb))
	authGroup.POST("/logout", h.Auth.Logout)

	// Everything below needs a session.
	v1 := e.Group("/v1")
	v1.Use(middleware.SessionAuth(sessions))

	v1.GET("/me", h.Auth.Me)
	v1.GET("/nav", handler.Nav)
	v1.GET("/dashboard", h.Dashboard.Summary)

	v1.GET("/projects", h.Projects.List)
	v1.POST("/projects", h.Projects.Create)
	v1.PUT("/projects/:id", h.Projects.Update)
	v1.DELETE("/projects/:id", h.Projects.Delete)
	v1.GET("/projects/:id/members", h.Members.List)
	v1.POST("/projects/:id/members", h.Members.Create)
	v1.DELETE("/projects/:id/members/:memberID", h.Members.Delete)

	v1.GET("/tasks", h.Tasks.List)
	v1.POST("/tasks", h.Tasks.Create)
	v1.PUT("/tasks/:id/state", h.Tasks.UpdateState)
	v1.DELETE("/tasks/:id", h.Tasks.Delete)

	v1.GET("/timesheets", h.Timesheets.List)
	v1.POST("/timesheets", h.Timesheets.Create)
	v1.PUT("/timesheets/:id/review", h.Timesheets.Review)

	// Finance pages. Sales/purchase/invoice/bill views belong to the
	// finance role; expenses are open to everyone who can file one.
	finance := v1.Group("", middleware.RequireRole(model.RoleSalesFinance))
	registerDocumentRoutes(finance, h.Finance, "/sales-orders", model.DocSalesOrder)
	registerDocumentRoutes(finance, h.Finance, "/purchase-orders", model.DocPurchaseOrder)
	registerDocumentRoutes(finance, h.Finance, "/invoices", model.DocInvoice)
	registerDocumentRoutes(finance, h.Finance, "/bills", model.DocBill)

	expenses := v1.Group("", middleware.RequireRole(
		model.RoleSalesFinance, model.RoleProjectManager, model.RoleTeamMember))
	registerDocumentRoutes(expenses, h.Finance, "/expenses", model.DocExpense)

	// Admin tier: non-admins get redirected, not rejected.
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg.DashboardPath))
	admin.GET("/settings", handler.AdminSettings)
}

func registerDocumentRoutes(g *echo.Group, f *handler.FinanceHandler, path, kind string) {
	g.GET(path, f.List(kind))
	g.POST(path, f.Create(kind))
	g.PUT(path+"/:id/status", f.UpdateStatus(kind))
}
