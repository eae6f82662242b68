package main // Entry point package

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/config"
	"github.com/dkoval/projectdesk/internal/database"
	"github.com/dkoval/projectdesk/internal/demo"
	"github.com/dkoval/projectdesk/internal/gateway"
	"github.com/dkoval/projectdesk/internal/handler"
	"github.com/dkoval/projectdesk/internal/queue"
	"github.com/dkoval/projectdesk/internal/router"
	"github.com/dkoval/projectdesk/internal/service"
	"github.com/dkoval/projectdesk/internal/session"
	"github.com/dkoval/projectdesk/internal/store"
)

func main() {
	cfg := config.Load()

	// Persistent fallback tier. A missing database is not fatal: the
	// stores degrade to empty and the dashboard keeps running on the
	// remote and demo tiers.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Warn("local store database unavailable, falling back to empty collections")
		db = nil
	}
	if err := store.Migrate(db); err != nil {
		logrus.WithError(err).Warn("local store migration failed")
		db = nil
	}

	// Session-scoped fallback tier and login limiter; nil is fine here too.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, session-scoped fallback and login limiter disabled")
	}

	demo.SetBcryptCost(cfg.BcryptCost)

	gw := gateway.New(cfg.APIBaseURL, cfg.APITimeout)
	sessions := session.NewStore(cfg.SessionSecret, time.Duration(cfg.SessionTTLMin)*time.Minute, cfg.CookieSecure)
	localTTL := time.Duration(cfg.LocalTTLMin) * time.Minute

	projects := handler.NewProjectHandler(gw, store.NewProjectStore(db), demo.Projects, service.PublishActivity)
	tasks := handler.NewTaskHandler(gw, store.NewTaskStore(rdb, localTTL), demo.Tasks)
	timesheets := handler.NewTimesheetHandler(gw, store.NewTimesheetStore(rdb, localTTL), demo.Timesheets, service.PublishActivity)
	finance := handler.NewFinanceHandler(gw, store.NewDocumentStore(db), demo.Documents, service.PublishActivity)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(sessions, gw),
		Projects:   projects,
		Members:    handler.NewMemberHandler(store.NewMemberStore(db)),
		Tasks:      tasks,
		Timesheets: timesheets,
		Finance:    finance,
		Dashboard:  handler.NewDashboardHandler(projects, tasks, timesheets, finance),
	}

	// Activity feed consumer; runs its own reconnect loop forever.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			logrus.WithError(err).Warn("activity consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, cfg, sessions, rdb, h)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("projectdesk listening")
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
