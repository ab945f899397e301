package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/http/handlers"
	"github.com/spec-kit/civic-issue-service/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Issues  *handlers.IssuesHandler
	Admin   *handlers.AdminHandler
	Session *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/citizen/otp/request", cfg.Auth.RequestCitizenOTP)
	authGroup.Post("/citizen/otp/verify", cfg.Auth.VerifyCitizenOTP)
	authGroup.Post("/official/login", cfg.Auth.LoginOfficial)

	issues := app.Group("/issues", cfg.Session.Resolve)
	issues.Get("/", cfg.Issues.ListIssues)
	issues.Get("/:id", cfg.Issues.GetIssue)
	issues.Post("/", session.RequireCitizen(), cfg.Issues.CreateIssue)

	admin := app.Group("/admin", cfg.Session.Resolve, session.RequireOfficial())
	admin.Get("/issues", cfg.Admin.ListIssues)
	admin.Patch("/issues/:id/status", cfg.Admin.UpdateStatus)
}
