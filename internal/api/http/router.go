package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/case-service/internal/api/http/handlers"
	"github.com/spec-kit/case-service/internal/auth"
	"github.com/spec-kit/case-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Cases          *handlers.CasesHandler
	Dashboard      *handlers.DashboardHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	cases := protected.Group("/cases")
	// export before :id so the static segment wins.
	cases.Get("/export", cfg.Cases.ExportCSV)
	cases.Get("/", cfg.Cases.ListCases)
	cases.Post("/", cfg.Cases.CreateCase)
	cases.Get("/:id", cfg.Cases.GetCase)
	cases.Put("/:id", cfg.Cases.UpdateCase)
	cases.Post("/:id/status", cfg.Cases.ChangeStatus)
	cases.Post("/:id/comments", cfg.Cases.AddComment)
	cases.Get("/:id/report", cfg.Cases.Report)
	cases.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Cases.DeleteCase)

	protected.Get("/dashboard", cfg.Dashboard.Overview)

	users := protected.Group("/users")
	users.Get("/", cfg.Users.Directory)
	users.Put("/:id/role", auth.RequireRole(domain.RoleAdmin), cfg.Users.UpdateRole)
}
