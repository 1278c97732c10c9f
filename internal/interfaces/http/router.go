package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mini-erp/internal/application/auth"
	"github.com/tu-usuario/mini-erp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ModuleUC  *usecase.ModuleUseCase
	AccountUC *usecase.AccountUseCase
	DiagUC    *usecase.DiagnosticsUseCase
	AuthUC    *auth.AuthUseCase
}

// Router registra las rutas de la API.
// Las tres sondas (/, /api/hello, /test) son públicas; todo lo demás exige
// X-API-Key y pasa por la tabla de permisos.
func Router(app *fiber.App, deps RouterDeps) {
	systemHandler := NewSystemHandler(deps.DiagUC)
	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.Test)

	api := app.Group("/api")
	api.Get("/hello", systemHandler.Hello)

	// Rutas protegidas (requieren X-API-Key)
	protected := api.Group("/", APIKeyMiddleware(deps.AuthUC))

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", RequirePermission(PermCompanyCreate), companyHandler.Create)
	companies.Get("/", RequirePermission(PermCompanyList), companyHandler.List)

	modules := protected.Group("/modules")
	moduleHandler := NewModuleHandler(deps.ModuleUC)
	modules.Post("/toggle", RequirePermission(PermModuleToggle), moduleHandler.Toggle)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AccountUC)
	users.Post("/", RequirePermission(PermUserCreate), userHandler.Create)
	users.Post("/issue-key", RequirePermission(PermUserIssueKey), userHandler.IssueKey)
}
