package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/tpv-panel-api/internal/application/analytics"
	"github.com/jhoicas/tpv-panel-api/internal/application/auth"
	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProfileUC     *usecase.ProfileUseCase
	NavigationUC  *usecase.NavigationUseCase
	HelpUC        *usecase.HelpUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ModuleService *usecase.ModuleService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: Bearer Token con uno de los roles del panel
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleSupervisor, entity.RoleCajero),
	)

	// Cabecera: nombre visible, avatar y menú de usuario
	me := protected.Group("/me")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	me.Get("/header", profileHandler.Header)
	me.Put("/profile", profileHandler.Update)

	// Barra lateral
	navHandler := NewNavigationHandler(deps.NavigationUC)
	protected.Get("/navigation", navHandler.Get)

	// Dashboard (requiere módulo de analítica)
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary",
		RequireModule(entity.ModuleAnalytics, deps.ModuleService),
		dashHandler.GetSummary,
	)

	// Centro de ayuda
	help := protected.Group("/help")
	helpHandler := NewHelpHandler(deps.HelpUC)
	help.Get("/categories", helpHandler.Categories)
	help.Get("/faqs", helpHandler.View)
	help.Get("/guide.pdf", helpHandler.GuidePDF)
}
