package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/tpv-panel-api/docs"
	appanalytics "github.com/jhoicas/tpv-panel-api/internal/application/analytics"
	"github.com/jhoicas/tpv-panel-api/internal/application/auth"
	"github.com/jhoicas/tpv-panel-api/internal/application/usecase"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
	infracache "github.com/jhoicas/tpv-panel-api/internal/infrastructure/cache"
	"github.com/jhoicas/tpv-panel-api/internal/infrastructure/knowledgebase"
	infrapdf "github.com/jhoicas/tpv-panel-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tpv-panel-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tpv-panel-api/internal/interfaces/http"
	"github.com/jhoicas/tpv-panel-api/pkg/config"
	"github.com/jhoicas/tpv-panel-api/pkg/logger"
)

// @title                       TPV Panel API
// @version                     1.0
// @description                 Cabecera, barra lateral, dashboard y centro de ayuda del panel TPV.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)

	// Caché de perfiles opcional: sin REDIS_ADDR se lee siempre de PostgreSQL.
	var profileCache repository.ProfileCache
	if cfg.Redis.Enabled() {
		rdb, err := infracache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché de perfiles desactivada")
		} else {
			defer rdb.Close()
			profileCache = infracache.NewProfileCache(rdb, cfg.Redis.ProfileTTL)
		}
	}

	kb, err := knowledgebase.Load(cfg.Help.KnowledgeBasePath, cfg.Help.DefaultCategory)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Help.KnowledgeBasePath).Msg("base de conocimiento")
	}
	log.Info().Int("categories", len(kb.Categories())).Msg("centro de ayuda cargado")

	moduleSvc := usecase.NewModuleService(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(userRepo, profileRepo, profileCache, log.Component("profile"))
	navigationUC := usecase.NewNavigationUseCase(moduleSvc)
	helpUC := usecase.NewHelpUseCase(kb, cfg.Help.DefaultCategory, infrapdf.NewHelpGuideRenderer(cfg.App.Name))
	dashboardUC := appanalytics.NewDashboardUseCase(salesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TPV Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		NavigationUC:  navigationUC,
		HelpUC:        helpUC,
		DashboardUC:   dashboardUC,
		ModuleService: moduleSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
