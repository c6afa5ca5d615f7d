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

	"github.com/jhoicas/catalogo-api/internal/application/loader"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	infracache "github.com/jhoicas/catalogo-api/internal/infrastructure/cache"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	componentRepo := postgres.NewComponentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewCategoryItemRepository(pool)
	customizationRepo := postgres.NewCustomizationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de menús: Redis si está configurado, no-op si no.
	var menuCache usecase.MenuCache = infracache.NoopMenuCache{}
	if cfg.Redis.Addr != "" {
		redisCache, err := infracache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, menús sin caché")
		} else {
			defer redisCache.Close()
			menuCache = redisCache
		}
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, itemRepo, menuCache)
	componentUC := usecase.NewComponentUseCase(componentRepo, menuCache)
	itemUC := usecase.NewCategoryItemUseCase(itemRepo, categoryRepo, componentRepo, customizationRepo, menuCache)
	customizationUC := usecase.NewCustomizationUseCase(customizationRepo, itemRepo, componentRepo, menuCache)
	menuUC := usecase.NewMenuUseCase(categoryRepo, itemRepo, customizationRepo, menuCache, log)

	catalogueLoader := loader.New(txRunner, componentRepo, categoryRepo, itemRepo, customizationRepo, menuCache, log)
	adminUC := usecase.NewAdminUseCase(
		catalogueLoader, cfg.Seed.DataPath,
		componentRepo, categoryRepo, itemRepo, customizationRepo, menuCache,
	)

	// Carga inicial del catálogo de prueba (solo fuera de producción).
	// Un fallo aquí no tumba el servicio: la API arranca con lo que haya en la base.
	if cfg.Seed.LoadOnStartup && !cfg.App.IsProduction() {
		if res, err := catalogueLoader.LoadFile(ctx, cfg.Seed.DataPath); err != nil {
			log.Error().Err(err).Str("path", cfg.Seed.DataPath).Msg("carga inicial del catálogo")
		} else {
			log.Info().
				Int("components", res.Components).
				Int("categories", res.Categories).
				Int("items", res.Items).
				Int("customizations", res.Customizations).
				Int("skipped", res.Skipped).
				Msg("catálogo inicial cargado")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:      categoryUC,
		ComponentUC:     componentUC,
		CategoryItemUC:  itemUC,
		CustomizationUC: customizationUC,
		MenuUC:          menuUC,
		AdminUC:         adminUC,
		EnableAdmin:     !cfg.App.IsProduction(),
		JWTSecret:       cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
