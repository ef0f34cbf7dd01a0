package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ServiCampo-api/internal/application/auth"
	"github.com/jhoicas/ServiCampo-api/internal/application/citas"
	"github.com/jhoicas/ServiCampo-api/internal/application/navigation"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain/repository"
	"github.com/jhoicas/ServiCampo-api/internal/infrastructure/memoria"
	"github.com/jhoicas/ServiCampo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ServiCampo-api/internal/infrastructure/postgres"
	infrasnapshot "github.com/jhoicas/ServiCampo-api/internal/infrastructure/snapshot"
	httpRouter "github.com/jhoicas/ServiCampo-api/internal/interfaces/http"
	"github.com/jhoicas/ServiCampo-api/pkg/config"
	"github.com/jhoicas/ServiCampo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Colaborador de persistencia: PostgreSQL si hay DATABASE_URL, si no archivos JSON.
	var snapshots repository.SnapshotRepository
	if cfg.Store.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de snapshots")
		}
		snapshots = repo
		log.Info().Msg("snapshots en PostgreSQL")
	} else {
		repo, err := infrasnapshot.NewFileRepository(cfg.Store.SnapshotDir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de snapshots")
		}
		snapshots = repo
		log.Info().Str("dir", cfg.Store.SnapshotDir).Msg("snapshots en archivos")
	}

	usuarios, err := memoria.NewUsuarioDirectory()
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de usuarios")
	}

	sesiones, err := auth.NewSessionStore(ctx, usuarios, snapshots, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("store de sesión")
	}
	citasStore, err := citas.NewStore(ctx, snapshots)
	if err != nil {
		log.Fatal().Err(err).Msg("store de citas")
	}
	visitasStore, err := visitas.NewStore(ctx, snapshots)
	if err != nil {
		log.Fatal().Err(err).Msg("store de visitas")
	}

	guard := navigation.New()
	actas := pdf.NewActaVisitaGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if sw := httpRouter.SwaggerMiddleware("./docs/swagger.json"); sw != nil {
		app.Use(sw)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sesiones:  sesiones,
		Guard:     guard,
		Citas:     citasStore,
		Visitas:   visitasStore,
		Actas:     actas,
		JWTSecret: cfg.JWT.Secret,
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
