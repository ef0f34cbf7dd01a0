// seed restablece el estado persistido de los stores al dataset semilla
// (cinco citas, tres tareas pendientes, tres visitas y los catálogos) y
// limpia la sesión guardada.
//
// Uso: go run ./cmd/seed
// Respeta la misma configuración que cmd/api (SNAPSHOT_DIR o DATABASE_URL).
package main

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/ServiCampo-api/internal/application/citas"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain/repository"
	"github.com/jhoicas/ServiCampo-api/internal/infrastructure/postgres"
	infrasnapshot "github.com/jhoicas/ServiCampo-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/ServiCampo-api/pkg/config"
	"github.com/jhoicas/ServiCampo-api/pkg/logger"
)

// snapshotDeleter lo cumplen ambas implementaciones del repositorio.
type snapshotDeleter interface {
	repository.SnapshotRepository
	Delete(ctx context.Context, clave string) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()

	var snapshots snapshotDeleter
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
	} else {
		repo, err := infrasnapshot.NewFileRepository(cfg.Store.SnapshotDir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de snapshots")
		}
		snapshots = repo
	}

	guardar := func(clave string, snap any) {
		datos, err := json.Marshal(snap)
		if err != nil {
			log.Fatal().Err(err).Str("clave", clave).Msg("serializar semilla")
		}
		if err := snapshots.Save(ctx, clave, datos); err != nil {
			log.Fatal().Err(err).Str("clave", clave).Msg("guardar semilla")
		}
		log.Info().Str("clave", clave).Msg("semilla escrita")
	}

	guardar(repository.SnapshotCitas, citas.SeedSnapshot())
	guardar(repository.SnapshotVisitas, visitas.SeedSnapshot())

	if err := snapshots.Delete(ctx, repository.SnapshotAuth); err != nil {
		log.Fatal().Err(err).Msg("limpiar sesión persistida")
	}
	log.Info().Msg("sesión persistida limpia; seed completo")
}
