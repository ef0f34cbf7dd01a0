package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository implementa repository.SnapshotRepository sobre una
// tabla clave-valor. Cada store guarda su estado completo como JSONB bajo
// su propia clave.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el repositorio.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// EnsureSchema crea la tabla de snapshots si no existe.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			clave       TEXT PRIMARY KEY,
			datos       JSONB NOT NULL,
			actualizado TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla snapshots: %w", err)
	}
	return nil
}

// Save inserta o reemplaza el snapshot de la clave.
func (r *SnapshotRepository) Save(ctx context.Context, clave string, datos []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO snapshots (clave, datos, actualizado)
		VALUES ($1, $2, now())
		ON CONFLICT (clave) DO UPDATE
		SET datos = EXCLUDED.datos, actualizado = now()`,
		clave, datos)
	if err != nil {
		return fmt.Errorf("guardar snapshot %s: %w", clave, err)
	}
	return nil
}

// Load devuelve el snapshot de la clave; (nil, false, nil) si no existe.
func (r *SnapshotRepository) Load(ctx context.Context, clave string) ([]byte, bool, error) {
	var datos []byte
	err := r.pool.QueryRow(ctx, `SELECT datos FROM snapshots WHERE clave = $1`, clave).Scan(&datos)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer snapshot %s: %w", clave, err)
	}
	return datos, true, nil
}

// Delete elimina el snapshot de la clave; inexistente no es error.
func (r *SnapshotRepository) Delete(ctx context.Context, clave string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM snapshots WHERE clave = $1`, clave); err != nil {
		return fmt.Errorf("eliminar snapshot %s: %w", clave, err)
	}
	return nil
}
