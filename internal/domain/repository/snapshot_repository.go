package repository

import "context"

// Claves bajo las que cada store guarda su estado.
const (
	SnapshotAuth    = "auth"
	SnapshotCitas   = "citas"
	SnapshotVisitas = "visitas"
)

// SnapshotRepository define el puerto de persistencia clave-valor (DIP).
// Cada store serializa su estado completo bajo su propia clave después de
// cada mutación exitosa y lo restaura al construirse.
type SnapshotRepository interface {
	Save(ctx context.Context, clave string, datos []byte) error
	// Load devuelve (datos, true, nil) si la clave existe y (nil, false, nil)
	// si nunca se ha guardado.
	Load(ctx context.Context, clave string) ([]byte, bool, error)
}
