// Package snapshot implementa el colaborador de persistencia clave-valor
// sobre archivos JSON: un archivo por clave dentro de un directorio.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository guarda cada clave como <dir>/<clave>.json. La escritura es
// atómica (archivo temporal + rename) para no dejar snapshots a medias si el
// proceso muere durante el guardado.
type FileRepository struct {
	dir string
}

// NewFileRepository crea el directorio si no existe.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de snapshots: %w", err)
	}
	return &FileRepository{dir: dir}, nil
}

// Save escribe los datos bajo la clave.
func (r *FileRepository) Save(_ context.Context, clave string, datos []byte) error {
	destino := r.ruta(clave)
	tmp, err := os.CreateTemp(r.dir, clave+"-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", clave, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(datos); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot %s: %w", clave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", clave, err)
	}
	if err := os.Rename(tmp.Name(), destino); err != nil {
		return fmt.Errorf("snapshot %s: %w", clave, err)
	}
	return nil
}

// Load lee los datos de la clave; (nil, false, nil) si nunca se guardó.
func (r *FileRepository) Load(_ context.Context, clave string) ([]byte, bool, error) {
	datos, err := os.ReadFile(r.ruta(clave))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("snapshot %s: %w", clave, err)
	}
	return datos, true, nil
}

// Delete elimina la clave; borrar una clave inexistente no es un error.
func (r *FileRepository) Delete(_ context.Context, clave string) error {
	err := os.Remove(r.ruta(clave))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("snapshot %s: %w", clave, err)
	}
	return nil
}

func (r *FileRepository) ruta(clave string) string {
	return filepath.Join(r.dir, clave+".json")
}
