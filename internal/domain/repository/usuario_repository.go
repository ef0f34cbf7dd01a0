package repository

import "github.com/jhoicas/ServiCampo-api/internal/domain/entity"

// UsuarioRepository define el directorio de credenciales (DIP). La
// comparación de email es exacta y sensible a mayúsculas.
type UsuarioRepository interface {
	// FindByEmail devuelve (nil, nil) si el email no existe.
	FindByEmail(email string) (*entity.Usuario, error)
}
