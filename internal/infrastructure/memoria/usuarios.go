// Package memoria implementa el directorio de credenciales en memoria con
// las identidades semilla. El contrato del puerto permite sustituirlo por
// un backend real sin tocar el store de sesión.
package memoria

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

type semilla struct {
	id, email, password, nombre, role, avatar string
}

var semillas = []semilla{
	{"1", "admin@servicio.com", "admin123", "Carlos Administrador", entity.RoleAdmin, "CA"},
	{"2", "tecnico@servicio.com", "tecnico123", "Juan Técnico", entity.RoleTecnico, "JT"},
	{"3", "supervisor@servicio.com", "super123", "María Supervisora", entity.RoleSupervisor, "MS"},
}

// UsuarioDirectory directorio de usuarios en memoria con passwords
// hasheados con bcrypt. Inmutable después de construido.
type UsuarioDirectory struct {
	porEmail map[string]*entity.Usuario
}

// NewUsuarioDirectory construye el directorio con las tres identidades
// semilla (admin, tecnico, supervisor).
func NewUsuarioDirectory() (*UsuarioDirectory, error) {
	d := &UsuarioDirectory{porEmail: make(map[string]*entity.Usuario, len(semillas))}
	for _, s := range semillas {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear credencial semilla %s: %w", s.email, err)
		}
		u := &entity.Usuario{
			ID:           s.id,
			Email:        s.email,
			PasswordHash: string(hash),
			Nombre:       s.nombre,
			Role:         s.role,
			Avatar:       s.avatar,
		}
		d.porEmail[u.Email] = u
	}
	return d, nil
}

// FindByEmail busca por coincidencia exacta (sensible a mayúsculas).
// Devuelve (nil, nil) si el email no existe.
func (d *UsuarioDirectory) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := d.porEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}
