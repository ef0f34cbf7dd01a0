package entity

// Roles válidos para Usuario. Conjunto cerrado.
const (
	RoleAdmin      = "admin"
	RoleTecnico    = "tecnico"
	RoleSupervisor = "supervisor"
)

// Roles lista todos los roles conocidos.
func Roles() []string {
	return []string{RoleAdmin, RoleTecnico, RoleSupervisor}
}

// Usuario representa una identidad del directorio de credenciales.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca en texto plano
	Nombre       string
	Role         string // admin, tecnico, supervisor
	Avatar       string // iniciales para la UI
}
