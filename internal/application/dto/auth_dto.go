package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse identidad autenticada, sin credenciales.
type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// LoginResponse salida con el token de sesión y el usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// SesionResponse estado actual de la sesión del proceso.
type SesionResponse struct {
	Autenticada bool             `json:"autenticada"`
	Usuario     *UsuarioResponse `json:"usuario,omitempty"`
}
