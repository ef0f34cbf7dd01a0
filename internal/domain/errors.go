package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrPersistencia          = errors.New("fallo al persistir el estado")
)
