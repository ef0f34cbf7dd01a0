package dto

// CreateCitaRequest entrada para agendar una cita. Estado es opcional y por
// defecto queda en "pendiente".
type CreateCitaRequest struct {
	Tipo          string `json:"tipo" validate:"required"`
	Asunto        string `json:"asunto" validate:"required"`
	ClienteID     string `json:"clienteId" validate:"required"`
	ClienteNombre string `json:"clienteNombre" validate:"required"`
	TecnicoID     string `json:"tecnicoId" validate:"required"`
	TecnicoNombre string `json:"tecnicoNombre" validate:"required"`
	TanqueID      string `json:"tanqueId"`
	Fecha         string `json:"fecha" validate:"required"`
	Hora          string `json:"hora" validate:"required"`
	Estado        string `json:"estado" validate:"omitempty,oneof=pendiente confirmada completada cancelada"`
	Observaciones string `json:"observaciones"`
}

// UpdateCitaRequest campos a fusionar sobre una cita existente. Los punteros
// nil indican "sin cambio" (merge superficial).
type UpdateCitaRequest struct {
	Tipo          *string `json:"tipo"`
	Asunto        *string `json:"asunto"`
	ClienteID     *string `json:"clienteId"`
	ClienteNombre *string `json:"clienteNombre"`
	TecnicoID     *string `json:"tecnicoId"`
	TecnicoNombre *string `json:"tecnicoNombre"`
	TanqueID      *string `json:"tanqueId"`
	Fecha         *string `json:"fecha"`
	Hora          *string `json:"hora"`
	Estado        *string `json:"estado"`
	Observaciones *string `json:"observaciones"`
}

// PromoverTareaRequest datos de agenda para convertir una tarea pendiente en cita.
type PromoverTareaRequest struct {
	Fecha         string `json:"fecha" validate:"required"`
	Hora          string `json:"hora" validate:"required"`
	TecnicoID     string `json:"tecnicoId" validate:"required"`
	TecnicoNombre string `json:"tecnicoNombre" validate:"required"`
}
