package entity

// Estados de una Cita. Las transiciones son libres: un operador puede mover
// una cita a cualquier estado desde cualquier estado.
const (
	CitaPendiente  = "pendiente"
	CitaConfirmada = "confirmada"
	CitaCompletada = "completada"
	CitaCancelada  = "cancelada"
)

// EstadoCitaValido informa si s pertenece al conjunto cerrado de estados.
func EstadoCitaValido(s string) bool {
	switch s {
	case CitaPendiente, CitaConfirmada, CitaCompletada, CitaCancelada:
		return true
	}
	return false
}

// Cita representa un compromiso de servicio agendado, previo a la visita.
type Cita struct {
	ID            string `json:"id"` // formato CIT-NNN
	Tipo          string `json:"tipo"`
	Asunto        string `json:"asunto"`
	ClienteID     string `json:"clienteId"`
	ClienteNombre string `json:"clienteNombre"`
	TecnicoID     string `json:"tecnicoId"`
	TecnicoNombre string `json:"tecnicoNombre"`
	TanqueID      string `json:"tanqueId,omitempty"` // opcional
	Fecha         string `json:"fecha"`              // YYYY-MM-DD
	Hora          string `json:"hora"`               // HH:MM
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones"`
}

// TareaPendiente es trabajo sin agendar. Se consume exactamente una vez al
// promoverla a Cita: la promoción la elimina de su colección.
type TareaPendiente struct {
	ID            string `json:"id"` // formato TASK-NNN
	Tipo          string `json:"tipo"`
	Titulo        string `json:"titulo"`
	ClienteNombre string `json:"clienteNombre"`
	Prioridad     string `json:"prioridad"` // alta, media, baja
}
