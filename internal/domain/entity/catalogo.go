package entity

// Tecnico entrada del catálogo de técnicos de servicio.
type Tecnico struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
}

// Cliente entrada del catálogo de clientes. Las visitas guardan una copia
// (snapshot) de estos campos, no una referencia viva.
type Cliente struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}
