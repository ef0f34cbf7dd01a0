package dto

import "github.com/shopspring/decimal"

// LineaInventarioRequest línea facturable de la visita. El total de línea y
// los totales de la visita se derivan en el servidor, nunca se aceptan del
// cliente.
type LineaInventarioRequest struct {
	Item       string          `json:"item" validate:"required"`
	Cantidad   decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnit decimal.Decimal `json:"precioUnit" validate:"required"`
}

// CreateVisitaRequest entrada para registrar una visita terminada.
type CreateVisitaRequest struct {
	Tipo             string                   `json:"tipo" validate:"required"`
	ClienteID        string                   `json:"clienteId" validate:"required"`
	ClienteNombre    string                   `json:"clienteNombre" validate:"required"`
	ClienteDireccion string                   `json:"clienteDireccion"`
	ClienteTelefono  string                   `json:"clienteTelefono"`
	ClienteEmail     string                   `json:"clienteEmail"`
	TecnicoID        string                   `json:"tecnicoId" validate:"required"`
	TecnicoNombre    string                   `json:"tecnicoNombre" validate:"required"`
	Fecha            string                   `json:"fecha" validate:"required"`
	HoraEntrada      string                   `json:"horaEntrada"`
	HoraSalida       string                   `json:"horaSalida"`
	Diagnostico      string                   `json:"diagnostico"`
	Inventario       []LineaInventarioRequest `json:"inventario"`
	FirmaCliente     string                   `json:"firmaCliente"`
	FirmaTecnico     string                   `json:"firmaTecnico"`
}

// UpdateVisitaRequest campos a fusionar sobre una visita existente (correcciones).
// Si Inventario viene presente, los totales se recalculan.
type UpdateVisitaRequest struct {
	Tipo             *string                   `json:"tipo"`
	ClienteID        *string                   `json:"clienteId"`
	ClienteNombre    *string                   `json:"clienteNombre"`
	ClienteDireccion *string                   `json:"clienteDireccion"`
	ClienteTelefono  *string                   `json:"clienteTelefono"`
	ClienteEmail     *string                   `json:"clienteEmail"`
	TecnicoID        *string                   `json:"tecnicoId"`
	TecnicoNombre    *string                   `json:"tecnicoNombre"`
	Fecha            *string                   `json:"fecha"`
	HoraEntrada      *string                   `json:"horaEntrada"`
	HoraSalida       *string                   `json:"horaSalida"`
	Diagnostico      *string                   `json:"diagnostico"`
	Inventario       *[]LineaInventarioRequest `json:"inventario"`
	FirmaCliente     *string                   `json:"firmaCliente"`
	FirmaTecnico     *string                   `json:"firmaTecnico"`
}
