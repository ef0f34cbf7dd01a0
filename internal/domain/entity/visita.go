package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VisitaCompletada es el único estado que maneja este sistema: las visitas
// se registran solo una vez terminadas.
const VisitaCompletada = "completada"

// TasaIVA aplicada sobre el subtotal del inventario (19%).
var TasaIVA = decimal.NewFromInt(19).Div(decimal.NewFromInt(100))

// LineaInventario es una línea de repuestos/servicios de la visita. Vive
// exclusivamente dentro de su Visita, sin identidad propia.
type LineaInventario struct {
	Item       string          `json:"item"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	PrecioUnit decimal.Decimal `json:"precioUnit"`
	Total      decimal.Decimal `json:"total"` // cantidad × precioUnit
}

// Visita es el registro de una visita de servicio terminada, con su
// detalle facturable. Invariantes: subtotal = Σ líneas.Total y
// total = subtotal + iva.
type Visita struct {
	ID               string            `json:"id"`      // formato VIS-NNN
	OrdenID          string            `json:"ordenId"` // formato ORD-<año>-NNN
	Tipo             string            `json:"tipo"`
	ClienteID        string            `json:"clienteId"`
	ClienteNombre    string            `json:"clienteNombre"`
	ClienteDireccion string            `json:"clienteDireccion"`
	ClienteTelefono  string            `json:"clienteTelefono"`
	ClienteEmail     string            `json:"clienteEmail"`
	TecnicoID        string            `json:"tecnicoId"`
	TecnicoNombre    string            `json:"tecnicoNombre"`
	Fecha            string            `json:"fecha"` // YYYY-MM-DD
	HoraEntrada      string            `json:"horaEntrada"`
	HoraSalida       string            `json:"horaSalida"`
	Diagnostico      string            `json:"diagnostico"`
	Inventario       []LineaInventario `json:"inventario"`
	Subtotal         decimal.Decimal   `json:"subtotal"`
	IVA              decimal.Decimal   `json:"iva"`
	Total            decimal.Decimal   `json:"total"`
	FirmaCliente     string            `json:"firmaCliente,omitempty"` // data URI PNG
	FirmaTecnico     string            `json:"firmaTecnico,omitempty"`
	Estado           string            `json:"estado"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// CalcularTotales deriva Total de cada línea, Subtotal, IVA (19%) y Total
// de la visita a partir de cantidades y precios unitarios. Redondea a peso.
func (v *Visita) CalcularTotales() {
	subtotal := decimal.Zero
	for i := range v.Inventario {
		linea := &v.Inventario[i]
		linea.Total = linea.Cantidad.Mul(linea.PrecioUnit)
		subtotal = subtotal.Add(linea.Total)
	}
	v.Subtotal = subtotal
	v.IVA = subtotal.Mul(TasaIVA).Round(0)
	v.Total = v.Subtotal.Add(v.IVA)
}
