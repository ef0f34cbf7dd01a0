package visitas

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}

// SeedSnapshot devuelve el dataset inicial del store de visitas, usado
// cuando no existe snapshot persistido (primer arranque o reset con cmd/seed).
func SeedSnapshot() Snapshot {
	return Snapshot{
		NextSeq: 4,
		Visitas: []entity.Visita{
			{
				ID: "VIS-001", OrdenID: "ORD-2026-001", Tipo: "Mantenimiento Preventivo",
				ClienteID: "CLI-001", ClienteNombre: "Industrias Acme S.A.",
				ClienteDireccion: "Av. Industrial 1234, Santiago", ClienteTelefono: "+56 2 1234 5678",
				ClienteEmail: "contacto@acme.cl",
				TecnicoID:    "TEC-001", TecnicoNombre: "Juan Técnico",
				Fecha: "2026-02-15", HoraEntrada: "09:00", HoraSalida: "12:30",
				Diagnostico: "Se realizó mantenimiento preventivo según protocolo. Equipo en buen estado.",
				Inventario: []entity.LineaInventario{
					{Item: "Filtro de aire", Cantidad: dec(2), PrecioUnit: dec(15000), Total: dec(30000)},
					{Item: "Aceite lubricante 5L", Cantidad: dec(1), PrecioUnit: dec(25000), Total: dec(25000)},
				},
				Subtotal: dec(55000), IVA: dec(10450), Total: dec(65450),
				Estado: entity.VisitaCompletada, CreatedAt: fecha("2026-02-15T09:00:00"),
			},
			{
				ID: "VIS-002", OrdenID: "ORD-2026-002", Tipo: "Reparación",
				ClienteID: "CLI-002", ClienteNombre: "Metalúrgica del Norte",
				ClienteDireccion: "Parque Industrial Norte 567", ClienteTelefono: "+56 2 9876 5432",
				ClienteEmail: "servicio@metalurgica.cl",
				TecnicoID:    "TEC-002", TecnicoNombre: "Pedro Martínez",
				Fecha: "2026-02-14", HoraEntrada: "14:00", HoraSalida: "17:45",
				Diagnostico: "Reparación de válvula con fuga. Se reemplazó empaquetadura.",
				Inventario: []entity.LineaInventario{
					{Item: "Empaquetadura válvula", Cantidad: dec(1), PrecioUnit: dec(45000), Total: dec(45000)},
					{Item: "Mano de obra (hrs)", Cantidad: dec(3), PrecioUnit: dec(20000), Total: dec(60000)},
				},
				Subtotal: dec(105000), IVA: dec(19950), Total: dec(124950),
				FirmaCliente: "data:image/png;base64,mock", FirmaTecnico: "data:image/png;base64,mock",
				Estado: entity.VisitaCompletada, CreatedAt: fecha("2026-02-14T14:00:00"),
			},
			{
				ID: "VIS-003", OrdenID: "ORD-2026-003", Tipo: "Inspección",
				ClienteID: "CLI-003", ClienteNombre: "Química Industrial",
				ClienteDireccion: "Zona Franca 890", ClienteTelefono: "+56 2 5555 1234",
				ClienteEmail: "operaciones@quimica.cl",
				TecnicoID:    "TEC-001", TecnicoNombre: "Juan Técnico",
				Fecha: "2026-02-13", HoraEntrada: "10:00", HoraSalida: "11:30",
				Diagnostico: "Inspección de rutina. Sin observaciones.",
				Inventario:  []entity.LineaInventario{},
				Subtotal:    decimal.Zero, IVA: decimal.Zero, Total: decimal.Zero,
				FirmaCliente: "data:image/png;base64,mock", FirmaTecnico: "data:image/png;base64,mock",
				Estado: entity.VisitaCompletada, CreatedAt: fecha("2026-02-13T10:00:00"),
			},
		},
		Tecnicos: []entity.Tecnico{
			{ID: "TEC-001", Nombre: "Juan Técnico", Especialidad: "Mantenimiento General"},
			{ID: "TEC-002", Nombre: "Pedro Martínez", Especialidad: "Reparaciones"},
			{ID: "TEC-003", Nombre: "Ana García", Especialidad: "Instalaciones"},
		},
		Clientes: []entity.Cliente{
			{ID: "CLI-001", Nombre: "Industrias Acme S.A.", Direccion: "Av. Industrial 1234, Santiago", Telefono: "+56 2 1234 5678", Email: "contacto@acme.cl"},
			{ID: "CLI-002", Nombre: "Metalúrgica del Norte", Direccion: "Parque Industrial Norte 567", Telefono: "+56 2 9876 5432", Email: "servicio@metalurgica.cl"},
			{ID: "CLI-003", Nombre: "Química Industrial", Direccion: "Zona Franca 890", Telefono: "+56 2 5555 1234", Email: "operaciones@quimica.cl"},
			{ID: "CLI-004", Nombre: "Transportes Unidos", Direccion: "Terminal de Carga 123", Telefono: "+56 2 7777 8888", Email: "logistica@transportes.cl"},
			{ID: "CLI-005", Nombre: "Alimentos del Sur", Direccion: "Planta Sur Km 45", Telefono: "+56 2 3333 4444", Email: "planta@alimentos.cl"},
		},
		Tipos: []string{
			"Mantenimiento Preventivo",
			"Mantenimiento Correctivo",
			"Reparación",
			"Inspección",
			"Instalación",
			"Certificación",
		},
	}
}
