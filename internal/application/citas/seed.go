package citas

import "github.com/jhoicas/ServiCampo-api/internal/domain/entity"

// SeedSnapshot devuelve el dataset inicial del store de agenda, usado cuando
// no existe snapshot persistido (primer arranque o reset con cmd/seed).
func SeedSnapshot() Snapshot {
	return Snapshot{
		NextSeq: 6,
		Citas: []entity.Cita{
			{
				ID: "CIT-001", Tipo: "Mantenimiento Preventivo", Asunto: "Revisión anual de tanque principal",
				ClienteID: "CLI-001", ClienteNombre: "Industrias Acme S.A.",
				TecnicoID: "TEC-001", TecnicoNombre: "Juan Técnico", TanqueID: "TNK-001",
				Fecha: "2026-02-18", Hora: "09:00", Estado: entity.CitaPendiente,
				Observaciones: "Cliente solicita inspección completa",
			},
			{
				ID: "CIT-002", Tipo: "Reparación", Asunto: "Fuga detectada en válvula",
				ClienteID: "CLI-002", ClienteNombre: "Metalúrgica del Norte",
				TecnicoID: "TEC-002", TecnicoNombre: "Pedro Martínez", TanqueID: "TNK-005",
				Fecha: "2026-02-19", Hora: "14:00", Estado: entity.CitaConfirmada,
				Observaciones: "Urgente - producción detenida",
			},
			{
				ID: "CIT-003", Tipo: "Inspección", Asunto: "Certificación anual",
				ClienteID: "CLI-003", ClienteNombre: "Química Industrial",
				TecnicoID: "TEC-001", TecnicoNombre: "Juan Técnico",
				Fecha: "2026-02-20", Hora: "10:30", Estado: entity.CitaPendiente,
			},
			{
				ID: "CIT-004", Tipo: "Instalación", Asunto: "Instalación de nuevo medidor",
				ClienteID: "CLI-004", ClienteNombre: "Transportes Unidos",
				TecnicoID: "TEC-003", TecnicoNombre: "Ana García", TanqueID: "TNK-012",
				Fecha: "2026-02-17", Hora: "08:00", Estado: entity.CitaCompletada,
				Observaciones: "Equipo entregado al cliente",
			},
			{
				ID: "CIT-005", Tipo: "Mantenimiento Correctivo", Asunto: "Cambio de filtros",
				ClienteID: "CLI-005", ClienteNombre: "Alimentos del Sur",
				TecnicoID: "TEC-002", TecnicoNombre: "Pedro Martínez", TanqueID: "TNK-008",
				Fecha: "2026-02-21", Hora: "11:00", Estado: entity.CitaCancelada,
				Observaciones: "Cliente reprogramó para siguiente semana",
			},
		},
		Tareas: []entity.TareaPendiente{
			{ID: "TASK-001", Tipo: "Mantenimiento", Titulo: "Revisión bomba hidráulica", ClienteNombre: "Petrolera Central", Prioridad: "alta"},
			{ID: "TASK-002", Tipo: "Inspección", Titulo: "Inspección semestral", ClienteNombre: "Gas Natural SA", Prioridad: "media"},
			{ID: "TASK-003", Tipo: "Reparación", Titulo: "Reemplazo de juntas", ClienteNombre: "Industria Pesada", Prioridad: "baja"},
		},
	}
}
