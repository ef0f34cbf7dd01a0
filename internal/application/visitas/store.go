// Package visitas implementa el store de visitas terminadas: el registro con
// detalle facturable, los totales derivados y los catálogos de apoyo
// (técnicos, clientes, tipos de inspección).
package visitas

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/domain"
	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
	"github.com/jhoicas/ServiCampo-api/internal/domain/repository"
)

// Snapshot es la forma persistida del store (clave "visitas"). NextSeq
// alimenta tanto el ID de visita (VIS-NNN) como el número de orden
// (ORD-<año>-NNN) y es monotónico: independiente del tamaño de la colección.
type Snapshot struct {
	Visitas  []entity.Visita  `json:"visitas"`
	Tecnicos []entity.Tecnico `json:"tecnicos"`
	Clientes []entity.Cliente `json:"clientes"`
	Tipos    []string         `json:"tiposInspeccion"`
	NextSeq  int              `json:"nextSeq"`
}

// Store posee en exclusiva la colección de visitas y sus líneas de
// inventario embebidas. Las visitas nacen en estado terminal completada;
// este sistema no modela visitas en curso.
type Store struct {
	mu        sync.Mutex
	snapshots repository.SnapshotRepository
	visitas   []entity.Visita
	tecnicos  []entity.Tecnico
	clientes  []entity.Cliente
	tipos     []string
	nextSeq   int
	now       func() time.Time
}

// NewStore construye el store restaurando el snapshot persistido; si no
// existe, parte del dataset semilla.
func NewStore(ctx context.Context, snapshots repository.SnapshotRepository) (*Store, error) {
	s := &Store{snapshots: snapshots, now: time.Now}
	datos, ok, err := snapshots.Load(ctx, repository.SnapshotVisitas)
	if err != nil {
		return nil, fmt.Errorf("restaurar visitas: %w", err)
	}
	if ok {
		var snap Snapshot
		if err := json.Unmarshal(datos, &snap); err != nil {
			return nil, fmt.Errorf("snapshot de visitas corrupto: %w", err)
		}
		s.restore(snap)
	} else {
		s.restore(SeedSnapshot())
	}
	return s, nil
}

func (s *Store) restore(snap Snapshot) {
	s.visitas = snap.Visitas
	s.tecnicos = snap.Tecnicos
	s.clientes = snap.Clientes
	s.tipos = snap.Tipos
	s.nextSeq = snap.NextSeq
	if s.nextSeq <= len(s.visitas) {
		s.nextSeq = len(s.visitas) + 1
	}
}

// ListCompletadas devuelve todas las visitas en orden de inserción. El store
// solo contiene visitas completadas.
func (s *Store) ListCompletadas() []entity.Visita {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Visita(nil), s.visitas...)
}

// GetByID devuelve la visita o ErrNotFound.
func (s *Store) GetByID(id string) (*entity.Visita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.visitas {
		if v.ID == id {
			visita := v
			return &visita, nil
		}
	}
	return nil, domain.ErrNotFound
}

// NextOrdenID devuelve el número de orden que recibiría la próxima visita:
// ORD-<año actual>-NNN.
func (s *Store) NextOrdenID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordenIDLocked()
}

func (s *Store) ordenIDLocked() string {
	return fmt.Sprintf("ORD-%d-%03d", s.now().Year(), s.nextSeq)
}

// Create registra una visita terminada: asigna ID y número de orden, fuerza
// estado completada, estampa createdAt y deriva los totales en el servidor
// (total de línea, subtotal, IVA 19% y total), ignorando cualquier total
// que venga del caller.
func (s *Store) Create(ctx context.Context, in dto.CreateVisitaRequest) (*entity.Visita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visita := entity.Visita{
		ID:               fmt.Sprintf("VIS-%03d", s.nextSeq),
		OrdenID:          s.ordenIDLocked(),
		Tipo:             in.Tipo,
		ClienteID:        in.ClienteID,
		ClienteNombre:    in.ClienteNombre,
		ClienteDireccion: in.ClienteDireccion,
		ClienteTelefono:  in.ClienteTelefono,
		ClienteEmail:     in.ClienteEmail,
		TecnicoID:        in.TecnicoID,
		TecnicoNombre:    in.TecnicoNombre,
		Fecha:            in.Fecha,
		HoraEntrada:      in.HoraEntrada,
		HoraSalida:       in.HoraSalida,
		Diagnostico:      in.Diagnostico,
		Inventario:       toLineas(in.Inventario),
		FirmaCliente:     in.FirmaCliente,
		FirmaTecnico:     in.FirmaTecnico,
		Estado:           entity.VisitaCompletada,
		CreatedAt:        s.now(),
	}
	visita.CalcularTotales()
	s.nextSeq++
	s.visitas = append(s.visitas, visita)

	result := visita
	if err := s.persist(ctx); err != nil {
		return &result, err
	}
	return &result, nil
}

// Update fusiona correcciones sobre la visita. Si viene inventario nuevo,
// los totales se recalculan; el estado permanece completada.
func (s *Store) Update(ctx context.Context, id string, in dto.UpdateVisitaRequest) (*entity.Visita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.visitas {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	v := &s.visitas[idx]
	aplicar(&v.Tipo, in.Tipo)
	aplicar(&v.ClienteID, in.ClienteID)
	aplicar(&v.ClienteNombre, in.ClienteNombre)
	aplicar(&v.ClienteDireccion, in.ClienteDireccion)
	aplicar(&v.ClienteTelefono, in.ClienteTelefono)
	aplicar(&v.ClienteEmail, in.ClienteEmail)
	aplicar(&v.TecnicoID, in.TecnicoID)
	aplicar(&v.TecnicoNombre, in.TecnicoNombre)
	aplicar(&v.Fecha, in.Fecha)
	aplicar(&v.HoraEntrada, in.HoraEntrada)
	aplicar(&v.HoraSalida, in.HoraSalida)
	aplicar(&v.Diagnostico, in.Diagnostico)
	aplicar(&v.FirmaCliente, in.FirmaCliente)
	aplicar(&v.FirmaTecnico, in.FirmaTecnico)
	if in.Inventario != nil {
		v.Inventario = toLineas(*in.Inventario)
		v.CalcularTotales()
	}

	visita := *v
	if err := s.persist(ctx); err != nil {
		return &visita, err
	}
	return &visita, nil
}

// Tecnicos devuelve el catálogo de técnicos.
func (s *Store) Tecnicos() []entity.Tecnico {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Tecnico(nil), s.tecnicos...)
}

// Clientes devuelve el catálogo de clientes.
func (s *Store) Clientes() []entity.Cliente {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Cliente(nil), s.clientes...)
}

// TiposInspeccion devuelve los tipos de inspección disponibles.
func (s *Store) TiposInspeccion() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tipos...)
}

// GetTecnicoByID resuelve una referencia de técnico, o ErrNotFound.
func (s *Store) GetTecnicoByID(id string) (*entity.Tecnico, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tecnicos {
		if t.ID == id {
			tec := t
			return &tec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetClienteByID resuelve una referencia de cliente, o ErrNotFound.
func (s *Store) GetClienteByID(id string) (*entity.Cliente, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clientes {
		if c.ID == id {
			cli := c
			return &cli, nil
		}
	}
	return nil, domain.ErrNotFound
}

func toLineas(in []dto.LineaInventarioRequest) []entity.LineaInventario {
	lineas := make([]entity.LineaInventario, len(in))
	for i, l := range in {
		lineas[i] = entity.LineaInventario{Item: l.Item, Cantidad: l.Cantidad, PrecioUnit: l.PrecioUnit}
	}
	return lineas
}

func aplicar(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// persist guarda el snapshot; el caller debe tener el lock.
func (s *Store) persist(ctx context.Context) error {
	snap := Snapshot{Visitas: s.visitas, Tecnicos: s.tecnicos, Clientes: s.clientes, Tipos: s.tipos, NextSeq: s.nextSeq}
	datos, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	if err := s.snapshots.Save(ctx, repository.SnapshotVisitas, datos); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	return nil
}
