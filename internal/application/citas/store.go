// Package citas implementa el store de agenda: citas de servicio y tareas
// pendientes, con sus filtros y la promoción de tarea a cita.
package citas

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

// Snapshot es la forma persistida del store (clave "citas"). NextSeq es un
// contador monotónico independiente del tamaño de la colección: los borrados
// dejan huecos en la numeración pero nunca provocan colisiones de ID.
type Snapshot struct {
	Citas   []entity.Cita           `json:"citas"`
	Tareas  []entity.TareaPendiente `json:"tareasPendientes"`
	NextSeq int                     `json:"nextSeq"`
}

// Store posee en exclusiva las colecciones de citas y tareas pendientes.
// Cada operación corre completa bajo el lock; ningún componente externo
// muta las colecciones directamente.
type Store struct {
	mu        sync.Mutex
	snapshots repository.SnapshotRepository
	citas     []entity.Cita
	tareas    []entity.TareaPendiente
	nextSeq   int
}

// NewStore construye el store restaurando el snapshot persistido; si no
// existe, parte del dataset semilla.
func NewStore(ctx context.Context, snapshots repository.SnapshotRepository) (*Store, error) {
	s := &Store{snapshots: snapshots}
	datos, ok, err := snapshots.Load(ctx, repository.SnapshotCitas)
	if err != nil {
		return nil, fmt.Errorf("restaurar citas: %w", err)
	}
	if ok {
		var snap Snapshot
		if err := json.Unmarshal(datos, &snap); err != nil {
			return nil, fmt.Errorf("snapshot de citas corrupto: %w", err)
		}
		s.restore(snap)
	} else {
		s.restore(SeedSnapshot())
	}
	return s, nil
}

func (s *Store) restore(snap Snapshot) {
	s.citas = snap.Citas
	s.tareas = snap.Tareas
	s.nextSeq = snap.NextSeq
	if s.nextSeq <= len(s.citas) {
		s.nextSeq = len(s.citas) + 1
	}
}

// List devuelve todas las citas en orden de inserción.
func (s *Store) List() []entity.Cita {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Cita(nil), s.citas...)
}

// ListByEstado filtra por estado preservando el orden de inserción.
func (s *Store) ListByEstado(estado string) []entity.Cita {
	return s.filter(func(c entity.Cita) bool { return c.Estado == estado })
}

// ListByFecha filtra por fecha (YYYY-MM-DD).
func (s *Store) ListByFecha(fecha string) []entity.Cita {
	return s.filter(func(c entity.Cita) bool { return c.Fecha == fecha })
}

// ListByTecnico filtra por técnico asignado.
func (s *Store) ListByTecnico(tecnicoID string) []entity.Cita {
	return s.filter(func(c entity.Cita) bool { return c.TecnicoID == tecnicoID })
}

func (s *Store) filter(keep func(entity.Cita) bool) []entity.Cita {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Cita, 0, len(s.citas))
	for _, c := range s.citas {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// GetByID devuelve la cita o ErrNotFound.
func (s *Store) GetByID(id string) (*entity.Cita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.citas {
		if c.ID == id {
			cita := c
			return &cita, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListTareasPendientes devuelve las tareas sin agendar, en orden de inserción.
func (s *Store) ListTareasPendientes() []entity.TareaPendiente {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.TareaPendiente(nil), s.tareas...)
}

// Create agenda una nueva cita con el siguiente ID secuencial (CIT-NNN).
// Si no se indica estado, queda en pendiente; un estado fuera del conjunto
// cerrado devuelve ErrInvalidInput.
func (s *Store) Create(ctx context.Context, in dto.CreateCitaRequest) (*entity.Cita, error) {
	if in.Estado != "" && !entity.EstadoCitaValido(in.Estado) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Estado)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cita := s.createLocked(in)
	if err := s.persist(ctx); err != nil {
		return cita, err
	}
	return cita, nil
}

// createLocked asigna ID e inserta; el caller debe tener el lock.
func (s *Store) createLocked(in dto.CreateCitaRequest) *entity.Cita {
	estado := in.Estado
	if estado == "" {
		estado = entity.CitaPendiente
	}
	cita := entity.Cita{
		ID:            fmt.Sprintf("CIT-%03d", s.nextSeq),
		Tipo:          in.Tipo,
		Asunto:        in.Asunto,
		ClienteID:     in.ClienteID,
		ClienteNombre: in.ClienteNombre,
		TecnicoID:     in.TecnicoID,
		TecnicoNombre: in.TecnicoNombre,
		TanqueID:      in.TanqueID,
		Fecha:         in.Fecha,
		Hora:          in.Hora,
		Estado:        estado,
		Observaciones: in.Observaciones,
	}
	s.nextSeq++
	s.citas = append(s.citas, cita)
	return &cita
}

// Update fusiona los campos presentes sobre la cita. Cualquier transición
// entre estados del conjunto cerrado es válida: la permisividad es
// intencional para permitir corrección por el operador. Un estado fuera del
// conjunto devuelve ErrInvalidInput sin tocar la cita.
func (s *Store) Update(ctx context.Context, id string, in dto.UpdateCitaRequest) (*entity.Cita, error) {
	if in.Estado != nil && !entity.EstadoCitaValido(*in.Estado) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *in.Estado)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	c := &s.citas[idx]
	aplicar(&c.Tipo, in.Tipo)
	aplicar(&c.Asunto, in.Asunto)
	aplicar(&c.ClienteID, in.ClienteID)
	aplicar(&c.ClienteNombre, in.ClienteNombre)
	aplicar(&c.TecnicoID, in.TecnicoID)
	aplicar(&c.TecnicoNombre, in.TecnicoNombre)
	aplicar(&c.TanqueID, in.TanqueID)
	aplicar(&c.Fecha, in.Fecha)
	aplicar(&c.Hora, in.Hora)
	aplicar(&c.Estado, in.Estado)
	aplicar(&c.Observaciones, in.Observaciones)
	cita := *c
	if err := s.persist(ctx); err != nil {
		return &cita, err
	}
	return &cita, nil
}

// Delete elimina la cita y la devuelve. Repetir el borrado del mismo ID
// retorna ErrNotFound sin tocar la colección.
func (s *Store) Delete(ctx context.Context, id string) (*entity.Cita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	eliminada := s.citas[idx]
	s.citas = append(s.citas[:idx], s.citas[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		return &eliminada, err
	}
	return &eliminada, nil
}

// PromoverTarea convierte una tarea pendiente en cita: crea la cita a partir
// de los campos de la tarea y la retira de la colección de tareas. La
// creación ocurre antes del retiro; no hay rollback si el retiro fallara.
func (s *Store) PromoverTarea(ctx context.Context, tareaID string, in dto.PromoverTareaRequest) (*entity.Cita, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tareas {
		if t.ID == tareaID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	tarea := s.tareas[idx]

	cita := s.createLocked(dto.CreateCitaRequest{
		Tipo:          tarea.Tipo,
		Asunto:        tarea.Titulo,
		ClienteID:     fmt.Sprintf("CLI-%d", time.Now().UnixMilli()),
		ClienteNombre: tarea.ClienteNombre,
		TecnicoID:     in.TecnicoID,
		TecnicoNombre: in.TecnicoNombre,
		Fecha:         in.Fecha,
		Hora:          in.Hora,
		Observaciones: fmt.Sprintf("Convertido desde tarea %s", tarea.ID),
	})
	s.tareas = append(s.tareas[:idx], s.tareas[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		return cita, err
	}
	return cita, nil
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.citas {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func aplicar(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// persist guarda el snapshot; el caller debe tener el lock. Un fallo se
// envuelve en ErrPersistencia sin deshacer la mutación en memoria.
func (s *Store) persist(ctx context.Context) error {
	datos, err := json.Marshal(Snapshot{Citas: s.citas, Tareas: s.tareas, NextSeq: s.nextSeq})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	if err := s.snapshots.Save(ctx, repository.SnapshotCitas, datos); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	return nil
}
