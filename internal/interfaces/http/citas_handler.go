package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ServiCampo-api/internal/application/citas"
	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/domain"
)

// CitasHandler maneja la agenda: citas y tareas pendientes.
type CitasHandler struct {
	store *citas.Store
}

// NewCitasHandler construye el handler de citas.
func NewCitasHandler(store *citas.Store) *CitasHandler {
	return &CitasHandler{store: store}
}

// List godoc
// @Summary      Listar citas, con filtros opcionales estado/fecha/tecnico
// @Tags         citas
// @Produce      json
// @Param        estado   query  string  false  "pendiente|confirmada|completada|cancelada"
// @Param        fecha    query  string  false  "YYYY-MM-DD"
// @Param        tecnico  query  string  false  "ID de técnico"
// @Success      200  {array}  entity.Cita
// @Router       /api/citas [get]
func (h *CitasHandler) List(c *fiber.Ctx) error {
	if estado := c.Query("estado"); estado != "" {
		return c.JSON(h.store.ListByEstado(estado))
	}
	if fecha := c.Query("fecha"); fecha != "" {
		return c.JSON(h.store.ListByFecha(fecha))
	}
	if tecnico := c.Query("tecnico"); tecnico != "" {
		return c.JSON(h.store.ListByTecnico(tecnico))
	}
	return c.JSON(h.store.List())
}

// GetByID godoc
// @Summary      Obtener una cita
// @Tags         citas
// @Produce      json
// @Success      200  {object}  entity.Cita
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/{id} [get]
func (h *CitasHandler) GetByID(c *fiber.Ctx) error {
	cita, err := h.store.GetByID(c.Params("id"))
	if err != nil {
		return notFound(c, "la cita no existe")
	}
	return c.JSON(cita)
}

// Create godoc
// @Summary      Agendar una cita
// @Tags         citas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCitaRequest  true  "datos de la cita"
// @Success      201   {object}  entity.Cita
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/citas [post]
func (h *CitasHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tipo == "" || in.Asunto == "" || in.Fecha == "" || in.Hora == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, asunto, fecha y hora son requeridos"})
	}
	cita, err := h.store.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return persistOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cita)
}

// Update godoc
// @Summary      Actualizar campos de una cita (merge superficial)
// @Tags         citas
// @Accept       json
// @Produce      json
// @Success      200  {object}  entity.Cita
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/{id} [put]
func (h *CitasHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cita, err := h.store.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "la cita no existe")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return persistOrInternal(c, err)
	}
	return c.JSON(cita)
}

// Delete godoc
// @Summary      Eliminar una cita (devuelve la eliminada)
// @Tags         citas
// @Produce      json
// @Success      200  {object}  entity.Cita
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/{id} [delete]
func (h *CitasHandler) Delete(c *fiber.Ctx) error {
	cita, err := h.store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "la cita no existe")
		}
		return persistOrInternal(c, err)
	}
	return c.JSON(cita)
}

// ListTareas godoc
// @Summary      Listar tareas pendientes sin agendar
// @Tags         citas
// @Produce      json
// @Success      200  {array}  entity.TareaPendiente
// @Router       /api/citas/tareas [get]
func (h *CitasHandler) ListTareas(c *fiber.Ctx) error {
	return c.JSON(h.store.ListTareasPendientes())
}

// PromoverTarea godoc
// @Summary      Convertir una tarea pendiente en cita
// @Tags         citas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromoverTareaRequest  true  "fecha, hora, tecnico"
// @Success      201   {object}  entity.Cita
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/citas/tareas/{id}/promover [post]
func (h *CitasHandler) PromoverTarea(c *fiber.Ctx) error {
	var in dto.PromoverTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Fecha == "" || in.Hora == "" || in.TecnicoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha, hora y tecnicoId son requeridos"})
	}
	cita, err := h.store.PromoverTarea(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "la tarea no existe")
		}
		return persistOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cita)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func persistOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrPersistencia) {
		// La mutación en memoria se aplicó; solo falló el guardado.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSIST_FAILED", Message: "cambio aplicado pero no persistido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
